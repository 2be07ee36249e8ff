package loadprogress

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/theme"
)

// View is the terminal progress bar.
type View struct {
	bar      progress.Model
	percent  float64
	visible  bool
	fadedOut bool
}

// NewView returns a hidden bar of the given width.
func NewView(width int) *View {
	return &View{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(width), progress.WithoutPercentage()),
	}
}

// SetWidth resizes the bar.
func (v *View) SetWidth(width int) {
	v.bar.Width = width
}

// Percent returns the fill level in [0, 1].
func (v *View) Percent() float64 { return v.percent }

// Visible reports whether a load is being shown.
func (v *View) Visible() bool { return v.visible }

// Render draws the bar. A load that finished with animation is drawn full and
// dimmed until the next load starts.
func (v *View) Render() string {
	switch {
	case v.visible:
		return v.bar.ViewAs(v.percent)
	case v.fadedOut:
		return theme.Muted.Render(v.bar.ViewAs(1))
	}
	return ""
}

// Binder projects the model onto a View.
var Binder = bindProgress()

func bindProgress() modelutil.ViewBinder[*View] {
	b := modelutil.NewBinder[*View]()
	modelutil.Handle(b, Completion, func(v *View, state CompletionState) {
		v.visible = state == Unfinished
		v.fadedOut = state == FinishedDoAnimate
		if state == FinishedDoAnimate {
			v.percent = 1
		}
	})
	modelutil.Handle(b, Progress, func(v *View, p float64) {
		v.percent = p
	})
	return b.MustCover(AllKeys...).Bind
}

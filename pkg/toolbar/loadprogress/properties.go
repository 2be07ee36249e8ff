// Package loadprogress drives the toolbar's page load progress bar from the
// activity tab's loading events.
package loadprogress

import "github.com/entrhq/modelview/pkg/modelutil"

// CompletionState says whether a load is in flight and, when it is done,
// whether the bar should animate out.
type CompletionState int

const (
	Unfinished CompletionState = iota
	FinishedDoAnimate
	FinishedDontAnimate
)

func (s CompletionState) String() string {
	switch s {
	case Unfinished:
		return "unfinished"
	case FinishedDoAnimate:
		return "finished_do_animate"
	case FinishedDontAnimate:
		return "finished_dont_animate"
	}
	return "unknown"
}

// MinimumLoadProgress is shown as soon as a load starts so the bar is visible.
const MinimumLoadProgress = 0.05

var (
	Completion = modelutil.NewKey[CompletionState]("COMPLETION_STATE", modelutil.WithDefault(FinishedDontAnimate))
	Progress   = modelutil.NewKey[float64]("PROGRESS")
)

// AllKeys lists the surface's keys in declaration order.
var AllKeys = []modelutil.PropertyKey{Completion, Progress}

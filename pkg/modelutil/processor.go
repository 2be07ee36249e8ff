package modelutil

type processorOptions struct {
	replay bool
}

// ProcessorOption configures Bind.
type ProcessorOption func(*processorOptions)

// WithReplay makes Bind push every already-set key to the view, in declaration
// order, before returning.
func WithReplay() ProcessorOption {
	return func(o *processorOptions) { o.replay = true }
}

// WithReplayIf enables replay when enabled is true.
func WithReplayIf(enabled bool) ProcessorOption {
	return func(o *processorOptions) { o.replay = o.replay || enabled }
}

// ChangeProcessor connects one model to one view through a binder for as long
// as the view is attached. It does not own the view.
type ChangeProcessor[V any] struct {
	model     *Model
	view      V
	binder    ViewBinder[V]
	listener  *Listener
	destroyed bool
}

// Bind attaches binder to model for view. A model accepts one processor at a
// time; a second Bind panics with *DoubleBindError.
func Bind[V any](m *Model, view V, binder ViewBinder[V], opts ...ProcessorOption) *ChangeProcessor[V] {
	if m.bound {
		panic(&DoubleBindError{})
	}
	var o processorOptions
	for _, opt := range opts {
		opt(&o)
	}

	p := &ChangeProcessor[V]{model: m, view: view, binder: binder}
	m.bound = true
	p.listener = m.AddListener(p.onChange)

	if o.replay {
		// A binder that panics during replay leaves the model unbound.
		replayed := false
		defer func() {
			if !replayed {
				p.Destroy()
			}
		}()
		m.guard(func() {
			for i, k := range m.keys {
				if !m.set[i] || p.destroyed {
					continue
				}
				binder(m, view, k)
			}
		})
		replayed = true
	}
	return p
}

func (p *ChangeProcessor[V]) onChange(m *Model, key PropertyKey) {
	if p.destroyed {
		return
	}
	p.binder(m, p.view, key)
}

// View returns the bound view. It panics with *DestroyedHandleError after Destroy.
func (p *ChangeProcessor[V]) View() V {
	if p.destroyed {
		panic(&DestroyedHandleError{})
	}
	return p.view
}

// Destroyed reports whether Destroy has run.
func (p *ChangeProcessor[V]) Destroyed() bool {
	return p.destroyed
}

// Destroy detaches the processor. No notification reaches the binder
// afterwards, including the remainder of an in-flight dispatch. Safe to call
// more than once.
func (p *ChangeProcessor[V]) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.model.RemoveListener(p.listener)
	p.model.bound = false
	var zero V
	p.view = zero
}

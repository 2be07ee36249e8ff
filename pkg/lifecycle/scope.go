// Package lifecycle tracks the external subscriptions a mediator holds so
// they can be released exactly once, in reverse order of attachment.
package lifecycle

// Scope records detach steps. The zero value is ready to use.
type Scope struct {
	detach    []func()
	destroyed bool
}

// Attach records a detach step. Attaching to a destroyed scope runs the step
// immediately so the subscription cannot leak.
func (s *Scope) Attach(detach func()) {
	if detach == nil {
		return
	}
	if s.destroyed {
		detach()
		return
	}
	s.detach = append(s.detach, detach)
}

// Destroy runs every detach step in reverse attach order. It returns false,
// doing nothing, when the scope was already destroyed.
func (s *Scope) Destroy() bool {
	if s.destroyed {
		return false
	}
	s.destroyed = true
	for i := len(s.detach) - 1; i >= 0; i-- {
		s.detach[i]()
	}
	s.detach = nil
	return true
}

// Destroyed reports whether Destroy has run. Callbacks arriving after
// teardown check this and return without acting.
func (s *Scope) Destroyed() bool {
	return s.destroyed
}

// Len returns the number of pending detach steps.
func (s *Scope) Len() int {
	return len(s.detach)
}

// AttachObserver registers obs with add and records the matching remove.
func AttachObserver[T any](s *Scope, obs T, add, remove func(T)) {
	add(obs)
	s.Attach(func() { remove(obs) })
}

// Package observer provides the same-thread event-source primitives that
// collaborators expose to mediators.
package observer

// List is an ordered set of observers. It is safe to add or remove observers
// while Notify is running: removed observers are skipped and added observers
// wait for the next Notify.
type List[T comparable] struct {
	items []T
}

// Add registers o. Adding an observer twice is a no-op.
func (l *List[T]) Add(o T) {
	if l.Has(o) {
		return
	}
	l.items = append(l.items, o)
}

// Remove unregisters o. Returns false if o was not registered.
func (l *List[T]) Remove(o T) bool {
	for i, item := range l.items {
		if item == o {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether o is registered.
func (l *List[T]) Has(o T) bool {
	for _, item := range l.items {
		if item == o {
			return true
		}
	}
	return false
}

// Len returns the number of registered observers.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Notify calls fn for every observer registered when Notify started and still
// registered when its turn comes.
func (l *List[T]) Notify(fn func(T)) {
	snapshot := append([]T(nil), l.items...)
	for _, o := range snapshot {
		if !l.Has(o) {
			continue
		}
		fn(o)
	}
}

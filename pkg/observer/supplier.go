package observer

// Subscription is the handle returned by Supplier.AddObserver.
type Subscription[T any] struct {
	fn      func(T)
	removed bool
}

// Supplier holds a value and notifies observers when it changes.
type Supplier[T comparable] struct {
	value    T
	hasValue bool
	subs     []*Subscription[T]
}

// NewSupplier returns an empty supplier.
func NewSupplier[T comparable]() *Supplier[T] {
	return &Supplier[T]{}
}

// NewSupplierWith returns a supplier holding v.
func NewSupplierWith[T comparable](v T) *Supplier[T] {
	return &Supplier[T]{value: v, hasValue: true}
}

// Get returns the current value, or the zero value if none was set.
func (s *Supplier[T]) Get() T {
	return s.value
}

// HasValue reports whether Set has been called.
func (s *Supplier[T]) HasValue() bool {
	return s.hasValue
}

// Set stores v and notifies observers if it differs from the current value.
func (s *Supplier[T]) Set(v T) {
	if s.hasValue && s.value == v {
		return
	}
	s.value = v
	s.hasValue = true

	snapshot := append([]*Subscription[T](nil), s.subs...)
	for _, sub := range snapshot {
		if sub.removed {
			continue
		}
		sub.fn(v)
	}
}

// AddObserver registers fn for future changes.
func (s *Supplier[T]) AddObserver(fn func(T)) *Subscription[T] {
	sub := &Subscription[T]{fn: fn}
	s.subs = append(s.subs, sub)
	return sub
}

// RemoveObserver unregisters a subscription. Safe to call more than once.
func (s *Supplier[T]) RemoveObserver(sub *Subscription[T]) {
	if sub == nil || sub.removed {
		return
	}
	sub.removed = true
	for i, other := range s.subs {
		if other == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

// ObserverCount returns the number of active subscriptions.
func (s *Supplier[T]) ObserverCount() int {
	return len(s.subs)
}

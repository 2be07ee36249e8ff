package modelutil

// ViewBinder projects one changed property of a model onto a view. It must
// only read the model.
type ViewBinder[V any] func(m *Model, view V, key PropertyKey)

// Binder is a key-indexed dispatch table that produces a ViewBinder.
type Binder[V any] struct {
	handlers map[PropertyKey]func(m *Model, view V)
	strict   bool
}

// NewBinder returns an empty dispatch table. Keys without a handler are
// ignored unless Strict is set.
func NewBinder[V any]() *Binder[V] {
	return &Binder[V]{handlers: make(map[PropertyKey]func(*Model, V))}
}

// On registers fn for key, replacing any previous handler.
func (b *Binder[V]) On(key PropertyKey, fn func(m *Model, view V)) *Binder[V] {
	b.handlers[key] = fn
	return b
}

// OnAny registers fn for every listed key. Used when several keys feed one
// derived view state.
func (b *Binder[V]) OnAny(fn func(m *Model, view V), keys ...PropertyKey) *Binder[V] {
	for _, k := range keys {
		b.handlers[k] = fn
	}
	return b
}

// Handle registers a typed handler that receives the key's current value.
func Handle[T, V any](b *Binder[V], key *Key[T], fn func(view V, value T)) *Binder[V] {
	return b.On(key, func(m *Model, view V) {
		fn(view, Get(m, key))
	})
}

// Strict makes Bind panic with *UnboundKeyError for keys without a handler.
func (b *Binder[V]) Strict() *Binder[V] {
	b.strict = true
	return b
}

// MustCover panics with *UnboundKeyError unless every key has a handler.
func (b *Binder[V]) MustCover(keys ...PropertyKey) *Binder[V] {
	for _, k := range keys {
		if _, ok := b.handlers[k]; !ok {
			panic(&UnboundKeyError{Key: k.Name()})
		}
	}
	return b
}

// Bind dispatches one change. Its method value satisfies ViewBinder.
func (b *Binder[V]) Bind(m *Model, view V, key PropertyKey) {
	fn, ok := b.handlers[key]
	if !ok {
		if b.strict {
			panic(&UnboundKeyError{Key: key.Name()})
		}
		return
	}
	fn(m, view)
}

package modelutil

import "reflect"

type initialValue struct {
	key   PropertyKey
	value any
}

// Builder assembles a Model with initial values. Initial values are stored
// before any listener exists, so they are only projected by a processor bound
// with replay.
type Builder struct {
	keys    []PropertyKey
	opts    []Option
	initial []initialValue
}

// NewBuilder starts a model over the given keys.
func NewBuilder(keys ...PropertyKey) *Builder {
	return &Builder{keys: keys}
}

// With records an initial value. Type and key checks happen in Build.
func (b *Builder) With(key PropertyKey, value any) *Builder {
	b.initial = append(b.initial, initialValue{key: key, value: value})
	return b
}

// Options appends model options.
func (b *Builder) Options(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build creates the model. It panics with the same errors as SetValue.
func (b *Builder) Build() *Model {
	m := NewModel(b.keys, b.opts...)
	for _, iv := range b.initial {
		m.SetValue(iv.key, iv.value)
	}
	return m
}

// Keys concatenates key groups into one declaration list.
func Keys(groups ...[]PropertyKey) []PropertyKey {
	var out []PropertyKey
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func typeOf(v any) reflect.Type {
	if v == nil {
		return nil
	}
	return reflect.TypeOf(v)
}

package modelutil

import "reflect"

// PropertyKey is the untyped view of a Key. The set of implementations is
// closed to this package: every key is created with NewKey.
type PropertyKey interface {
	// Name returns the key's declared name.
	Name() string

	// ValueType returns the declared type of the key's value.
	ValueType() reflect.Type

	// Default returns the declared default value, if any.
	Default() (any, bool)

	accepts(v any) bool
	equal(a, b any) bool
	zero() any
}

// Key is a typed property slot. Keys compare by identity, so two keys with the
// same name are still distinct.
type Key[T any] struct {
	name       string
	typ        reflect.Type
	def        T
	hasDefault bool
	eq         func(a, b T) bool
}

// KeyOption configures a Key at declaration time.
type KeyOption[T any] func(*Key[T])

// NewKey declares a key holding values of type T.
func NewKey[T any](name string, opts ...KeyOption[T]) *Key[T] {
	k := &Key[T]{
		name: name,
		typ:  reflect.TypeOf((*T)(nil)).Elem(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// WithDefault declares the value returned by reads of the key before any write.
func WithDefault[T any](v T) KeyOption[T] {
	return func(k *Key[T]) {
		k.def = v
		k.hasDefault = true
	}
}

// WithEqual overrides the equality used by NotifyOnChange models.
func WithEqual[T any](eq func(a, b T) bool) KeyOption[T] {
	return func(k *Key[T]) {
		k.eq = eq
	}
}

// Name returns the key's declared name.
func (k *Key[T]) Name() string { return k.name }

func (k *Key[T]) String() string { return k.name }

// ValueType returns the declared type of the key's value.
func (k *Key[T]) ValueType() reflect.Type { return k.typ }

// Default returns the declared default value, if any.
func (k *Key[T]) Default() (any, bool) {
	if !k.hasDefault {
		return nil, false
	}
	return k.def, true
}

func (k *Key[T]) accepts(v any) bool {
	if v == nil {
		return nilable(k.typ)
	}
	_, ok := v.(T)
	return ok
}

func (k *Key[T]) zero() any {
	var z T
	return z
}

func (k *Key[T]) equal(a, b any) bool {
	if k.eq != nil {
		return k.eq(as[T](a), as[T](b))
	}
	return looselyEqual(a, b)
}

func as[T any](v any) T {
	if v == nil {
		var z T
		return z
	}
	return v.(T)
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return true
	}
	return false
}

// looselyEqual compares with == where the dynamic types allow it. Values that
// cannot be compared (funcs, slices, maps) are never equal.
func looselyEqual(a, b any) (eq bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	// Structs holding interfaces can still panic at runtime.
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

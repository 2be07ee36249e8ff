package modelutil

import "fmt"

// NotifyPolicy controls whether writes of an unchanged value notify listeners.
type NotifyPolicy int

const (
	// NotifyAlways notifies on every write, even when the value is unchanged.
	NotifyAlways NotifyPolicy = iota
	// NotifyOnChange suppresses notifications for writes that store an equal value.
	NotifyOnChange
)

func (p NotifyPolicy) String() string {
	if p == NotifyOnChange {
		return "on_change"
	}
	return "always"
}

// ParseNotifyPolicy converts a configuration string into a NotifyPolicy.
func ParseNotifyPolicy(s string) (NotifyPolicy, error) {
	switch s {
	case "", "always":
		return NotifyAlways, nil
	case "on_change":
		return NotifyOnChange, nil
	}
	return NotifyAlways, fmt.Errorf("unknown notify policy %q", s)
}

// UnsetPolicy controls reads of keys that were never written and have no default.
type UnsetPolicy int

const (
	// UnsetZero returns the zero value of the key's type.
	UnsetZero UnsetPolicy = iota
	// UnsetPanic panics with *UnsetKeyError.
	UnsetPanic
)

func (p UnsetPolicy) String() string {
	if p == UnsetPanic {
		return "panic"
	}
	return "zero"
}

// ParseUnsetPolicy converts a configuration string into an UnsetPolicy.
func ParseUnsetPolicy(s string) (UnsetPolicy, error) {
	switch s {
	case "", "zero":
		return UnsetZero, nil
	case "panic":
		return UnsetPanic, nil
	}
	return UnsetZero, fmt.Errorf("unknown unset policy %q", s)
}

// Options holds the per-model policies chosen at construction.
type Options struct {
	Notify NotifyPolicy
	Unset  UnsetPolicy
}

// Option configures a Model.
type Option func(*Options)

// WithNotifyPolicy sets the model's NotifyPolicy.
func WithNotifyPolicy(p NotifyPolicy) Option {
	return func(o *Options) { o.Notify = p }
}

// WithUnsetPolicy sets the model's UnsetPolicy.
func WithUnsetPolicy(p UnsetPolicy) Option {
	return func(o *Options) { o.Unset = p }
}

// WithOptions copies a whole Options value, typically loaded from configuration.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// Listener is the handle returned by AddListener.
type Listener struct {
	fn      func(m *Model, key PropertyKey)
	removed bool
}

// Model maps a fixed set of declared keys to values and notifies listeners
// synchronously on every write. A Model is not safe for concurrent use: every
// call must happen on the UI thread.
type Model struct {
	keys   []PropertyKey
	index  map[PropertyKey]int
	values []any
	set    []bool

	listeners   []*Listener
	dispatching int
	bound       bool

	opts Options
}

// NewModel creates a model over the given keys. The slice order is the
// declaration order used by Keys and replay-on-bind.
func NewModel(keys []PropertyKey, opts ...Option) *Model {
	m := &Model{
		keys:   make([]PropertyKey, 0, len(keys)),
		index:  make(map[PropertyKey]int, len(keys)),
		values: make([]any, len(keys)),
		set:    make([]bool, len(keys)),
	}
	for _, opt := range opts {
		opt(&m.opts)
	}
	for _, k := range keys {
		if k == nil {
			panic(&InvalidKeyError{Key: "<nil>"})
		}
		if _, dup := m.index[k]; dup {
			panic(&DuplicateKeyError{Key: k.Name()})
		}
		m.index[k] = len(m.keys)
		m.keys = append(m.keys, k)
	}
	return m
}

// Set writes a typed value. The compiler guarantees the value's type.
func Set[T any](m *Model, key *Key[T], value T) {
	m.SetValue(key, value)
}

// Get reads a typed value, falling back to the key's default and then to the
// model's UnsetPolicy.
func Get[T any](m *Model, key *Key[T]) T {
	return as[T](m.Value(key))
}

// SetValue writes an untyped value. It panics with *InvalidKeyError for an
// undeclared key, *TypeMismatchError for a value of the wrong type and
// *ReentrantSetError when called from inside a change notification. Nothing is
// stored when it panics.
func (m *Model) SetValue(key PropertyKey, value any) {
	i := m.mustIndex(key)
	if !key.accepts(value) {
		panic(&TypeMismatchError{Key: key.Name(), Want: key.ValueType(), Got: typeOf(value)})
	}
	if m.dispatching > 0 {
		panic(&ReentrantSetError{Key: key.Name()})
	}
	if m.opts.Notify == NotifyOnChange && m.set[i] && key.equal(m.values[i], value) {
		return
	}
	m.values[i] = value
	m.set[i] = true
	m.notify(key)
}

// Value reads an untyped value.
func (m *Model) Value(key PropertyKey) any {
	i := m.mustIndex(key)
	if m.set[i] {
		return m.values[i]
	}
	if def, ok := key.Default(); ok {
		return def
	}
	if m.opts.Unset == UnsetPanic {
		panic(&UnsetKeyError{Key: key.Name()})
	}
	return key.zero()
}

// IsSet reports whether the key has been written.
func (m *Model) IsSet(key PropertyKey) bool {
	return m.set[m.mustIndex(key)]
}

// Has reports whether the key is declared in this model.
func (m *Model) Has(key PropertyKey) bool {
	_, ok := m.index[key]
	return ok
}

// Keys returns the declared keys in declaration order.
func (m *Model) Keys() []PropertyKey {
	return append([]PropertyKey(nil), m.keys...)
}

// Lookup finds a declared key by name.
func (m *Model) Lookup(name string) (PropertyKey, bool) {
	for _, k := range m.keys {
		if k.Name() == name {
			return k, true
		}
	}
	return nil, false
}

// Snapshot returns the current value of every key that is set or has a default.
func (m *Model) Snapshot() map[string]any {
	out := make(map[string]any, len(m.keys))
	for i, k := range m.keys {
		if m.set[i] {
			out[k.Name()] = m.values[i]
			continue
		}
		if def, ok := k.Default(); ok {
			out[k.Name()] = def
		}
	}
	return out
}

// Options returns the policies the model was built with.
func (m *Model) Options() Options {
	return m.opts
}

// AddListener registers fn to run after every notified write. Listeners run
// in registration order.
func (m *Model) AddListener(fn func(m *Model, key PropertyKey)) *Listener {
	l := &Listener{fn: fn}
	m.listeners = append(m.listeners, l)
	return l
}

// RemoveListener unregisters a listener. A listener removed during a dispatch
// is not invoked for the rest of that dispatch.
func (m *Model) RemoveListener(l *Listener) {
	if l == nil || l.removed {
		return
	}
	l.removed = true
	for i, other := range m.listeners {
		if other == l {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (m *Model) ListenerCount() int {
	return len(m.listeners)
}

func (m *Model) notify(key PropertyKey) {
	if len(m.listeners) == 0 {
		return
	}
	snapshot := append([]*Listener(nil), m.listeners...)
	m.guard(func() {
		for _, l := range snapshot {
			if l.removed {
				continue
			}
			l.fn(m, key)
		}
	})
}

// guard marks the model as dispatching for the duration of fn, so that writes
// from listeners and binders are rejected.
func (m *Model) guard(fn func()) {
	m.dispatching++
	defer func() { m.dispatching-- }()
	fn()
}

func (m *Model) mustIndex(key PropertyKey) int {
	if key == nil {
		panic(&InvalidKeyError{Key: "<nil>"})
	}
	i, ok := m.index[key]
	if !ok {
		panic(&InvalidKeyError{Key: key.Name()})
	}
	return i
}

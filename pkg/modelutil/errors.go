package modelutil

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrContractViolation is wrapped by every error this package panics with.
// These mark programmer errors: correct code never triggers them.
var ErrContractViolation = errors.New("model contract violation")

// InvalidKeyError reports a key that is not part of the model's declared key set.
type InvalidKeyError struct {
	Key string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("property key %q is not declared in this model", e.Key)
}

func (e *InvalidKeyError) Unwrap() error { return ErrContractViolation }

// TypeMismatchError reports a write whose value does not match the key's declared type.
type TypeMismatchError struct {
	Key  string
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeMismatchError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}
	return fmt.Sprintf("property key %q holds %s, got %s", e.Key, e.Want, got)
}

func (e *TypeMismatchError) Unwrap() error { return ErrContractViolation }

// UnsetKeyError reports a read of a key that was never set and has no default,
// on a model configured with UnsetPanic.
type UnsetKeyError struct {
	Key string
}

func (e *UnsetKeyError) Error() string {
	return fmt.Sprintf("property key %q was read before being set", e.Key)
}

func (e *UnsetKeyError) Unwrap() error { return ErrContractViolation }

// DuplicateKeyError reports a key declared twice in the same model.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("property key %q declared more than once", e.Key)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrContractViolation }

// ReentrantSetError reports a write issued from inside a change notification.
type ReentrantSetError struct {
	Key string
}

func (e *ReentrantSetError) Error() string {
	return fmt.Sprintf("property key %q set while the model was dispatching a change", e.Key)
}

func (e *ReentrantSetError) Unwrap() error { return ErrContractViolation }

// DoubleBindError reports a second change processor bound to a model that already has one.
type DoubleBindError struct{}

func (e *DoubleBindError) Error() string {
	return "model is already bound to a view"
}

func (e *DoubleBindError) Unwrap() error { return ErrContractViolation }

// DestroyedHandleError reports use of a change processor after Destroy.
type DestroyedHandleError struct{}

func (e *DestroyedHandleError) Error() string {
	return "change processor used after destroy"
}

func (e *DestroyedHandleError) Unwrap() error { return ErrContractViolation }

// UnboundKeyError reports a key that a strict binder has no handler for.
type UnboundKeyError struct {
	Key string
}

func (e *UnboundKeyError) Error() string {
	return fmt.Sprintf("cannot update the view for property key %q", e.Key)
}

func (e *UnboundKeyError) Unwrap() error { return ErrContractViolation }

// Recover runs fn and converts a contract-violation panic into a returned error.
// Any other panic is propagated unchanged.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && errors.Is(e, ErrContractViolation) {
			err = e
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

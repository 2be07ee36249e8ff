// Package modelutil implements the property-model half of the model-view-binder
// pattern used by every UI surface in this module.
//
// A Model holds typed values for a fixed set of keys and notifies listeners
// synchronously on each write. A ChangeProcessor subscribes a ViewBinder to a
// model so that each changed key is projected onto one view. Mediators write to
// the model; binders only read it.
//
// Misuse (undeclared keys, wrong value types, writes from inside a
// notification, binding a model twice) panics with an error wrapping
// ErrContractViolation. These panics are never expected in correct code.
package modelutil

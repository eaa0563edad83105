// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package callback implements the typed, serializable deferred-continuation
// mechanism: a producer that wants decoupled continuation of an async
// operation constructs an effectful action carrying
// Callback[R] fields; the reducer that observes completion invokes the
// callback, which enqueues the target action.
package callback

import (
	"fmt"

	"github.com/luxfi/dispatch/action"
)

// Target is implemented by callback targets. It is a named, serializable
// identity (not a Go closure over the heap) paired with a payload-to-action
// constructor, so Callback values round-trip through the record/replay log.
type Target[P any] interface {
	// Name identifies the target for logging and for round-trip equality
	// checks; two callbacks with equal Name are considered equal.
	Name() string
	// Build constructs the follow-up action from the completed payload.
	Build(payload P) action.Action
}

// Callback is a typed, serializable continuation: a payload type P and a
// Target[P] that knows how to turn a completed P into an Action. Callbacks
// are stored in state or passed as action fields.
type Callback[P any] struct {
	target Target[P]
}

// New wraps a Target into a Callback.
func New[P any](target Target[P]) Callback[P] {
	return Callback[P]{target: target}
}

// IsZero reports whether the callback has no target bound — the case for a
// zero-value Callback left unset on an action that does not need this
// particular continuation.
func (c Callback[P]) IsZero() bool {
	return c.target == nil
}

// Name returns the bound target's name, or "" if unset.
func (c Callback[P]) Name() string {
	if c.target == nil {
		return ""
	}
	return c.target.Name()
}

// Invoke builds the follow-up action from payload and enqueues it on disp.
// This is the "invoking a callback with a value enqueues the resulting
// action" behavior. It is a no-op (not an error) when the
// callback is unset, since many actions carry optional on_success/on_error
// callbacks that a given caller may choose not to populate.
func (c Callback[P]) Invoke(disp action.Dispatcher, payload P) {
	if c.target == nil {
		return
	}
	disp.Dispatch(c.target.Build(payload))
}

// String renders the callback for logging and for assertions in tests.
func (c Callback[P]) String() string {
	if c.target == nil {
		return "Callback(none)"
	}
	return fmt.Sprintf("Callback(%s)", c.target.Name())
}

// Equal reports whether two callbacks have the same bound target name. Used
// by record/replay round-trip assertions. Captured fields of the Target
// values are not compared.
func (c Callback[P]) Equal(other Callback[P]) bool {
	return c.Name() == other.Name()
}

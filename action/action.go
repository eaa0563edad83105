// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package action

import "time"

// Meta is the metadata sealed onto every action at dispatch time: a
// monotonically increasing sequence id and a timestamp obtained from the
// time service (never the wall clock directly — see service.Time).
type Meta struct {
	Seq  uint64
	Time time.Time
}

// Action is a tagged variant representing one state transition. Concrete
// action types are plain structs defined by subsystem packages
// (p2p.InitAction, transition.StakingLedgerSyncSuccessAction, ...); Kind identifies the variant for the Store's enabling-condition and
// reducer lookup tables, and Effectful marks whether the action additionally
// carries an effect handler invocation after its reducer returns.
type Action interface {
	Kind() Kind
	Effectful() bool
}

// Fielder is implemented by actions that want specific fields extracted for
// the structured log record the Store emits on every dispatch. Actions that
// don't implement it are logged with no extra fields.
type Fielder interface {
	LogFields() []any
}

// Dispatcher is the capability to enqueue further actions. It is the only
// capability a reducer retains once it has entered the dispatch phase (see
// Substate.IntoDispatcher).
type Dispatcher interface {
	Dispatch(a Action)
}

// phase tracks whether a Substate value is still in its mutation phase or
// has been converted into a Dispatcher for the dispatch phase. Go has no
// linear/affine types, so unlike the Rust original this is enforced with a
// runtime guard rather than a compile-time one; see DESIGN.md for the
// tradeoff.
type phase uint8

const (
	phaseMutation phase = iota
	phaseDispatch
)

// Substate is the capability value granting a reducer typed access to one
// field of the composite State. It has two phases:
//
//  1. Mutation phase: GetSubstateMut yields a mutable pointer to the owned
//     substate. May be called any number of times while in this phase.
//  2. Dispatch phase: IntoDispatcher consumes the mutation capability and
//     returns a Dispatcher; GetSubstateMut panics if called afterwards.
//
// A reducer is expected to call GetSubstateMut (directly or via the
// subsystem's typed wrapper), mutate in place, and then either return
// without dispatching anything, or call IntoDispatcher and dispatch zero or
// more follow-up actions.
type Substate[S any] struct {
	sub   *S
	disp  Dispatcher
	phase phase
}

// NewSubstate constructs a Substate capability scoped to sub, backed by
// disp for the eventual dispatch phase. Store wiring code calls this once
// per reducer invocation; subsystem packages never construct one directly.
func NewSubstate[S any](sub *S, disp Dispatcher) *Substate[S] {
	return &Substate[S]{sub: sub, disp: disp}
}

// GetSubstateMut returns the mutable substate pointer. Panics if called
// after IntoDispatcher/IntoDispatcherAndState.
func (s *Substate[S]) GetSubstateMut() *S {
	if s.phase != phaseMutation {
		panic("action: GetSubstateMut called after the substate entered its dispatch phase")
	}
	return s.sub
}

// IntoDispatcher consumes the mutation capability and returns the
// Dispatcher for the dispatch phase.
func (s *Substate[S]) IntoDispatcher() Dispatcher {
	s.phase = phaseDispatch
	return s.disp
}

// IntoDispatcherAndState is like IntoDispatcher but additionally returns a
// read-only snapshot value v, supplied by the caller at reducer-invocation
// time (typically pre-extracted fields of the global State the reducer
// needs to decide what to dispatch). Go's structural typing means v is
// ordinary data, not a live aliased reference, which sidesteps the aliasing
// concerns the Rust original's borrow checker enforces.
func IntoDispatcherAndState[S, V any](s *Substate[S], v V) (Dispatcher, V) {
	s.phase = phaseDispatch
	return s.disp, v
}

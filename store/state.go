// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package store composes every subsystem substate into one State, and
// implements the Store: the single-threaded action queue and dispatch
// loop that gates each action on its enabling condition, invokes its
// reducer, and routes effects to services and events back into the queue.
package store

import (
	"github.com/luxfi/dispatch/p2p"
	"github.com/luxfi/dispatch/producer"
	"github.com/luxfi/dispatch/transition"
	"github.com/luxfi/dispatch/verify"
)

// State is the composite application state: one field per subsystem
// substate, each owned exclusively by its subsystem's reducers. Handlers
// reach a subsystem's substate only through the typed field below, never
// through a generic untyped lookup.
type State struct {
	P2P        *p2p.Substate
	Transition *transition.Substate
	Producer   *producer.Substate
	Verify     *verify.Substate
}

// NewState constructs a State with every subsystem starting from its own
// zero-value substate.
func NewState() *State {
	return &State{
		P2P:        p2p.NewSubstate(),
		Transition: transition.NewSubstate(),
		Producer:   producer.NewSubstate(),
		Verify:     verify.NewSubstate(),
	}
}

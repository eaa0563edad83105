// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package verify implements the SNARK block-verify request: a pure
// Init/Pending/Success/Error lifecycle (see package lifecycle) extended with
// a terminal Finish phase reached once the success callback has actually
// been invoked, since the callback dispatch is itself an observable step a
// caller may want to assert on. A finished request stays in the Substate.
package verify

import "github.com/luxfi/dispatch/lifecycle"

// Phase is one verify request's lifecycle: Init (just constructed) ->
// Pending (VerifyBlock issued) -> Success (verifier accepted the block) ->
// Finish (on_success callback invoked, request ready to be forgotten), or
// Pending -> Error (verifier rejected the block, on_error invoked, terminal).
type Phase uint8

const (
	Init Phase = iota
	Pending
	Success
	Finish
	Error
)

func (p Phase) Terminal() bool { return p == Finish || p == Error }
func (p Phase) Pending() bool  { return p == Pending }

func (p Phase) String() string {
	switch p {
	case Init:
		return "Init"
	case Pending:
		return "Pending"
	case Success:
		return "Success"
	case Finish:
		return "Finish"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

var _ lifecycle.Phase = Phase(0)

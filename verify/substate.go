// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/callback"
	"github.com/luxfi/dispatch/service"
)

// VerifyFailure is the payload an on_error callback receives: the hash of
// the block that failed verification and the verifier's rejection reason.
type VerifyFailure struct {
	BlockHash ids.ID
	Reason    string
}

// Request is one SNARK block-verify request, tracked from Init through to
// Finish or Error. Unlike the transition-frontier sync machine's single
// outstanding ledger call, many verify requests can be in flight
// concurrently — consensus, RPC and tests can each ask for an independent
// block to be verified — so requests are keyed by their own RequestID
// rather than the Substate carrying one bare "current" field.
type Request struct {
	ReqID     service.RequestID
	BlockHash ids.ID
	Block     []byte
	OnSuccess callback.Callback[ids.ID]
	OnError   callback.Callback[VerifyFailure]
	Phase     Phase
}

// Substate is the SNARK-verify subsystem's portion of the composite State.
type Substate struct {
	Requests map[service.RequestID]*Request
}

// NewSubstate constructs a substate with no requests tracked.
func NewSubstate() *Substate {
	return &Substate{Requests: make(map[service.RequestID]*Request)}
}

// Request looks up a tracked request by id.
func (s *Substate) Request(id service.RequestID) (*Request, bool) {
	r, ok := s.Requests[id]
	return r, ok
}

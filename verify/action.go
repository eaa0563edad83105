// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/action"
	"github.com/luxfi/dispatch/callback"
	"github.com/luxfi/dispatch/service"
)

var (
	KindInit    = action.Register("SnarkBlockVerifyInit", action.LevelDebug)
	KindSuccess = action.Register("SnarkBlockVerifySuccess", action.LevelDebug)
	KindError   = action.Register("SnarkBlockVerifyError", action.LevelWarn)
	KindFinish  = action.Register("SnarkBlockVerifyFinish", action.LevelDebug)
)

// InitAction starts a SNARK block-verify request carrying the caller's
// on_success/on_error continuations. Effectful: the effect handler issues
// the Verifier.VerifyBlock service call and, mirroring p2p's Init handler
// advancing a connection straight to its first pending sub-phase after
// issuing Connect, advances the request straight to Pending.
type InitAction struct {
	ReqID     service.RequestID
	BlockHash ids.ID
	Block     []byte
	OnSuccess callback.Callback[ids.ID]
	OnError   callback.Callback[VerifyFailure]
}

func (InitAction) Kind() action.Kind { return KindInit }
func (InitAction) Effectful() bool   { return true }

// IsInitEnabled rejects a request id already tracked.
func IsInitEnabled(sub *Substate, a InitAction) bool {
	_, exists := sub.Requests[a.ReqID]
	return !exists
}

func ReduceInit(sub *Substate, a InitAction) *Request {
	req := &Request{
		ReqID:     a.ReqID,
		BlockHash: a.BlockHash,
		Block:     a.Block,
		OnSuccess: a.OnSuccess,
		OnError:   a.OnError,
		Phase:     Init,
	}
	sub.Requests[a.ReqID] = req
	return req
}

// SuccessAction reports the verifier's positive verdict for ReqID.
type SuccessAction struct{ ReqID service.RequestID }

func (SuccessAction) Kind() action.Kind { return KindSuccess }
func (SuccessAction) Effectful() bool   { return true }

// IsSuccessEnabled requires a tracked request still Pending.
func IsSuccessEnabled(sub *Substate, a SuccessAction) bool {
	req, ok := sub.Requests[a.ReqID]
	return ok && req.Phase == Pending
}

func ReduceSuccess(sub *Substate, a SuccessAction) *Request {
	req := sub.Requests[a.ReqID]
	req.Phase = Success
	return req
}

// ErrorAction reports the verifier's rejection of ReqID.
type ErrorAction struct {
	ReqID  service.RequestID
	Reason string
}

func (ErrorAction) Kind() action.Kind { return KindError }
func (ErrorAction) Effectful() bool   { return true }

// IsErrorEnabled requires a tracked request still Pending.
func IsErrorEnabled(sub *Substate, a ErrorAction) bool {
	req, ok := sub.Requests[a.ReqID]
	return ok && req.Phase == Pending
}

func ReduceError(sub *Substate, a ErrorAction) *Request {
	req := sub.Requests[a.ReqID]
	req.Phase = Error
	return req
}

// FinishAction marks a Success request Finish, the step after its
// on_success callback has actually been dispatched. A request in terminal
// Error is left in place rather than finished: the failure is itself the
// terminal state scenario 4 asserts on.
type FinishAction struct{ ReqID service.RequestID }

func (FinishAction) Kind() action.Kind { return KindFinish }
func (FinishAction) Effectful() bool   { return false }

func IsFinishEnabled(sub *Substate, a FinishAction) bool {
	req, ok := sub.Requests[a.ReqID]
	return ok && req.Phase == Success
}

func ReduceFinish(sub *Substate, a FinishAction) {
	if req, ok := sub.Requests[a.ReqID]; ok {
		req.Phase = Finish
	}
}

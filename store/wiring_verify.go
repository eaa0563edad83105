// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"context"
	"time"

	"github.com/luxfi/dispatch/action"
	"github.com/luxfi/dispatch/event"
	"github.com/luxfi/dispatch/verify"
)

// wireVerify registers a handler for every SNARK block-verify action. The
// Success/Error handlers invoke the request's on_success/on_error
// callbacks directly, since the Handler signature is the only place in this
// subsystem that has the Dispatcher a Callback.Invoke needs.
func (s *Store) wireVerify() {
	s.events.RegisterTranslator(verify.KindVerifierEvent, s.translateVerifierEvent)

	s.RegisterEnabling(verify.KindInit, func(st *State, _ time.Time, raw action.Action) bool {
		return verify.IsInitEnabled(st.Verify, raw.(verify.InitAction))
	})
	s.RegisterEnabling(verify.KindSuccess, func(st *State, _ time.Time, raw action.Action) bool {
		return verify.IsSuccessEnabled(st.Verify, raw.(verify.SuccessAction))
	})
	s.RegisterEnabling(verify.KindError, func(st *State, _ time.Time, raw action.Action) bool {
		return verify.IsErrorEnabled(st.Verify, raw.(verify.ErrorAction))
	})
	s.RegisterEnabling(verify.KindFinish, func(st *State, _ time.Time, raw action.Action) bool {
		return verify.IsFinishEnabled(st.Verify, raw.(verify.FinishAction))
	})

	s.Register(verify.KindInit, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(verify.InitAction)
		if action.BugCondition(s.logger, verify.IsInitEnabled(st.Verify, a), "verify: init not enabled", "reqID", a.ReqID) {
			return
		}
		req := verify.ReduceInit(st.Verify, a)
		if s.services.Verifier == nil {
			return
		}
		if err := s.services.Verifier.VerifyBlock(context.Background(), a.ReqID, a.BlockHash, a.Block); err != nil && s.logger != nil {
			s.logger.Warn("store: verify block failed", "reqID", a.ReqID, "err", err)
			return
		}
		req.Phase = verify.Pending
	})

	s.Register(verify.KindSuccess, func(st *State, disp action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(verify.SuccessAction)
		if action.BugCondition(s.logger, verify.IsSuccessEnabled(st.Verify, a), "verify: success not enabled", "reqID", a.ReqID) {
			return
		}
		req := verify.ReduceSuccess(st.Verify, a)
		req.OnSuccess.Invoke(disp, req.BlockHash)
		disp.Dispatch(verify.FinishAction{ReqID: a.ReqID})
	})

	s.Register(verify.KindError, func(st *State, disp action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(verify.ErrorAction)
		if action.BugCondition(s.logger, verify.IsErrorEnabled(st.Verify, a), "verify: error not enabled", "reqID", a.ReqID) {
			return
		}
		req := verify.ReduceError(st.Verify, a)
		req.OnError.Invoke(disp, verify.VerifyFailure{BlockHash: req.BlockHash, Reason: a.Reason})
	})

	s.Register(verify.KindFinish, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(verify.FinishAction)
		if action.BugCondition(s.logger, verify.IsFinishEnabled(st.Verify, a), "verify: finish not enabled", "reqID", a.ReqID) {
			return
		}
		verify.ReduceFinish(st.Verify, a)
	})
}

// translateVerifierEvent looks the replying request straight up by ReqID
// (no extra correlation state is needed: unlike the transition-frontier
// sync machine, several verify requests can be outstanding at once).
func (s *Store) translateVerifierEvent(e event.Event) action.Action {
	ev, ok := e.(verify.VerifierEvent)
	if !ok {
		return nil
	}
	if _, tracked := s.state.Verify.Request(ev.ReqID); !tracked {
		return nil
	}
	if ev.OK() {
		return verify.SuccessAction{ReqID: ev.ReqID}
	}
	return verify.ErrorAction{ReqID: ev.ReqID, Reason: ev.Err}
}

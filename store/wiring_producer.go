// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"context"
	"time"

	"github.com/luxfi/dispatch/action"
	"github.com/luxfi/dispatch/producer"
)

// wireProducer registers a handler for every block-producer and VRF
// evaluator action. The VRF Begin/Continue handlers issue the next slot's
// EvaluateVRF call themselves, since the reducer is what knows whether the
// process just finished (no more slots to ask about) or is still walking
// the epoch.
func (s *Store) wireProducer() {
	s.RegisterEnabling(producer.KindBeginVRFEvaluation, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsBeginVRFEvaluationEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindContinueVRFEvaluation, func(st *State, _ time.Time, raw action.Action) bool {
		return producer.IsContinueVRFEvaluationEnabled(st.Producer, raw.(producer.ContinueVRFEvaluationAction))
	})
	s.RegisterEnabling(producer.KindInterruptVRFEvaluation, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsInterruptVRFEvaluationEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindWonSlot, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsWonSlotEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindSlotArrived, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsSlotArrivedEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindDiffCreatePending, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsDiffCreatePendingEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindDiffCreateSuccess, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsDiffCreateSuccessEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindDiffCreateError, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsDiffCreateErrorEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindProvePending, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsProvePendingEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindProveSuccess, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsProveSuccessEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindProveError, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsProveErrorEnabled(st.Producer)
	})
	s.RegisterEnabling(producer.KindInjected, func(st *State, _ time.Time, _ action.Action) bool {
		return producer.IsInjectedEnabled(st.Producer)
	})

	s.Register(producer.KindBeginVRFEvaluation, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(producer.BeginVRFEvaluationAction)
		if action.BugCondition(s.logger, producer.IsBeginVRFEvaluationEnabled(st.Producer), "producer: begin vrf evaluation not enabled") {
			return
		}
		producer.ReduceBeginVRFEvaluation(st.Producer, a)
		s.callEvaluateVRF(st.Producer.VRF, a.StartSlot)
	})

	s.Register(producer.KindContinueVRFEvaluation, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(producer.ContinueVRFEvaluationAction)
		if action.BugCondition(s.logger, producer.IsContinueVRFEvaluationEnabled(st.Producer, a), "producer: continue vrf evaluation not enabled", "slot", a.Slot) {
			return
		}
		producer.ReduceContinueVRFEvaluation(st.Producer, a)
		if !st.Producer.VRF.Phase().Terminal() {
			s.callEvaluateVRF(st.Producer.VRF, st.Producer.VRF.Cursor())
		}
	})

	s.Register(producer.KindInterruptVRFEvaluation, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, producer.IsInterruptVRFEvaluationEnabled(st.Producer), "producer: interrupt vrf evaluation not enabled") {
			return
		}
		producer.ReduceInterruptVRFEvaluation(st.Producer, raw.(producer.InterruptVRFEvaluationAction))
	})

	s.Register(producer.KindWonSlot, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(producer.WonSlotAction)
		if action.BugCondition(s.logger, producer.IsWonSlotEnabled(st.Producer), "producer: won slot not enabled") {
			return
		}
		producer.ReduceWonSlot(st.Producer, a)
	})

	s.Register(producer.KindSlotArrived, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, producer.IsSlotArrivedEnabled(st.Producer), "producer: slot arrived not enabled") {
			return
		}
		producer.ReduceSlotArrived(st.Producer, raw.(producer.SlotArrivedAction))
	})

	s.Register(producer.KindDiffCreatePending, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, producer.IsDiffCreatePendingEnabled(st.Producer), "producer: diff create pending not enabled") {
			return
		}
		producer.ReduceDiffCreatePending(st.Producer, raw.(producer.DiffCreatePendingAction))
	})

	s.Register(producer.KindDiffCreateSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(producer.DiffCreateSuccessAction)
		if action.BugCondition(s.logger, producer.IsDiffCreateSuccessEnabled(st.Producer), "producer: diff create success not enabled") {
			return
		}
		producer.ReduceDiffCreateSuccess(st.Producer, a)
		if s.services.Producer != nil {
			req := s.NextRequestID()
			if err := s.services.Producer.ProveBlock(context.Background(), req, st.Producer.Diff); err != nil && s.logger != nil {
				s.logger.Warn("store: prove block failed", "err", err)
			}
		}
	})
	s.Register(producer.KindDiffCreateError, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, producer.IsDiffCreateErrorEnabled(st.Producer), "producer: diff create error not enabled") {
			return
		}
		producer.ReduceDiffCreateError(st.Producer, raw.(producer.DiffCreateErrorAction))
	})

	s.Register(producer.KindProvePending, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, producer.IsProvePendingEnabled(st.Producer), "producer: prove pending not enabled") {
			return
		}
		producer.ReduceProvePending(st.Producer, raw.(producer.ProvePendingAction))
	})
	s.Register(producer.KindProveSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(producer.ProveSuccessAction)
		if action.BugCondition(s.logger, producer.IsProveSuccessEnabled(st.Producer), "producer: prove success not enabled") {
			return
		}
		producer.ReduceProveSuccess(st.Producer, a)
	})
	s.Register(producer.KindProveError, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, producer.IsProveErrorEnabled(st.Producer), "producer: prove error not enabled") {
			return
		}
		producer.ReduceProveError(st.Producer, raw.(producer.ProveErrorAction))
	})

	s.Register(producer.KindInjected, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, producer.IsInjectedEnabled(st.Producer), "producer: injected not enabled") {
			return
		}
		producer.ReduceInjected(st.Producer, raw.(producer.InjectedAction))
	})
}

// callEvaluateVRF issues the EvaluateVRF service call for slot against the
// epoch seed and node the evaluation was started with.
func (s *Store) callEvaluateVRF(vrf *producer.VRFEvaluation, slot uint64) {
	if s.services.Producer == nil {
		return
	}
	req := s.NextRequestID()
	if err := s.services.Producer.EvaluateVRF(context.Background(), req, vrf.EpochSeed(), slot, vrf.NodeID()); err != nil && s.logger != nil {
		s.logger.Warn("store: evaluate vrf failed", "slot", slot, "err", err)
	}
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"context"
	"time"

	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/action"
	"github.com/luxfi/dispatch/event"
	"github.com/luxfi/dispatch/transition"
)

// wireTransition registers a handler for every transition-frontier sync
// action. The ledger-facing phases issue their service calls from the
// handler of the action that entered them (BestTipSelected for the staking
// ledger sync, the previous phase's Success for the rest), since that is
// the point at which the reducer knows the next phase is now Pending and
// has the artifact the call needs. The Error handlers only run the
// reducer: a recoverable error returns the machine to the same Pending
// phase and bumps Attempt, but issues no new ledger call.
func (s *Store) wireTransition() {
	s.events.RegisterTranslator(transition.KindLedgerEvent, s.translateLedgerEvent)

	s.RegisterEnabling(transition.KindBestTipVote, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsBestTipVoteEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindBestTipSelected, func(st *State, _ time.Time, raw action.Action) bool {
		return transition.IsBestTipSelectedEnabled(st.Transition, raw.(transition.BestTipSelectedAction))
	})
	s.RegisterEnabling(transition.KindStakingLedgerSyncSuccess, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsStakingLedgerSyncSuccessEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindStakingLedgerSyncError, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsStakingLedgerSyncErrorEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindNextEpochLedgerSyncSuccess, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsNextEpochLedgerSyncSuccessEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindNextEpochLedgerSyncError, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsNextEpochLedgerSyncErrorEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindRootLedgerSyncSuccess, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsRootLedgerSyncSuccessEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindRootLedgerSyncError, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsRootLedgerSyncErrorEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindBlocksSyncSuccess, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsBlocksSyncSuccessEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindBlocksSyncError, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsBlocksSyncErrorEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindCommitSuccess, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsCommitSuccessEnabled(st.Transition)
	})
	s.RegisterEnabling(transition.KindCommitError, func(st *State, _ time.Time, _ action.Action) bool {
		return transition.IsCommitErrorEnabled(st.Transition)
	})

	s.Register(transition.KindBestTipVote, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(transition.BestTipVoteAction)
		if action.BugCondition(s.logger, transition.IsBestTipVoteEnabled(st.Transition), "transition: best tip vote not enabled") {
			return
		}
		transition.ReduceBestTipVote(st.Transition, a)
	})

	s.Register(transition.KindBestTipSelected, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(transition.BestTipSelectedAction)
		if action.BugCondition(s.logger, transition.IsBestTipSelectedEnabled(st.Transition, a), "transition: best tip selected not enabled", "tip", a.Tip.String()) {
			return
		}
		transition.ReduceBestTipSelected(st.Transition, a)
		s.callLedgerMerkleProof(a.Tip)
	})

	s.Register(transition.KindStakingLedgerSyncSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(transition.StakingLedgerSyncSuccessAction)
		if action.BugCondition(s.logger, transition.IsStakingLedgerSyncSuccessEnabled(st.Transition), "transition: staking ledger sync success not enabled") {
			return
		}
		transition.ReduceStakingLedgerSyncSuccess(st.Transition, a)
		s.callLedgerMerkleProof(a.Root)
	})
	s.Register(transition.KindStakingLedgerSyncError, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, transition.IsStakingLedgerSyncErrorEnabled(st.Transition), "transition: staking ledger sync error not enabled") {
			return
		}
		transition.ReduceStakingLedgerSyncError(st.Transition, raw.(transition.StakingLedgerSyncErrorAction))
	})

	s.Register(transition.KindNextEpochLedgerSyncSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(transition.NextEpochLedgerSyncSuccessAction)
		if action.BugCondition(s.logger, transition.IsNextEpochLedgerSyncSuccessEnabled(st.Transition), "transition: next-epoch ledger sync success not enabled") {
			return
		}
		transition.ReduceNextEpochLedgerSyncSuccess(st.Transition, a)
		s.callLedgerMerkleProof(a.Root)
	})
	s.Register(transition.KindNextEpochLedgerSyncError, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, transition.IsNextEpochLedgerSyncErrorEnabled(st.Transition), "transition: next-epoch ledger sync error not enabled") {
			return
		}
		transition.ReduceNextEpochLedgerSyncError(st.Transition, raw.(transition.NextEpochLedgerSyncErrorAction))
	})

	s.Register(transition.KindRootLedgerSyncSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(transition.RootLedgerSyncSuccessAction)
		if action.BugCondition(s.logger, transition.IsRootLedgerSyncSuccessEnabled(st.Transition), "transition: root ledger sync success not enabled") {
			return
		}
		transition.ReduceRootLedgerSyncSuccess(st.Transition, a)
		if s.services.Ledger != nil {
			req := s.NextRequestID()
			st.Transition.PendingReq = req
			if err := s.services.Ledger.ApplyBlock(context.Background(), req, st.Transition.BestTip, nil); err != nil && s.logger != nil {
				s.logger.Warn("store: apply block failed", "err", err)
			}
		}
	})
	s.Register(transition.KindRootLedgerSyncError, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, transition.IsRootLedgerSyncErrorEnabled(st.Transition), "transition: root ledger sync error not enabled") {
			return
		}
		transition.ReduceRootLedgerSyncError(st.Transition, raw.(transition.RootLedgerSyncErrorAction))
	})

	s.Register(transition.KindBlocksSyncSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		a := raw.(transition.BlocksSyncSuccessAction)
		if action.BugCondition(s.logger, transition.IsBlocksSyncSuccessEnabled(st.Transition), "transition: blocks sync success not enabled") {
			return
		}
		transition.ReduceBlocksSyncSuccess(st.Transition, a)
		if s.services.Ledger != nil {
			req := s.NextRequestID()
			st.Transition.PendingReq = req
			if err := s.services.Ledger.CommitStagedLedger(context.Background(), req, st.Transition.BestTip); err != nil && s.logger != nil {
				s.logger.Warn("store: commit staged ledger failed", "err", err)
			}
		}
	})
	s.Register(transition.KindBlocksSyncError, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, transition.IsBlocksSyncErrorEnabled(st.Transition), "transition: blocks sync error not enabled") {
			return
		}
		transition.ReduceBlocksSyncError(st.Transition, raw.(transition.BlocksSyncErrorAction))
	})

	s.Register(transition.KindCommitSuccess, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, transition.IsCommitSuccessEnabled(st.Transition), "transition: commit success not enabled") {
			return
		}
		transition.ReduceCommitSuccess(st.Transition, raw.(transition.CommitSuccessAction))
	})
	s.Register(transition.KindCommitError, func(st *State, _ action.Dispatcher, _ time.Time, raw action.Action) {
		if action.BugCondition(s.logger, transition.IsCommitErrorEnabled(st.Transition), "transition: commit error not enabled") {
			return
		}
		transition.ReduceCommitError(st.Transition, raw.(transition.CommitErrorAction))
	})
}

// callLedgerMerkleProof asks the ledger service for the merkle proof
// anchoring root, the request each ledger-sync phase issues against the
// artifact the previous phase (or the chosen best tip) just produced.
func (s *Store) callLedgerMerkleProof(root ids.ID) {
	if s.services.Ledger == nil {
		return
	}
	req := s.NextRequestID()
	s.state.Transition.PendingReq = req
	if err := s.services.Ledger.GetMerkleProof(context.Background(), req, root, ids.Empty); err != nil && s.logger != nil {
		s.logger.Warn("store: get merkle proof failed", "root", root.String(), "err", err)
	}
}

// translateLedgerEvent is the transition.KindLedgerEvent translator: it
// drops a reply whose ReqID no longer matches the Substate's PendingReq (a
// stale completion from a call the sync machine has since moved past, per
// spec.md §4.4's cancellation guidance) and otherwise reads the Substate's
// current Phase to decide which phase's Success or Error action the reply
// completes.
func (s *Store) translateLedgerEvent(e event.Event) action.Action {
	ev, ok := e.(transition.LedgerEvent)
	if !ok {
		return nil
	}
	sub := s.state.Transition
	if ev.ReqID != sub.PendingReq {
		return nil
	}
	switch sub.Phase {
	case transition.StakingLedgerSyncPending:
		if ev.OK() {
			return transition.StakingLedgerSyncSuccessAction{Root: ev.Root}
		}
		return transition.StakingLedgerSyncErrorAction{Recoverable: ev.Recoverable}
	case transition.NextEpochLedgerSyncPending:
		if ev.OK() {
			return transition.NextEpochLedgerSyncSuccessAction{Root: ev.Root}
		}
		return transition.NextEpochLedgerSyncErrorAction{Recoverable: ev.Recoverable}
	case transition.RootLedgerSyncPending:
		if ev.OK() {
			return transition.RootLedgerSyncSuccessAction{Root: ev.Root}
		}
		return transition.RootLedgerSyncErrorAction{Recoverable: ev.Recoverable}
	case transition.BlocksSyncPending:
		if ev.OK() {
			return transition.BlocksSyncSuccessAction{Count: ev.Count}
		}
		return transition.BlocksSyncErrorAction{Recoverable: ev.Recoverable}
	case transition.CommitPending:
		if ev.OK() {
			return transition.CommitSuccessAction{}
		}
		return transition.CommitErrorAction{}
	default:
		return nil
	}
}

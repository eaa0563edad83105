// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package transition

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/action"
)

var (
	KindBestTipVote                = action.Register("TransitionBestTipVote", action.LevelDebug)
	KindBestTipSelected            = action.Register("TransitionBestTipSelected", action.LevelDebug)
	KindStakingLedgerSyncSuccess   = action.Register("TransitionStakingLedgerSyncSuccess", action.LevelDebug)
	KindStakingLedgerSyncError     = action.Register("TransitionStakingLedgerSyncError", action.LevelWarn)
	KindNextEpochLedgerSyncSuccess = action.Register("TransitionNextEpochLedgerSyncSuccess", action.LevelDebug)
	KindNextEpochLedgerSyncError   = action.Register("TransitionNextEpochLedgerSyncError", action.LevelWarn)
	KindRootLedgerSyncSuccess      = action.Register("TransitionRootLedgerSyncSuccess", action.LevelDebug)
	KindRootLedgerSyncError        = action.Register("TransitionRootLedgerSyncError", action.LevelWarn)
	KindBlocksSyncSuccess          = action.Register("TransitionBlocksSyncSuccess", action.LevelDebug)
	KindBlocksSyncError            = action.Register("TransitionBlocksSyncError", action.LevelWarn)
	KindCommitSuccess              = action.Register("TransitionCommitSuccess", action.LevelDebug)
	KindCommitError                = action.Register("TransitionCommitError", action.LevelWarn)
)

// BestTipVoteAction records one peer's claimed chain tip while the machine
// is still Idle, searching for a best-tip candidate to sync toward.
type BestTipVoteAction struct {
	Alpha int
	Peer  ids.NodeID
	Tip   ids.ID
}

func (BestTipVoteAction) Kind() action.Kind { return KindBestTipVote }
func (BestTipVoteAction) Effectful() bool   { return false }

// IsBestTipVoteEnabled only accepts votes while still Idle; once a best tip
// has been chosen, further votes are ignored until a failure resets the
// machine.
func IsBestTipVoteEnabled(sub *Substate) bool { return sub.Phase == Idle }

func ReduceBestTipVote(sub *Substate, a BestTipVoteAction) {
	if sub.Poll == nil {
		sub.Poll = NewBestTipPoll(a.Alpha)
	}
	sub.Poll.Vote(a.Peer, a.Tip)
}

// BestTipSelectedAction fires once the best-tip poll has reached quorum; its
// reducer commits the chosen tip and starts the staking ledger sync phase
// (effectful: the effect handler issues the corresponding Ledger service
// call).
type BestTipSelectedAction struct {
	Tip ids.ID
}

func (BestTipSelectedAction) Kind() action.Kind { return KindBestTipSelected }
func (BestTipSelectedAction) Effectful() bool   { return true }

// IsBestTipSelectedEnabled requires the poll to have actually reached
// quorum on a, and the machine to still be Idle.
func IsBestTipSelectedEnabled(sub *Substate, a BestTipSelectedAction) bool {
	if sub.Phase != Idle || sub.Poll == nil {
		return false
	}
	tip, ok := sub.Poll.Result()
	return ok && tip == a.Tip
}

func ReduceBestTipSelected(sub *Substate, a BestTipSelectedAction) {
	sub.BestTip = a.Tip
	sub.Poll = nil
	sub.Phase = StakingLedgerSyncPending
}

// advance moves sub from a just-succeeded phase to the Pending phase of the
// step that follows. A phase with no entry in nextPending is left as it is;
// Synced is set by ReduceCommitSuccess, not here.
func advance(sub *Substate) {
	if next, ok := nextPending[sub.Phase]; ok {
		sub.Phase = next
		sub.Attempt = 0
	}
}

// StakingLedgerSyncSuccessAction records the synced staking ledger root.
type StakingLedgerSyncSuccessAction struct{ Root ids.ID }

func (StakingLedgerSyncSuccessAction) Kind() action.Kind { return KindStakingLedgerSyncSuccess }
func (StakingLedgerSyncSuccessAction) Effectful() bool   { return true }

func IsStakingLedgerSyncSuccessEnabled(sub *Substate) bool {
	return sub.Phase == StakingLedgerSyncPending
}

func ReduceStakingLedgerSyncSuccess(sub *Substate, a StakingLedgerSyncSuccessAction) {
	sub.Artifacts.StakingLedgerRoot = a.Root
	sub.Phase = StakingLedgerSyncSuccess
	advance(sub)
}

// StakingLedgerSyncErrorAction reports a failed staking ledger sync attempt.
// Recoverable failures (timeouts, a single unresponsive peer) retry the same
// phase; unrecoverable ones (the ledger is permanently unobtainable from any
// peer) fall back to Idle so a new best-tip candidate can be chosen.
type StakingLedgerSyncErrorAction struct{ Recoverable bool }

func (StakingLedgerSyncErrorAction) Kind() action.Kind { return KindStakingLedgerSyncError }
func (StakingLedgerSyncErrorAction) Effectful() bool   { return false }

func IsStakingLedgerSyncErrorEnabled(sub *Substate) bool {
	return sub.Phase == StakingLedgerSyncPending
}

func ReduceStakingLedgerSyncError(sub *Substate, a StakingLedgerSyncErrorAction) {
	reduceError(sub, a.Recoverable, StakingLedgerSyncPending)
}

// NextEpochLedgerSyncSuccessAction records the synced next-epoch ledger
// root.
type NextEpochLedgerSyncSuccessAction struct{ Root ids.ID }

func (NextEpochLedgerSyncSuccessAction) Kind() action.Kind { return KindNextEpochLedgerSyncSuccess }
func (NextEpochLedgerSyncSuccessAction) Effectful() bool   { return true }

func IsNextEpochLedgerSyncSuccessEnabled(sub *Substate) bool {
	return sub.Phase == NextEpochLedgerSyncPending
}

func ReduceNextEpochLedgerSyncSuccess(sub *Substate, a NextEpochLedgerSyncSuccessAction) {
	sub.Artifacts.NextEpochLedgerRoot = a.Root
	sub.Phase = NextEpochLedgerSyncSuccess
	advance(sub)
}

type NextEpochLedgerSyncErrorAction struct{ Recoverable bool }

func (NextEpochLedgerSyncErrorAction) Kind() action.Kind { return KindNextEpochLedgerSyncError }
func (NextEpochLedgerSyncErrorAction) Effectful() bool   { return false }

func IsNextEpochLedgerSyncErrorEnabled(sub *Substate) bool {
	return sub.Phase == NextEpochLedgerSyncPending
}

func ReduceNextEpochLedgerSyncError(sub *Substate, a NextEpochLedgerSyncErrorAction) {
	reduceError(sub, a.Recoverable, NextEpochLedgerSyncPending)
}

// RootLedgerSyncSuccessAction records the synced root ledger root.
type RootLedgerSyncSuccessAction struct{ Root ids.ID }

func (RootLedgerSyncSuccessAction) Kind() action.Kind { return KindRootLedgerSyncSuccess }
func (RootLedgerSyncSuccessAction) Effectful() bool   { return true }

func IsRootLedgerSyncSuccessEnabled(sub *Substate) bool {
	return sub.Phase == RootLedgerSyncPending
}

func ReduceRootLedgerSyncSuccess(sub *Substate, a RootLedgerSyncSuccessAction) {
	sub.Artifacts.RootLedgerRoot = a.Root
	sub.Phase = RootLedgerSyncSuccess
	advance(sub)
}

type RootLedgerSyncErrorAction struct{ Recoverable bool }

func (RootLedgerSyncErrorAction) Kind() action.Kind { return KindRootLedgerSyncError }
func (RootLedgerSyncErrorAction) Effectful() bool   { return false }

func IsRootLedgerSyncErrorEnabled(sub *Substate) bool {
	return sub.Phase == RootLedgerSyncPending
}

func ReduceRootLedgerSyncError(sub *Substate, a RootLedgerSyncErrorAction) {
	reduceError(sub, a.Recoverable, RootLedgerSyncPending)
}

// BlocksSyncSuccessAction records how many blocks were fetched and applied
// between the root ledger and the chosen best tip.
type BlocksSyncSuccessAction struct{ Count uint64 }

func (BlocksSyncSuccessAction) Kind() action.Kind { return KindBlocksSyncSuccess }
func (BlocksSyncSuccessAction) Effectful() bool   { return true }

func IsBlocksSyncSuccessEnabled(sub *Substate) bool {
	return sub.Phase == BlocksSyncPending
}

func ReduceBlocksSyncSuccess(sub *Substate, a BlocksSyncSuccessAction) {
	sub.Artifacts.BlocksSynced = a.Count
	sub.Phase = BlocksSyncSuccess
	advance(sub)
}

type BlocksSyncErrorAction struct{ Recoverable bool }

func (BlocksSyncErrorAction) Kind() action.Kind { return KindBlocksSyncError }
func (BlocksSyncErrorAction) Effectful() bool   { return false }

func IsBlocksSyncErrorEnabled(sub *Substate) bool {
	return sub.Phase == BlocksSyncPending
}

func ReduceBlocksSyncError(sub *Substate, a BlocksSyncErrorAction) {
	reduceError(sub, a.Recoverable, BlocksSyncPending)
}

// CommitSuccessAction finalizes the sync: the staged and snarked ledgers at
// BestTip are committed and the transition frontier now considers BestTip
// its root.
type CommitSuccessAction struct{}

func (CommitSuccessAction) Kind() action.Kind { return KindCommitSuccess }
func (CommitSuccessAction) Effectful() bool   { return false }

func IsCommitSuccessEnabled(sub *Substate) bool { return sub.Phase == CommitPending }

func ReduceCommitSuccess(sub *Substate, _ CommitSuccessAction) {
	sub.Phase = Synced
}

// CommitErrorAction reports a failed commit. Commit failures are always
// treated as unrecoverable: the staged/snarked ledgers at BestTip are
// re-derived from scratch by starting over rather than retried in place.
type CommitErrorAction struct{}

func (CommitErrorAction) Kind() action.Kind { return KindCommitError }
func (CommitErrorAction) Effectful() bool   { return false }

func IsCommitErrorEnabled(sub *Substate) bool { return sub.Phase == CommitPending }

func ReduceCommitError(sub *Substate, _ CommitErrorAction) {
	sub.Phase = Error
	sub.reset()
}

// reduceError applies the shared recoverable/unrecoverable fallback policy:
// recoverable failures retry the same pending phase and bump Attempt;
// unrecoverable ones drop all the way back to Idle.
func reduceError(sub *Substate, recoverable bool, pendingPhase SyncPhase) {
	if recoverable {
		sub.Phase = pendingPhase
		sub.Attempt++
		return
	}
	sub.Phase = Error
	sub.reset()
}

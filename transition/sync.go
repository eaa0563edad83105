// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package transition implements the transition-frontier sync machine: the
// sequence that takes the node from "has a best-tip candidate" to "has a
// fully validated transition frontier rooted there". The five phases run in
// strict order, each Success capturing the artifact the next phase needs;
// a recoverable failure retries the current phase, an unrecoverable one
// falls back to Idle so a higher-level policy can pick a different best-tip
// candidate.
package transition

import "github.com/luxfi/dispatch/lifecycle"

// SyncPhase walks Idle -> StakingLedgerSync{Pending,Success} ->
// NextEpochLedgerSync{Pending,Success} -> RootLedgerSync{Pending,Success} ->
// BlocksSync{Pending,Success} -> CommitPending -> Synced, with Error as the
// shared terminal failure phase every step can fall back through.
type SyncPhase uint8

const (
	Idle SyncPhase = iota
	StakingLedgerSyncPending
	StakingLedgerSyncSuccess
	NextEpochLedgerSyncPending
	NextEpochLedgerSyncSuccess
	RootLedgerSyncPending
	RootLedgerSyncSuccess
	BlocksSyncPending
	BlocksSyncSuccess
	CommitPending
	Synced
	Error
)

func (p SyncPhase) Terminal() bool { return p == Synced || p == Error }
func (p SyncPhase) Pending() bool {
	switch p {
	case StakingLedgerSyncPending, NextEpochLedgerSyncPending, RootLedgerSyncPending, BlocksSyncPending, CommitPending:
		return true
	default:
		return false
	}
}

func (p SyncPhase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case StakingLedgerSyncPending:
		return "StakingLedgerSyncPending"
	case StakingLedgerSyncSuccess:
		return "StakingLedgerSyncSuccess"
	case NextEpochLedgerSyncPending:
		return "NextEpochLedgerSyncPending"
	case NextEpochLedgerSyncSuccess:
		return "NextEpochLedgerSyncSuccess"
	case RootLedgerSyncPending:
		return "RootLedgerSyncPending"
	case RootLedgerSyncSuccess:
		return "RootLedgerSyncSuccess"
	case BlocksSyncPending:
		return "BlocksSyncPending"
	case BlocksSyncSuccess:
		return "BlocksSyncSuccess"
	case CommitPending:
		return "CommitPending"
	case Synced:
		return "Synced"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

var _ lifecycle.Phase = SyncPhase(0)

// nextPending maps a just-succeeded phase to the Pending phase that follows
// it. advance uses this so the phase order lives in exactly one place.
var nextPending = map[SyncPhase]SyncPhase{
	Idle:                       StakingLedgerSyncPending,
	StakingLedgerSyncSuccess:   NextEpochLedgerSyncPending,
	NextEpochLedgerSyncSuccess: RootLedgerSyncPending,
	RootLedgerSyncSuccess:      BlocksSyncPending,
	BlocksSyncSuccess:          CommitPending,
}

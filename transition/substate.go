// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package transition

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/service"
)

// Artifacts accumulates the per-phase outputs the sync machine has produced
// so far. Each field is populated by the corresponding phase's Success
// reducer and read by the next phase's enabling condition / effect.
type Artifacts struct {
	StakingLedgerRoot   ids.ID
	NextEpochLedgerRoot ids.ID
	RootLedgerRoot      ids.ID
	BlocksSynced        uint64
}

// Substate is the transition-frontier subsystem's portion of the composite
// State: the current phase, the best-tip candidate being synced toward, the
// in-flight candidate poll (before a best tip is even chosen), the
// accumulated artifacts, and a per-phase retry counter.
type Substate struct {
	Phase     SyncPhase
	BestTip   ids.ID
	Poll      *BestTipPoll
	Artifacts Artifacts
	Attempt   int
	// PendingReq correlates the single outstanding ledger call (GetMerkleProof,
	// ApplyBlock or CommitStagedLedger — at most one is ever in flight at
	// once) with its eventual LedgerEvent reply, so a stale reply from a call
	// the machine has since moved past can be told apart from a current one.
	PendingReq service.RequestID
}

// NewSubstate constructs a substate sitting Idle with no best tip chosen and
// no poll in flight.
func NewSubstate() *Substate {
	return &Substate{Phase: Idle}
}

// reset returns the machine to Idle, clearing the best tip, poll and
// artifacts accumulated so far: the state a fresh best-tip candidate search
// must start from.
func (s *Substate) reset() {
	s.Phase = Idle
	s.BestTip = ids.Empty
	s.Poll = nil
	s.Artifacts = Artifacts{}
	s.Attempt = 0
	s.PendingReq = 0
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package producer implements the block-producer hybrid machine: the
// domain states a node's slot-production attempt walks through (Idle ->
// WonSlot -> WonSlotWait -> ... -> Produced -> Injected), interleaved with
// two pure-lifecycle sub-operations for diff creation and block proving,
// plus the VRF evaluator that decides which slots a node has won in the
// first place.
package producer

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/lifecycle"
)

// DelegatorEntry is one row of the delegator table the VRF evaluator walks:
// a staking node and its stake weight at the evaluated epoch.
type DelegatorEntry struct {
	NodeID string
	Stake  uint64
}

// VRFEvaluation is the iterative process that walks an epoch's delegator
// table one slot at a time, deciding at each slot whether this node's VRF
// output wins it. It never occupies the reducer thread for more than one
// slot per Continue action, however long the delegator table or slot range
// is: this is the iterative-process rewrite of what would otherwise be a
// long-running coroutine walking every slot of an epoch.
//
// The embedded Iterative's cursor tracks the next slot to evaluate;
// lastCompleted separately tracks the slot most recently finished, since an
// Interrupt must report exactly that slot rather than the one only begun.
type VRFEvaluation struct {
	lifecycle.Iterative[uint64, []uint64]
	epochSeed     []byte
	nodeID        ids.NodeID
	endSlot       uint64
	wonSlots      []uint64
	lastCompleted *uint64
}

// NewVRFEvaluation starts evaluation at startSlot, walking up to (but not
// including) endSlot.
func NewVRFEvaluation(epochSeed []byte, nodeID ids.NodeID, startSlot, endSlot uint64) *VRFEvaluation {
	return &VRFEvaluation{
		Iterative: lifecycle.NewIterative[uint64, []uint64](startSlot),
		epochSeed: epochSeed,
		nodeID:    nodeID,
		endSlot:   endSlot,
	}
}

// EpochSeed is the randomness anchor the evaluation was started with, needed
// again for each slot's EvaluateVRF service call.
func (e *VRFEvaluation) EpochSeed() []byte { return e.epochSeed }

// NodeID is the node whose VRF output is being evaluated.
func (e *VRFEvaluation) NodeID() ids.NodeID { return e.nodeID }

// LatestEvaluatedSlot is the slot of the last completed Continue step, or 0
// if none has completed yet.
func (e *VRFEvaluation) LatestEvaluatedSlot() uint64 {
	if e.lastCompleted == nil {
		return 0
	}
	return *e.lastCompleted
}

// Step records slot's evaluation outcome. If slot was the last slot in
// range the process finishes; otherwise it continues with the cursor
// advanced to slot+1, the next slot to evaluate.
func (e *VRFEvaluation) Step(slot uint64, won bool) {
	if won {
		e.wonSlots = append(e.wonSlots, slot)
	}
	e.lastCompleted = &slot
	if slot+1 >= e.endSlot {
		e.Finish(e.wonSlots)
		return
	}
	e.Advance(slot + 1)
}

// WonSlots returns the slots won so far, whether or not the process has
// finished: a subsequent Interrupt must not discard slots already won.
func (e *VRFEvaluation) WonSlots() []uint64 { return e.wonSlots }

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package producer

// Substate is the block-producer subsystem's portion of the composite
// State: the current VRF evaluation (if one is running), the slot-
// production phase, and the artifacts each sub-operation produces.
type Substate struct {
	VRF *VRFEvaluation

	Phase Phase
	Slot  uint64
	Diff  []byte
	Proof []byte
	Block []byte
}

// NewSubstate constructs a substate sitting Idle with no VRF evaluation in
// flight.
func NewSubstate() *Substate {
	return &Substate{Phase: Idle}
}

// reset returns the production attempt to Idle, clearing every artifact:
// called when a won slot starts a new attempt, and after an unrecoverable
// diff-creation or proving failure. An injected block is not reset; the
// producer stays Injected until the next won slot.
func (s *Substate) reset() {
	s.Phase = Idle
	s.Slot = 0
	s.Diff = nil
	s.Proof = nil
	s.Block = nil
}

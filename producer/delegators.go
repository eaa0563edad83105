// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package producer

import (
	"context"
	"sort"

	"github.com/luxfi/ids"
	"github.com/luxfi/validators"
)

// ValidatorState is the subset of validators.State the VRF evaluator needs:
// the stake-weighted delegator table for the epoch being evaluated.
type ValidatorState interface {
	GetValidatorSet(ctx context.Context, height uint64, subnetID ids.ID) (map[ids.NodeID]*validators.GetValidatorOutput, error)
}

// LoadDelegatorTable fetches the delegator table for subnetID at height and
// flattens it into the []DelegatorEntry shape the VRF evaluator walks,
// ordered by node id so the evaluation order is deterministic across nodes
// that queried the same height.
func LoadDelegatorTable(ctx context.Context, state ValidatorState, height uint64, subnetID ids.ID) ([]DelegatorEntry, error) {
	set, err := state.GetValidatorSet(ctx, height, subnetID)
	if err != nil {
		return nil, err
	}
	entries := make([]DelegatorEntry, 0, len(set))
	for nodeID, v := range set {
		entries = append(entries, DelegatorEntry{NodeID: nodeID.String(), Stake: v.Weight})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].NodeID < entries[j].NodeID })
	return entries, nil
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package producer

import (
	"context"
	"testing"

	"github.com/luxfi/ids"
	"github.com/luxfi/validators"
	"github.com/stretchr/testify/require"
)

type fakeValidatorState struct {
	set map[ids.NodeID]*validators.GetValidatorOutput
}

func (f fakeValidatorState) GetValidatorSet(context.Context, uint64, ids.ID) (map[ids.NodeID]*validators.GetValidatorOutput, error) {
	return f.set, nil
}

func TestLoadDelegatorTableFlattensAndSortsByNodeID(t *testing.T) {
	a := ids.GenerateTestNodeID()
	b := ids.GenerateTestNodeID()
	state := fakeValidatorState{set: map[ids.NodeID]*validators.GetValidatorOutput{
		a: {NodeID: a, Weight: 10},
		b: {NodeID: b, Weight: 20},
	}}

	entries, err := LoadDelegatorTable(context.Background(), state, 100, ids.Empty)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for i := 1; i < len(entries); i++ {
		require.Less(t, entries[i-1].NodeID, entries[i].NodeID)
	}
	total := uint64(0)
	for _, e := range entries {
		total += e.Stake
	}
	require.Equal(t, uint64(30), total)
}

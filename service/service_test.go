// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWallClockAdvances(t *testing.T) {
	wc := WallClock{}
	a := wc.Now()
	time.Sleep(time.Millisecond)
	b := wc.Now()
	require.True(t, b.After(a) || b.Equal(a))
}

func TestFixedClockStaysUntilAdvanced(t *testing.T) {
	t0 := time.Unix(1000, 0)
	f := NewFixed(t0)
	require.Equal(t, t0, f.Now())
	require.Equal(t, t0, f.Now())

	t1 := time.Unix(2000, 0)
	f.Advance(t1)
	require.Equal(t, t1, f.Now())
}

func TestHandleAllowsPartialWiring(t *testing.T) {
	h := Handle{Time: WallClock{}}
	require.NotNil(t, h.Time)
	require.Nil(t, h.P2P)
	require.Nil(t, h.Verifier)
}

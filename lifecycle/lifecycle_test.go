// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPureLifecycleHappyPath(t *testing.T) {
	p := NewPure[string, error]()
	require.Equal(t, PureInit, p.Phase())

	p.ToPending()
	require.True(t, p.Phase().Pending())

	p.ToSuccess("done")
	require.True(t, p.Phase().Terminal())
	v, ok := p.Success()
	require.True(t, ok)
	require.Equal(t, "done", v)

	_, ok = p.Error()
	require.False(t, ok)
}

func TestPureLifecycleErrorPath(t *testing.T) {
	p := NewPure[string, string]()
	p.ToPending()
	p.ToError("bad proof")

	_, ok := p.Success()
	require.False(t, ok)

	e, ok := p.Error()
	require.True(t, ok)
	require.Equal(t, "bad proof", e)
}

func TestIterativeInterruptPreservesCursor(t *testing.T) {
	it := NewIterative[int, string](0)
	require.Equal(t, IterativeBegin, it.Phase())

	for slot := 1; slot <= 5; slot++ {
		it.Advance(slot)
	}
	require.Equal(t, 5, it.Cursor())

	it.Interrupt("epoch boundary")
	require.True(t, it.Phase().Terminal())
	require.Equal(t, 5, it.Cursor(), "cursor must equal the last completed step")
	require.Equal(t, "epoch boundary", it.InterruptReason())

	_, ok := it.Result()
	require.False(t, ok)
}

func TestIterativeFinish(t *testing.T) {
	it := NewIterative[int, string](0)
	it.Advance(1)
	it.Finish("vrf-proof")

	res, ok := it.Result()
	require.True(t, ok)
	require.Equal(t, "vrf-proof", res)
}

func TestWorkerLifecycleTransitions(t *testing.T) {
	w := NewWorker[int, string]()
	require.Equal(t, WorkerStarting, w.Phase())
	require.True(t, w.Phase().Pending())

	w.ToIdle()
	require.False(t, w.Phase().Pending())

	w.ToWorking()
	w.ToReady(42)
	require.True(t, w.Phase().Terminal() == false)
	res, ok := w.Result()
	require.True(t, ok)
	require.Equal(t, 42, res)

	w.ToCancelling()
	w.ToCancelled()
	require.True(t, w.Phase().Terminal())
}

func TestSequentialAdvanceRequiresSuccess(t *testing.T) {
	const totalSteps = 3
	s := NewSequential[int](totalSteps)
	require.Equal(t, 0, s.Step())
	require.False(t, s.Advance(totalSteps), "cannot advance before success")

	s.Succeed(100)
	ok := s.Advance(totalSteps)
	require.True(t, ok)
	require.Equal(t, 1, s.Step())
	require.Equal(t, StepPending, s.State())

	_, hasArtifact := s.Artifact()
	require.False(t, hasArtifact, "artifact clears on advance")
}

func TestSequentialRetryKeepsStep(t *testing.T) {
	s := NewSequential[string](2)
	s.Fail()
	require.Equal(t, StepError, s.State())

	s.Retry()
	require.Equal(t, StepPending, s.State())
	require.Equal(t, 1, s.Attempt())
	require.Equal(t, 0, s.Step())
}

func TestSequentialAdvanceAtLastStepFails(t *testing.T) {
	s := NewSequential[int](1)
	s.Succeed(1)
	require.False(t, s.Advance(1))
}

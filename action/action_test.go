// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package action

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLookup(t *testing.T) {
	k := Register("TestKindFoo", LevelInfo)
	require.Equal(t, "TestKindFoo", k.String())
	require.Equal(t, LevelInfo, k.Level())

	found, ok := Lookup("TestKindFoo")
	require.True(t, ok)
	require.Equal(t, k, found)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("TestKindDup", LevelDebug)
	require.Panics(t, func() {
		Register("TestKindDup", LevelDebug)
	})
}

func TestDefaultLevelEscalatesErrorAndWarn(t *testing.T) {
	require.Equal(t, LevelWarn, DefaultLevel("SomethingError"))
	require.Equal(t, LevelWarn, DefaultLevel("SomethingWarn"))
	require.Equal(t, LevelDebug, DefaultLevel("SomethingSuccess"))
}

func TestAllIncludesRegistered(t *testing.T) {
	before := Count()
	Register("TestKindAll", LevelDebug)
	require.Equal(t, before+1, Count())
	all := All()
	require.Len(t, all, before+1)
}

type fakeDispatcher struct {
	dispatched []Action
}

func (f *fakeDispatcher) Dispatch(a Action) {
	f.dispatched = append(f.dispatched, a)
}

type testSub struct {
	Value int
}

func TestSubstateMutationThenDispatchPhase(t *testing.T) {
	disp := &fakeDispatcher{}
	sub := &testSub{Value: 1}
	s := NewSubstate(sub, disp)

	mut := s.GetSubstateMut()
	mut.Value = 2
	require.Equal(t, 2, sub.Value)

	// Still allowed to call GetSubstateMut multiple times before transition.
	require.Equal(t, 2, s.GetSubstateMut().Value)

	d := s.IntoDispatcher()
	require.NotNil(t, d)
}

func TestSubstateMutAfterDispatchPanics(t *testing.T) {
	disp := &fakeDispatcher{}
	sub := &testSub{Value: 1}
	s := NewSubstate(sub, disp)
	s.IntoDispatcher()

	require.Panics(t, func() {
		s.GetSubstateMut()
	})
}

func TestIntoDispatcherAndState(t *testing.T) {
	disp := &fakeDispatcher{}
	sub := &testSub{Value: 7}
	s := NewSubstate(sub, disp)

	d, v := IntoDispatcherAndState[testSub, int](s, 42)
	require.NotNil(t, d)
	require.Equal(t, 42, v)
	require.Panics(t, func() {
		s.GetSubstateMut()
	})
}

func TestBugConditionPermissiveLogsAndReturnsTrue(t *testing.T) {
	SetStrictMode(false)
	fired := BugCondition(nil, false, "should not happen")
	require.True(t, fired)

	notFired := BugCondition(nil, true, "fine")
	require.False(t, notFired)
}

func TestBugConditionStrictPanics(t *testing.T) {
	SetStrictMode(true)
	defer SetStrictMode(false)
	require.Panics(t, func() {
		BugCondition(nil, false, "boom")
	})
}

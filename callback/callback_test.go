// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package callback

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/dispatch/action"
)

type recordingDispatcher struct {
	actions []action.Action
}

func (r *recordingDispatcher) Dispatch(a action.Action) {
	r.actions = append(r.actions, a)
}

var testKind = action.Register("CallbackTestAction", action.LevelDebug)

type fakeAction struct {
	payload string
}

func (fakeAction) Kind() action.Kind { return testKind }
func (fakeAction) Effectful() bool   { return false }

type fakeTarget struct{}

func (fakeTarget) Name() string { return "fakeTarget" }
func (fakeTarget) Build(payload string) action.Action {
	return fakeAction{payload: payload}
}

func TestCallbackInvoke(t *testing.T) {
	cb := New[string](fakeTarget{})
	require.False(t, cb.IsZero())
	require.Equal(t, "fakeTarget", cb.Name())

	disp := &recordingDispatcher{}
	cb.Invoke(disp, "hello")

	require.Len(t, disp.actions, 1)
	require.Equal(t, fakeAction{payload: "hello"}, disp.actions[0])
}

func TestZeroCallbackInvokeIsNoop(t *testing.T) {
	var cb Callback[string]
	require.True(t, cb.IsZero())

	disp := &recordingDispatcher{}
	cb.Invoke(disp, "ignored")
	require.Empty(t, disp.actions)
}

func TestCallbackEqual(t *testing.T) {
	a := New[string](fakeTarget{})
	b := New[string](fakeTarget{})
	require.True(t, a.Equal(b))

	var zero Callback[string]
	require.False(t, a.Equal(zero))
}

func TestRegistryNotifyAllAndInvokeOne(t *testing.T) {
	reg := NewRegistry[int, string]()
	reg.Subscribe(1, New[string](fakeTarget{}))
	reg.Subscribe(2, New[string](fakeTarget{}))
	require.Equal(t, 2, reg.Len())

	disp := &recordingDispatcher{}
	reg.NotifyAll(disp, "broadcast")
	require.Len(t, disp.actions, 2)

	disp2 := &recordingDispatcher{}
	ok := reg.InvokeOne(disp2, 1, "single")
	require.True(t, ok)
	require.Len(t, disp2.actions, 1)
	require.Equal(t, 1, reg.Len())

	ok = reg.InvokeOne(disp2, 1, "gone")
	require.False(t, ok)
}

func TestRegistryUnsubscribe(t *testing.T) {
	reg := NewRegistry[string, int]()
	reg.Subscribe("a", Callback[int]{})
	require.Equal(t, 1, reg.Len())
	reg.Unsubscribe("a")
	require.Equal(t, 0, reg.Len())
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/dispatch/action"
)

var testEventKind = Register("EventTestKindFoo")

type testEvent struct {
	payload string
}

func (testEvent) Kind() Kind { return testEventKind }

var testActionKind = action.Register("EventTestDomainAction", action.LevelDebug)

type testDomainAction struct {
	payload string
}

func (testDomainAction) Kind() action.Kind { return testActionKind }
func (testDomainAction) Effectful() bool   { return false }

type recordingDispatcher struct {
	dispatched []action.Action
}

func (r *recordingDispatcher) Dispatch(a action.Action) {
	r.dispatched = append(r.dispatched, a)
}

func TestEmitAndDrainPreservesOrder(t *testing.T) {
	s := NewSource(4)
	s.Emit(testEvent{payload: "a"})
	s.Emit(testEvent{payload: "b"})

	require.Equal(t, 2, s.Len())
	e1 := <-s.Chan()
	e2 := <-s.Chan()
	require.Equal(t, testEvent{payload: "a"}, e1)
	require.Equal(t, testEvent{payload: "b"}, e2)
}

func TestTryEmitNonBlockingWhenFull(t *testing.T) {
	s := NewSource(1)
	require.True(t, s.TryEmit(testEvent{payload: "x"}))
	require.False(t, s.TryEmit(testEvent{payload: "y"}), "channel is full, should not block")
}

func TestReduceTranslatesRegisteredKind(t *testing.T) {
	s := NewSource(4)
	s.RegisterTranslator(testEventKind, func(e Event) action.Action {
		te := e.(testEvent)
		return testDomainAction{payload: te.payload}
	})

	disp := &recordingDispatcher{}
	s.Reduce(disp, NewEventAction{Event: testEvent{payload: "hello"}})

	require.Len(t, disp.dispatched, 1)
	require.Equal(t, testDomainAction{payload: "hello"}, disp.dispatched[0])
}

func TestReduceDropsUnregisteredKind(t *testing.T) {
	s := NewSource(4)
	disp := &recordingDispatcher{}
	s.Reduce(disp, NewEventAction{Event: testEvent{payload: "ignored"}})
	require.Empty(t, disp.dispatched)
}

func TestReduceDropsNilTranslation(t *testing.T) {
	s := NewSource(4)
	s.RegisterTranslator(testEventKind, func(e Event) action.Action { return nil })
	disp := &recordingDispatcher{}
	s.Reduce(disp, NewEventAction{Event: testEvent{payload: "x"}})
	require.Empty(t, disp.dispatched)
}

func TestDuplicateEventKindRegistrationPanics(t *testing.T) {
	Register("EventTestKindDup")
	require.Panics(t, func() {
		Register("EventTestKindDup")
	})
}

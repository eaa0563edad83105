package replay

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/dispatch/action"
	"github.com/luxfi/dispatch/codec"
	"github.com/luxfi/dispatch/service"
)

var kindTestTick = action.Register("ReplayTestTick", action.LevelDebug)

type tickAction struct {
	N int `json:"n"`
}

func (tickAction) Kind() action.Kind { return kindTestTick }
func (tickAction) Effectful() bool   { return false }

func decodeTick(payload json.RawMessage) (action.Action, error) {
	var a tickAction
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, err
	}
	return a, nil
}

type recordingDispatcher struct {
	dispatched []action.Action
	clockAt    []time.Time
	clock      *service.Fixed
}

func (d *recordingDispatcher) Dispatch(a action.Action) {
	d.dispatched = append(d.dispatched, a)
	d.clockAt = append(d.clockAt, d.clock.Now())
}

func TestRecordThenReplayReproducesActionsAndTimestamps(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)

	require.NoError(t, rec.WriteSnapshot(codec.Snapshot{State: json.RawMessage(`{"foo":1}`), RNGSeed: 7}))

	base := time.Unix(1_700_000_000, 0)
	for i := 0; i < 3; i++ {
		payload, err := json.Marshal(tickAction{N: i})
		require.NoError(t, err)
		require.NoError(t, rec.WriteAction(codec.ActionRecord{
			KindName: kindTestTick.String(),
			Seq:      uint64(i),
			Time:     base.Add(time.Duration(i) * time.Second).UnixNano(),
			Payload:  payload,
		}))
	}
	require.NoError(t, rec.Flush())

	rp, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, uint64(7), rp.Snapshot().RNGSeed)
	require.Equal(t, 3, rp.Len())

	clock := service.NewFixed(time.Time{})
	disp := &recordingDispatcher{clock: clock}
	reg := Registry{kindTestTick.String(): decodeTick}

	require.NoError(t, rp.ReplayAll(reg, clock, disp))
	require.Equal(t, 0, rp.Remaining())
	require.Len(t, disp.dispatched, 3)

	for i, a := range disp.dispatched {
		tick, ok := a.(tickAction)
		require.True(t, ok)
		require.Equal(t, i, tick.N)
		require.True(t, disp.clockAt[i].Equal(base.Add(time.Duration(i)*time.Second)))
	}
}

func TestLoadRejectsLogNotStartingWithSnapshot(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	require.NoError(t, rec.WriteSnapshot(codec.Snapshot{}))
	require.NoError(t, rec.Flush())

	raw := buf.String()
	// Drop the snapshot line, leaving an empty log.
	_ = raw
	_, err := Load(bytes.NewBufferString(""))
	require.Error(t, err)
}

func TestStepRejectsUnknownActionKind(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	require.NoError(t, rec.WriteSnapshot(codec.Snapshot{}))
	require.NoError(t, rec.WriteAction(codec.ActionRecord{KindName: "NotRegistered", Payload: json.RawMessage(`{}`)}))
	require.NoError(t, rec.Flush())

	rp, err := Load(&buf)
	require.NoError(t, err)

	clock := service.NewFixed(time.Time{})
	disp := &recordingDispatcher{clock: clock}
	_, err = rp.Step(Registry{}, clock, disp)
	require.Error(t, err)
}

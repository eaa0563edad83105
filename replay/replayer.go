// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/luxfi/dispatch/action"
	"github.com/luxfi/dispatch/codec"
	"github.com/luxfi/dispatch/service"
)

// Decoder turns a recorded action's raw JSON payload back into the typed
// Action the owning subsystem defined, given the action-kind name under
// which it was recorded. Subsystem packages register one Decoder per
// action type they want replayable.
type Decoder func(payload json.RawMessage) (action.Action, error)

// Registry maps an action-kind name (as recorded — stable across binaries,
// unlike action.Kind values) to the Decoder that reconstructs it.
type Registry map[string]Decoder

// Replayer loads a recorded log and replays its input actions against a
// live Dispatcher running on a Fixed time source, so the reducer-observed
// time matches exactly what was recorded.
type Replayer struct {
	snapshot codec.Snapshot
	records  []codec.ActionRecord
	pos      int
}

// Load reads every entry from r. The first entry must be a snapshot;
// every entry after it must be an action record.
func Load(r io.Reader) (*Replayer, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	rp := &Replayer{}
	first := true
	for scanner.Scan() {
		var e entry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("replay: decoding entry: %w", err)
		}
		if first {
			if e.Type != entrySnapshot || e.Snapshot == nil {
				return nil, fmt.Errorf("replay: log must begin with a snapshot entry")
			}
			rp.snapshot = *e.Snapshot
			first = false
			continue
		}
		if e.Type != entryAction || e.Action == nil {
			return nil, fmt.Errorf("replay: expected an action entry after the snapshot")
		}
		rp.records = append(rp.records, *e.Action)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if first {
		return nil, fmt.Errorf("replay: empty log, expected at least a snapshot entry")
	}
	return rp, nil
}

// Snapshot returns the loaded initial-state snapshot.
func (rp *Replayer) Snapshot() codec.Snapshot { return rp.snapshot }

// Len reports the total number of recorded action entries.
func (rp *Replayer) Len() int { return len(rp.records) }

// Remaining reports how many recorded actions have not yet been replayed.
func (rp *Replayer) Remaining() int { return len(rp.records) - rp.pos }

// Step decodes and dispatches the next recorded action, advancing clock to
// its recorded timestamp first so any enabling condition or reducer that
// consults clock.Now observes the same time it did originally. Returns
// false once every recorded action has been replayed.
func (rp *Replayer) Step(reg Registry, clock *service.Fixed, disp action.Dispatcher) (bool, error) {
	if rp.pos >= len(rp.records) {
		return false, nil
	}
	rec := rp.records[rp.pos]
	rp.pos++

	decode, ok := reg[rec.KindName]
	if !ok {
		return false, fmt.Errorf("replay: no decoder registered for action kind %q", rec.KindName)
	}
	act, err := decode(rec.Payload)
	if err != nil {
		return false, fmt.Errorf("replay: decoding %q payload: %w", rec.KindName, err)
	}

	clock.Advance(time.Unix(0, rec.Time))
	disp.Dispatch(act)
	return true, nil
}

// ReplayAll steps through every remaining recorded action in order.
func (rp *Replayer) ReplayAll(reg Registry, clock *service.Fixed, disp action.Dispatcher) error {
	for {
		more, err := rp.Step(reg, clock, disp)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

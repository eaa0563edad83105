// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package replay implements the record/replay log: a Recorder writes one
// initial-state snapshot followed by the sequence of externally-originated
// input actions a run observed, and a Replayer loads that log back and
// feeds the actions to a Store running with a fixed time source, so a
// recorded run can be reproduced bit-for-bit.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/luxfi/dispatch/codec"
)

// Recorder appends Snapshot and ActionRecord entries to an underlying
// writer as newline-delimited JSON, one entry per line: a format chosen so
// a recording can be tailed and inspected without decoding the whole file.
type Recorder struct {
	w     *bufio.Writer
	wrote bool
}

// NewRecorder wraps w. The caller owns w's lifetime (close/flush it after
// the Recorder is done).
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: bufio.NewWriter(w)}
}

// WriteSnapshot records the initial state. It must be called exactly once,
// before any WriteAction call.
func (r *Recorder) WriteSnapshot(s codec.Snapshot) error {
	if r.wrote {
		return fmt.Errorf("replay: snapshot must be the first entry written")
	}
	r.wrote = true
	return r.writeLine(entry{Type: entrySnapshot, Snapshot: &s})
}

// WriteAction appends one recorded input action. Derived (intra-core)
// actions must never be passed here; only externally-originated actions
// (timer ticks, CLI commands, translated NewEvent actions) are recorded.
func (r *Recorder) WriteAction(rec codec.ActionRecord) error {
	if !r.wrote {
		return fmt.Errorf("replay: WriteSnapshot must be called before WriteAction")
	}
	return r.writeLine(entry{Type: entryAction, Action: &rec})
}

// Flush flushes any buffered output to the underlying writer.
func (r *Recorder) Flush() error { return r.w.Flush() }

func (r *Recorder) writeLine(e entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(data); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

type entryType string

const (
	entrySnapshot entryType = "snapshot"
	entryAction   entryType = "action"
)

// entry is the on-disk envelope distinguishing the one snapshot line from
// the many action lines that follow it.
type entry struct {
	Type     entryType           `json:"type"`
	Snapshot *codec.Snapshot     `json:"snapshot,omitempty"`
	Action   *codec.ActionRecord `json:"action,omitempty"`
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package replay

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/luxfi/database"

	"github.com/luxfi/dispatch/codec"
)

// DBStore persists a record/replay log to a database.Database instead of a
// flat file: the snapshot and action count under fixed keys, each action
// record under a sequence-numbered key. This is the durable counterpart to
// Recorder/Replayer's io.Writer/io.Reader log, for deployments that want the
// recording to survive a crash without re-opening a log file.
type DBStore struct {
	db database.Database
}

// NewDBStore wraps db for recording/replay persistence.
func NewDBStore(db database.Database) *DBStore {
	return &DBStore{db: db}
}

var (
	dbKeySnapshot  = []byte("replay/snapshot")
	dbKeyCount     = []byte("replay/count")
	dbActionPrefix = []byte("replay/action/")
)

func dbKeyAction(seq uint64) []byte {
	key := make([]byte, len(dbActionPrefix)+8)
	copy(key, dbActionPrefix)
	binary.BigEndian.PutUint64(key[len(dbActionPrefix):], seq)
	return key
}

// SaveSnapshot writes the initial-state snapshot, overwriting any previous
// one. Call this once, before the first SaveAction.
func (d *DBStore) SaveSnapshot(s codec.Snapshot) error {
	encoded, err := codec.EncodeSnapshot(s)
	if err != nil {
		return err
	}
	return d.db.Put(dbKeySnapshot, encoded)
}

// LoadSnapshot reads back the persisted snapshot.
func (d *DBStore) LoadSnapshot() (codec.Snapshot, error) {
	raw, err := d.db.Get(dbKeySnapshot)
	if err != nil {
		return codec.Snapshot{}, fmt.Errorf("replay: loading snapshot: %w", err)
	}
	return codec.DecodeSnapshot(raw)
}

// SaveAction appends rec at its own Seq, then advances the stored count if
// rec.Seq is the new high-water mark.
func (d *DBStore) SaveAction(rec codec.ActionRecord) error {
	encoded, err := codec.EncodeActionRecord(rec)
	if err != nil {
		return err
	}
	if err := d.db.Put(dbKeyAction(rec.Seq), encoded); err != nil {
		return err
	}
	count, err := d.count()
	if err != nil {
		return err
	}
	if rec.Seq+1 <= count {
		return nil
	}
	countBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(countBytes, rec.Seq+1)
	return d.db.Put(dbKeyCount, countBytes)
}

// LoadActions reads back every action record in Seq order.
func (d *DBStore) LoadActions() ([]codec.ActionRecord, error) {
	count, err := d.count()
	if err != nil {
		return nil, err
	}
	records := make([]codec.ActionRecord, 0, count)
	for seq := uint64(0); seq < count; seq++ {
		raw, err := d.db.Get(dbKeyAction(seq))
		if err != nil {
			return nil, fmt.Errorf("replay: loading action %d: %w", seq, err)
		}
		rec, err := codec.DecodeActionRecord(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (d *DBStore) count() (uint64, error) {
	raw, err := d.db.Get(dbKeyCount)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(raw), nil
}

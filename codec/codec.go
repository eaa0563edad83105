// Package codec provides the wire encoding for the record/replay log: the
// initial-state snapshot, and one envelope per recorded input action
// (timer ticks, CLI commands, translated NewEvent actions). Derived,
// intra-core actions are never encoded — only the inputs a replayer needs
// to reproduce them.
package codec

import (
	"encoding/json"
	"fmt"
)

// CodecVersion represents the codec version
type CodecVersion uint16

const (
	// CurrentVersion is the current codec version
	CurrentVersion CodecVersion = 0
)

// Codec provides marshaling/unmarshaling
var Codec = &JSONCodec{}

// JSONCodec implements JSON encoding/decoding
type JSONCodec struct{}

// Marshal marshals an object to bytes
func (c *JSONCodec) Marshal(version CodecVersion, v interface{}) ([]byte, error) {
	if version != CurrentVersion {
		return nil, fmt.Errorf("unsupported codec version: %d", version)
	}
	return json.Marshal(v)
}

// Unmarshal unmarshals bytes to an object
func (c *JSONCodec) Unmarshal(data []byte, v interface{}) (CodecVersion, error) {
	err := json.Unmarshal(data, v)
	return CurrentVersion, err
}

// Snapshot is the recorded initial state a replay run restores before
// feeding back input actions: the serialized composite State, the RNG
// seed, and any per-node secrets needed to reproduce identical behavior.
type Snapshot struct {
	State   json.RawMessage `json:"state"`
	RNGSeed uint64          `json:"rngSeed"`
	Secrets json.RawMessage `json:"secrets,omitempty"`
}

// ActionRecord is one recorded input action: its action-kind name (looked
// up against the live registry at replay time, since Kind values are not
// stable across binaries), its sealed metadata, and its JSON-encoded
// payload.
type ActionRecord struct {
	KindName string          `json:"kind"`
	Seq      uint64          `json:"seq"`
	Time     int64           `json:"timeUnixNano"`
	Payload  json.RawMessage `json:"payload"`
}

// EncodeSnapshot marshals a Snapshot with the package codec.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	return Codec.Marshal(CurrentVersion, s)
}

// DecodeSnapshot unmarshals a Snapshot with the package codec.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	_, err := Codec.Unmarshal(data, &s)
	return s, err
}

// EncodeActionRecord marshals one ActionRecord.
func EncodeActionRecord(r ActionRecord) ([]byte, error) {
	return Codec.Marshal(CurrentVersion, r)
}

// DecodeActionRecord unmarshals one ActionRecord.
func DecodeActionRecord(data []byte) (ActionRecord, error) {
	var r ActionRecord
	_, err := Codec.Unmarshal(data, &r)
	return r, err
}

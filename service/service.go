// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package service defines the contracts for the collaborators effects call
// out to: P2P, ledger, SNARK verification, block production, the external
// SNARK worker process, RPC delivery, archive forwarding, and time. The core
// only ever reaches these through a Handle; services never call one
// another.
//
// Every service call is request/response keyed by a RequestID the caller
// mints; services reply asynchronously over the event channel (see package
// event), never synchronously, since effects must not block.
package service

import (
	"context"
	"time"

	"github.com/luxfi/ids"
)

// RequestID correlates a service call with its eventual completion event.
// Services must attach a per-request correlation id so the EventSource's
// translation stays stateless.
type RequestID uint64

// Time is the time service: it returns the timestamp to attach to the
// action currently being dispatched. In normal operation it returns
// wall-clock time; in replay mode it returns the recorded meta-timestamp.
type Time interface {
	Now() time.Time
}

// WallClock is the production Time implementation.
type WallClock struct{}

func (WallClock) Now() time.Time { return time.Now() }

// Fixed is the replay-mode Time implementation: it always returns the
// single timestamp it was constructed with, until advanced by the
// replayer to the next recorded action's timestamp.
type Fixed struct {
	now time.Time
}

func NewFixed(t time.Time) *Fixed { return &Fixed{now: t} }

func (f *Fixed) Now() time.Time { return f.now }

// Advance sets the fixed clock to t. The replayer calls this before
// re-dispatching each recorded input action so that the time observed by
// IsEnabled/reducers during replay matches what was recorded originally.
func (f *Fixed) Advance(t time.Time) { f.now = t }

// P2P is the P2P service contract: establishing/tearing down
// peer connections, opening/closing logical channels, sending framed
// messages. All calls are fire-and-forget from the effect handler's point
// of view; completion and inbound traffic both arrive as events.
type P2P interface {
	Connect(ctx context.Context, req RequestID, peer ids.NodeID) error
	Disconnect(ctx context.Context, peer ids.NodeID) error
	OpenChannel(ctx context.Context, req RequestID, peer ids.NodeID, channel string) error
	CloseChannel(ctx context.Context, peer ids.NodeID, channel string) error
	SendMessage(ctx context.Context, req RequestID, peer ids.NodeID, channel string, payload []byte) error
}

// Ledger is the ledger service contract: account/merkle-proof/scan-state
// reads, block application, snarked/staged ledger commits. All operations
// are request/response with a correlation id; the service runs on its own
// thread.
type Ledger interface {
	GetAccount(ctx context.Context, req RequestID, ledgerRoot ids.ID, account ids.ID) error
	GetMerkleProof(ctx context.Context, req RequestID, ledgerRoot ids.ID, account ids.ID) error
	ApplyBlock(ctx context.Context, req RequestID, blockHash ids.ID, blockBytes []byte) error
	CommitSnarkedLedger(ctx context.Context, req RequestID, root ids.ID) error
	CommitStagedLedger(ctx context.Context, req RequestID, root ids.ID) error
}

// Verifier is the SNARK verify service contract: block, user-command and
// work verification, batched where possible.
type Verifier interface {
	VerifyBlock(ctx context.Context, req RequestID, blockHash ids.ID, blockBytes []byte) error
	VerifyUserCommands(ctx context.Context, req RequestID, commandHashes []ids.ID, payload [][]byte) error
	VerifyWork(ctx context.Context, req RequestID, workIDs []ids.ID, payload [][]byte) error
}

// Producer is the block-producer service contract: VRF evaluation given an
// epoch seed and delegator table, block proof generation given a
// blockchain-state input, and secret-key access for signing.
type Producer interface {
	EvaluateVRF(ctx context.Context, req RequestID, epochSeed []byte, slot uint64, nodeID ids.NodeID) error
	ProveBlock(ctx context.Context, req RequestID, stateInput []byte) error
	Sign(ctx context.Context, req RequestID, payload []byte) error
}

// ExternalWorker is the external SNARK worker service contract: start/stop a
// child process, submit a job spec, receive a proof.
type ExternalWorker interface {
	Start(ctx context.Context, req RequestID) error
	Stop(ctx context.Context) error
	SubmitJob(ctx context.Context, req RequestID, jobSpec []byte) error
}

// RPCID keys a respond_* one-shot or multi-shot delivery to an external
// client.
type RPCID uint64

// RPC is the RPC service contract: deliver responses to external clients.
type RPC interface {
	RespondOnce(ctx context.Context, id RPCID, payload []byte) error
	RespondStream(ctx context.Context, id RPCID, payload []byte, done bool) error
}

// Archive is the archive service contract: forward finalized block results
// to an external archive, retrying with backoff on failure.
type Archive interface {
	ForwardBlock(ctx context.Context, req RequestID, blockHash ids.ID, payload []byte) error
}

// Handle aggregates every service the core's effects may call, owned by the
// Store. A Store is constructed with one Handle; nil fields are valid for subsystems a given
// deployment does not wire up (e.g. a read-only archive observer with no
// Producer).
type Handle struct {
	Time           Time
	P2P            P2P
	Ledger         Ledger
	Verifier       Verifier
	Producer       Producer
	ExternalWorker ExternalWorker
	RPC            RPC
	Archive        Archive
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"time"

	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/action"
)

var (
	KindConnectionOutgoingInit                  = action.Register("P2pConnectionOutgoingInit", action.LevelDebug)
	KindConnectionOutgoingOfferSdpCreateSuccess = action.Register("P2pConnectionOutgoingOfferSdpCreateSuccess", action.LevelDebug)
	KindConnectionOutgoingOfferSendSuccess      = action.Register("P2pConnectionOutgoingOfferSendSuccess", action.LevelDebug)
	KindConnectionOutgoingAnswerRecvSuccess     = action.Register("P2pConnectionOutgoingAnswerRecvSuccess", action.LevelDebug)
	KindConnectionOutgoingFinalizeSuccess       = action.Register("P2pConnectionOutgoingFinalizeSuccess", action.LevelDebug)
	KindConnectionOutgoingError                 = action.Register("P2pConnectionOutgoingError", action.LevelWarn)
	KindChannelOpened                           = action.Register("P2pChannelOpened", action.LevelDebug)
	KindChannelClosed                           = action.Register("P2pChannelClosed", action.LevelDebug)
)

// InitAction starts an outgoing connection attempt from Self to Peer. Self
// is carried explicitly (rather than read from ambient config) so the
// simultaneous-connection tie-break rule is a pure function of the action.
type InitAction struct {
	Self ids.NodeID
	Peer ids.NodeID
}

func (InitAction) Kind() action.Kind { return KindConnectionOutgoingInit }
func (InitAction) Effectful() bool   { return true }
func (a InitAction) LogFields() []any {
	return []any{"peer", a.Peer.String()}
}

// IsInitEnabled rejects a second Init for a peer that already has a
// non-terminal-error connection in flight or Ready, and rejects a peer
// still serving out its benchlist cooldown.
func IsInitEnabled(sub *Substate, a InitAction, now time.Time) bool {
	if sub.Benched.IsBenched(a.Peer, now) {
		return false
	}
	existing, ok := sub.Connection(a.Peer)
	if !ok {
		return true
	}
	return existing.Phase == ConnError
}

// ReduceInit creates or overwrites the tracked connection for Peer and
// returns the simultaneous-connection outcome: true if this attempt wins
// and should proceed, false if it loses and the reducer should stop after
// recording the Error.
//
// Tie-break rule: both sides deterministically compare the String() forms
// of the two NodeIDs; the initiator whose id string sorts greater wins.
// This requires no coordination beyond each side already knowing both ids.
func ReduceInit(sub *Substate, a InitAction) (c *Connection, won bool) {
	if existing, ok := sub.Connection(a.Peer); ok && existing.Phase != ConnError {
		if a.Self.String() > a.Peer.String() {
			sub.Connections[a.Peer] = NewOutgoingConnection(a.Peer)
			return sub.Connections[a.Peer], true
		}
		existing.ToError(ErrorReasonSimultaneousConnection)
		return existing, false
	}
	c = NewOutgoingConnection(a.Peer)
	sub.Connections[a.Peer] = c
	return c, true
}

// OfferSdpCreateSuccessAction records the locally generated SDP offer.
type OfferSdpCreateSuccessAction struct {
	Peer  ids.NodeID
	Offer []byte
}

func (OfferSdpCreateSuccessAction) Kind() action.Kind {
	return KindConnectionOutgoingOfferSdpCreateSuccess
}
func (OfferSdpCreateSuccessAction) Effectful() bool { return false }

// IsOfferSdpCreateSuccessEnabled requires the connection to be awaiting its
// offer.
func IsOfferSdpCreateSuccessEnabled(sub *Substate, a OfferSdpCreateSuccessAction) bool {
	c, ok := sub.Connection(a.Peer)
	return ok && c.Phase == ConnOfferSdpCreatePending
}

func ReduceOfferSdpCreateSuccess(sub *Substate, a OfferSdpCreateSuccessAction) {
	c, ok := sub.Connection(a.Peer)
	if !ok {
		return
	}
	c.ToOfferSdpCreateSuccess(a.Offer)
	c.ToOfferReady()
}

// OfferSendSuccessAction records that the offer was delivered to the peer.
type OfferSendSuccessAction struct {
	Peer ids.NodeID
}

func (OfferSendSuccessAction) Kind() action.Kind { return KindConnectionOutgoingOfferSendSuccess }
func (OfferSendSuccessAction) Effectful() bool   { return false }

func IsOfferSendSuccessEnabled(sub *Substate, a OfferSendSuccessAction) bool {
	c, ok := sub.Connection(a.Peer)
	return ok && c.Phase == ConnOfferReady
}

func ReduceOfferSendSuccess(sub *Substate, a OfferSendSuccessAction) {
	if c, ok := sub.Connection(a.Peer); ok {
		c.ToOfferSendSuccess()
		c.ToAnswerRecvPending()
	}
}

// AnswerRecvSuccessAction delivers the peer's SDP answer.
type AnswerRecvSuccessAction struct {
	Peer   ids.NodeID
	Answer []byte
}

func (AnswerRecvSuccessAction) Kind() action.Kind { return KindConnectionOutgoingAnswerRecvSuccess }
func (AnswerRecvSuccessAction) Effectful() bool   { return false }

func IsAnswerRecvSuccessEnabled(sub *Substate, a AnswerRecvSuccessAction) bool {
	c, ok := sub.Connection(a.Peer)
	return ok && c.Phase == ConnAnswerRecvPending
}

func ReduceAnswerRecvSuccess(sub *Substate, a AnswerRecvSuccessAction) {
	c, ok := sub.Connection(a.Peer)
	if !ok {
		return
	}
	c.ToAnswerRecvSuccess(a.Answer)
	c.ToFinalizePending()
}

// FinalizeSuccessAction completes the handshake.
type FinalizeSuccessAction struct {
	Peer ids.NodeID
}

func (FinalizeSuccessAction) Kind() action.Kind { return KindConnectionOutgoingFinalizeSuccess }
func (FinalizeSuccessAction) Effectful() bool   { return false }

func IsFinalizeSuccessEnabled(sub *Substate, a FinalizeSuccessAction) bool {
	c, ok := sub.Connection(a.Peer)
	return ok && c.Phase == ConnFinalizePending
}

func ReduceFinalizeSuccess(sub *Substate, a FinalizeSuccessAction) {
	if c, ok := sub.Connection(a.Peer); ok {
		c.ToFinalizeSuccess()
		c.ToReady()
	}
}

// ErrorAction transitions a connection attempt to its terminal Error phase.
type ErrorAction struct {
	Peer   ids.NodeID
	Reason ErrorReason
}

func (ErrorAction) Kind() action.Kind { return KindConnectionOutgoingError }
func (ErrorAction) Effectful() bool   { return false }

// IsErrorEnabled requires a tracked connection that has not already reached
// a terminal phase; a second Error for an already-Ready or already-Error
// connection has nothing left to transition.
func IsErrorEnabled(sub *Substate, a ErrorAction) bool {
	c, ok := sub.Connection(a.Peer)
	return ok && !c.Phase.Terminal()
}

func ReduceError(sub *Substate, a ErrorAction) {
	if c, ok := sub.Connection(a.Peer); ok {
		c.ToError(a.Reason)
	}
}

// ChannelOpenedAction marks a channel negotiated between Peer open.
type ChannelOpenedAction struct {
	Peer    ids.NodeID
	Channel string
}

func (ChannelOpenedAction) Kind() action.Kind { return KindChannelOpened }
func (ChannelOpenedAction) Effectful() bool   { return false }

func IsChannelOpenedEnabled(sub *Substate, a ChannelOpenedAction) bool {
	c, ok := sub.Connection(a.Peer)
	return ok && c.Phase == ConnReady
}

func ReduceChannelOpened(sub *Substate, a ChannelOpenedAction) {
	if ch, ok := sub.ChannelFor(a.Peer, a.Channel); ok {
		ch.ToOpen()
		return
	}
	sub.OpenChannel(a.Peer, a.Channel).ToOpen()
}

// ChannelClosedAction marks a channel closed.
type ChannelClosedAction struct {
	Peer    ids.NodeID
	Channel string
}

func (ChannelClosedAction) Kind() action.Kind { return KindChannelClosed }
func (ChannelClosedAction) Effectful() bool   { return false }

// IsChannelClosedEnabled requires a tracked channel that is not already
// Closed.
func IsChannelClosedEnabled(sub *Substate, a ChannelClosedAction) bool {
	ch, ok := sub.ChannelFor(a.Peer, a.Channel)
	return ok && ch.Phase != ChannelClosed
}

func ReduceChannelClosed(sub *Substate, a ChannelClosedAction) {
	if ch, ok := sub.ChannelFor(a.Peer, a.Channel); ok {
		ch.ToClosed()
	}
}

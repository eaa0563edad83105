// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package p2p models the connection and channel lifecycles: the
// representative connection machine walking an outgoing handshake through
// SDP offer/answer exchange, and the channel-open/close protocol layered
// on top of an established connection. Both are domain-specific lifecycles
// (not reused from the generic lifecycle package) since their phase
// sequence and artifacts are particular to this handshake.
package p2p

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/lifecycle"
)

// ConnectionPhase is the outgoing connection handshake's phase sequence:
// Init -> OfferSdpCreatePending -> OfferSdpCreateSuccess -> OfferReady ->
// OfferSendSuccess -> AnswerRecvPending -> AnswerRecvSuccess ->
// FinalizePending -> FinalizeSuccess -> (Ready | Error).
type ConnectionPhase uint8

const (
	ConnInit ConnectionPhase = iota
	ConnOfferSdpCreatePending
	ConnOfferSdpCreateSuccess
	ConnOfferReady
	ConnOfferSendSuccess
	ConnAnswerRecvPending
	ConnAnswerRecvSuccess
	ConnFinalizePending
	ConnFinalizeSuccess
	ConnReady
	ConnError
)

func (p ConnectionPhase) Terminal() bool { return p == ConnReady || p == ConnError }
func (p ConnectionPhase) Pending() bool {
	switch p {
	case ConnOfferSdpCreatePending, ConnAnswerRecvPending, ConnFinalizePending:
		return true
	default:
		return false
	}
}
func (p ConnectionPhase) String() string {
	switch p {
	case ConnInit:
		return "Init"
	case ConnOfferSdpCreatePending:
		return "OfferSdpCreatePending"
	case ConnOfferSdpCreateSuccess:
		return "OfferSdpCreateSuccess"
	case ConnOfferReady:
		return "OfferReady"
	case ConnOfferSendSuccess:
		return "OfferSendSuccess"
	case ConnAnswerRecvPending:
		return "AnswerRecvPending"
	case ConnAnswerRecvSuccess:
		return "AnswerRecvSuccess"
	case ConnFinalizePending:
		return "FinalizePending"
	case ConnFinalizeSuccess:
		return "FinalizeSuccess"
	case ConnReady:
		return "Ready"
	case ConnError:
		return "Error"
	default:
		return "Unknown"
	}
}

var _ lifecycle.Phase = ConnectionPhase(0)

// ErrorReason classifies why a connection attempt failed.
type ErrorReason uint8

const (
	ErrorReasonUnknown ErrorReason = iota
	// ErrorReasonSimultaneousConnection marks the losing side of two peers
	// dialing each other at the same time; exactly one connection survives.
	ErrorReasonSimultaneousConnection
	ErrorReasonTimeout
	ErrorReasonRejected
)

// Connection tracks one outgoing connection attempt's progress and the
// artifacts each phase hands to the next: the locally generated SDP offer,
// and the peer's SDP answer. The remote identity is Peer, fixed at
// construction.
type Connection struct {
	Peer   ids.NodeID
	Phase  ConnectionPhase
	Offer  []byte
	Answer []byte
	Reason ErrorReason
}

// NewOutgoingConnection starts a connection attempt to peer at ConnInit.
func NewOutgoingConnection(peer ids.NodeID) *Connection {
	return &Connection{Peer: peer, Phase: ConnInit}
}

func (c *Connection) ToOfferSdpCreatePending() { c.Phase = ConnOfferSdpCreatePending }

func (c *Connection) ToOfferSdpCreateSuccess(offer []byte) {
	c.Phase = ConnOfferSdpCreateSuccess
	c.Offer = offer
}

func (c *Connection) ToOfferReady() { c.Phase = ConnOfferReady }

func (c *Connection) ToOfferSendSuccess() { c.Phase = ConnOfferSendSuccess }

func (c *Connection) ToAnswerRecvPending() { c.Phase = ConnAnswerRecvPending }

func (c *Connection) ToAnswerRecvSuccess(answer []byte) {
	c.Phase = ConnAnswerRecvSuccess
	c.Answer = answer
}

func (c *Connection) ToFinalizePending() { c.Phase = ConnFinalizePending }

func (c *Connection) ToFinalizeSuccess() { c.Phase = ConnFinalizeSuccess }

func (c *Connection) ToReady() { c.Phase = ConnReady }

func (c *Connection) ToError(reason ErrorReason) {
	c.Phase = ConnError
	c.Reason = reason
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/event"
)

// These are the concrete events the P2P service emits while an outgoing
// connection handshake and its channels progress asynchronously. Each maps
// 1:1 onto the action of the same step; the translator registered in
// wireP2P does nothing but unwrap the event's fields into that action.
var (
	KindOfferSdpCreateSuccessEvent = event.Register("P2pOfferSdpCreateSuccessEvent")
	KindOfferSendSuccessEvent      = event.Register("P2pOfferSendSuccessEvent")
	KindAnswerRecvSuccessEvent     = event.Register("P2pAnswerRecvSuccessEvent")
	KindFinalizeSuccessEvent       = event.Register("P2pFinalizeSuccessEvent")
	KindConnectionErrorEvent       = event.Register("P2pConnectionErrorEvent")
	KindChannelOpenedEvent         = event.Register("P2pChannelOpenedEvent")
	KindChannelClosedEvent         = event.Register("P2pChannelClosedEvent")
)

type OfferSdpCreateSuccessEvent struct {
	Peer  ids.NodeID
	Offer []byte
}

func (OfferSdpCreateSuccessEvent) Kind() event.Kind { return KindOfferSdpCreateSuccessEvent }

type OfferSendSuccessEvent struct{ Peer ids.NodeID }

func (OfferSendSuccessEvent) Kind() event.Kind { return KindOfferSendSuccessEvent }

type AnswerRecvSuccessEvent struct {
	Peer   ids.NodeID
	Answer []byte
}

func (AnswerRecvSuccessEvent) Kind() event.Kind { return KindAnswerRecvSuccessEvent }

type FinalizeSuccessEvent struct{ Peer ids.NodeID }

func (FinalizeSuccessEvent) Kind() event.Kind { return KindFinalizeSuccessEvent }

// ConnectionErrorEvent reports a failed handshake step, for whatever reason
// the P2P service attaches.
type ConnectionErrorEvent struct {
	Peer   ids.NodeID
	Reason ErrorReason
}

func (ConnectionErrorEvent) Kind() event.Kind { return KindConnectionErrorEvent }

// ChannelOpenedEvent reports a channel the peer (or the local side's own
// OpenChannel call) has finished negotiating open.
type ChannelOpenedEvent struct {
	Peer    ids.NodeID
	Channel string
}

func (ChannelOpenedEvent) Kind() event.Kind { return KindChannelOpenedEvent }

// ChannelClosedEvent reports a channel torn down, locally or by the peer.
type ChannelClosedEvent struct {
	Peer    ids.NodeID
	Channel string
}

func (ChannelClosedEvent) Kind() event.Kind { return KindChannelClosedEvent }

package p2p

import (
	"testing"
	"time"

	"github.com/luxfi/ids"
	"github.com/stretchr/testify/require"
)

func driveHandshake(t *testing.T, sub *Substate, peer ids.NodeID) {
	t.Helper()
	require.True(t, IsOfferSdpCreateSuccessEnabled(sub, OfferSdpCreateSuccessAction{Peer: peer}))
	ReduceOfferSdpCreateSuccess(sub, OfferSdpCreateSuccessAction{Peer: peer, Offer: []byte("offer")})

	require.True(t, IsOfferSendSuccessEnabled(sub, OfferSendSuccessAction{Peer: peer}))
	ReduceOfferSendSuccess(sub, OfferSendSuccessAction{Peer: peer})

	require.True(t, IsAnswerRecvSuccessEnabled(sub, AnswerRecvSuccessAction{Peer: peer}))
	ReduceAnswerRecvSuccess(sub, AnswerRecvSuccessAction{Peer: peer, Answer: []byte("answer")})

	require.True(t, IsFinalizeSuccessEnabled(sub, FinalizeSuccessAction{Peer: peer}))
	ReduceFinalizeSuccess(sub, FinalizeSuccessAction{Peer: peer})
}

func TestConnectionHandshakeReachesReady(t *testing.T) {
	sub := NewSubstate()
	self := ids.GenerateTestNodeID()
	peer := ids.GenerateTestNodeID()

	require.True(t, IsInitEnabled(sub, InitAction{Self: self, Peer: peer}, time.Now()))
	c, won := ReduceInit(sub, InitAction{Self: self, Peer: peer})
	require.True(t, won)
	require.Equal(t, ConnInit, c.Phase)

	c.ToOfferSdpCreatePending()
	driveHandshake(t, sub, peer)

	got, ok := sub.Connection(peer)
	require.True(t, ok)
	require.Equal(t, ConnReady, got.Phase)
	require.Equal(t, 1, sub.ConnectedPeerCount())
}

func TestSimultaneousConnectionResolvesToOneWinner(t *testing.T) {
	a := ids.GenerateTestNodeID()
	b := ids.GenerateTestNodeID()
	// Force a deterministic ordering for the test regardless of generated
	// bytes: whichever compares greater is the expected winner.
	winner, loser := a, b
	if b.String() > a.String() {
		winner, loser = b, a
	}

	subWinner := NewSubstate()
	cWinner, wonWinner := ReduceInit(subWinner, InitAction{Self: winner, Peer: loser})
	require.True(t, wonWinner)
	require.Equal(t, ConnInit, cWinner.Phase)

	// Simulate the same peer pair already having an in-flight connection
	// (as if the loser's outgoing Init raced in first), then deliver the
	// loser's own Init on top of it.
	subLoser := NewSubstate()
	subLoser.Connections[winner] = NewOutgoingConnection(winner)
	cLoser, wonLoser := ReduceInit(subLoser, InitAction{Self: loser, Peer: winner})
	require.False(t, wonLoser)
	require.Equal(t, ConnError, cLoser.Phase)
	require.Equal(t, ErrorReasonSimultaneousConnection, cLoser.Reason)
}

func TestBenchedPeerCannotInit(t *testing.T) {
	sub := NewSubstate()
	peer := ids.GenerateTestNodeID()
	now := time.Now()
	sub.Benched.Bench(peer, now, time.Minute)

	require.False(t, IsInitEnabled(sub, InitAction{Peer: peer}, now))
}

func TestChannelOpenAndClose(t *testing.T) {
	sub := NewSubstate()
	peer := ids.GenerateTestNodeID()
	sub.Connections[peer] = NewOutgoingConnection(peer)
	sub.Connections[peer].ToReady()

	require.True(t, IsChannelOpenedEnabled(sub, ChannelOpenedAction{Peer: peer, Channel: "gossip"}))
	ReduceChannelOpened(sub, ChannelOpenedAction{Peer: peer, Channel: "gossip"})

	ch, ok := sub.ChannelFor(peer, "gossip")
	require.True(t, ok)
	require.Equal(t, ChannelOpen, ch.Phase)

	ReduceChannelClosed(sub, ChannelClosedAction{Peer: peer, Channel: "gossip"})
	require.Equal(t, ChannelClosed, ch.Phase)
}

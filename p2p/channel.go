// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import "github.com/luxfi/dispatch/lifecycle"

// ChannelPhase is the logical-channel open/close protocol layered on top
// of a Ready connection: each channel negotiates open before either side
// sends framed messages over it, and closes independently of the
// underlying connection.
type ChannelPhase uint8

const (
	ChannelOpening ChannelPhase = iota
	ChannelOpen
	ChannelClosing
	ChannelClosed
)

func (p ChannelPhase) Terminal() bool { return p == ChannelClosed }
func (p ChannelPhase) Pending() bool  { return p == ChannelOpening || p == ChannelClosing }
func (p ChannelPhase) String() string {
	switch p {
	case ChannelOpening:
		return "Opening"
	case ChannelOpen:
		return "Open"
	case ChannelClosing:
		return "Closing"
	case ChannelClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

var _ lifecycle.Phase = ChannelPhase(0)

// Channel is one logical channel multiplexed over a connection, identified
// by a protocol name (e.g. "gossip", "rpc-transition-frontier").
type Channel struct {
	Name  string
	Phase ChannelPhase
}

func NewChannel(name string) *Channel {
	return &Channel{Name: name, Phase: ChannelOpening}
}

func (c *Channel) ToOpen()    { c.Phase = ChannelOpen }
func (c *Channel) ToClosing() { c.Phase = ChannelClosing }
func (c *Channel) ToClosed()  { c.Phase = ChannelClosed }

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import "github.com/luxfi/ids"

// Substate is the p2p subsystem's portion of the composite State: the peer
// registry keyed by node id, each peer's connection handshake, its open
// channels, and the shared benchlist.
type Substate struct {
	Connections map[ids.NodeID]*Connection
	Channels    map[ids.NodeID]map[string]*Channel
	Benched     *Benchlist
}

// NewSubstate constructs an empty p2p substate.
func NewSubstate() *Substate {
	return &Substate{
		Connections: make(map[ids.NodeID]*Connection),
		Channels:    make(map[ids.NodeID]map[string]*Channel),
		Benched:     NewBenchlist(),
	}
}

// Connection looks up the connection tracked for peer, if any.
func (s *Substate) Connection(peer ids.NodeID) (*Connection, bool) {
	c, ok := s.Connections[peer]
	return c, ok
}

// ChannelFor looks up the named channel for peer, if any.
func (s *Substate) ChannelFor(peer ids.NodeID, name string) (*Channel, bool) {
	byName, ok := s.Channels[peer]
	if !ok {
		return nil, false
	}
	c, ok := byName[name]
	return c, ok
}

// OpenChannel registers a new Channel for peer under name, replacing any
// previous channel of the same name.
func (s *Substate) OpenChannel(peer ids.NodeID, name string) *Channel {
	byName, ok := s.Channels[peer]
	if !ok {
		byName = make(map[string]*Channel)
		s.Channels[peer] = byName
	}
	ch := NewChannel(name)
	byName[name] = ch
	return ch
}

// ConnectedPeerCount counts peers whose connection has reached ConnReady,
// for health reporting.
func (s *Substate) ConnectedPeerCount() int {
	n := 0
	for _, c := range s.Connections {
		if c.Phase == ConnReady {
			n++
		}
	}
	return n
}

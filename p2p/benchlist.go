// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"sync"
	"time"

	"github.com/luxfi/ids"
)

// Benchlist tracks peers whose connection attempts repeatedly fail. The
// connection machine's enabling condition consults IsBenched before
// allowing a new outgoing attempt to the same peer, giving a misbehaving
// or unreachable peer a cooldown window instead of being retried
// immediately on every poll.
type Benchlist struct {
	mu      sync.Mutex
	benched map[ids.NodeID]time.Time
}

// NewBenchlist constructs an empty Benchlist.
func NewBenchlist() *Benchlist {
	return &Benchlist{benched: make(map[ids.NodeID]time.Time)}
}

// Bench marks peer as benched until now+duration.
func (b *Benchlist) Bench(peer ids.NodeID, now time.Time, duration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.benched[peer] = now.Add(duration)
}

// IsBenched reports whether peer is still within its bench window at now.
func (b *Benchlist) IsBenched(peer ids.NodeID, now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	until, ok := b.benched[peer]
	if !ok {
		return false
	}
	if !now.Before(until) {
		delete(b.benched, peer)
		return false
	}
	return true
}

// Unbench clears peer's bench entry immediately, e.g. on an operator
// override.
func (b *Benchlist) Unbench(peer ids.NodeID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.benched, peer)
}

// Len reports how many peers are currently tracked (including expired
// entries not yet lazily evicted), for health/metrics.
func (b *Benchlist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.benched)
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package transition

import "github.com/luxfi/ids"

// BestTipPoll collects peer votes for the best-tip candidate to sync
// toward: every responding peer names the block id it considers the chain
// tip, and once alpha peers have voted the majority answer (if any reaches
// alpha) becomes the chosen best tip.
type BestTipPoll struct {
	alpha   int
	results map[ids.NodeID]ids.ID
}

// NewBestTipPoll starts an empty poll requiring alpha agreeing votes.
func NewBestTipPoll(alpha int) *BestTipPoll {
	return &BestTipPoll{
		alpha:   alpha,
		results: make(map[ids.NodeID]ids.ID),
	}
}

// Vote records peer's claimed tip, overwriting any earlier vote from the
// same peer.
func (p *BestTipPoll) Vote(peer ids.NodeID, tip ids.ID) {
	p.results[peer] = tip
}

// Finished reports whether enough peers have voted to evaluate the result.
func (p *BestTipPoll) Finished() bool {
	return len(p.results) >= p.alpha
}

// Result returns the most-voted tip and whether it reached alpha votes. Only
// meaningful once Finished reports true.
func (p *BestTipPoll) Result() (ids.ID, bool) {
	if !p.Finished() {
		return ids.Empty, false
	}
	counts := make(map[ids.ID]int)
	for _, tip := range p.results {
		counts[tip]++
	}
	var maxID ids.ID
	maxCount := 0
	for tip, count := range counts {
		if count > maxCount {
			maxID = tip
			maxCount = count
		}
	}
	return maxID, maxCount >= p.alpha
}

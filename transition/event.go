// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package transition

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/event"
	"github.com/luxfi/dispatch/service"
)

// KindLedgerEvent is the single event kind every Ledger service completion
// arrives as, regardless of which sync phase issued the call.
var KindLedgerEvent = event.Register("TransitionLedgerEvent")

// LedgerEvent is the ledger service's asynchronous reply to whichever of
// GetMerkleProof, ApplyBlock or CommitStagedLedger the sync machine most
// recently issued. The sync machine is strictly sequential — at most one of
// those calls is ever outstanding — so the translator disambiguates which
// domain action to produce by comparing ReqID against the Substate's
// PendingReq (discarding a stale reply from a call the machine has since
// moved past) and reading the Substate's current Phase.
type LedgerEvent struct {
	ReqID       service.RequestID
	Root        ids.ID
	Count       uint64
	Recoverable bool
	Err         string
}

func (LedgerEvent) Kind() event.Kind { return KindLedgerEvent }

// OK reports whether the reply represents success.
func (e LedgerEvent) OK() bool { return e.Err == "" }

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/event"
	"github.com/luxfi/dispatch/service"
)

// KindVerifierEvent is the event kind the Verifier service's VerifyBlock
// reply arrives as.
var KindVerifierEvent = event.Register("SnarkBlockVerifyEvent")

// VerifierEvent is the verifier's asynchronous reply to one VerifyBlock
// call. Unlike the transition-frontier sync machine, many requests can be
// outstanding at once, so the translator needs no extra correlation state
// beyond the ReqID itself — it looks the request straight up in
// Substate.Requests.
type VerifierEvent struct {
	ReqID     service.RequestID
	BlockHash ids.ID
	Err       string
}

func (VerifierEvent) Kind() event.Kind { return KindVerifierEvent }

// OK reports whether the reply represents successful verification.
func (e VerifierEvent) OK() bool { return e.Err == "" }

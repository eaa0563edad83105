// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package producer

import "github.com/luxfi/dispatch/lifecycle"

// Phase is the block-producer's domain state, interleaving the five named
// domain states with the two pure sub-operations' own Init/Pending/Success
// steps flattened into the same enum (mirroring how the p2p connection
// machine flattens its handshake into one phase sequence).
type Phase uint8

const (
	Idle Phase = iota
	WonSlot
	WonSlotWait
	DiffCreateInit
	DiffCreatePending
	DiffCreateSuccess
	ProveInit
	ProvePending
	ProveSuccess
	Produced
	Injected
	Error
)

func (p Phase) Terminal() bool { return p == Injected || p == Error }
func (p Phase) Pending() bool {
	switch p {
	case DiffCreatePending, ProvePending:
		return true
	default:
		return false
	}
}

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case WonSlot:
		return "WonSlot"
	case WonSlotWait:
		return "WonSlotWait"
	case DiffCreateInit:
		return "DiffCreateInit"
	case DiffCreatePending:
		return "DiffCreatePending"
	case DiffCreateSuccess:
		return "DiffCreateSuccess"
	case ProveInit:
		return "ProveInit"
	case ProvePending:
		return "ProvePending"
	case ProveSuccess:
		return "ProveSuccess"
	case Produced:
		return "Produced"
	case Injected:
		return "Injected"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

var _ lifecycle.Phase = Phase(0)

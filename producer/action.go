// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package producer

import (
	"github.com/luxfi/ids"

	"github.com/luxfi/dispatch/action"
)

var (
	KindBeginVRFEvaluation     = action.Register("ProducerBeginVRFEvaluation", action.LevelDebug)
	KindContinueVRFEvaluation  = action.Register("ProducerContinueVRFEvaluation", action.LevelDebug)
	KindInterruptVRFEvaluation = action.Register("ProducerInterruptVRFEvaluation", action.LevelWarn)

	KindWonSlot           = action.Register("ProducerWonSlot", action.LevelDebug)
	KindSlotArrived       = action.Register("ProducerSlotArrived", action.LevelDebug)
	KindDiffCreatePending = action.Register("ProducerDiffCreatePending", action.LevelDebug)
	KindDiffCreateSuccess = action.Register("ProducerDiffCreateSuccess", action.LevelDebug)
	KindDiffCreateError   = action.Register("ProducerDiffCreateError", action.LevelWarn)
	KindProvePending      = action.Register("ProducerProvePending", action.LevelDebug)
	KindProveSuccess      = action.Register("ProducerProveSuccess", action.LevelDebug)
	KindProveError        = action.Register("ProducerProveError", action.LevelWarn)
	KindInjected          = action.Register("ProducerInjected", action.LevelDebug)
)

// BeginVRFEvaluationAction starts a fresh epoch evaluation over
// [StartSlot, EndSlot). Effectful: the effect handler issues the first
// EvaluateVRF service call for StartSlot.
type BeginVRFEvaluationAction struct {
	EpochSeed []byte
	NodeID    ids.NodeID
	StartSlot uint64
	EndSlot   uint64
}

func (BeginVRFEvaluationAction) Kind() action.Kind { return KindBeginVRFEvaluation }
func (BeginVRFEvaluationAction) Effectful() bool   { return true }

// IsBeginVRFEvaluationEnabled requires no evaluation already in flight.
func IsBeginVRFEvaluationEnabled(sub *Substate) bool { return sub.VRF == nil }

func ReduceBeginVRFEvaluation(sub *Substate, a BeginVRFEvaluationAction) {
	sub.VRF = NewVRFEvaluation(a.EpochSeed, a.NodeID, a.StartSlot, a.EndSlot)
}

// ContinueVRFEvaluationAction reports the VRF service's verdict for one
// slot. Always reports Effectful; the effect handler issues the next slot's
// EvaluateVRF call only when this step did not finish the process.
type ContinueVRFEvaluationAction struct {
	Slot uint64
	Won  bool
}

func (ContinueVRFEvaluationAction) Kind() action.Kind { return KindContinueVRFEvaluation }
func (ContinueVRFEvaluationAction) Effectful() bool   { return true }

// IsContinueVRFEvaluationEnabled requires an in-flight evaluation whose
// current cursor slot matches a.Slot, so a stale or duplicate service
// response is rejected.
func IsContinueVRFEvaluationEnabled(sub *Substate, a ContinueVRFEvaluationAction) bool {
	return sub.VRF != nil && !sub.VRF.Phase().Terminal() && sub.VRF.Cursor() == a.Slot
}

func ReduceContinueVRFEvaluation(sub *Substate, a ContinueVRFEvaluationAction) {
	sub.VRF.Step(a.Slot, a.Won)
}

// InterruptVRFEvaluationAction stops an in-flight evaluation early, e.g.
// because a new epoch seed superseded this one.
type InterruptVRFEvaluationAction struct {
	Reason string
}

func (InterruptVRFEvaluationAction) Kind() action.Kind { return KindInterruptVRFEvaluation }
func (InterruptVRFEvaluationAction) Effectful() bool   { return false }

func IsInterruptVRFEvaluationEnabled(sub *Substate) bool {
	return sub.VRF != nil && !sub.VRF.Phase().Terminal()
}

func ReduceInterruptVRFEvaluation(sub *Substate, a InterruptVRFEvaluationAction) {
	sub.VRF.Interrupt(a.Reason)
}

// WonSlotAction records that the VRF evaluation surfaced a won slot while
// the producer was Idle, starting a production attempt for it.
type WonSlotAction struct {
	Slot uint64
}

func (WonSlotAction) Kind() action.Kind { return KindWonSlot }
func (WonSlotAction) Effectful() bool   { return false }

// IsWonSlotEnabled accepts a new won slot once the producer is Idle or has
// just finished injecting its previous block.
func IsWonSlotEnabled(sub *Substate) bool { return sub.Phase == Idle || sub.Phase == Injected }

func ReduceWonSlot(sub *Substate, a WonSlotAction) {
	sub.reset()
	sub.Slot = a.Slot
	sub.Phase = WonSlot
}

// SlotArrivedAction fires when wall-clock time reaches the won slot,
// moving the producer to DiffCreateInit. It reports Effectful, but its
// handler issues no service call; DiffCreatePending/Success/Error are
// dispatched by the caller.
type SlotArrivedAction struct{}

func (SlotArrivedAction) Kind() action.Kind { return KindSlotArrived }
func (SlotArrivedAction) Effectful() bool   { return true }

func IsSlotArrivedEnabled(sub *Substate) bool {
	return sub.Phase == WonSlot || sub.Phase == WonSlotWait
}

func ReduceSlotArrived(sub *Substate, _ SlotArrivedAction) {
	sub.Phase = DiffCreateInit
}

// DiffCreatePendingAction marks the staged ledger diff request as in
// flight.
type DiffCreatePendingAction struct{}

func (DiffCreatePendingAction) Kind() action.Kind { return KindDiffCreatePending }
func (DiffCreatePendingAction) Effectful() bool   { return false }

func IsDiffCreatePendingEnabled(sub *Substate) bool { return sub.Phase == DiffCreateInit }

func ReduceDiffCreatePending(sub *Substate, _ DiffCreatePendingAction) {
	sub.Phase = DiffCreatePending
}

// DiffCreateSuccessAction records the staged ledger diff and begins block
// proving (effectful: calls the producer service's ProveBlock).
type DiffCreateSuccessAction struct {
	Diff []byte
}

func (DiffCreateSuccessAction) Kind() action.Kind { return KindDiffCreateSuccess }
func (DiffCreateSuccessAction) Effectful() bool   { return true }

func IsDiffCreateSuccessEnabled(sub *Substate) bool { return sub.Phase == DiffCreatePending }

func ReduceDiffCreateSuccess(sub *Substate, a DiffCreateSuccessAction) {
	sub.Diff = a.Diff
	sub.Phase = ProveInit
}

// DiffCreateErrorAction reports a failed diff creation, an unrecoverable
// failure for this slot: there is no partial diff to retry from, so the
// attempt is abandoned and the producer returns to Idle for the next slot.
type DiffCreateErrorAction struct{}

func (DiffCreateErrorAction) Kind() action.Kind { return KindDiffCreateError }
func (DiffCreateErrorAction) Effectful() bool   { return false }

func IsDiffCreateErrorEnabled(sub *Substate) bool { return sub.Phase == DiffCreatePending }

func ReduceDiffCreateError(sub *Substate, _ DiffCreateErrorAction) {
	sub.Phase = Error
	sub.reset()
}

// ProvePendingAction marks the block-proof request as in flight.
type ProvePendingAction struct{}

func (ProvePendingAction) Kind() action.Kind { return KindProvePending }
func (ProvePendingAction) Effectful() bool   { return false }

func IsProvePendingEnabled(sub *Substate) bool { return sub.Phase == ProveInit }

func ReduceProvePending(sub *Substate, _ ProvePendingAction) {
	sub.Phase = ProvePending
}

// ProveSuccessAction records the completed block proof; the block is now
// ready to inject into the network.
type ProveSuccessAction struct {
	Proof []byte
	Block []byte
}

func (ProveSuccessAction) Kind() action.Kind { return KindProveSuccess }
func (ProveSuccessAction) Effectful() bool   { return false }

func IsProveSuccessEnabled(sub *Substate) bool { return sub.Phase == ProvePending }

func ReduceProveSuccess(sub *Substate, a ProveSuccessAction) {
	sub.Proof = a.Proof
	sub.Block = a.Block
	sub.Phase = Produced
}

// ProveErrorAction reports a failed block proof, unrecoverable for this
// slot for the same reason diff-creation failures are: the attempt is
// abandoned.
type ProveErrorAction struct{}

func (ProveErrorAction) Kind() action.Kind { return KindProveError }
func (ProveErrorAction) Effectful() bool   { return false }

func IsProveErrorEnabled(sub *Substate) bool { return sub.Phase == ProvePending }

func ReduceProveError(sub *Substate, _ ProveErrorAction) {
	sub.Phase = Error
	sub.reset()
}

// InjectedAction marks the produced block as submitted to the network,
// completing the attempt.
type InjectedAction struct{}

func (InjectedAction) Kind() action.Kind { return KindInjected }
func (InjectedAction) Effectful() bool   { return false }

func IsInjectedEnabled(sub *Substate) bool { return sub.Phase == Produced }

func ReduceInjected(sub *Substate, _ InjectedAction) {
	sub.Phase = Injected
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package lifecycle provides the common state-machine phase patterns shared
// by every subsystem state in the dispatch core: the pure
// Init/Pending/Success/Error machine, the sequential chain of phases each
// carrying the prior phase's artifact, the iterative
// Begin/Continue/Finish/Interrupt process, and the worker phase vocabulary.
// Connection lifecycles are domain-specific and are modeled directly by the
// p2p package using the same Phase vocabulary.
package lifecycle

// Phase is the shared vocabulary every lifecycle phase enum in this module
// renders through. Concrete subsystem phase types (p2p.ConnectionPhase,
// transition.SyncPhase, producer.Phase, ...) define their own named
// constants but implement Phase so generic tooling (health checks, metrics,
// the timeout manager) can reason about "is this lifecycle terminal" and
// "is this lifecycle pending" without a subsystem-specific switch.
type Phase interface {
	// Terminal reports whether the phase is a final resting state: the
	// entity will not transition further without being recreated.
	Terminal() bool
	// Pending reports whether the phase denotes outstanding async work
	// that a timeout should be tracked against.
	Pending() bool
	String() string
}

// --- Pure lifecycle: Init -> Pending -> Success | Error ------------------

// PureState is the phase enum for the pure lifecycle.
type PureState uint8

const (
	PureInit PureState = iota
	PurePending
	PureSuccess
	PureError
)

func (p PureState) Terminal() bool { return p == PureSuccess || p == PureError }
func (p PureState) Pending() bool  { return p == PurePending }
func (p PureState) String() string {
	switch p {
	case PureInit:
		return "Init"
	case PurePending:
		return "Pending"
	case PureSuccess:
		return "Success"
	case PureError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Pure is a generic pure lifecycle: Init -> Pending -> Success(S) | Error(E).
// Subsystems embed Pure[S, E] in their own state structs rather than
// reimplementing the phase bookkeeping.
type Pure[S any, E any] struct {
	phase   PureState
	success *S
	failure *E
}

// NewPure constructs a lifecycle in its Init phase.
func NewPure[S any, E any]() Pure[S, E] {
	return Pure[S, E]{phase: PureInit}
}

func (p Pure[S, E]) Phase() PureState { return p.phase }

// ToPending transitions Init -> Pending. Reducers call this from the
// *_Pending reducer. It sets Pending unconditionally, whatever the current
// phase; callers guard it with their own enabling condition.
func (p *Pure[S, E]) ToPending() {
	p.phase = PurePending
}

// ToSuccess transitions Pending -> Success, recording the artifact the next
// consumer needs.
func (p *Pure[S, E]) ToSuccess(s S) {
	p.phase = PureSuccess
	p.success = &s
	p.failure = nil
}

// ToError transitions Pending -> Error, recording the failure detail.
func (p *Pure[S, E]) ToError(e E) {
	p.phase = PureError
	p.failure = &e
	p.success = nil
}

// Success returns the recorded success artifact, if the lifecycle is in the
// Success phase.
func (p Pure[S, E]) Success() (S, bool) {
	if p.phase != PureSuccess || p.success == nil {
		var zero S
		return zero, false
	}
	return *p.success, true
}

// Error returns the recorded failure detail, if the lifecycle is in the
// Error phase.
func (p Pure[S, E]) Error() (E, bool) {
	if p.phase != PureError || p.failure == nil {
		var zero E
		return zero, false
	}
	return *p.failure, true
}

// --- Iterative process: Begin -> (Continue)* -> Finish | Interrupt -------

// IterativeState is the phase enum for an iterative process, of which a VRF
// evaluator stepping through slots one at a time is the representative
// example.
type IterativeState uint8

const (
	IterativeBegin IterativeState = iota
	IterativeContinuing
	IterativeFinished
	IterativeInterrupted
)

func (i IterativeState) Terminal() bool {
	return i == IterativeFinished || i == IterativeInterrupted
}
func (i IterativeState) Pending() bool { return i == IterativeContinuing }
func (i IterativeState) String() string {
	switch i {
	case IterativeBegin:
		return "Begin"
	case IterativeContinuing:
		return "Continuing"
	case IterativeFinished:
		return "Finished"
	case IterativeInterrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}

// Iterative models long-running work that must never occupy the reducer
// thread: each Continue action carries a cursor of type C recording how far
// the process has walked, so a single reducer invocation only ever advances
// one step. R is the result type produced on Finish.
type Iterative[C any, R any] struct {
	phase           IterativeState
	cursor          C
	result          *R
	interruptReason string
}

// NewIterative starts a process at its Begin phase with the given initial
// cursor (e.g. slot 0 for VRF evaluation).
func NewIterative[C any, R any](initial C) Iterative[C, R] {
	return Iterative[C, R]{phase: IterativeBegin, cursor: initial}
}

func (i Iterative[C, R]) Phase() IterativeState { return i.phase }
func (i Iterative[C, R]) Cursor() C             { return i.cursor }

// Advance records one Continue step, moving to IterativeContinuing and
// storing the new cursor value (e.g. the next slot to evaluate).
func (i *Iterative[C, R]) Advance(cursor C) {
	i.phase = IterativeContinuing
	i.cursor = cursor
}

// Finish completes the process successfully.
func (i *Iterative[C, R]) Finish(result R) {
	i.phase = IterativeFinished
	i.result = &result
}

// Interrupt stops the process early, recording why. The cursor at the
// moment of interruption is left untouched; whether it names the last
// completed step or the next one depends on what the caller passed to
// Advance.
func (i *Iterative[C, R]) Interrupt(reason string) {
	i.phase = IterativeInterrupted
	i.interruptReason = reason
}

func (i Iterative[C, R]) Result() (R, bool) {
	if i.phase != IterativeFinished || i.result == nil {
		var zero R
		return zero, false
	}
	return *i.result, true
}

func (i Iterative[C, R]) InterruptReason() string { return i.interruptReason }

// --- Worker: Starting -> Idle -> Working -> Ready | Error -> Cancelling/
//     Killing -> Cancelled/Stopped ----------------------------------------

// WorkerState is the phase enum for a worker lifecycle, used e.g. by the
// external SNARK worker service contract's child-process tracking.
type WorkerState uint8

const (
	WorkerStarting WorkerState = iota
	WorkerIdle
	WorkerWorking
	WorkerReady
	WorkerError
	WorkerCancelling
	WorkerKilling
	WorkerCancelled
	WorkerStopped
)

func (w WorkerState) Terminal() bool {
	return w == WorkerCancelled || w == WorkerStopped
}
func (w WorkerState) Pending() bool {
	switch w {
	case WorkerStarting, WorkerWorking, WorkerCancelling, WorkerKilling:
		return true
	default:
		return false
	}
}
func (w WorkerState) String() string {
	switch w {
	case WorkerStarting:
		return "Starting"
	case WorkerIdle:
		return "Idle"
	case WorkerWorking:
		return "Working"
	case WorkerReady:
		return "Ready"
	case WorkerError:
		return "Error"
	case WorkerCancelling:
		return "Cancelling"
	case WorkerKilling:
		return "Killing"
	case WorkerCancelled:
		return "Cancelled"
	case WorkerStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Worker tracks a single worker's phase plus the data produced once it
// reaches Ready (e.g. a completed proof) or Error.
type Worker[R any, E any] struct {
	phase   WorkerState
	result  *R
	failure *E
}

func NewWorker[R any, E any]() Worker[R, E] {
	return Worker[R, E]{phase: WorkerStarting}
}

func (w Worker[R, E]) Phase() WorkerState { return w.phase }

func (w *Worker[R, E]) ToIdle()    { w.phase = WorkerIdle }
func (w *Worker[R, E]) ToWorking() { w.phase = WorkerWorking }
func (w *Worker[R, E]) ToReady(r R) {
	w.phase = WorkerReady
	w.result = &r
}
func (w *Worker[R, E]) ToError(e E) {
	w.phase = WorkerError
	w.failure = &e
}
func (w *Worker[R, E]) ToCancelling() { w.phase = WorkerCancelling }
func (w *Worker[R, E]) ToKilling()    { w.phase = WorkerKilling }
func (w *Worker[R, E]) ToCancelled()  { w.phase = WorkerCancelled }
func (w *Worker[R, E]) ToStopped()    { w.phase = WorkerStopped }

func (w Worker[R, E]) Result() (R, bool) {
	if w.phase != WorkerReady || w.result == nil {
		var zero R
		return zero, false
	}
	return *w.result, true
}

// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package store

import (
	"context"
	"fmt"
	"time"

	dispatchlog "github.com/luxfi/log"

	"github.com/luxfi/metric"

	"github.com/luxfi/dispatch/action"
	"github.com/luxfi/dispatch/config"
	"github.com/luxfi/dispatch/event"
	"github.com/luxfi/dispatch/health"
	"github.com/luxfi/dispatch/metrics"
	"github.com/luxfi/dispatch/service"
	"github.com/luxfi/dispatch/timeout"
)

// Handler processes one action-kind: it is expected to check the action's
// own enabling condition (typically with action.BugCondition, since a
// handler should never be invoked for an action that is not enabled — the
// Store never calls a handler itself without having already been asked to
// dispatch that exact action), call the subsystem reducer, and dispatch any
// follow-up actions or effects.
type Handler func(st *State, disp action.Dispatcher, now time.Time, a action.Action)

// Options configures a Store at construction time.
type Options struct {
	Logger   dispatchlog.Logger
	Services service.Handle
	Metrics  *metrics.DispatchMetrics
	// Registry, when set, is gathered by the Store's own "metrics" health
	// check (a *prometheus.Registry satisfies metric.Gatherer, so the same
	// registry passed to metrics.NewDispatchMetrics belongs here too).
	Registry        metric.Gatherer
	Config          config.Config
	Thresholds      health.Thresholds
	EventBuffer     int
	StrictBugChecks bool
}

// Store is the single-threaded action queue and dispatch loop: it
// processes one action to completion before beginning the next, gates
// every dispatch through its handler, and owns the composite State no
// other goroutine may touch.
type Store struct {
	state      *State
	services   service.Handle
	events     *event.Source
	logger     dispatchlog.Logger
	metrics    *metrics.DispatchMetrics
	timeouts   *timeout.Manager[string]
	config     config.Config
	health     *health.Aggregator
	thresholds health.Thresholds

	handlers   map[action.Kind]Handler
	conditions map[action.Kind]EnablingCondition
	queue      []action.Action
	seq        uint64
	nextReq    uint64
}

// New constructs a Store with a fresh composite State. opts.Config is
// carried for the lifetime of the Store and never mutated by any
// handler — it is read-only context (genesis schedule, network profile,
// quorum sizing), not part of the dispatched State.
func New(opts Options) *Store {
	action.SetStrictMode(opts.StrictBugChecks)
	buf := opts.EventBuffer
	if buf <= 0 {
		buf = opts.Config.EventQueue
	}
	if buf <= 0 {
		buf = 256
	}
	thresholds := opts.Thresholds
	if thresholds == (health.Thresholds{}) {
		thresholds = health.DefaultThresholds()
	}
	s := &Store{
		state:      NewState(),
		services:   opts.Services,
		events:     event.NewSource(buf),
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		timeouts:   timeout.NewManager[string](),
		config:     opts.Config,
		health:     health.NewAggregator(),
		thresholds: thresholds,
		handlers:   make(map[action.Kind]Handler),
		conditions: make(map[action.Kind]EnablingCondition),
	}
	s.health.Register("queue", queueChecker{s})
	if opts.Registry != nil {
		s.health.Register("metrics", health.GathererCheck{Name: "metrics", Gatherer: opts.Registry})
	}
	s.wireEvents()
	s.wireP2P()
	s.wireTransition()
	s.wireProducer()
	s.wireVerify()
	return s
}

// HealthCheck folds every registered health signal — the Store's own queue
// and event-backlog depth, plus an optional metrics registry — into one
// Report. It implements health.Checker so a Store can itself be registered
// into a parent Aggregator.
func (s *Store) HealthCheck(ctx context.Context) (health.Report, error) {
	return s.health.Check(ctx), nil
}

// queueChecker reports the Store's own action-queue and event-backlog
// depth against its configured Thresholds.
type queueChecker struct{ s *Store }

func (q queueChecker) HealthCheck(context.Context) (health.Report, error) {
	queueDepth := len(q.s.queue)
	eventBacklog := q.s.events.Len()
	healthy := queueDepth <= q.s.thresholds.MaxQueueDepth && eventBacklog <= q.s.thresholds.MaxEventBacklog
	return health.Report{
		Healthy: healthy,
		Checks: []health.Check{{
			Name:    "queue",
			Healthy: healthy,
			Details: map[string]interface{}{
				"queue_depth":   queueDepth,
				"event_backlog": eventBacklog,
			},
		}},
	}, nil
}

// State exposes the composite state for read-only inspection (tests,
// health checks, RPC snapshot reads). Handlers reach it only through the
// dispatch loop.
func (s *Store) State() *State { return s.state }

// Config returns the process-wide configuration the Store was built with.
func (s *Store) Config() config.Config { return s.config }

// Events exposes the Source so services can Emit/TryEmit into it and so
// wiring code can call RegisterTranslator.
func (s *Store) Events() *event.Source { return s.events }

// Timeouts exposes the deadline manager so subsystem wiring can Register
// pending requests against it.
func (s *Store) Timeouts() *timeout.Manager[string] { return s.timeouts }

// NextRequestID mints a fresh, process-unique service.RequestID.
func (s *Store) NextRequestID() service.RequestID {
	s.nextReq++
	return service.RequestID(s.nextReq)
}

// Register wires the handler for one action kind. Subsystem wiring code
// calls this once per action type at Store-construction time; registering
// the same kind twice is a wiring bug.
func (s *Store) Register(k action.Kind, h Handler) {
	if _, exists := s.handlers[k]; exists {
		panic(fmt.Sprintf("store: handler already registered for action kind %q", k.String()))
	}
	s.handlers[k] = h
}

// Dispatch enqueues a for processing. Safe to call both from outside the
// dispatch loop (the initial action that starts everything) and from
// inside a handler (a reducer's follow-up action): either way it only
// appends to the queue, preserving the single-threaded "one action runs to
// completion before the next begins" guarantee.
func (s *Store) Dispatch(a action.Action) {
	s.queue = append(s.queue, a)
}

// ProcessNext pops and fully processes the head of the queue, using now as
// the dispatch-time timestamp (from the time service in production, from a
// Fixed clock during replay). Returns false if the queue was empty.
func (s *Store) ProcessNext(now time.Time) bool {
	if len(s.queue) == 0 {
		return false
	}
	a := s.queue[0]
	s.queue = s.queue[1:]
	s.seq++

	kind := a.Kind()
	s.logDispatch(kind, a, now)

	if !s.isEnabled(now, a) {
		// spec.md §4.1: an action whose enabling condition is false at
		// dispatch time is silently dropped — no reducer, no effect, no
		// bug_condition escalation. This is the declarative counterpart to
		// the defensive bug_condition check a reducer may still perform.
		if s.logger != nil {
			s.logger.Debug("store: dropping action, enabling condition false", "kind", kind.String())
		}
		return true
	}

	start := time.Now()
	h, ok := s.handlers[kind]
	if ok {
		h(s.state, s, now, a)
	} else if s.logger != nil {
		s.logger.Warn("store: no handler registered for action kind", "kind", kind.String())
	}
	if s.metrics != nil {
		s.metrics.ObserveDispatch(kind.String(), time.Since(start).Seconds(), len(s.queue))
		s.metrics.ObserveEventBacklog(s.events.Len())
	}
	return true
}

// DrainQueue processes every action currently queued, including follow-ups
// dispatched while draining, until the queue is empty. now is re-read from
// the Time service before each action so a long drain still reflects
// advancing wall-clock time (a no-op under a Fixed clock).
func (s *Store) DrainQueue() {
	for {
		now := time.Now()
		if s.services.Time != nil {
			now = s.services.Time.Now()
		}
		if !s.ProcessNext(now) {
			return
		}
	}
}

// PumpEvents drains any events currently buffered on the Source, wrapping
// and dispatching each as a NewEventAction, then drains the resulting
// queue. This is the Store's one blocking-free suspension point (b) from
// the concurrency model: events arrive asynchronously, but translating and
// reducing them happens synchronously on the Store's own thread.
func (s *Store) PumpEvents() {
	for {
		select {
		case e := <-s.events.Chan():
			s.Dispatch(event.NewEventAction{Event: e})
			s.DrainQueue()
		default:
			return
		}
	}
}

// CheckTimeouts scans the timeout manager for everything expired at now
// and returns their ids, removing them from the manager. Subsystem wiring
// is responsible for dispatching the appropriate Error action for each
// expired id; the Store itself has no opinion on what a timeout means to a
// particular subsystem.
func (s *Store) CheckTimeouts(now time.Time) []string {
	return s.timeouts.Expired(now)
}

func (s *Store) logDispatch(kind action.Kind, a action.Action, now time.Time) {
	if s.logger == nil {
		return
	}
	fields := []any{"seq", s.seq, "time", now}
	if fielder, ok := a.(action.Fielder); ok {
		fields = append(fields, fielder.LogFields()...)
	}
	switch kind.Level() {
	case action.LevelWarn, action.LevelError:
		s.logger.Warn("dispatch: "+kind.String(), fields...)
	default:
		s.logger.Debug("dispatch: "+kind.String(), fields...)
	}
}

var _ action.Dispatcher = (*Store)(nil)

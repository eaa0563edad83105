// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

// Package health aggregates the Store's own liveness signals: action queue
// depth and event-channel backlog, plus any other registered Checker. The
// age of pending lifecycles is not checked.
package health

import (
	"context"
	"time"
)

// Checker is implemented by anything with a health report, mirroring the
// Store's own HealthCheck method.
type Checker interface {
	HealthCheck(ctx context.Context) (Report, error)
}

// Check is one named health signal.
type Check struct {
	Name    string                 `json:"name"`
	Healthy bool                   `json:"healthy"`
	Error   string                 `json:"error,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Report aggregates every Check into one healthy/unhealthy verdict.
type Report struct {
	Healthy  bool          `json:"healthy"`
	Checks   []Check       `json:"checks,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Thresholds configures when the Store's own checks flip unhealthy.
type Thresholds struct {
	// MaxQueueDepth is the action queue length above which the Store is
	// considered backed up.
	MaxQueueDepth int
	// MaxEventBacklog is the EventSource channel length above which the
	// Store is considered unable to keep up with services.
	MaxEventBacklog int
	// MaxPendingAge is a limit on how long a lifecycle may sit in a
	// Pending-like phase. No check in this module reads it.
	MaxPendingAge time.Duration
}

// DefaultThresholds returns reasonable defaults for a single-node deployment.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxQueueDepth:   4096,
		MaxEventBacklog: 4096,
		MaxPendingAge:   30 * time.Second,
	}
}

// Aggregator composes named Checkers into a single Report. The Store
// registers its own "queue" check and, when given a metrics registry, a
// "metrics" GathererCheck; no per-subsystem checks are registered.
type Aggregator struct {
	checkers map[string]Checker
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{checkers: make(map[string]Checker)}
}

// Register adds a named Checker. A second Register under the same name
// replaces the previous one.
func (a *Aggregator) Register(name string, c Checker) {
	a.checkers[name] = c
}

// Unregister removes a Checker, e.g. when its owning subsystem is torn down.
func (a *Aggregator) Unregister(name string) {
	delete(a.checkers, name)
}

// Check runs every registered Checker and folds the results into one
// Report. An individual Checker's error marks that one Check unhealthy
// without aborting the others.
func (a *Aggregator) Check(ctx context.Context) Report {
	start := time.Now()
	report := Report{Healthy: true}
	for name, c := range a.checkers {
		r, err := c.HealthCheck(ctx)
		if err != nil {
			report.Healthy = false
			report.Checks = append(report.Checks, Check{Name: name, Healthy: false, Error: err.Error()})
			continue
		}
		if !r.Healthy {
			report.Healthy = false
		}
		report.Checks = append(report.Checks, r.Checks...)
	}
	report.Duration = time.Since(start)
	return report
}

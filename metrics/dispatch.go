// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import "github.com/prometheus/client_golang/prometheus"

// DispatchMetrics are the Store's own per-dispatch observability signals:
// one counter per action kind, a queue-depth gauge sampled after every
// process_next, and a histogram of reducer wall-clock duration used to
// catch a reducer that has started doing real work instead of delegating
// to a service.
type DispatchMetrics struct {
	ActionsTotal   *prometheus.CounterVec
	QueueDepth     prometheus.Gauge
	ReducerLatency *prometheus.HistogramVec
	EventBacklog   prometheus.Gauge
}

// NewDispatchMetrics constructs and registers the Store's metrics against reg.
func NewDispatchMetrics(reg prometheus.Registerer) (*DispatchMetrics, error) {
	m := &DispatchMetrics{
		ActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_actions_total",
			Help: "Total actions dispatched, by action kind.",
		}, []string{"kind"}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dispatch_queue_depth",
			Help: "Current length of the action queue.",
		}),
		ReducerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dispatch_reducer_duration_seconds",
			Help:    "Wall-clock time spent inside a single reducer invocation, by action kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		EventBacklog: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dispatch_event_backlog",
			Help: "Current length of the EventSource channel.",
		}),
	}
	for _, c := range []prometheus.Collector{m.ActionsTotal, m.QueueDepth, m.ReducerLatency, m.EventBacklog} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveDispatch records one completed action dispatch.
func (m *DispatchMetrics) ObserveDispatch(kind string, reducerSeconds float64, queueDepth int) {
	m.ActionsTotal.WithLabelValues(kind).Inc()
	m.ReducerLatency.WithLabelValues(kind).Observe(reducerSeconds)
	m.QueueDepth.Set(float64(queueDepth))
}

// ObserveEventBacklog records the EventSource channel's current length.
func (m *DispatchMetrics) ObserveEventBacklog(n int) {
	m.EventBacklog.Set(float64(n))
}

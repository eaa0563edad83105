// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package health

import (
	"context"

	"github.com/luxfi/metric"
)

// GathererCheck wraps a metric.Gatherer as a Checker: Gather failing is
// itself a liveness signal, since it means a registered collector (e.g. the
// Store's own DispatchMetrics registry) can no longer be scraped.
type GathererCheck struct {
	Name     string
	Gatherer metric.Gatherer
}

// HealthCheck runs Gather once and reports the number of metric families it
// returned. A Gather error marks the check unhealthy.
func (g GathererCheck) HealthCheck(_ context.Context) (Report, error) {
	families, err := g.Gatherer.Gather()
	if err != nil {
		return Report{}, err
	}
	return Report{
		Healthy: true,
		Checks: []Check{{
			Name:    g.Name,
			Healthy: true,
			Details: map[string]interface{}{"metric_families": len(families)},
		}},
	}, nil
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNewDispatchMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewDispatchMetrics(reg)
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestObserveDispatchIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewDispatchMetrics(reg)
	require.NoError(t, err)

	m.ObserveDispatch("P2pConnectionOutgoingInit", 0.001, 3)

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, metricFamilies)
}

func TestDoubleRegisterFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewDispatchMetrics(reg)
	require.NoError(t, err)

	_, err = NewDispatchMetrics(reg)
	require.Error(t, err)
}

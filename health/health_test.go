package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	report Report
	err    error
}

func (f fakeChecker) HealthCheck(context.Context) (Report, error) {
	return f.report, f.err
}

func TestAggregatorAllHealthy(t *testing.T) {
	a := NewAggregator()
	a.Register("p2p", fakeChecker{report: Report{Healthy: true, Checks: []Check{{Name: "p2p", Healthy: true}}}})
	a.Register("sync", fakeChecker{report: Report{Healthy: true, Checks: []Check{{Name: "sync", Healthy: true}}}})

	r := a.Check(context.Background())
	require.True(t, r.Healthy)
	require.Len(t, r.Checks, 2)
}

func TestAggregatorOneUnhealthyFailsAll(t *testing.T) {
	a := NewAggregator()
	a.Register("p2p", fakeChecker{report: Report{Healthy: true}})
	a.Register("sync", fakeChecker{err: errors.New("sync stalled")})

	r := a.Check(context.Background())
	require.False(t, r.Healthy)
	require.Len(t, r.Checks, 1)
	require.Equal(t, "sync stalled", r.Checks[0].Error)
}

func TestAggregatorUnregister(t *testing.T) {
	a := NewAggregator()
	a.Register("p2p", fakeChecker{report: Report{Healthy: true}})
	a.Unregister("p2p")

	r := a.Check(context.Background())
	require.True(t, r.Healthy)
	require.Empty(t, r.Checks)
}

package timeout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExpiredReturnsOnlyPastDeadlines(t *testing.T) {
	m := NewManager[uint64]()
	t0 := time.Unix(1000, 0)
	m.Register(1, t0, 10*time.Millisecond)
	m.Register(2, t0, time.Second)

	expired := m.Expired(t0.Add(20 * time.Millisecond))
	require.Equal(t, []uint64{1}, expired)
	require.Equal(t, 1, m.Len())
}

func TestExpiredRemovesReportedIDs(t *testing.T) {
	m := NewManager[uint64]()
	t0 := time.Unix(1000, 0)
	m.Register(1, t0, time.Millisecond)

	first := m.Expired(t0.Add(time.Second))
	require.Equal(t, []uint64{1}, first)

	second := m.Expired(t0.Add(time.Second))
	require.Empty(t, second)
}

func TestRemoveClearsDeadline(t *testing.T) {
	m := NewManager[uint64]()
	t0 := time.Unix(1000, 0)
	m.Register(1, t0, time.Millisecond)
	m.Remove(1)

	require.Empty(t, m.Expired(t0.Add(time.Second)))
}

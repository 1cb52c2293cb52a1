package timedmap

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestGetEvictsLazily(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, 100*time.Millisecond)
	m.Set("b", 2, 200*time.Millisecond)
	m.Set("c", 3, 300*time.Millisecond)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 3, m.Len())

	clock.Advance(120 * time.Millisecond)
	_, ok = m.Get("a")
	require.False(t, ok)
	v, ok = m.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 2, m.Len())

	// 读取已把过期条目从表中物理删除，无需任何 sweep。
	_, present := m.Peek("a")
	require.False(t, present)

	clock.Advance(100 * time.Millisecond)
	_, ok = m.Get("b")
	require.False(t, ok)
	v, ok = m.Get("c")
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, 1, m.Len())
}

func TestContainsMatchesGet(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, 10*time.Millisecond)
	require.True(t, m.Contains("a"))
	require.False(t, m.Contains("missing"))

	clock.Advance(11 * time.Millisecond)
	require.False(t, m.Contains("a"))
	_, present := m.Peek("a")
	require.False(t, present)
}

func TestSetOverwrites(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, 10*time.Millisecond)
	m.Set("a", 2, time.Hour)
	require.Equal(t, 1, m.Len())

	clock.Advance(time.Minute)
	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestRemoveTombstone(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, 100*time.Millisecond)
	m.Set("b", 2, 100*time.Millisecond)

	v, ok := m.Remove("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.False(t, m.Contains("a"))

	_, ok = m.Remove("a")
	require.False(t, ok)

	// 过期未清理的条目：物理删除，但对调用方报告缺失。
	m.Set("x", 9, 10*time.Millisecond)
	clock.Advance(11 * time.Millisecond)
	_, ok = m.Remove("x")
	require.False(t, ok)
	require.False(t, m.Contains("x"))
	_, present := m.Peek("x")
	require.False(t, present)
}

func TestRefreshResetsDeadline(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, 100*time.Millisecond)
	m.Set("b", 2, 100*time.Millisecond)

	clock.Advance(60 * time.Millisecond)
	require.True(t, m.Refresh("b", 60*time.Millisecond))
	require.False(t, m.Refresh("c", 60*time.Millisecond))

	clock.Advance(50 * time.Millisecond)
	require.False(t, m.Contains("a"))
	require.True(t, m.Contains("b"))

	clock.Advance(50 * time.Millisecond)
	require.False(t, m.Contains("b"))
	require.Equal(t, 0, m.Len())
}

func TestRefreshOnExpiredEvicts(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, 10*time.Millisecond)
	clock.Advance(20 * time.Millisecond)

	require.False(t, m.Refresh("a", time.Hour))
	_, present := m.Peek("a")
	require.False(t, present)
}

func TestExtendCompoundsDeadline(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, 100*time.Millisecond)
	m.Set("b", 2, 100*time.Millisecond)

	clock.Advance(60 * time.Millisecond)
	require.True(t, m.Extend("b", 10*time.Millisecond))
	require.False(t, m.Extend("c", 10*time.Millisecond))

	v, present := m.Peek("b")
	require.True(t, present)
	require.Equal(t, time.Unix(0, 0).Add(110*time.Millisecond), v.Deadline())

	clock.Advance(50 * time.Millisecond)
	require.False(t, m.Contains("a"))
	require.True(t, m.Contains("b"))

	clock.Advance(50 * time.Millisecond)
	require.False(t, m.Contains("b"))
	require.Equal(t, 0, m.Len())
}

func TestLenAndIsEmptyDiverge(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	require.Equal(t, 0, m.Len())
	require.True(t, m.IsEmpty())

	m.Set("a", 1, 10*time.Millisecond)
	clock.Advance(20 * time.Millisecond)

	// 表中只剩过期未清理的条目：Len 过滤，IsEmpty 不过滤。
	require.Equal(t, 0, m.Len())
	require.False(t, m.IsEmpty())

	// Len 是只读计数，不触发清除。
	_, present := m.Peek("a")
	require.True(t, present)

	m.Cleanup()
	require.True(t, m.IsEmpty())
}

func TestClear(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, time.Hour)
	m.Set("b", 2, time.Hour)
	m.Clear()

	require.Equal(t, 0, m.Len())
	require.True(t, m.IsEmpty())
	require.False(t, m.Contains("a"))
}

func TestSnapshotSkipsExpired(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, 10*time.Millisecond)
	m.Set("b", 2, time.Hour)
	clock.Advance(20 * time.Millisecond)

	snap := m.Snapshot()
	require.Equal(t, map[string]int{"b": 2}, snap)

	// 快照不触发清除。
	_, present := m.Peek("a")
	require.True(t, present)
}

func TestPeekHasNoSideEffect(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[string, int](WithClock(clock))

	m.Set("a", 1, 10*time.Millisecond)
	clock.Advance(20 * time.Millisecond)

	v, present := m.Peek("a")
	require.True(t, present)
	require.True(t, v.IsExpired())
	require.Equal(t, 1, v.Value())

	_, present = m.Peek("a")
	require.True(t, present)
}

func TestMetricsCounters(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	metrics := NewMetrics(prometheus.NewRegistry())
	m := New[string, int](WithClock(clock), WithMetrics(metrics))

	m.Set("a", 1, 10*time.Millisecond)
	m.Set("b", 2, time.Hour)

	_, _ = m.Get("a")
	_, _ = m.Get("missing")
	clock.Advance(20 * time.Millisecond)
	_, _ = m.Get("a")

	require.Equal(t, float64(2), testutil.ToFloat64(metrics.inserts))
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.hits))
	require.Equal(t, float64(2), testutil.ToFloat64(metrics.misses))
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.lazyEvictions))
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.entries))

	m.Cleanup()
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.sweeps))
}

func TestConcurrentAccess(t *testing.T) {
	clock := newFakeClock(time.Unix(0, 0))
	m := New[int, int](WithClock(clock))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := i % 17
				switch g % 4 {
				case 0:
					m.Set(key, i, time.Minute)
				case 1:
					m.Get(key)
				case 2:
					m.Refresh(key, time.Minute)
				default:
					m.Remove(key)
				}
			}
		}(g)
	}
	wg.Wait()

	// 终态没有强保证，只要求表仍然自洽可用。
	m.Set(1, 1, time.Minute)
	require.True(t, m.Contains(1))
}

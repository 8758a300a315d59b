package apphook

import (
	"sort"
	"sync"
	"time"
)

// Stats contains counters and gauges collected around hook lifecycle calls. All standard
// keys are prefixed with "apphook:".
//
// # Counters vs Gauges
//
// Counters are monotonically increasing. They propagate from child to parent: every
// hooks.Instance owns a child of its registry's Stats, so the registry always holds
// totals across all hooks, including hooks that were since replaced.
//
// Gauges can go up and down (via [Stats.IncrGauge], [Stats.SetGauge],
// [Stats.ResetGauge]). They never propagate.
//
// # Thread Safety
//
// All methods are safe for concurrent use, so a metrics scraper may read stats while the
// host is calling hooks.
type Stats struct {
	mu       sync.RWMutex
	counters map[string]int64
	gauges   map[string]float64
	parent   *Stats // nil for root
}

// NewStats creates an empty root Stats.
func NewStats() *Stats {
	return &Stats{
		counters: make(map[string]int64),
		gauges:   make(map[string]float64),
	}
}

// Child creates an empty Stats whose counters propagate to s.
func (s *Stats) Child() *Stats {
	c := NewStats()
	c.parent = s
	return c
}

// IncrCounter increments a counter by delta, creating it if needed. The increment
// propagates to the parent chain.
//
// Panics if delta is negative (counters only go up).
func (s *Stats) IncrCounter(key StatKey, delta int64) {
	if delta < 0 {
		panic("apphook: IncrCounter called with negative delta")
	}
	for cur := s; cur != nil; cur = cur.parent {
		cur.mu.Lock()
		cur.counters[string(key)] += delta
		cur.mu.Unlock()
	}
}

// GetCounter returns the current value of a counter, or 0 if not set.
func (s *Stats) GetCounter(key StatKey) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[string(key)]
}

// IncrGauge increments a gauge by delta (positive or negative).
func (s *Stats) IncrGauge(key StatKey, delta float64) {
	s.mu.Lock()
	s.gauges[string(key)] += delta
	s.mu.Unlock()
}

// SetGauge sets a gauge to a specific value.
func (s *Stats) SetGauge(key StatKey, value float64) {
	s.mu.Lock()
	s.gauges[string(key)] = value
	s.mu.Unlock()
}

// GetGauge returns the current value of a gauge, or 0.0 if not set.
func (s *Stats) GetGauge(key StatKey) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gauges[string(key)]
}

// ResetGauge sets a gauge to 0.0.
func (s *Stats) ResetGauge(key StatKey) {
	s.SetGauge(key, 0)
}

// ObserveLifecycle records one call of event that took d. The call count and accumulated
// duration propagate; the last-duration gauge stays local.
func (s *Stats) ObserveLifecycle(event Lifecycle, d time.Duration) {
	s.IncrCounter(CallsKey(event), 1)
	s.IncrCounter(DurationKey(event), int64(d))
	s.SetGauge(LastDurationKey(event), d.Seconds())
}

// GetCalls returns how many times event was recorded.
func (s *Stats) GetCalls(event Lifecycle) int64 {
	return s.GetCounter(CallsKey(event))
}

// GetDuration returns the total time recorded for event.
func (s *Stats) GetDuration(event Lifecycle) time.Duration {
	return time.Duration(s.GetCounter(DurationKey(event)))
}

// Counters returns a copy of all counters.
func (s *Stats) Counters() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]int64, len(s.counters))
	for k, v := range s.counters {
		result[k] = v
	}
	return result
}

// Gauges returns a copy of all gauges.
func (s *Stats) Gauges() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make(map[string]float64, len(s.gauges))
	for k, v := range s.gauges {
		result[k] = v
	}
	return result
}

// LifecycleStat summarizes one lifecycle event in a StatsSnapshot.
type LifecycleStat struct {
	Event   string        `yaml:"event"`
	Calls   int64         `yaml:"calls"`
	Total   time.Duration `yaml:"total"`
	Average time.Duration `yaml:"average"`
}

// StatsSnapshot is a point-in-time, serializable view of Stats.
type StatsSnapshot struct {
	Lifecycle []LifecycleStat    `yaml:"lifecycle"`
	Counters  map[string]int64   `yaml:"counters,omitempty"`
	Gauges    map[string]float64 `yaml:"gauges,omitempty"`
}

// Snapshot returns the lifecycle summary (only events that were called, in call order)
// plus every counter that is not a lifecycle key.
func (s *Stats) Snapshot() StatsSnapshot {
	snap := StatsSnapshot{
		Counters: make(map[string]int64),
		Gauges:   s.Gauges(),
	}

	lifecycleKeys := make(map[string]bool, len(Lifecycles)*2)
	for _, event := range Lifecycles {
		lifecycleKeys[string(CallsKey(event))] = true
		lifecycleKeys[string(DurationKey(event))] = true

		calls := s.GetCalls(event)
		if calls == 0 {
			continue
		}
		total := s.GetDuration(event)
		snap.Lifecycle = append(snap.Lifecycle, LifecycleStat{
			Event:   event.Short(),
			Calls:   calls,
			Total:   total,
			Average: total / time.Duration(calls),
		})
	}

	for k, v := range s.Counters() {
		if !lifecycleKeys[k] {
			snap.Counters[k] = v
		}
	}
	return snap
}

// Keys returns all counter keys in sorted order.
func (s *Stats) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.counters))
	for k := range s.counters {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

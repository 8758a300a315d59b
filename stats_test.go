package apphook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestStats_IncrCounter_Propagates(t *testing.T) {
	root := NewStats()
	child := root.Child()
	grandchild := child.Child()

	grandchild.IncrCounter("myplugin:saves", 2)
	child.IncrCounter("myplugin:saves", 1)

	assert.Equal(t, int64(2), grandchild.GetCounter("myplugin:saves"))
	assert.Equal(t, int64(3), child.GetCounter("myplugin:saves"))
	assert.Equal(t, int64(3), root.GetCounter("myplugin:saves"))
}

func TestStats_IncrCounter_NegativePanics(t *testing.T) {
	stats := NewStats()

	assert.PanicsWithValue(t, "apphook: IncrCounter called with negative delta", func() {
		stats.IncrCounter("x", -1)
	})
}

func TestStats_Gauges_DoNotPropagate(t *testing.T) {
	root := NewStats()
	child := root.Child()

	child.SetGauge("g", 2.5)
	child.IncrGauge("g", -1)

	assert.Equal(t, 1.5, child.GetGauge("g"))
	assert.Equal(t, 0.0, root.GetGauge("g"))

	child.ResetGauge("g")
	assert.Equal(t, 0.0, child.GetGauge("g"))
}

func TestStats_ObserveLifecycle(t *testing.T) {
	root := NewStats()
	child := root.Child()

	child.ObserveLifecycle(LifecycleBeforeFileSave, 30*time.Millisecond)
	child.ObserveLifecycle(LifecycleBeforeFileSave, 10*time.Millisecond)

	assert.Equal(t, int64(2), child.GetCalls(LifecycleBeforeFileSave))
	assert.Equal(t, 40*time.Millisecond, child.GetDuration(LifecycleBeforeFileSave))
	assert.Equal(t, 0.01, child.GetGauge(LastDurationKey(LifecycleBeforeFileSave)))

	assert.Equal(t, int64(2), root.GetCalls(LifecycleBeforeFileSave))
	assert.Equal(t, 0.0, root.GetGauge(LastDurationKey(LifecycleBeforeFileSave)))
}

func TestStats_CountersReturnsCopy(t *testing.T) {
	stats := NewStats()
	stats.IncrCounter("a", 1)

	counters := stats.Counters()
	counters["a"] = 100

	assert.Equal(t, int64(1), stats.GetCounter("a"))
}

func TestStats_Snapshot(t *testing.T) {
	stats := NewStats()
	stats.ObserveLifecycle(LifecycleStartup, 4*time.Millisecond)
	stats.ObserveLifecycle(LifecycleAfterOpenFile, 2*time.Millisecond)
	stats.ObserveLifecycle(LifecycleAfterOpenFile, 4*time.Millisecond)
	stats.IncrCounter(KeyInstantiations, 1)

	snap := stats.Snapshot()

	assert.Equal(t, []LifecycleStat{
		{Event: "startup", Calls: 1, Total: 4 * time.Millisecond, Average: 4 * time.Millisecond},
		{Event: "open_file:after", Calls: 2, Total: 6 * time.Millisecond, Average: 3 * time.Millisecond},
	}, snap.Lifecycle)
	assert.Equal(t, map[string]int64{string(KeyInstantiations): 1}, snap.Counters)

	out, err := yaml.Marshal(snap)
	assert.NoError(t, err)
	assert.Contains(t, string(out), "event: open_file:after")
}

func TestStats_Keys_Sorted(t *testing.T) {
	stats := NewStats()
	stats.IncrCounter("b", 1)
	stats.IncrCounter("a", 1)

	assert.Equal(t, []string{"a", "b"}, stats.Keys())
}

func TestLifecycle_Short(t *testing.T) {
	assert.Equal(t, "open_file:before", LifecycleBeforeOpenFile.Short())
	assert.Equal(t, "startup", LifecycleStartup.Short())
	assert.Equal(t, "custom", Lifecycle("custom").Short())
	assert.Equal(t, StatKey("apphook:calls:file_save:after"), CallsKey(LifecycleAfterFileSave))
}

func TestNopHook_ImplementsHook(t *testing.T) {
	var h Hook = NopHook{}

	assert.NotPanics(t, func() {
		h.Startup()
		h.BeforeOpenFile()
		h.AfterOpenFile()
		h.BeforeFileSave()
		h.AfterFileSave()
		h.Shutdown()
	})
}

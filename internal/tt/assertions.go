package tt

import (
	"testing"

	"github.com/rickchristie/apphook"
	"github.com/stretchr/testify/assert"
)

// AssertCalls checks the number of recorded calls for every lifecycle event. Events not
// in want are expected to have zero calls.
func AssertCalls(t *testing.T, stats *apphook.Stats, want map[apphook.Lifecycle]int64) {
	t.Helper()
	for _, event := range apphook.Lifecycles {
		assert.Equal(t, want[event], stats.GetCalls(event), "calls for %s", event)
	}
}

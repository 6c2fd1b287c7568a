package wmassign

import (
	"github.com/flowmatic/streaming/metrics"
)

// idleTracker decides whether the source has been quiet for longer than the
// idle timeout, for reasons other than the pipeline being unable to drain
// output. While the task is back-pressured the absence of input is
// throttling, not idleness, so blocked time never counts: the activity clock
// is reset on every check that observes backpressure and accounting restarts
// once the gauges clear.
type idleTracker struct {
	timeoutMillis int64
	ioMetrics     *metrics.IOMetrics
	//wall-clock time of the most recent accepted record
	lastActivity int64
}

func (t *idleTracker) enabled() bool {
	return t.timeoutMillis > 0
}

func (t *idleTracker) activity(now int64) {
	t.lastActivity = now
}

func (t *idleTracker) idle(now int64) bool {
	if !t.enabled() {
		return false
	}
	if t.ioMetrics.BackPressured() {
		t.lastActivity = now
		return false
	}
	return now-t.lastActivity > t.timeoutMillis
}

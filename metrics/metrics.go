package metrics

import (
	"sync"
	"time"

	"github.com/uber-go/tally/v4"
)

// TimeGauge accumulates the wall-clock time during which some condition
// holds. MarkStart/MarkEnd bracket the condition; Measuring reports whether
// it currently holds. The accumulated total is published to a tally gauge in
// milliseconds on every mark.
type TimeGauge struct {
	mu          sync.Mutex
	gauge       tally.Gauge
	accumulated time.Duration
	startedAt   time.Time
	measuring   bool
	nowFn       func() time.Time
}

func NewTimeGauge(scope tally.Scope, name string) *TimeGauge {
	return &TimeGauge{
		gauge: scope.Gauge(name),
		nowFn: time.Now,
	}
}

func (g *TimeGauge) MarkStart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.measuring {
		return
	}
	g.measuring = true
	g.startedAt = g.nowFn()
}

func (g *TimeGauge) MarkEnd() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.measuring {
		return
	}
	g.measuring = false
	g.accumulated += g.nowFn().Sub(g.startedAt)
	g.gauge.Update(float64(g.accumulated / time.Millisecond))
}

func (g *TimeGauge) Measuring() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.measuring
}

// Accumulated includes the in-flight measurement if one is running.
func (g *TimeGauge) Accumulated() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.measuring {
		return g.accumulated + g.nowFn().Sub(g.startedAt)
	}
	return g.accumulated
}

// IOMetrics is the per-task IO metric group. The hard and soft
// back-pressured gauges are marked by the output side of the task; operators
// poll BackPressured to distinguish throttling from source idleness.
type IOMetrics struct {
	RecordsIn         tally.Counter
	RecordsOut        tally.Counter
	WatermarksOut     tally.Counter
	HardBackPressured *TimeGauge
	SoftBackPressured *TimeGauge
}

func NewIOMetrics(scope tally.Scope) *IOMetrics {
	return &IOMetrics{
		RecordsIn:         scope.Counter("records_in"),
		RecordsOut:        scope.Counter("records_out"),
		WatermarksOut:     scope.Counter("watermarks_out"),
		HardBackPressured: NewTimeGauge(scope, "hard_back_pressured_time_ms"),
		SoftBackPressured: NewTimeGauge(scope, "soft_back_pressured_time_ms"),
	}
}

// BackPressured reports whether the task is currently blocked on output,
// hard or soft. Both block forward progress equivalently.
func (m *IOMetrics) BackPressured() bool {
	return m.HardBackPressured.Measuring() || m.SoftBackPressured.Measuring()
}

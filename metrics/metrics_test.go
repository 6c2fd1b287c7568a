package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally/v4"
)

func TestTimeGaugeMeasuring(t *testing.T) {
	gauge := NewTimeGauge(tally.NoopScope, "test")
	assert.False(t, gauge.Measuring())

	gauge.MarkStart()
	assert.True(t, gauge.Measuring())
	//duplicate starts are no-ops
	gauge.MarkStart()
	assert.True(t, gauge.Measuring())

	gauge.MarkEnd()
	assert.False(t, gauge.Measuring())
	gauge.MarkEnd()
	assert.False(t, gauge.Measuring())
}

func TestTimeGaugeAccumulates(t *testing.T) {
	gauge := NewTimeGauge(tally.NoopScope, "test")
	now := time.Unix(0, 0)
	gauge.nowFn = func() time.Time { return now }

	gauge.MarkStart()
	now = now.Add(100 * time.Millisecond)
	gauge.MarkEnd()
	assert.Equal(t, 100*time.Millisecond, gauge.Accumulated())

	gauge.MarkStart()
	now = now.Add(50 * time.Millisecond)
	//in-flight measurement is included
	assert.Equal(t, 150*time.Millisecond, gauge.Accumulated())
	gauge.MarkEnd()
	assert.Equal(t, 150*time.Millisecond, gauge.Accumulated())
}

func TestIOMetricsBackPressured(t *testing.T) {
	ioMetrics := NewIOMetrics(tally.NoopScope)
	assert.False(t, ioMetrics.BackPressured())

	ioMetrics.HardBackPressured.MarkStart()
	assert.True(t, ioMetrics.BackPressured())
	ioMetrics.HardBackPressured.MarkEnd()
	assert.False(t, ioMetrics.BackPressured())

	ioMetrics.SoftBackPressured.MarkStart()
	assert.True(t, ioMetrics.BackPressured())
	ioMetrics.SoftBackPressured.MarkEnd()
	assert.False(t, ioMetrics.BackPressured())
}

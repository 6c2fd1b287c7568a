package wmassign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTimerInterval(t *testing.T) {
	assert.Equal(t, int64(5), CalculateTimerInterval(5, 0))
	assert.Equal(t, int64(5), CalculateTimerInterval(5, -1))

	assert.Equal(t, int64(5), CalculateTimerInterval(0, 5))
	assert.Equal(t, int64(5), CalculateTimerInterval(-1, 5))

	assert.Equal(t, int64(1), CalculateTimerInterval(5, 42))
	assert.Equal(t, int64(1), CalculateTimerInterval(42, 5))

	assert.Equal(t, int64(2), CalculateTimerInterval(2, 4))
	assert.Equal(t, int64(2), CalculateTimerInterval(4, 2))

	assert.Equal(t, int64(10), CalculateTimerInterval(100, 110))
	assert.Equal(t, int64(10), CalculateTimerInterval(110, 100))
}

func TestCalculateTimerIntervalBothDisabled(t *testing.T) {
	assert.Equal(t, DefaultTimerIntervalMillis, CalculateTimerInterval(0, 0))
	assert.Equal(t, DefaultTimerIntervalMillis, CalculateTimerInterval(-1, -1))
}

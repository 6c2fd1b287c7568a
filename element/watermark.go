package element

import "math"

// Watermark asserts that no later record will carry an event timestamp
// less than or equal to its value, except MaxWatermark.
type Watermark int64

const (
	// MinWatermark is the value before any watermark has been emitted.
	MinWatermark Watermark = math.MinInt64
	// MaxWatermark is the terminal watermark, emitted exactly once when an
	// operator shuts down. No real watermark may follow it.
	MaxWatermark Watermark = math.MaxInt64
)

// WatermarkStatus tells downstream consumers whether to keep waiting for
// this channel's watermark contribution before advancing a merged watermark.
type WatermarkStatus uint

const (
	ActiveWatermarkStatus WatermarkStatus = iota
	IdleWatermarkStatus
)

func (s WatermarkStatus) String() string {
	switch s {
	case ActiveWatermarkStatus:
		return "ACTIVE"
	case IdleWatermarkStatus:
		return "IDLE"
	default:
		return "UNKNOWN"
	}
}

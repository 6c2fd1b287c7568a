package wmassign

// DefaultTimerIntervalMillis is the keep-alive cadence used when both the
// watermark interval and the idle timeout are disabled. At least one periodic
// tick must exist, so the two cannot both switch the timer off.
const DefaultTimerIntervalMillis int64 = 200

// CalculateTimerInterval derives the cadence of the single periodic
// processing-time timer from the configured watermark-emission interval and
// idle-detection timeout, both in milliseconds. A value <= 0 disables the
// corresponding cadence. When both are active the gcd guarantees the timer
// fires on every timestamp at which either cadence needs to be checked;
// min() would miss boundaries for intervals like 100 and 110.
func CalculateTimerInterval(watermarkInterval, idleTimeout int64) int64 {
	switch {
	case watermarkInterval > 0 && idleTimeout > 0:
		return gcd(watermarkInterval, idleTimeout)
	case watermarkInterval > 0:
		return watermarkInterval
	case idleTimeout > 0:
		return idleTimeout
	default:
		return DefaultTimerIntervalMillis
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

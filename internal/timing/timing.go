// Package timing converts presentation-clock timestamps into wall-clock
// durations.
package timing

import (
	"math"
	"time"
)

// TicksPerMillisecond is the rate of the 90 kHz presentation clock.
const TicksPerMillisecond = 90

// nanosPerNineTicks is the exact number of nanoseconds in nine ticks.
const nanosPerNineTicks = 9 * int64(time.Millisecond) / TicksPerMillisecond

// maxTicks is the largest tick value representable as a time.Duration.
const maxTicks = uint64(math.MaxInt64/nanosPerNineTicks) * 9

// ToWallClock returns ticks/90 milliseconds, truncated to the nanosecond.
// Values beyond the range of time.Duration saturate.
func ToWallClock(ticks uint64) time.Duration {
	if ticks >= maxTicks {
		return time.Duration(math.MaxInt64)
	}
	whole := int64(ticks/9) * nanosPerNineTicks
	part := int64(ticks%9) * nanosPerNineTicks / 9
	return time.Duration(whole + part)
}

// Milliseconds reports ticks as fractional milliseconds.
func Milliseconds(ticks uint64) float64 {
	return float64(ticks) / TicksPerMillisecond
}

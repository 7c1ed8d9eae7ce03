package stream

import (
	"errors"
	"fmt"
	"math"
)

// the rate at which the driver consumes events
const TicksPerSecond = 8000

// the number of bits in a packed event used for the tick value
const TickBits = 20

// MaxTicks is the first tick value that can not be packed
const MaxTicks = 1 << TickBits

// ErrTickRange is returned when a timestamp is too late in the trace to be
// represented in a packed event
var ErrTickRange = errors.New("timestamp out of range")

// Quantise converts a timestamp, measured in CPU cycles, into ticks
func Quantise(timestamp uint32, cpuClock float64) (uint32, error) {
	q := math.Floor(float64(timestamp) * TicksPerSecond / cpuClock)
	if q >= MaxTicks {
		return 0, fmt.Errorf("%w: cycle %d is tick %.0f (maximum tick is %d)",
			ErrTickRange, timestamp, q, MaxTicks-1)
	}
	return uint32(q), nil
}

// Pack the three parts of an event into a single value. the tick value is
// assumed to have come from Quantise() and so to be in range
func Pack(ticks uint32, reg uint16, data uint16) uint32 {
	return ticks | uint32(reg%16)<<28 | uint32(data&0xff)<<20
}

// Unpack is the reverse of Pack(). the register value is the lower nibble of
// the register address given to Pack()
func Unpack(v uint32) (ticks uint32, reg uint8, data uint8) {
	return v & (MaxTicks - 1), uint8(v >> 28), uint8(v >> 20)
}

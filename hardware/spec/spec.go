package spec

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/apuconv/hardware/clocks"
)

// Spec describes the timing of the console that produced a trace
type Spec struct {
	ID string

	// CPU cycles per second. timestamps in a trace are counted in CPU cycles
	CPUClock float64

	// the frame rate is only used for informational output
	FrameRate float64
}

var NTSC Spec
var PAL Spec

func init() {
	NTSC = Spec{
		ID:        "NTSC",
		CPUClock:  clocks.NTSC,
		FrameRate: 60.0988,
	}

	PAL = Spec{
		ID:        "PAL",
		CPUClock:  clocks.PAL,
		FrameRate: 50.0070,
	}
}

// Lookup returns the Spec for the ID. The ID is not case sensitive
func Lookup(id string) (Spec, error) {
	switch strings.ToUpper(id) {
	case "NTSC":
		return NTSC, nil
	case "PAL":
		return PAL, nil
	}
	return Spec{}, fmt.Errorf("spec: unsupported specification: %s", id)
}

// Seconds converts a count of CPU cycles to seconds
func (s Spec) Seconds(cycles uint32) float64 {
	return float64(cycles) / s.CPUClock
}

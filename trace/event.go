package trace

import "fmt"

// Event is a single write to a register
type Event struct {
	// number of CPU cycles since the start of the trace
	Timestamp uint32

	Register uint16

	// only the lower eight bits are meaningful
	Data uint16
}

func (ev Event) String() string {
	return fmt.Sprintf("%d %04x %02x", ev.Timestamp, ev.Register, ev.Data)
}

package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/apuconv/hardware/apu"
	"github.com/jetsetilly/apuconv/hardware/spec"
	"github.com/jetsetilly/apuconv/logger"
	"github.com/jetsetilly/apuconv/stream"
	"github.com/jetsetilly/apuconv/trace"
)

// Context is the environment the Pipeline runs in
type Context interface {
	logger.Permission
	Spec() spec.Spec
}

// Sink receives packed events. stream.Writer is an implementation of Sink
type Sink interface {
	Write(v uint32) error
}

// Source supplies events in trace order. trace.Reader is an implementation of
// Source. Next() should return io.EOF when there are no more events
type Source interface {
	Next() (trace.Event, error)
}

// ErrRegister is returned by Process() if the event is for a register outside
// the range of the APU channels
var ErrRegister = errors.New("register out of range")

// Result of processing a single event
type Result struct {
	Event   trace.Event
	Seconds float64

	// the value of the register before the event and whether the event
	// changed it
	Old     uint16
	Changed bool

	Decoded apu.Decoded

	// Emit is true if the event was sent to the Sink. the Ticks and Packed
	// fields are only valid if Emit is true
	Emit   bool
	Ticks  uint32
	Packed uint32
}

// Pipeline is the decode and encode stage of the conversion
type Pipeline struct {
	ctx  Context
	sink Sink

	// shadow copy of the APU registers
	Bank apu.RegisterBank

	// wavelengths seen in writes to the pulse timer registers
	Periods PeriodSet

	// number of events processed and the number of those events that have
	// been sent to the Sink
	Accepted int
	Emitted  int
}

// NewPipeline is the preferred method of initialisation for the Pipeline
// type. the sink can be nil, in which case eligible events are still counted
// but not written anywhere
func NewPipeline(ctx Context, sink Sink) *Pipeline {
	return &Pipeline{
		ctx:  ctx,
		sink: sink,
	}
}

// Eligible returns true if a write to the register should be sent to the
// packed event stream. writes that change the value of a register are
// eligible, as are all writes to trigger registers because those writes
// restart the channel even if the value is the same. writes to the sweep
// registers are never eligible
func Eligible(reg uint16, changed bool) bool {
	return (changed || apu.IsTrigger(reg)) && !apu.IsSweep(reg)
}

// Process a single event. the only error that can occur for an event in range
// is stream.ErrTickRange, or an error from the Sink
func (p *Pipeline) Process(ev trace.Event) (Result, error) {
	if ev.Register >= apu.Limit {
		return Result{}, fmt.Errorf("%w: %04x", ErrRegister, ev.Register)
	}

	s := p.ctx.Spec()
	p.Accepted++

	res := Result{
		Event:   ev,
		Seconds: s.Seconds(ev.Timestamp),
		Old:     p.Bank.Read(ev.Register),
	}
	res.Changed = res.Old != ev.Data

	// the description relies on the sibling registers as they were before
	// this event so the bank is updated afterwards
	res.Decoded = apu.Decode(ev.Register, ev.Data, &p.Bank, s.CPUClock)
	p.Bank.Write(ev.Register, ev.Data)

	if res.Decoded.Channel == "" {
		logger.Logf(p.ctx, "apu", "write to undescribed register %s", apu.Name(ev.Register))
	}

	if res.Decoded.HasWavelength {
		if p.Periods.Insert(res.Decoded.Wavelength) {
			logger.Logf(p.ctx, "apu", "new period %d (%.2f Hz)", res.Decoded.Wavelength,
				res.Decoded.Wavelength.Frequency(s.CPUClock))
		}
	}

	if !Eligible(ev.Register, res.Changed) {
		return res, nil
	}

	var err error
	res.Ticks, err = stream.Quantise(ev.Timestamp, s.CPUClock)
	if err != nil {
		return res, err
	}
	res.Packed = stream.Pack(res.Ticks, ev.Register, ev.Data)

	if p.sink != nil {
		if err := p.sink.Write(res.Packed); err != nil {
			return res, fmt.Errorf("stream: %w", err)
		}
	}

	res.Emit = true
	p.Emitted++

	return res, nil
}

// Run processes every event from the Source. the function f is called with
// the result of every event, including the event that caused an error, if
// any. f may be nil
func (p *Pipeline) Run(src Source, f func(Result)) error {
	for {
		ev, err := src.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		res, err := p.Process(ev)
		if f != nil && !errors.Is(err, ErrRegister) {
			f(res)
		}
		if err != nil {
			return err
		}
	}
}

// Summary of the Pipeline after all events have been processed
type Summary struct {
	Accepted int
	Emitted  int
	Periods  []apu.Wavelength
}

func (p *Pipeline) Summary() Summary {
	return Summary{
		Accepted: p.Accepted,
		Emitted:  p.Emitted,
		Periods:  p.Periods.Sorted(),
	}
}

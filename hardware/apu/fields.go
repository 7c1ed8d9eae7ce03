package apu

import "fmt"

// Duty is the breakdown of the first register of a pulse channel
type Duty struct {
	// one of four duty cycles (12.5%, 25%, 50% and 25% negated)
	Duty uint8

	// the envelope loop flag is also the length counter halt flag
	Loop bool

	// if Constant is true then Volume is the volume of the channel. otherwise
	// it is the period of the envelope divider
	Constant bool
	Volume   uint8
}

func DecodeDuty(data uint8) Duty {
	return Duty{
		Duty:     data >> 6,
		Loop:     (data>>5)&0x01 == 0x01,
		Constant: (data>>4)&0x01 == 0x01,
		Volume:   data & 0x0f,
	}
}

func (d Duty) String() string {
	return fmt.Sprintf("Duty: %d Loop: %d Constant volume: %d Volume/Rate: %d",
		d.Duty, bit(d.Loop), bit(d.Constant), d.Volume)
}

// Sweep is the breakdown of the second register of a pulse channel
type Sweep struct {
	Enabled bool

	// the divider period is stored in the register as P-1. the Period field is
	// the real period
	Period uint8
	Negate bool
	Shift  uint8
}

func DecodeSweep(data uint8) Sweep {
	return Sweep{
		Enabled: data&0x80 == 0x80,
		Period:  ((data >> 4) & 0x07) + 1,
		Negate:  (data>>3)&0x01 == 0x01,
		Shift:   data & 0x07,
	}
}

// the period, direction and shift values are only meaningful if the sweep unit
// is enabled
func (s Sweep) String() string {
	if !s.Enabled {
		return "Sweep enabled: 0"
	}
	return fmt.Sprintf("Sweep enabled: 1 Period: %d Direction: %d Shift: %d",
		s.Period, bit(s.Negate), s.Shift)
}

// Wavelength is the 11 bit timer period of a pulse channel. it is split over
// the third and fourth registers of the channel
type Wavelength uint16

// WavelengthFromLow reassembles the timer period from a write to the low
// register. the high bits come from the last value written to the high
// register
func WavelengthFromLow(data uint8, hi uint16) Wavelength {
	return Wavelength((hi&0x07)<<8 | uint16(data))
}

// WavelengthFromHigh reassembles the timer period from a write to the high
// register. the low bits come from the last value written to the low
// register
func WavelengthFromHigh(data uint8, lo uint16) Wavelength {
	return Wavelength(uint16(data&0x07)<<8 | lo&0xff)
}

// Frequency of the pulse channel's output for the CPU clock
func (w Wavelength) Frequency(cpuClock float64) float64 {
	return cpuClock / (16.0 * (float64(w) + 1))
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

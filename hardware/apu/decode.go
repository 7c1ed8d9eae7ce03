package apu

import "fmt"

// Decoded is the result of describing a single register write
type Decoded struct {
	// short name of the channel the register belongs to. empty for registers
	// that have no meaning to this package
	Channel string

	// description of the register write without the channel name
	Detail string

	// HasWavelength is true if the write was to one of the pulse channel
	// timer registers. Wavelength is the reassembled timer period
	HasWavelength bool
	Wavelength    Wavelength

	// Trigger is true if the write restarts the channel
	Trigger bool
}

func (d Decoded) String() string {
	if d.Channel == "" {
		return d.Detail
	}
	return fmt.Sprintf("%s: %s", d.Channel, d.Detail)
}

// Decode describes the write of data to reg. the RegisterBank supplies the
// value of sibling registers and should not yet have been updated with the
// write being decoded. the cpuClock is used to calculate the frequency of
// the pulse channels
//
// writes to unknown registers return an empty Decoded value
func Decode(reg uint16, data uint16, bank *RegisterBank, cpuClock float64) Decoded {
	v := uint8(data)

	switch reg {
	case SQ1_VOL, SQ2_VOL:
		return Decoded{
			Channel: pulseChannel(reg),
			Detail:  DecodeDuty(v).String(),
		}

	case SQ1_SWEEP, SQ2_SWEEP:
		return Decoded{
			Channel: pulseChannel(reg),
			Detail:  DecodeSweep(v).String(),
		}

	case SQ1_LO, SQ2_LO:
		w := WavelengthFromLow(v, bank.Read(reg+1))
		return Decoded{
			Channel:       pulseChannel(reg),
			Detail:        fmt.Sprintf("Timer low bits, period set to %d (%.2f Hz)", w, w.Frequency(cpuClock)),
			HasWavelength: true,
			Wavelength:    w,
		}

	case SQ1_HI, SQ2_HI:
		w := WavelengthFromHigh(v, bank.Read(reg-1))
		l := v >> 3
		return Decoded{
			Channel: pulseChannel(reg),
			Detail: fmt.Sprintf("TRIGGER Length: %d (%d) period: %d (%.2f Hz)",
				l, LengthTicks(l), w, w.Frequency(cpuClock)),
			HasWavelength: true,
			Wavelength:    w,
			Trigger:       true,
		}

	// the triangle and noise channels are named but not broken down
	case TRI_LINEAR:
		return Decoded{Channel: "TRI", Detail: "reg0"}
	case TRI_LO:
		return Decoded{Channel: "TRI", Detail: "reg2"}
	case TRI_HI:
		return Decoded{Channel: "TRI", Detail: "reg3", Trigger: true}
	case NOISE_VOL:
		return Decoded{Channel: "NOISE", Detail: "reg0"}
	case NOISE_LO:
		return Decoded{Channel: "NOISE", Detail: "reg2"}
	case NOISE_HI:
		return Decoded{Channel: "NOISE", Detail: "reg3", Trigger: true}
	}

	return Decoded{}
}

func pulseChannel(reg uint16) string {
	if reg < SQ2_VOL {
		return "SQ1"
	}
	return "SQ2"
}

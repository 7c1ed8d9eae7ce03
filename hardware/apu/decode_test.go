package apu_test

import (
	"testing"

	"github.com/jetsetilly/apuconv/hardware/apu"
	"github.com/jetsetilly/apuconv/hardware/clocks"
	"github.com/jetsetilly/apuconv/test"
)

func TestDuty(t *testing.T) {
	d := apu.DecodeDuty(0xbf)
	test.ExpectEquality(t, d.Duty, 2)
	test.ExpectEquality(t, d.Loop, true)
	test.ExpectEquality(t, d.Constant, true)
	test.ExpectEquality(t, d.Volume, 0x0f)
	test.ExpectEquality(t, d.String(), "Duty: 2 Loop: 1 Constant volume: 1 Volume/Rate: 15")

	d = apu.DecodeDuty(0x80)
	test.ExpectEquality(t, d.String(), "Duty: 2 Loop: 0 Constant volume: 0 Volume/Rate: 0")
}

func TestSweep(t *testing.T) {
	s := apu.DecodeSweep(0x7f)
	test.ExpectEquality(t, s.Enabled, false)
	test.ExpectEquality(t, s.String(), "Sweep enabled: 0")

	s = apu.DecodeSweep(0x9a)
	test.ExpectEquality(t, s.Enabled, true)
	test.ExpectEquality(t, s.Period, 2)
	test.ExpectEquality(t, s.Negate, true)
	test.ExpectEquality(t, s.Shift, 2)
	test.ExpectEquality(t, s.String(), "Sweep enabled: 1 Period: 2 Direction: 1 Shift: 2")
}

func TestWavelength(t *testing.T) {
	test.ExpectEquality(t, apu.WavelengthFromLow(0x34, 0x03), 0x334)
	test.ExpectEquality(t, apu.WavelengthFromHigh(0x03, 0x34), 0x334)

	// only the low three bits of the high register are part of the period
	test.ExpectEquality(t, apu.WavelengthFromLow(0x34, 0xfb), 0x334)
	test.ExpectEquality(t, apu.WavelengthFromHigh(0xfb, 0x34), 0x334)

	// A440 is a wavelength of 253 on an NTSC machine
	f := apu.Wavelength(253).Frequency(clocks.NTSC)
	test.ExpectSuccess(t, f > 440.0 && f < 441.0)
}

func TestLengthTicks(t *testing.T) {
	test.ExpectEquality(t, apu.LengthTicks(0), 10)
	test.ExpectEquality(t, apu.LengthTicks(1), 254)
	test.ExpectEquality(t, apu.LengthTicks(31), 30)
	test.ExpectEquality(t, apu.LengthTicks(32), 10)
}

func TestDecodePulsePeriod(t *testing.T) {
	var b apu.RegisterBank

	// low byte before the high byte has been written. the high bits are zero
	d := apu.Decode(apu.SQ1_LO, 0x34, &b, clocks.NTSC)
	test.ExpectEquality(t, d.Channel, "SQ1")
	test.ExpectEquality(t, d.HasWavelength, true)
	test.ExpectEquality(t, d.Wavelength, 0x034)
	test.ExpectEquality(t, d.Trigger, false)
	b.Write(apu.SQ1_LO, 0x34)

	d = apu.Decode(apu.SQ1_HI, 0x03, &b, clocks.NTSC)
	test.ExpectEquality(t, d.HasWavelength, true)
	test.ExpectEquality(t, d.Wavelength, 0x334)
	test.ExpectEquality(t, d.Trigger, true)
	b.Write(apu.SQ1_HI, 0x03)

	// the second pulse channel is unaffected by the first
	d = apu.Decode(apu.SQ2_LO, 0x10, &b, clocks.NTSC)
	test.ExpectEquality(t, d.Channel, "SQ2")
	test.ExpectEquality(t, d.Wavelength, 0x010)
}

func TestDecodeTrigger(t *testing.T) {
	var b apu.RegisterBank
	b.Write(apu.SQ2_LO, 0xfd)

	// length index 1 is the longest note
	d := apu.Decode(apu.SQ2_HI, 0x08, &b, clocks.NTSC)
	test.ExpectEquality(t, d.String(), "SQ2: TRIGGER Length: 1 (254) period: 253 (440.40 Hz)")
}

func TestDecodePlaceholders(t *testing.T) {
	var b apu.RegisterBank

	test.ExpectEquality(t, apu.Decode(apu.TRI_LINEAR, 0xff, &b, clocks.NTSC).String(), "TRI: reg0")
	test.ExpectEquality(t, apu.Decode(apu.TRI_LO, 0xff, &b, clocks.NTSC).String(), "TRI: reg2")
	test.ExpectEquality(t, apu.Decode(apu.TRI_HI, 0xff, &b, clocks.NTSC).String(), "TRI: reg3")
	test.ExpectEquality(t, apu.Decode(apu.NOISE_VOL, 0xff, &b, clocks.NTSC).String(), "NOISE: reg0")
	test.ExpectEquality(t, apu.Decode(apu.NOISE_LO, 0xff, &b, clocks.NTSC).String(), "NOISE: reg2")
	test.ExpectEquality(t, apu.Decode(apu.NOISE_HI, 0xff, &b, clocks.NTSC).String(), "NOISE: reg3")

	// unused registers have no description
	d := apu.Decode(0x4009, 0xff, &b, clocks.NTSC)
	test.ExpectEquality(t, d.String(), "")
	test.ExpectEquality(t, d.HasWavelength, false)
}

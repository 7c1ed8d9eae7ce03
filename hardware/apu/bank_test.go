package apu_test

import (
	"testing"

	"github.com/jetsetilly/apuconv/hardware/apu"
	"github.com/jetsetilly/apuconv/test"
)

func TestIndex(t *testing.T) {
	test.ExpectEquality(t, apu.Index(0x4000), 0x00)
	test.ExpectEquality(t, apu.Index(0x4003), 0x03)
	test.ExpectEquality(t, apu.Index(0x400f), 0x0f)
	test.ExpectEquality(t, apu.Index(0x401f), 0x1f)
	test.ExpectEquality(t, apu.Index(0x4020), 0x00)
}

func TestBank(t *testing.T) {
	var b apu.RegisterBank

	// all registers are zero before the first write
	for r := range uint16(apu.NumRegisters) {
		test.DemandEquality(t, b.Read(0x4000+r), 0)
	}

	b.Write(apu.SQ1_LO, 0x34)
	test.ExpectEquality(t, b.Read(apu.SQ1_LO), 0x34)

	// the same slot is addressed through any mirror of the register
	test.ExpectEquality(t, b.Read(apu.SQ1_LO+apu.NumRegisters), 0x34)

	// writes are unconditional
	b.Write(apu.SQ1_LO, 0x00)
	test.ExpectEquality(t, b.Read(apu.SQ1_LO), 0x00)

	b.Write(apu.NOISE_HI, 0xff)
	b.Reset()
	test.ExpectEquality(t, b.Read(apu.NOISE_HI), 0x00)
}

func TestTriggerRegisters(t *testing.T) {
	test.ExpectSuccess(t, apu.IsTrigger(apu.SQ1_HI))
	test.ExpectSuccess(t, apu.IsTrigger(apu.SQ2_HI))
	test.ExpectSuccess(t, apu.IsTrigger(apu.TRI_HI))
	test.ExpectSuccess(t, apu.IsTrigger(apu.NOISE_HI))

	// the sweep registers have the low bit set but are not trigger registers
	test.ExpectFailure(t, apu.IsTrigger(apu.SQ1_SWEEP))
	test.ExpectFailure(t, apu.IsTrigger(apu.SQ2_SWEEP))
	test.ExpectFailure(t, apu.IsTrigger(apu.SQ1_VOL))
	test.ExpectFailure(t, apu.IsTrigger(apu.SQ1_LO))

	test.ExpectSuccess(t, apu.IsSweep(apu.SQ1_SWEEP))
	test.ExpectSuccess(t, apu.IsSweep(apu.SQ2_SWEEP))
	test.ExpectFailure(t, apu.IsSweep(0x4009))
}

func TestName(t *testing.T) {
	test.ExpectEquality(t, apu.Name(apu.SQ2_HI), "SQ2_HI")
	test.ExpectEquality(t, apu.Name(0x4009), "$4009")
}

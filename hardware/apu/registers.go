package apu

import "fmt"

// register addresses for the pulse, triangle and noise channels
const (
	SQ1_VOL   uint16 = 0x4000
	SQ1_SWEEP uint16 = 0x4001
	SQ1_LO    uint16 = 0x4002
	SQ1_HI    uint16 = 0x4003

	SQ2_VOL   uint16 = 0x4004
	SQ2_SWEEP uint16 = 0x4005
	SQ2_LO    uint16 = 0x4006
	SQ2_HI    uint16 = 0x4007

	TRI_LINEAR uint16 = 0x4008
	TRI_LO     uint16 = 0x400a
	TRI_HI     uint16 = 0x400b

	NOISE_VOL uint16 = 0x400c
	NOISE_LO  uint16 = 0x400e
	NOISE_HI  uint16 = 0x400f
)

// Limit is the first address after the channel registers. writes to addresses
// at or above this value are not of interest
const Limit uint16 = 0x4010

// number of slots in the RegisterBank
const NumRegisters = 0x20

// IsTrigger returns true if the register is the last of a group of four. for
// the pulse channels, the triangle channel and the noise channel, writing to
// this register reloads the length counter and restarts the channel
func IsTrigger(reg uint16) bool {
	return reg%4 == 3
}

// IsSweep returns true if the register is one of the two pulse sweep
// registers
func IsSweep(reg uint16) bool {
	return reg == SQ1_SWEEP || reg == SQ2_SWEEP
}

var names = map[uint16]string{
	SQ1_VOL:    "SQ1_VOL",
	SQ1_SWEEP:  "SQ1_SWEEP",
	SQ1_LO:     "SQ1_LO",
	SQ1_HI:     "SQ1_HI",
	SQ2_VOL:    "SQ2_VOL",
	SQ2_SWEEP:  "SQ2_SWEEP",
	SQ2_LO:     "SQ2_LO",
	SQ2_HI:     "SQ2_HI",
	TRI_LINEAR: "TRI_LINEAR",
	TRI_LO:     "TRI_LO",
	TRI_HI:     "TRI_HI",
	NOISE_VOL:  "NOISE_VOL",
	NOISE_LO:   "NOISE_LO",
	NOISE_HI:   "NOISE_HI",
}

// Name returns the conventional name of the register. unnamed registers are
// returned as a hex address
func Name(reg uint16) string {
	if n, ok := names[reg]; ok {
		return n
	}
	return fmt.Sprintf("$%04x", reg)
}

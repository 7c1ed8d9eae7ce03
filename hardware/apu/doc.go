// Package apu describes writes to the sound registers of the 2A03, the CPU of
// the NES, which contains the Audio Processing Unit.
//
// It does not generate sound. The package tracks the last value written to
// each register and breaks individual register writes down into the fields
// that they control.
//
// The only registers of interest are the channel registers in the range
// $4000 to $400F. Writes to other registers should be discarded before
// reaching this package.
//
// Information about the APU is taken from the NESdev wiki:
//
// https://www.nesdev.org/wiki/APU
//
// In particular the pages for the pulse channel and the length counter:
//
// https://www.nesdev.org/wiki/APU_Pulse
//
// https://www.nesdev.org/wiki/APU_Length_Counter
package apu

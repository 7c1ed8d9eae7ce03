package apu

// RegisterBank is a shadow copy of the APU registers. the APU registers are
// write-only so the only way of knowing what value a register holds is to
// remember the last value written to it
//
// the zero value is ready to use. all registers start as zero, which is not
// necessarily the state of the registers when the console is powered on
type RegisterBank struct {
	regs [NumRegisters]uint16
}

// Index returns the slot in the RegisterBank for the register address
func Index(reg uint16) uint16 {
	return reg % NumRegisters
}

// Read returns the value last written to the register
func (b *RegisterBank) Read(reg uint16) uint16 {
	return b.regs[Index(reg)]
}

// Write replaces the value of the register
func (b *RegisterBank) Write(reg uint16, data uint16) {
	b.regs[Index(reg)] = data
}

// Reset all registers to zero
func (b *RegisterBank) Reset() {
	clear(b.regs[:])
}

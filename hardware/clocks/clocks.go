package clocks

const Mhz = 1000000

// the 2A03 is clocked from the master clock of the console. the master clock
// is divided by 12 for NTSC machines and by 16 for PAL machines
const (
	NTSC_Master = 21.477272 * Mhz
	PAL_Master  = 26.601712 * Mhz
)

const (
	NTSC_Divider = 12
	PAL_Divider  = 16
)

// the CPU clock values are the commonly quoted figures rather than the result
// of the division above. the NTSC value in particular is the value used by
// playback drivers and trace tools when converting cycles to seconds
const (
	NTSC = 1789773.0 // 1.79MHz
	PAL  = 1662607.0 // 1.66MHz
)

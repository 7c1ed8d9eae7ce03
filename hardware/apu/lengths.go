package apu

// the value loaded into the length counter is selected by the upper five bits
// of the channel's fourth register. the counter is clocked by the frame
// counter, which is roughly 96Hz in four-step mode
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// LengthTicks returns the value loaded into the length counter for the length
// index
func LengthTicks(index uint8) uint8 {
	return lengthTable[index&0x1f]
}

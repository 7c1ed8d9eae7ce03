// Package stream converts register writes into the packed event format played
// back by the microcontroller driver.
//
// Each event is a single 32 bit value:
//
//	bits 31..28	register (lower nibble of the address)
//	bits 27..20	data
//	bits 19..0	time in ticks
//
// A tick is 1/8000th of a second, which is the rate at which the driver
// services its event queue. Twenty bits of ticks is a little over two minutes
// of playback.
//
// Events are written as decimal text, separated by commas, eight to a line.
// The output is intended to be included directly into the source of the
// driver.
package stream

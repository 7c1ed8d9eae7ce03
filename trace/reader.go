package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/apuconv/hardware/apu"
	"github.com/jetsetilly/apuconv/logger"
)

// ErrMalformed is wrapped by errors returned from ParseLine()
var ErrMalformed = errors.New("malformed line")

// ParseLine tokenises a single line of a trace. a line has three fields
// separated by whitespace: a decimal timestamp, a hexadecimal register
// address and a hexadecimal data value
func ParseLine(s string) (Event, error) {
	f := strings.Fields(s)
	if len(f) < 3 {
		return Event{}, fmt.Errorf("%w: expected three fields: %q", ErrMalformed, s)
	}

	t, err := strconv.ParseUint(f[0], 10, 32)
	if err != nil {
		return Event{}, fmt.Errorf("%w: timestamp: %w", ErrMalformed, err)
	}

	r, err := strconv.ParseUint(trimHex(f[1]), 16, 16)
	if err != nil {
		return Event{}, fmt.Errorf("%w: register: %w", ErrMalformed, err)
	}

	d, err := strconv.ParseUint(trimHex(f[2]), 16, 16)
	if err != nil {
		return Event{}, fmt.Errorf("%w: data: %w", ErrMalformed, err)
	}

	return Event{
		Timestamp: uint32(t),
		Register:  uint16(r),
		Data:      uint16(d),
	}, nil
}

func trimHex(s string) string {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	return strings.TrimPrefix(s, "0X")
}

// Reader returns the events in a trace one at a time. malformed lines and
// writes to registers outside the range of the APU channels are skipped
type Reader struct {
	perm    logger.Permission
	scanner *bufio.Scanner

	// line number of the most recent line read
	Line int

	// number of lines that could not be parsed
	Malformed int

	// number of lines that were parsed but ignored because of the register
	// address
	Discarded int
}

func NewReader(r io.Reader, perm logger.Permission) *Reader {
	return &Reader{
		perm:    perm,
		scanner: bufio.NewScanner(r),
	}
}

// Next returns the next accepted event. returns io.EOF when there are no more
// events
func (rd *Reader) Next() (Event, error) {
	for rd.scanner.Scan() {
		rd.Line++

		s := strings.TrimSpace(rd.scanner.Text())
		if len(s) == 0 {
			continue // for loop
		}

		ev, err := ParseLine(s)
		if err != nil {
			rd.Malformed++
			logger.Logf(rd.perm, "trace", "line %d: %v", rd.Line, err)
			continue // for loop
		}

		if ev.Register >= apu.Limit {
			rd.Discarded++
			continue // for loop
		}

		return ev, nil
	}

	if err := rd.scanner.Err(); err != nil {
		return Event{}, fmt.Errorf("trace: line %d: %w", rd.Line, err)
	}

	return Event{}, io.EOF
}

// ReadAll returns every accepted event in the trace
func (rd *Reader) ReadAll() ([]Event, error) {
	var events []Event
	for {
		ev, err := rd.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return events, nil
			}
			return events, err
		}
		events = append(events, ev)
	}
}

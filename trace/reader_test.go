package trace_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/apuconv/logger"
	"github.com/jetsetilly/apuconv/test"
	"github.com/jetsetilly/apuconv/trace"
)

func TestParseLine(t *testing.T) {
	ev, err := trace.ParseLine("100 4002 10")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev, trace.Event{Timestamp: 100, Register: 0x4002, Data: 0x10})

	// extra whitespace and hex prefixes are allowed
	ev, err = trace.ParseLine("  200\t$4003   0x03 ")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ev, trace.Event{Timestamp: 200, Register: 0x4003, Data: 0x03})

	_, err = trace.ParseLine("200 4003")
	test.ExpectSuccess(t, errors.Is(err, trace.ErrMalformed))

	_, err = trace.ParseLine("abc 4003 03")
	test.ExpectSuccess(t, errors.Is(err, trace.ErrMalformed))

	_, err = trace.ParseLine("200 4003 zz")
	test.ExpectSuccess(t, errors.Is(err, trace.ErrMalformed))
}

func TestReader(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	input := strings.Join([]string{
		"0 4000 80",
		"",
		"50 4015 0f",
		"this is not an event",
		"100 4002 10",
		"150 4017 40",
		"200 4003 03",
	}, "\n")

	rd := trace.NewReader(strings.NewReader(input), logger.Allow)
	events, err := rd.ReadAll()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(events), 3)

	test.ExpectEquality(t, events[0], trace.Event{Timestamp: 0, Register: 0x4000, Data: 0x80})
	test.ExpectEquality(t, events[1], trace.Event{Timestamp: 100, Register: 0x4002, Data: 0x10})
	test.ExpectEquality(t, events[2], trace.Event{Timestamp: 200, Register: 0x4003, Data: 0x03})

	test.ExpectEquality(t, rd.Line, 7)
	test.ExpectEquality(t, rd.Malformed, 1)
	test.ExpectEquality(t, rd.Discarded, 2)

	// the malformed line has been logged
	tw := &test.Writer{}
	logger.Tail(tw, -1)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "trace: line 4:"))
}

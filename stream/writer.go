package stream

import (
	"bufio"
	"io"
	"strconv"
)

// the number of packed values on each line of output
const PerLine = 8

// Writer writes packed events to an io.Writer
type Writer struct {
	w   *bufio.Writer
	c   io.Closer
	num int
	err error
}

// NewWriter creates a Writer. if the io.Writer also implements io.Closer
// then it will be closed by Writer.Close()
func NewWriter(w io.Writer) *Writer {
	sw := &Writer{
		w: bufio.NewWriter(w),
	}
	if c, ok := w.(io.Closer); ok {
		sw.c = c
	}
	return sw
}

// Write a single packed value. once an error has occurred all subsequent
// calls to Write() will return the same error
func (sw *Writer) Write(v uint32) error {
	if sw.err != nil {
		return sw.err
	}

	if sw.num > 0 {
		if sw.num%PerLine == 0 {
			_, sw.err = sw.w.WriteString(",\n")
		} else {
			_, sw.err = sw.w.WriteString(", ")
		}
		if sw.err != nil {
			return sw.err
		}
	}

	var b [10]byte
	_, sw.err = sw.w.Write(strconv.AppendUint(b[:0], uint64(v), 10))
	if sw.err != nil {
		return sw.err
	}

	sw.num++
	return nil
}

// Len returns the number of values written
func (sw *Writer) Len() int {
	return sw.num
}

// Close terminates the final line of output, flushes the buffer and closes
// the underlying io.Writer if possible. Close() should be called even if an
// earlier call to Write() failed
func (sw *Writer) Close() error {
	if sw.err == nil && sw.num > 0 {
		_, sw.err = sw.w.WriteString("\n")
	}

	err := sw.w.Flush()
	if sw.err == nil {
		sw.err = err
	}

	if sw.c != nil {
		err := sw.c.Close()
		if sw.err == nil {
			sw.err = err
		}
		sw.c = nil
	}

	return sw.err
}

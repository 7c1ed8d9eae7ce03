// Package logger is the central log for the program. Entries are kept in
// memory and can be echoed to an io.Writer as they are added.
//
// Every entry has a tag, which is usually the name of the package or
// component that created the entry, and a detail.
//
// Calls to Log() and Logf() take a Permission argument. Packages that can be
// run in contexts where logging would be unhelpful, for example during tests,
// can use this to suppress entries.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission implementations decide whether an entry should be logged
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow can be used as the permission argument when logging should always be
// allowed
var Allow Permission = allow{}

// the maximum number of entries kept by the central log. older entries are
// dropped when the limit is reached
const maxEntries = 1000

type entry struct {
	tag    string
	detail string
	repeat int
}

func (e entry) String() string {
	if e.repeat > 0 {
		return fmt.Sprintf("%s: %s (repeat x%d)", e.tag, e.detail, e.repeat+1)
	}
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type logger struct {
	crit    sync.Mutex
	entries []entry
	echo    io.Writer
}

var central = &logger{}

func (l *logger) log(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// identical consecutive entries are collapsed into one
	if n := len(l.entries); n > 0 {
		last := &l.entries[n-1]
		if last.tag == tag && last.detail == detail {
			last.repeat++
			return
		}
	}

	e := entry{tag: tag, detail: detail}
	l.entries = append(l.entries, e)
	if len(l.entries) > maxEntries {
		l.entries = l.entries[1:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
		io.WriteString(l.echo, "\n")
	}
}

func (l *logger) tail(w io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	n := 0
	if number >= 0 {
		n = max(len(l.entries)-number, 0)
	}
	for _, e := range l.entries[n:] {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
}

// Log adds an entry to the central log. the detail argument can be of any type
// but strings, errors and fmt.Stringer implementations are the most useful
func Log(perm Permission, tag string, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	var s string
	switch d := detail.(type) {
	case string:
		s = d
	case error:
		s = d.Error()
	case fmt.Stringer:
		s = d.String()
	default:
		s = fmt.Sprintf("%v", d)
	}

	// entries are single line
	s = strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")

	central.log(tag, s)
}

// Logf adds a formatted entry to the central log
func Logf(perm Permission, tag string, format string, args ...any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	Log(perm, tag, fmt.Sprintf(format, args...))
}

// SetEcho prints new entries to the io.Writer as they are added. a nil writer
// stops the echo. if writeRecent is true then the entries already in the log
// are written to the io.Writer immediately
func SetEcho(w io.Writer, writeRecent bool) {
	if writeRecent && w != nil {
		central.tail(w, -1)
	}

	central.crit.Lock()
	defer central.crit.Unlock()
	central.echo = w
}

// Tail writes the most recent entries to the io.Writer. a number less than
// zero writes every entry
func Tail(w io.Writer, number int) {
	central.tail(w, number)
}

// Clear removes all entries from the log
func Clear() {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.entries = central.entries[:0]
}

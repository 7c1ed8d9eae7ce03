// Package report prints the description of each event and the summary at the
// end of a conversion.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jetsetilly/apuconv/hardware/spec"
	"github.com/jetsetilly/apuconv/pipeline"
)

// colour modes accepted by NewReport()
const (
	ColorAuto   = "AUTO"
	ColorAlways = "ALWAYS"
	ColorNever  = "NEVER"
)

// Report writes styled output to an io.Writer
type Report struct {
	w      io.Writer
	spec   spec.Spec
	styles styles

	// if Quiet is true then Event() prints nothing
	Quiet bool
}

// NewReport creates a Report for the io.Writer. colour is one of the colour
// modes. in auto mode colour is only used if the io.Writer is a terminal
func NewReport(w io.Writer, s spec.Spec, colour string) (*Report, error) {
	r := lipgloss.NewRenderer(w)

	switch strings.ToUpper(colour) {
	case ColorAuto:
		if !isTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("report: unrecognised colour mode: %s", colour)
	}

	return &Report{
		w:      w,
		spec:   s,
		styles: newStyles(r),
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Event prints the description of a single processed event
func (r *Report) Event(res pipeline.Result) {
	if r.Quiet {
		return
	}

	var b strings.Builder

	b.WriteString(r.styles.cycle.Render(
		fmt.Sprintf("Cyc %d(%.6fs):", res.Event.Timestamp, res.Seconds),
	))
	b.WriteString(" ")
	b.WriteString(r.styles.register.Render(
		fmt.Sprintf("APU[%04x] = %02x", res.Event.Register, res.Event.Data),
	))
	b.WriteString(" ")
	if res.Changed {
		b.WriteString(r.styles.old.Render(fmt.Sprintf("(Old: %02x)", res.Old)))
	} else {
		b.WriteString(r.styles.noChange.Render("(No change)"))
	}

	if res.Decoded.Channel != "" {
		b.WriteString(" ")
		if res.Decoded.Trigger {
			b.WriteString(r.styles.trigger.Render(res.Decoded.Channel + ":"))
		} else {
			b.WriteString(r.styles.channel.Render(res.Decoded.Channel + ":"))
		}
		b.WriteString(" ")
		b.WriteString(res.Decoded.Detail)
	}

	fmt.Fprintln(r.w, b.String())
}

// Summary prints the totals for the conversion and the list of distinct
// pulse wavelengths
func (r *Report) Summary(sum pipeline.Summary) {
	fmt.Fprintln(r.w, r.styles.summary.Render(
		fmt.Sprintf("%d events (%s)", sum.Accepted, r.spec.ID),
	))
	fmt.Fprintln(r.w, r.styles.summary.Render(
		fmt.Sprintf("%d emitted", sum.Emitted),
	))
	fmt.Fprintln(r.w, r.styles.summary.Render(
		fmt.Sprintf("%d distinct periods", len(sum.Periods)),
	))
	for _, w := range sum.Periods {
		fmt.Fprintln(r.w, r.styles.period.Render(
			fmt.Sprintf("%5d %10.2f Hz", w, w.Frequency(r.spec.CPUClock)),
		))
	}
}

// Message prints an informational line in the summary style
func (r *Report) Message(s string) {
	fmt.Fprintln(r.w, r.styles.summary.Render(s))
}

// Error prints the error in the error style
func (r *Report) Error(err error) {
	fmt.Fprintln(r.w, r.styles.err.Render(err.Error()))
}

package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	cycle    lipgloss.Style
	register lipgloss.Style
	old      lipgloss.Style
	noChange lipgloss.Style
	channel  lipgloss.Style
	trigger  lipgloss.Style
	summary  lipgloss.Style
	period   lipgloss.Style
	err      lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
// 8	Bright Black (Gray)

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		cycle:    r.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		register: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		old:      r.NewStyle().Foreground(lipgloss.ANSIColor(3)),
		noChange: r.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		channel:  r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		trigger:  r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		summary:  r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		period:   r.NewStyle().Foreground(lipgloss.ANSIColor(2)),
		err:      r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

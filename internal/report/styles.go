package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	markPass = "✓"
	markFail = "✕"
)

type styles struct {
	pass, fail, warn lipgloss.Style
	badgePass        lipgloss.Style
	badgeFail        lipgloss.Style
	title, muted     lipgloss.Style
}

// newStyles binds the styles to w. Without color every style renders its
// text unchanged.
func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		pass:      r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:      r.NewStyle().Foreground(lipgloss.Color("1")),
		warn:      r.NewStyle().Foreground(lipgloss.Color("3")),
		badgePass: r.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")),
		badgeFail: r.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1")),
		title:     r.NewStyle().Bold(true),
		muted:     r.NewStyle().Faint(true),
	}
}

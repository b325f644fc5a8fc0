package tree

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Status codes with a dedicated file style.
const (
	StatusModified  = "M"
	StatusAdded     = "A"
	StatusDeleted   = "D"
	StatusRenamed   = "R"
	StatusCopied    = "C"
	StatusUnmerged  = "U"
	StatusUntracked = "??"
)

// Palette styles fragments for output. A nil or disabled Palette returns
// text unchanged.
type Palette struct {
	enabled   bool
	directory lipgloss.Style
	muted     lipgloss.Style
	statuses  map[string]lipgloss.Style
}

// NewPalette builds a palette. When enabled, styles always emit basic ANSI
// sequences regardless of where the output ends up; deciding whether color
// is wanted is the caller's job.
func NewPalette(enabled bool) *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &Palette{
		enabled:   enabled,
		directory: fg("4"), // Blue
		muted:     fg("8"), // Bright black
		statuses: map[string]lipgloss.Style{
			StatusModified:  fg("3"), // Yellow
			StatusAdded:     fg("2"), // Green
			StatusDeleted:   fg("1"), // Red
			StatusRenamed:   fg("6"), // Cyan
			StatusCopied:    fg("5"), // Magenta
			StatusUnmerged:  fg("1").Bold(true),
			StatusUntracked: fg("8"),
		},
	}
}

func (p *Palette) Enabled() bool {
	return p != nil && p.enabled
}

// Directory styles a directory label.
func (p *Palette) Directory(s string) string {
	if !p.Enabled() {
		return s
	}
	return p.directory.Render(s)
}

// Muted styles indentation and connector glyphs.
func (p *Palette) Muted(s string) string {
	if !p.Enabled() {
		return s
	}
	return p.muted.Render(s)
}

// File styles a file label according to its status. Unknown or empty
// statuses are left unstyled.
func (p *Palette) File(s, status string) string {
	if !p.Enabled() {
		return s
	}
	style, ok := p.statuses[status]
	if !ok {
		return s
	}
	return style.Render(s)
}

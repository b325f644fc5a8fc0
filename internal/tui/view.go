package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

func (m AppModel) View() string {
	if !m.Ready {
		return "\n  Initializing..."
	}

	var b strings.Builder

	header := titleStyle.Render("pathtree")
	status := fmt.Sprintf(" %d of %d paths", m.Matched, len(m.Entries))
	if m.Compact {
		status += " · compact"
	}
	if m.Filter != "" {
		status += " · " + filterStyle.Render("filter: "+m.Filter)
	}
	b.WriteString(header + dimStyle.Render(status))
	b.WriteString("\n\n")

	b.WriteString(m.Viewport.View())
	b.WriteString("\n")

	if m.InputMode {
		b.WriteString("/" + m.InputBuffer.View())
	} else {
		scroll := fmt.Sprintf("%3.f%%", m.Viewport.ScrollPercent()*100)
		b.WriteString(dimStyle.Render("↑/↓ scroll · / filter · c compact · esc clear · q quit  " + scroll))
	}
	return b.String()
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

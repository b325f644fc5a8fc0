package tui

import (
	"pathtree/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Entries  []model.Entry
	Rendered string
	Matched  int // Entries passing the filter

	// View Modes
	Compact bool
	Color   bool

	// Filter State
	InputMode   bool
	InputBuffer textinput.Model
	Filter      string

	// Components
	Viewport   viewport.Model
	Ready      bool
	WindowSize tea.WindowSizeMsg
}

// InitialModel returns the initial state for the given entries.
func InitialModel(entries []model.Entry, compact, color bool) AppModel {
	ti := textinput.New()
	ti.Placeholder = "path substring..."
	ti.CharLimit = 120
	ti.Width = 30

	m := AppModel{
		Entries:     entries,
		Compact:     compact,
		Color:       color,
		InputBuffer: ti,
		Viewport:    viewport.New(80, 20),
	}
	m.refresh()
	return m
}

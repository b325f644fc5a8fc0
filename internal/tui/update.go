package tui

import (
	"strings"

	"pathtree/internal/model"
	"pathtree/internal/tree"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the number of lines used by the header and footer.
const chromeHeight = 3

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Viewport.Width = msg.Width
		m.Viewport.Height = max(msg.Height-chromeHeight, 1)
		m.Ready = true
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.Filter = m.InputBuffer.Value()
				m.refresh()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				m.Filter = ""
				m.refresh()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.Filter != "" {
				m.Filter = ""
				m.InputBuffer.SetValue("")
				m.refresh()
			}
			return m, nil
		case "/":
			m.InputMode = true
			m.InputBuffer.SetValue(m.Filter)
			return m, tea.Batch(m.InputBuffer.Focus(), textinput.Blink)
		case "c":
			m.Compact = !m.Compact
			m.refresh()
			return m, nil
		}
	}

	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the tree for the current filter and compaction.
func (m *AppModel) refresh() {
	entries := filterEntries(m.Entries, m.Filter)
	m.Matched = len(entries)
	m.Rendered = tree.Generate(entries, tree.Options{Compact: m.Compact, Color: m.Color})

	if m.Rendered == "" {
		m.Viewport.SetContent("(no matching paths)")
	} else {
		m.Viewport.SetContent(strings.TrimSuffix(m.Rendered, "\n"))
	}
	m.Viewport.GotoTop()
}

// filterEntries keeps entries whose path contains term, ignoring case.
func filterEntries(entries []model.Entry, term string) []model.Entry {
	term = strings.ToLower(term)
	if term == "" {
		return entries
	}
	var out []model.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Path), term) {
			out = append(out, e)
		}
	}
	return out
}

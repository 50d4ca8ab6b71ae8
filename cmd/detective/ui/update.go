package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"detectivequest/internal/explorer"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Finished() {
		return m, tea.Quit
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m.apply(explorer.CommandExit)
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return m.apply(explorer.CommandInvalid)
		}
		return m.apply(explorer.ParseCommand(string(msg.Runes)))
	default:
		return m, nil
	}
}

func (m Model) apply(cmd explorer.Command) (tea.Model, tea.Cmd) {
	ev := m.session.Apply(cmd)
	m.debug.Printf("Command %s -> %s at %s", cmd, ev.Kind, ev.Room.Name)
	m.record(ev)
	// A dead end that finishes the exploration stays on screen until the
	// next key press.
	if ev.Kind == explorer.EventFinished {
		return m, tea.Quit
	}
	return m, nil
}

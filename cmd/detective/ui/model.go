package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"detectivequest/internal/debug"
	"detectivequest/internal/explorer"
)

const scrollback = 500

type Model struct {
	session *explorer.Session
	history *history
	debug   *debug.Logger
	width   int
	height  int
}

func NewModel(session *explorer.Session, logger *debug.Logger) Model {
	m := Model{
		session: session,
		history: newHistory(scrollback),
		debug:   logger,
	}
	if logger.IsEnabled() {
		m.history.add(fmt.Sprintf("[DEBUG] Session started at %s", session.Current().Name))
	}
	m.record(session.Opening())
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Done reports whether the exploration finished.
func (m Model) Done() bool {
	return m.session.Finished()
}

// record appends an event's text, and the room menu when the explorer is
// waiting in a room.
func (m Model) record(ev explorer.Event) {
	m.history.add(explorer.Describe(ev)...)
	if explorer.ShowsMenu(ev) {
		m.history.add(explorer.Menu(ev.Room)...)
	}
	if m.debug.IsEnabled() {
		m.history.add(fmt.Sprintf("[DEBUG] %s %s at %s (clues: %d)",
			ev.Command, ev.Kind, ev.Room.Name, m.session.Clues().Len()))
	}
}

// Package explorer drives an exploration of a room tree, collecting clues into
// a clue index as rooms are entered.
//
// A Session is a two-state machine. While at a room it accepts left, right,
// view and exit commands; exit (or, optionally, reaching a dead end) moves it
// to the finished state, which accepts nothing further. The session is not
// safe for concurrent use: one goroutine reads commands and applies them.
package explorer

import (
	"errors"

	"detectivequest/internal/clues"
	"detectivequest/internal/report"
	"detectivequest/internal/rooms"
)

var ErrNoMap = errors.New("explorer needs a root room")

type State int

const (
	StateAtRoom State = iota
	StateFinished
)

type EventKind int

const (
	EventEntered EventKind = iota
	EventViewed
	EventRejected
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventEntered:
		return "entered"
	case EventViewed:
		return "viewed"
	case EventRejected:
		return "rejected"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Rejection reasons.
const (
	ReasonInvalid = "invalid"
	ReasonBlocked = "blocked"
)

// Event describes the outcome of one transition.
type Event struct {
	Kind    EventKind
	Command Command
	Room    rooms.View
	// ClueAdded is set on EventEntered when the room's clue was new to the index.
	ClueAdded bool
	// Report is set on EventViewed.
	Report report.Report
	// Reason is set on EventRejected.
	Reason string
	// Done is set when the session is finished after this event.
	Done bool
}

// Observer is notified of every transition, in order.
type Observer interface {
	Observe(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Observe(ev Event) { f(ev) }

type options struct {
	endAtDeadEnd bool
	observers    []Observer
}

type Option func(*options)

// WithEndAtDeadEnd finishes the session as soon as a room without exits is
// entered, instead of waiting for an exit command.
func WithEndAtDeadEnd(enabled bool) Option {
	return func(o *options) {
		o.endAtDeadEnd = enabled
	}
}

func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// Released counts the nodes freed by Close.
type Released struct {
	Rooms int
	Clues int
}

type Session struct {
	root    *rooms.Room
	current *rooms.Room
	path    []string
	index   clues.Index
	state   State
	opening Event
	opts    options
	closed  bool
}

// New starts a session at root. The root room is entered immediately; its
// entry event is available from Opening.
func New(root *rooms.Room, opts ...Option) (*Session, error) {
	if root == nil {
		return nil, ErrNoMap
	}
	s := &Session{root: root}
	for _, opt := range opts {
		opt(&s.opts)
	}
	s.opening = s.enter(root, CommandInvalid)
	return s, nil
}

// Opening returns the event produced by entering the root room.
func (s *Session) Opening() Event {
	return s.opening
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Finished() bool {
	return s.state == StateFinished
}

// Current returns the room the explorer is in.
func (s *Session) Current() rooms.View {
	return s.current.Visit()
}

// Path returns the names of the rooms from the root to the current room.
func (s *Session) Path() []string {
	out := make([]string, len(s.path))
	copy(out, s.path)
	return out
}

// Clues exposes the clue index read-only through the reporter's interface.
func (s *Session) Clues() report.Source {
	return &s.index
}

// Summary snapshots the collected clues.
func (s *Session) Summary() report.Report {
	return report.Of(&s.index)
}

// Apply performs one command. Commands applied after the session finished
// are ignored and return a finished event without notifying observers.
func (s *Session) Apply(cmd Command) Event {
	if s.state == StateFinished {
		return Event{Kind: EventFinished, Command: cmd, Room: s.Current(), Done: true}
	}

	switch cmd {
	case CommandLeft:
		if s.current.Left == nil {
			return s.reject(cmd, ReasonBlocked)
		}
		return s.enter(s.current.Left, cmd)
	case CommandRight:
		if s.current.Right == nil {
			return s.reject(cmd, ReasonBlocked)
		}
		return s.enter(s.current.Right, cmd)
	case CommandView:
		return s.emit(Event{
			Kind:    EventViewed,
			Command: cmd,
			Room:    s.Current(),
			Report:  report.Of(&s.index),
		})
	case CommandExit:
		s.state = StateFinished
		return s.emit(Event{Kind: EventFinished, Command: cmd, Room: s.Current(), Done: true})
	default:
		return s.reject(cmd, ReasonInvalid)
	}
}

// enter is the single place a room entry happens, so a clue is inserted once
// per entry.
func (s *Session) enter(room *rooms.Room, cmd Command) Event {
	s.current = room
	s.path = append(s.path, room.Name)

	view := room.Visit()
	ev := Event{Kind: EventEntered, Command: cmd, Room: view}
	if view.HasClue {
		ev.ClueAdded = s.index.Insert(view.Clue)
	}
	if s.opts.endAtDeadEnd && view.Terminal() {
		s.state = StateFinished
		ev.Done = true
	}
	return s.emit(ev)
}

func (s *Session) reject(cmd Command, reason string) Event {
	return s.emit(Event{Kind: EventRejected, Command: cmd, Room: s.Current(), Reason: reason})
}

func (s *Session) emit(ev Event) Event {
	for _, obs := range s.opts.observers {
		obs.Observe(ev)
	}
	return ev
}

// Close finishes the session and releases both trees. Only the first call
// releases anything.
func (s *Session) Close() Released {
	s.state = StateFinished
	if s.closed {
		return Released{}
	}
	s.closed = true
	released := Released{
		Rooms: s.root.Release(),
		Clues: s.index.Release(),
	}
	s.root = nil
	return released
}

package explorer

import (
	"fmt"

	"detectivequest/internal/rooms"
)

const (
	separator     = "========================================"
	ViewTitle     = "Clues collected so far"
	SummaryTitle  = "Clues in alphabetical order"
	PromptText    = "Where do you want to go? "
	MsgRejected   = "Invalid option or blocked path! Try again."
	MsgExit       = "Ending the exploration..."
	MsgDeadEnd    = "This room is a dead end!"
	MsgDeadEndEnd = "No more exits here. The exploration ends in this direction."
)

// Describe renders an event as display lines. The same text backs the
// console loop and the terminal UI.
func Describe(ev Event) []string {
	switch ev.Kind {
	case EventEntered:
		return describeEntry(ev)
	case EventViewed:
		return append([]string{""}, ev.Report.Lines(ViewTitle)...)
	case EventRejected:
		return []string{MsgRejected}
	case EventFinished:
		return []string{MsgExit}
	default:
		return nil
	}
}

func describeEntry(ev Event) []string {
	lines := []string{
		"",
		separator,
		"You are in: " + ev.Room.Name,
	}
	if ev.Room.HasClue {
		lines = append(lines, "", fmt.Sprintf("🔍 CLUE FOUND: %q", ev.Room.Clue))
		if ev.ClueAdded {
			lines = append(lines, "Clue added to your case notes!")
		} else {
			lines = append(lines, "This clue is already in your case notes.")
		}
	} else {
		lines = append(lines, "No visible clues in this room...")
	}
	if ev.Room.Terminal() {
		if ev.Done {
			return append(lines, "", MsgDeadEndEnd)
		}
		lines = append(lines, "", MsgDeadEnd)
	}
	return lines
}

// Menu lists the commands available in a room.
func Menu(room rooms.View) []string {
	lines := []string{"", "Available options:"}
	if room.HasLeft {
		lines = append(lines, "  [E] Left → "+room.LeftName)
	}
	if room.HasRight {
		lines = append(lines, "  [D] Right → "+room.RightName)
	}
	return append(lines,
		"  [S] Leave the exploration",
		"  [V] View collected clues",
	)
}

// ShowsMenu reports whether the room menu should follow the event's lines.
func ShowsMenu(ev Event) bool {
	if ev.Done {
		return false
	}
	return ev.Kind == EventEntered || ev.Kind == EventViewed
}

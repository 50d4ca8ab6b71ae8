package explorer

import (
	"strings"
	"unicode/utf8"
)

// Command is a normalized user command.
type Command int

const (
	CommandInvalid Command = iota
	CommandLeft
	CommandRight
	CommandView
	CommandExit
)

// ParseCommand classifies one line of input. A command is a single
// character, case-insensitive: E (left), D (right), V (view), S (exit).
// Anything else is CommandInvalid.
func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)
	if utf8.RuneCountInString(input) != 1 {
		return CommandInvalid
	}
	switch strings.ToLower(input) {
	case "e":
		return CommandLeft
	case "d":
		return CommandRight
	case "v":
		return CommandView
	case "s":
		return CommandExit
	default:
		return CommandInvalid
	}
}

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandView:
		return "view"
	case CommandExit:
		return "exit"
	default:
		return "invalid"
	}
}

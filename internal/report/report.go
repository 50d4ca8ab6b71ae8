// Package report produces the sorted clue listing shown on request and at the
// end of a session.
package report

import (
	"fmt"
	"io"
	"iter"
)

// Source is the read-only view of a clue collection the reporter needs.
type Source interface {
	Len() int
	All() iter.Seq[string]
}

// Report is a snapshot of the collected clues in ascending order.
type Report struct {
	Count int
	Clues []string
}

func (r Report) Empty() bool {
	return r.Count == 0
}

// Of snapshots src. It never modifies src.
func Of(src Source) Report {
	r := Report{Count: src.Len(), Clues: make([]string, 0, src.Len())}
	for clue := range src.All() {
		r.Clues = append(r.Clues, clue)
	}
	return r
}

// Lines renders the report as display lines: a count header followed by one
// bullet per clue.
func (r Report) Lines(title string) []string {
	lines := []string{fmt.Sprintf("%s (%d in total):", title, r.Count)}
	if r.Empty() {
		return append(lines, "  No clues collected yet...")
	}
	for _, clue := range r.Clues {
		lines = append(lines, "  • "+clue)
	}
	return lines
}

// Write prints the report lines to w.
func Write(w io.Writer, title string, r Report) error {
	for _, line := range r.Lines(title) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

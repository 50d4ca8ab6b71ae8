package explorer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, line)
}

func (p *printer) prompt() {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprint(p.w, "\n"+PromptText)
}

func (p *printer) event(ev Event) {
	for _, line := range Describe(ev) {
		p.println(line)
	}
	if ShowsMenu(ev) {
		for _, line := range Menu(ev.Room) {
			p.println(line)
		}
	}
}

// Run drives s from line-oriented input until it finishes. One command is
// read per line, whatever its length. End of input counts as an exit command.
func Run(s *Session, in io.Reader, out io.Writer) error {
	p := &printer{w: out}
	p.event(s.Opening())

	reader := bufio.NewReader(in)
	for !s.Finished() && p.err == nil {
		p.prompt()
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read command: %w", err)
			}
			p.println("")
			p.event(s.Apply(CommandExit))
			break
		}
		p.event(s.Apply(ParseCommand(line)))
	}
	if p.err != nil {
		return fmt.Errorf("failed to write output: %w", p.err)
	}
	return nil
}

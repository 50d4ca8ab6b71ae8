package ui

// history is the scrollback of the message panel, capped at maxSize lines.
type history struct {
	lines   []string
	maxSize int
}

func newHistory(maxSize int) *history {
	return &history{
		lines:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

func (h *history) add(lines ...string) {
	h.lines = append(h.lines, lines...)

	if len(h.lines) > h.maxSize {
		h.lines = h.lines[len(h.lines)-h.maxSize:]
	}
}

func (h *history) entries() []string {
	result := make([]string, len(h.lines))
	copy(result, h.lines)
	return result
}

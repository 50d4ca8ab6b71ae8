package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"detectivequest/internal/explorer"
)

func (m Model) View() string {
	width := m.width
	if width < 20 {
		width = 80
	}
	height := m.height
	if height < 8 {
		height = 24
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true).
		Padding(0, 1)

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	roomStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	clueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9"))

	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))

	debugStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("13"))

	chatPanel := lipgloss.NewStyle().
		Width(width-2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)

	header := headerStyle.Render("DETECTIVE QUEST · " + strings.Join(m.session.Path(), " › "))
	footer := dimStyle.Render(" [E] left  [D] right  [V] clues  [S] leave  ·  Ctrl+C quits")
	if m.session.Finished() {
		footer = dimStyle.Render(" Press any key to see the investigation summary")
	}

	maxMessages := height - 5
	if maxMessages < 1 {
		maxMessages = 1
	}
	contentWidth := width - 6

	visibleMessages := m.history.entries()
	if len(visibleMessages) > maxMessages {
		visibleMessages = visibleMessages[len(visibleMessages)-maxMessages:]
	}

	var chatContent strings.Builder
	for i := len(visibleMessages); i < maxMessages; i++ {
		chatContent.WriteString("\n")
	}

	for i, message := range visibleMessages {
		wrapped := wrapAndIndent(message, contentWidth, "")
		switch {
		case message == "":
		case strings.HasPrefix(message, "[DEBUG] "):
			chatContent.WriteString(debugStyle.Render(wrapped))
		case strings.HasPrefix(message, "You are in: "):
			chatContent.WriteString(roomStyle.Render(wrapped))
		case strings.HasPrefix(message, "🔍"), strings.HasPrefix(message, "  • "):
			chatContent.WriteString(clueStyle.Render(wrapped))
		case message == explorer.MsgRejected:
			chatContent.WriteString(errorStyle.Render(wrapped))
		case strings.HasPrefix(message, "====="):
			chatContent.WriteString(dimStyle.Render(wrapped))
		default:
			chatContent.WriteString(messageStyle.Render(wrapped))
		}
		if i < len(visibleMessages)-1 {
			chatContent.WriteString("\n")
		}
	}

	return header + "\n" + chatPanel.Render(chatContent.String()) + "\n" + footer
}

func wrapAndIndent(text string, width int, indent string) string {
	if width <= 0 || len(text) <= width {
		return indent + text
	}

	var result strings.Builder
	words := strings.Fields(text)
	if len(words) == 0 {
		return indent + text
	}

	currentLine := indent + words[0]

	for _, word := range words[1:] {
		if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result.WriteString(currentLine + "\n")
			currentLine = indent + word
		}
	}

	result.WriteString(currentLine)
	return result.String()
}

package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	content = strings.TrimRight(content, "\n")
	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Frame renders a titled block, boxed for terminals and as a plain header
// and body otherwise.
func Frame(title, content string, boxed bool) string {
	if boxed {
		return RenderBox(title, content) + "\n"
	}
	content = strings.TrimRight(content, "\n")
	if title == "" {
		return content + "\n"
	}
	return Header(title) + "\n" + content + "\n"
}

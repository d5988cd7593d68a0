package interview

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/ui/components"
	"github.com/abhisek/riskcheck/internal/ui/layout"
	"github.com/abhisek/riskcheck/internal/ui/theme"
)

// inputAreaHeight covers the divider, progress bar, blank line and input.
const inputAreaHeight = 4

// renderChat renders the transcript tail above the progress bar and input.
func (s *InterviewScreen) renderChat(width, height int) string {
	wrap := layout.WrapWidth(width)

	var lines []string
	for _, e := range s.transcript {
		lines = append(lines, renderEntry(e, wrap)...)
		lines = append(lines, "")
	}

	avail := height - inputAreaHeight
	if avail < 1 {
		avail = 1
	}
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	for len(lines) < avail {
		lines = append(lines, "")
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", wrap)))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar(s.builder.Position(), s.builder.Len(), wrap).View())
	b.WriteString("\n\n")
	if s.evaluating {
		b.WriteString(theme.Hint.Render("Evaluating..."))
	} else {
		b.WriteString(s.input.View())
	}

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

// renderEntry wraps one message and prefixes it with the speaker label.
func renderEntry(e Entry, width int) []string {
	label := theme.BotLabel.Render("Assistant")
	textStyle := theme.Body
	if e.From == SpeakerOperator {
		label = theme.UserLabel.Render("You")
		textStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	body := textStyle.Width(width).Render(e.Text)
	return append([]string{label}, strings.Split(body, "\n")...)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	box := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Quit the interview?") +
			"\n\n" +
			theme.Hint.Render("The answers collected so far are discarded.") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("y: quit    n: keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

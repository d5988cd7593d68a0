// Package result shows the classification of a completed interview.
package result

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/report"
	"github.com/abhisek/riskcheck/internal/risk"
	"github.com/abhisek/riskcheck/internal/router"
	"github.com/abhisek/riskcheck/internal/screen"
	"github.com/abhisek/riskcheck/internal/ui/components"
	"github.com/abhisek/riskcheck/internal/ui/layout"
	"github.com/abhisek/riskcheck/internal/ui/theme"
)

// ResultScreen displays the tier, signals, explanation and actions.
type ResultScreen struct {
	result risk.Result
	menu   components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. restart builds the interview for the next
// client.
func New(res risk.Result, restart func() screen.Screen) *ResultScreen {
	return &ResultScreen{
		result: res,
		menu: components.NewMenu([]components.MenuItem{
			{
				Label:  "Analyze another client",
				Hotkey: "r",
				Action: func() tea.Cmd {
					next := restart()
					return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
				},
			},
			{
				Label:  "Quit",
				Hotkey: "q",
				Action: func() tea.Cmd { return tea.Quit },
			},
		}),
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Risk assessment"
}

// Result returns the displayed result.
func (s *ResultScreen) Result() risk.Result {
	return s.result
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "New client"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		return s, tea.Quit
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultScreen) View(width, height int) string {
	res := s.result
	wrap := layout.WrapWidth(width)

	var b strings.Builder

	b.WriteString(theme.Heading.Render("Risk level"))
	b.WriteString("\n")
	b.WriteString(theme.TierBadge(res.Tier))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Signals detected"))
	b.WriteString("\n")
	if len(res.Critical)+len(res.Warning) == 0 {
		b.WriteString(theme.Hint.Render(report.NoSignals))
		b.WriteString("\n")
	}
	writeSignals(&b, res.Critical, risk.SeverityCritical, wrap)
	writeSignals(&b, res.Warning, risk.SeverityWarning, wrap)
	b.WriteString("\n")

	b.WriteString(theme.Heading.Render("Explanation"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Width(wrap).Render(res.Explanation))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Recommended actions"))
	b.WriteString("\n")
	for _, a := range res.Actions {
		b.WriteString(theme.Body.Width(wrap).Render("- " + a))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", wrap)))
	b.WriteString("\n")
	b.WriteString(s.menu.View())

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

func writeSignals(b *strings.Builder, sigs []risk.Signal, sev risk.Severity, width int) {
	style := theme.SeverityStyle(sev)
	marker := "●"
	for _, sig := range sigs {
		line := style.Render(marker+" "+sig.Code) + " " + theme.Body.Render(sig.Text)
		b.WriteString(lipgloss.NewStyle().Width(width).Render(line))
		b.WriteString("\n")
	}
}

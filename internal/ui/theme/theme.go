package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/risk"
)

// Color palette, muted for an operator console.
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Heading = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Rejected = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Chat bubbles
var (
	BotLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	UserLabel = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// Signal severities
var (
	CriticalSignal = lipgloss.NewStyle().Foreground(Error)
	WarningSignal  = lipgloss.NewStyle().Foreground(Warning)
)

// TierColor maps a risk tier to its display colour.
func TierColor(t risk.Tier) color.Color {
	switch t {
	case risk.TierHigh:
		return Error
	case risk.TierMedium:
		return Warning
	default:
		return Success
	}
}

// TierBadge renders the tier name as a coloured badge.
func TierBadge(t risk.Tier) string {
	return lipgloss.NewStyle().
		Foreground(BgDark).
		Background(TierColor(t)).
		Bold(true).
		Padding(0, 2).
		Render(t.DisplayName())
}

// SeverityStyle returns the style for a signal of the given severity.
func SeverityStyle(s risk.Severity) lipgloss.Style {
	if s == risk.SeverityCritical {
		return CriticalSignal
	}
	return WarningSignal
}

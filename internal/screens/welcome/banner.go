package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/riskcheck/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗███████╗██╗  ██╗ ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗
 ██╔══██╗██║██╔════╝██║ ██╔╝██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝
 ██████╔╝██║███████╗█████╔╝ ██║     ███████║█████╗  ██║     █████╔╝
 ██╔══██╗██║╚════██║██╔═██╗ ██║     ██╔══██║██╔══╝  ██║     ██╔═██╗
 ██║  ██║██║███████║██║  ██╗╚██████╗██║  ██║███████╗╚██████╗██║  ██╗
 ╚═╝  ╚═╝╚═╝╚══════╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "R I S K C H E C K"

// bannerMinWidth is the narrowest terminal that fits the full art.
const bannerMinWidth = 72

// RenderBanner returns the RISKCHECK banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

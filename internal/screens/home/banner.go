package home

import (
	"charm.land/lipgloss/v2"

	"github.com/Coder9204/sparklab/internal/ui/theme"
)

const bannerArt = `
 ███████╗██████╗  █████╗ ██████╗ ██╗  ██╗██╗      █████╗ ██████╗
 ██╔════╝██╔══██╗██╔══██╗██╔══██╗██║ ██╔╝██║     ██╔══██╗██╔══██╗
 ███████╗██████╔╝███████║██████╔╝█████╔╝ ██║     ███████║██████╔╝
 ╚════██║██╔═══╝ ██╔══██║██╔══██╗██╔═██╗ ██║     ██╔══██║██╔══██╗
 ███████║██║     ██║  ██║██║  ██║██║  ██╗███████╗██║  ██║██████╔╝
 ╚══════╝╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═════╝`

const bannerCompact = "S P A R K L A B"

// RenderBanner returns the SPARKLAB banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 70 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 70 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

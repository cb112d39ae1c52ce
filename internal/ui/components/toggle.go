package components

import (
	"charm.land/lipgloss/v2"

	"github.com/Coder9204/sparklab/internal/ui/theme"
)

// ToggleRow renders one boolean control as an on/off switch row.
type ToggleRow struct {
	Label   string
	On      bool
	Focused bool
}

// View renders the toggle row.
func (t ToggleRow) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if t.Focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	prefix := "  "
	if t.Focused {
		prefix = "▸ "
	}

	state := lipgloss.NewStyle().Foreground(theme.TextDim).Render("[ OFF ]")
	if t.On {
		state = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("[ ON  ]")
	}

	return labelStyle.Render(prefix+padLabel(t.Label, 36)) + "  " + state
}

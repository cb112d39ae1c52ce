package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Coder9204/sparklab/internal/ui/theme"
)

// Choice is a multiple-choice selector. It only tracks the cursor and the
// chosen option; whether the choice was right, and when to reveal that, is
// the caller's concern. Quiz answers stay neutral until the whole quiz is
// submitted.
type Choice struct {
	Prompt   string
	Options  []string
	Selected int
	Chosen   int // -1 until confirmed
}

// NewChoice creates a selector over the given options.
func NewChoice(prompt string, options []string) Choice {
	return Choice{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	}

	return c, nil
}

// Confirmed reports whether an option has been chosen.
func (c Choice) Confirmed() bool {
	return c.Chosen >= 0
}

// View renders the selector. When revealCorrect is >= 0 the options are
// graded against it instead of showing the cursor.
func (c Choice) View(revealCorrect int) string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(c.Prompt) + "\n\n"

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && revealCorrect < 0 {
			prefix = "▸ "
		}
		marker := ""
		if i == c.Chosen {
			marker = " ●"
		}
		line := fmt.Sprintf("%s%c)  %s%s", prefix, 'A'+i, opt, marker)

		switch {
		case revealCorrect >= 0 && i == revealCorrect:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case revealCorrect >= 0 && i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case revealCorrect >= 0:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

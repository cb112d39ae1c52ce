package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Coder9204/sparklab/internal/ui/theme"
)

// Slider renders one bounded numeric control as a horizontal track with a
// thumb. The value lives in the engine; the slider is a stateless view over
// a getter.
type Slider struct {
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Value   float64
	Width   int
	Focused bool
}

// View renders the slider row.
func (s Slider) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if s.Focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	prefix := "  "
	if s.Focused {
		prefix = "▸ "
	}

	trackWidth := s.Width
	if trackWidth < 10 {
		trackWidth = 10
	}

	pos := 0.0
	if s.Max > s.Min {
		pos = (s.Value - s.Min) / (s.Max - s.Min)
	}
	thumb := int(pos * float64(trackWidth-1))
	if thumb < 0 {
		thumb = 0
	}
	if thumb > trackWidth-1 {
		thumb = trackWidth - 1
	}

	track := theme.SliderFilled.Render(strings.Repeat("━", thumb)) +
		theme.SliderFilled.Bold(true).Render("●") +
		theme.SliderEmpty.Render(strings.Repeat("━", trackWidth-1-thumb))

	value := fmt.Sprintf("%.4g", s.Value)
	if s.Unit != "" {
		value += " " + s.Unit
	}

	return fmt.Sprintf("%s%s  %s",
		labelStyle.Render(prefix+padLabel(s.Label, 18)),
		track,
		lipgloss.NewStyle().Foreground(theme.Accent).Render(value),
	)
}

func padLabel(label string, width int) string {
	if len(label) >= width {
		return label
	}
	return label + strings.Repeat(" ", width-len(label))
}

package lesson

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Coder9204/sparklab/internal/content"
	flow "github.com/Coder9204/sparklab/internal/lesson"
	"github.com/Coder9204/sparklab/internal/sim"
	"github.com/Coder9204/sparklab/internal/ui/components"
	"github.com/Coder9204/sparklab/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	var body string
	switch s.ctrl.Current() {
	case flow.PhaseHook:
		body = s.renderNarrative(width, s.lesson.Hook, "")
	case flow.PhasePredict:
		body = s.renderPredict(width, &s.predict)
	case flow.PhasePlay:
		body = s.renderPlay(width, s.lesson.PlayHint)
	case flow.PhaseReview:
		body = s.renderNarrative(width, s.lesson.Review,
			s.predictionVerdict(s.lesson.Predict, s.ctrl.Session().Prediction))
	case flow.PhaseTwistPredict:
		body = s.renderPredict(width, &s.twist)
	case flow.PhaseTwistPlay:
		body = s.renderPlay(width, s.lesson.TwistPlayHint)
	case flow.PhaseTwistReview:
		body = s.renderNarrative(width, s.lesson.TwistReview,
			s.predictionVerdict(s.lesson.TwistPredict, s.ctrl.Session().TwistPrediction))
	case flow.PhaseTransfer:
		body = s.renderTransfer(width)
	case flow.PhaseTest:
		body = s.renderTest(width)
	case flow.PhaseMastery:
		body = s.renderMastery(width)
	}

	if s.notice != "" {
		body += "\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Bold(true).
			Render(s.notice)
	}
	return body
}

func wrapWidth(width int) int {
	w := width - 8
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderNarrative renders the hook and review phases: a block of prose,
// optionally preceded by the prediction verdict.
func (s *LessonScreen) renderNarrative(width int, text, verdict string) string {
	var b strings.Builder
	b.WriteString("\n")

	if verdict != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
		b.WriteString("\n\n")
	}

	prose := lipgloss.NewStyle().
		Width(wrapWidth(width)).
		Foreground(theme.Text).
		Render(text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prose))

	return b.String()
}

// predictionVerdict compares the recorded prediction against the known
// answer for display at the top of a review phase.
func (s *LessonScreen) predictionVerdict(p content.PredictPrompt, recorded string) string {
	if recorded == "" {
		return ""
	}
	label := func(id string) string {
		for _, o := range p.Options {
			if o.ID == id {
				return o.Label
			}
		}
		return id
	}
	if recorded == p.CorrectID {
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("Your prediction was right: " + label(recorded))
	}
	return lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
		Render("You predicted \""+label(recorded)+"\"") +
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  — it was \""+label(p.CorrectID)+"\"")
}

func (s *LessonScreen) renderPredict(width int, c *components.Choice) string {
	var b strings.Builder
	b.WriteString("\n")

	block := c.View(-1)
	if c.Confirmed() {
		block += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Locked in. Press Enter to find out.")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(wrapWidth(width)).Render(block)))

	return b.String()
}

func levelColor(l sim.Level) color.Color {
	switch l {
	case sim.LevelGood:
		return theme.Success
	case sim.LevelWarn:
		return theme.Warning
	case sim.LevelBad:
		return theme.Error
	default:
		return theme.Text
	}
}

// renderPlay renders the interactive bench: sliders, toggles, and graded
// readouts for whichever engine this lesson drives.
func (s *LessonScreen) renderPlay(width int, hint string) string {
	controls := s.engine.Controls()
	toggles := s.engine.Toggles()

	var b strings.Builder
	b.WriteString("\n")

	if hint != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().
				Width(wrapWidth(width)).
				Foreground(theme.TextDim).
				Italic(true).
				Render(hint)))
		b.WriteString("\n\n")
	}

	trackWidth := width / 3
	if trackWidth > 32 {
		trackWidth = 32
	}

	var rows []string
	for i, c := range controls {
		rows = append(rows, components.Slider{
			Label:   c.Name,
			Unit:    c.Unit,
			Min:     c.Min,
			Max:     c.Max,
			Value:   c.Value(),
			Width:   trackWidth,
			Focused: s.focus == i,
		}.View())
	}
	for i, t := range toggles {
		rows = append(rows, components.ToggleRow{
			Label:   t.Name,
			On:      t.On(),
			Focused: s.focus == len(controls)+i,
		}.View())
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n")))
	b.WriteString("\n\n")

	var readouts []string
	for _, r := range s.engine.Readouts() {
		readouts = append(readouts,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(r.Label+": ")+
				lipgloss.NewStyle().Foreground(levelColor(r.Level)).Bold(true).Render(r.Value))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(readouts, "    ")))

	return b.String()
}

func (s *LessonScreen) renderTransfer(width int) string {
	sess := s.ctrl.Session()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Where does this show up in the real world?  (%d/%d revealed)",
			sess.Transfer.Count(), sess.Transfer.Total())))
	b.WriteString("\n\n")

	var cards []string
	for i, app := range s.lesson.Applications {
		title := app.Title
		if i == s.card {
			title = "▸ " + title
		} else {
			title = "  " + title
		}

		var body string
		if sess.Transfer.Revealed(i) {
			body = lipgloss.NewStyle().Foreground(theme.Text).Render(app.Prompt) + "\n" +
				lipgloss.NewStyle().Foreground(theme.Success).Render(app.Answer)
		} else {
			body = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(app.Description)
		}

		titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		if i == s.card {
			titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Width(wrapWidth(width)).
			Padding(0, 1).
			Render(titleStyle.Render(title) + "\n" + body)
		cards = append(cards, card)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(cards, "\n")))

	return b.String()
}

func (s *LessonScreen) renderTest(width int) string {
	q := s.ctrl.Session().Quiz

	if q.Submitted() {
		return s.renderTestResult(width)
	}

	question := q.Bank().Questions[q.Cursor()]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d  ·  %d answered",
			q.Cursor()+1, len(q.Bank().Questions), q.AnsweredCount())))
	b.WriteString("\n\n")

	var block strings.Builder
	if question.Scenario != "" {
		block.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Italic(true).Render(question.Scenario))
		block.WriteString("\n\n")
	}
	block.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question.Prompt))
	block.WriteString("\n\n")

	answered, hasAnswer := q.Answer(q.Cursor())
	for i, o := range question.Options {
		prefix := "  "
		if i == s.option {
			prefix = "▸ "
		}
		marker := ""
		if hasAnswer && o.ID == answered {
			marker = " ●"
		}
		line := fmt.Sprintf("%s%c)  %s%s", prefix, 'A'+i, o.Label, marker)
		if i == s.option {
			block.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			block.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		block.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(wrapWidth(width)).Render(block.String())))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(q.AnsweredCount())/float64(len(q.Bank().Questions)), false, wrapWidth(width))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	return b.String()
}

func (s *LessonScreen) renderTestResult(width int) string {
	q := s.ctrl.Session().Quiz
	total := len(q.Bank().Questions)

	var b strings.Builder
	b.WriteString("\n\n")

	if q.Passed() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Passed!  %d/%d", q.Score(), total)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to claim mastery."))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("%d/%d — not quite", q.Score(), total)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("You need %d to pass. Press R to retry, or B to revisit the lesson.",
				q.Bank().PassThreshold)))
	}

	return b.String()
}

func (s *LessonScreen) renderMastery(width int) string {
	q := s.ctrl.Session().Quiz

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("★ Lesson mastered ★"))
	b.WriteString("\n\n")

	prose := lipgloss.NewStyle().
		Width(wrapWidth(width)).
		Foreground(theme.Text).
		Render(s.lesson.Mastery)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prose))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Final score %d/%d", q.Score(), len(q.Bank().Questions))))

	return b.String()
}

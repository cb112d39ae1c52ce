package progress

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/Coder9204/sparklab/internal/router"
	"github.com/Coder9204/sparklab/internal/screen"
	"github.com/Coder9204/sparklab/internal/store"
	"github.com/Coder9204/sparklab/internal/ui/layout"
	"github.com/Coder9204/sparklab/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats []store.LessonStats
	Err   error
}

// ProgressScreen displays per-lesson attempt and pass aggregates from the
// event log.
type ProgressScreen struct {
	eventRepo store.EventRepo
	spin      spinner.Model
	stats     []store.LessonStats
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(eventRepo store.EventRepo) *ProgressScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &ProgressScreen{eventRepo: eventRepo, spin: sp}
}

func (s *ProgressScreen) Init() tea.Cmd {
	load := func() tea.Msg {
		if s.eventRepo == nil {
			return statsLoadedMsg{}
		}
		stats, err := s.eventRepo.Stats(context.Background())
		return statsLoadedMsg{Stats: stats, Err: err}
	}
	return tea.Batch(load, s.spin.Tick)
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case spinner.TickMsg:
		if s.loaded {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n  %s Loading progress...", s.spin.View()))
	}
	if len(s.stats) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing yet. Pick a lesson and dive in!")
	}

	var b strings.Builder
	b.WriteString("\n")

	header := fmt.Sprintf("%-16s %9s %10s %9s %8s %11s",
		"LESSON", "SESSIONS", "COMPLETED", "ATTEMPTS", "PASSES", "BEST SCORE")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header)))
	b.WriteString("\n")

	for _, st := range s.stats {
		line := fmt.Sprintf("%-16s %9d %10d %9d %8d %11d",
			st.LessonID, st.Sessions, st.Completed, st.QuizAttempts, st.QuizPasses, st.BestScore)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if st.Completed > 0 {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

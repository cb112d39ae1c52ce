package home

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/Coder9204/sparklab/internal/config"
	"github.com/Coder9204/sparklab/internal/content"
	"github.com/Coder9204/sparklab/internal/router"
	"github.com/Coder9204/sparklab/internal/screen"
	lessonscreen "github.com/Coder9204/sparklab/internal/screens/lesson"
	"github.com/Coder9204/sparklab/internal/screens/progress"
	"github.com/Coder9204/sparklab/internal/sim"
	"github.com/Coder9204/sparklab/internal/store"
	"github.com/Coder9204/sparklab/internal/ui/components"
	"github.com/Coder9204/sparklab/internal/ui/theme"
)

// HomeScreen is the lesson picker.
type HomeScreen struct {
	menu      components.Menu
	lessons   []content.Lesson
	completed map[string]bool
	errMsg    string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. eventRepo and snapRepo may be nil; lessons
// then run without persistence.
func New(lessons []content.Lesson, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, cfg config.Config) *HomeScreen {
	completed := completedLessons(eventRepo)

	items := make([]components.MenuItem, 0, len(lessons)+2)
	for _, l := range lessons {
		l := l
		detail := l.Tagline
		if completed[l.ID] {
			detail = "✓ mastered  ·  " + detail
		} else if hasResume(snapRepo, l.ID) {
			detail = "▶ in progress  ·  " + detail
		}
		items = append(items, components.MenuItem{
			Label:  l.Title,
			Detail: detail,
			Action: func() tea.Cmd {
				return startLesson(l, eventRepo, snapRepo, cfg)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "PROGRESS",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(eventRepo)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:      components.NewMenu(items),
		lessons:   lessons,
		completed: completed,
	}
}

// startLesson builds the engine and pushes the lesson screen, resuming from
// the latest snapshot when one exists.
func startLesson(l content.Lesson, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		engine, err := sim.ForLesson(l.ID, rand.New(rand.NewSource(time.Now().UnixNano())))
		if err != nil {
			return router.PushScreenMsg{Screen: &errorScreen{err: err}}
		}
		l.Bank.PassThreshold = cfg.PassThreshold(l.ID, l.Bank.PassThreshold, len(l.Bank.Questions))

		return router.PushScreenMsg{
			Screen: lessonscreen.New(lessonscreen.Options{
				Lesson:    l,
				Engine:    engine,
				EventRepo: eventRepo,
				SnapRepo:  snapRepo,
				Tick:      cfg.TickInterval(),
				Resume:    loadResume(snapRepo, l.ID),
			}),
		}
	}
}

// loadResume fetches the latest resumable snapshot for a lesson. Snapshots
// from an incompatible build, or ones already at the terminal phase, start
// the lesson fresh instead.
func loadResume(snapRepo store.SnapshotRepo, lessonID string) *store.SnapshotData {
	if snapRepo == nil {
		return nil
	}
	snap, err := snapRepo.LatestForLesson(context.Background(), lessonID)
	if err != nil || snap == nil {
		return nil
	}
	if snap.Data.Version != store.SnapshotVersion || snap.Data.Phase == "mastery" {
		return nil
	}
	return &snap.Data
}

func hasResume(snapRepo store.SnapshotRepo, lessonID string) bool {
	return loadResume(snapRepo, lessonID) != nil
}

// completedLessons derives the mastered set from the event log.
func completedLessons(eventRepo store.EventRepo) map[string]bool {
	done := make(map[string]bool)
	if eventRepo == nil {
		return done
	}
	stats, err := eventRepo.Stats(context.Background())
	if err != nil {
		return done
	}
	for _, st := range stats {
		if st.Completed > 0 {
			done[st.LessonID] = true
		}
	}
	return done
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderBanner(width)))

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("See it. Predict it. Break it. Master it."))

	mastered := 0
	for _, l := range h.lessons {
		if h.completed[l.ID] {
			mastered++
		}
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(fmt.Sprintf("%d/%d lessons mastered", mastered, len(h.lessons))))

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return "\n" + strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// errorScreen shows a construction failure and pops on any key.
type errorScreen struct {
	err error
}

func (e *errorScreen) Init() tea.Cmd { return nil }

func (e *errorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return e, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return e, nil
}

func (e *errorScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\nError: %s\n\nPress any key to go back.", e.err))
}

func (e *errorScreen) Title() string { return "Error" }

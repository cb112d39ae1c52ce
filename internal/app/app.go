package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Coder9204/sparklab/internal/config"
	"github.com/Coder9204/sparklab/internal/content"
	"github.com/Coder9204/sparklab/internal/router"
	"github.com/Coder9204/sparklab/internal/screen"
	"github.com/Coder9204/sparklab/internal/screens/home"
	lessonscreen "github.com/Coder9204/sparklab/internal/screens/lesson"
	"github.com/Coder9204/sparklab/internal/sim"
	"github.com/Coder9204/sparklab/internal/store"
	"github.com/Coder9204/sparklab/internal/ui/layout"
)

// Options carries the wiring for the root application model. EventRepo and
// SnapRepo may be nil to run without persistence.
type Options struct {
	Lessons   []content.Lesson
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Config    config.Config

	// InitialLesson, when set, skips the home screen and opens that lesson
	// directly. InitialResume optionally restores a saved session into it.
	InitialLesson *content.Lesson
	InitialEngine sim.Engine
	InitialResume *store.SnapshotData
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates the root model, starting at the home screen or a
// directly requested lesson.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Lessons, opts.EventRepo, opts.SnapRepo, opts.Config)
	r := router.New(homeScreen)

	if opts.InitialLesson != nil && opts.InitialEngine != nil {
		r.Push(lessonscreen.New(lessonscreen.Options{
			Lesson:    *opts.InitialLesson,
			Engine:    opts.InitialEngine,
			EventRepo: opts.EventRepo,
			SnapRepo:  opts.SnapRepo,
			Tick:      opts.Config.TickInterval(),
			Resume:    opts.InitialResume,
		}))
	}

	return AppModel{router: r}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens own esc so they can save state before popping;
			// at the root it quits.
			if m.router.Depth() == 1 {
				return m, tea.Quit
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	progress := ""
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.ProgressProvider); ok {
			progress = p.Progress()
		}
	}

	header := layout.RenderHeader(title, progress, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

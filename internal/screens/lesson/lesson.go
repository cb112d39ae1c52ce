package lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/Coder9204/sparklab/internal/content"
	flow "github.com/Coder9204/sparklab/internal/lesson"
	"github.com/Coder9204/sparklab/internal/router"
	"github.com/Coder9204/sparklab/internal/screen"
	"github.com/Coder9204/sparklab/internal/sim"
	"github.com/Coder9204/sparklab/internal/store"
	"github.com/Coder9204/sparklab/internal/ui/components"
	"github.com/Coder9204/sparklab/internal/ui/layout"
)

// keepSnapshots bounds the resume history retained per database.
const keepSnapshots = 20

// Options carries the injected dependencies for a lesson run. EventRepo and
// SnapRepo may be nil; the lesson then runs without persistence.
type Options struct {
	Lesson    content.Lesson
	Engine    sim.Engine
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Tick      time.Duration
	Resume    *store.SnapshotData
}

// LessonScreen runs one learner through the ten-phase lesson flow.
type LessonScreen struct {
	lesson content.Lesson
	ctrl   *flow.Controller
	engine sim.Engine
	events store.EventRepo
	snaps  store.SnapshotRepo
	tick   time.Duration

	focus   int // focused control/toggle row in play phases
	card    int // selected application card in transfer phase
	option  int // selected option for the current quiz question
	predict components.Choice
	twist   components.Choice
	notice  string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.ProgressProvider = (*LessonScreen)(nil)

// New creates a lesson screen, resuming from a snapshot when one is given.
func New(opts Options) *LessonScreen {
	l := opts.Lesson

	sessionID := uuid.New().String()
	if opts.Resume != nil {
		sessionID = opts.Resume.SessionID
	}

	session := flow.NewSession(sessionID, l.ID, flow.PhaseHook, l.Bank, len(l.Applications))

	var notifier flow.Notifier
	if opts.EventRepo != nil {
		notifier = store.NewEventNotifier(opts.EventRepo)
	}

	gates := flow.Gates{}
	if l.PlayDamageGate > 0 {
		if d, ok := opts.Engine.(interface{ Damage() float64 }); ok {
			gates.PlayReady = func() bool { return d.Damage() >= l.PlayDamageGate }
		}
	}

	ctrl := flow.NewController(session, gates, notifier)

	s := &LessonScreen{
		lesson:  l,
		ctrl:    ctrl,
		engine:  opts.Engine,
		events:  opts.EventRepo,
		snaps:   opts.SnapRepo,
		tick:    opts.Tick,
		predict: newPredictChoice(l.Predict),
		twist:   newPredictChoice(l.TwistPredict),
	}

	if opts.Resume != nil {
		s.restore(opts.Resume)
	}
	return s
}

func newPredictChoice(p content.PredictPrompt) components.Choice {
	labels := make([]string, 0, len(p.Options))
	for _, o := range p.Options {
		labels = append(labels, o.Label)
	}
	return components.NewChoice(p.Prompt, labels)
}

// restore replays snapshot state into the fresh session. The phase jump is
// a trusted override, outside normal gating; invalid phases are ignored and
// the session stays at the hook.
func (s *LessonScreen) restore(data *store.SnapshotData) {
	s.ctrl.SyncExternalPhase(flow.Phase(data.Phase))

	sess := s.ctrl.Session()
	sess.Prediction = data.Prediction
	sess.TwistPrediction = data.TwistPrediction
	for _, i := range data.TransferRevealed {
		sess.Transfer.Reveal(i)
	}
	sess.Quiz.RestoreAnswers(data.QuizAnswers)
	if data.QuizSubmitted {
		sess.Quiz.Submit()
	}
	if data.SimInputs != nil {
		s.engine.Restore(data.SimInputs)
	}

	s.chooseRecorded(&s.predict, s.lesson.Predict, data.Prediction)
	s.chooseRecorded(&s.twist, s.lesson.TwistPredict, data.TwistPrediction)
	s.option = s.answeredOption()
}

func (s *LessonScreen) chooseRecorded(c *components.Choice, p content.PredictPrompt, recorded string) {
	for i, o := range p.Options {
		if o.ID == recorded && recorded != "" {
			c.Selected = i
			c.Chosen = i
		}
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: s.ctrl.Session().ID,
			LessonID:  s.lesson.ID,
			Action:    "start",
		})
	}
	return s.tickCmd()
}

func (s *LessonScreen) Title() string {
	return s.lesson.Title
}

func (s *LessonScreen) Progress() string {
	p := s.ctrl.Current()
	return fmt.Sprintf("%s  %d/%d", p.Title(), flow.PhaseIndex(p)+1, len(flow.PhaseOrder))
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		s.stepEngine()
		return s, s.tickCmd()

	case noticeExpiredMsg:
		s.notice = ""
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// stepEngine advances the tick-driven sub-simulation, only while the learner
// is in a play phase.
func (s *LessonScreen) stepEngine() {
	switch s.ctrl.Current() {
	case flow.PhasePlay, flow.PhaseTwistPlay:
	default:
		return
	}
	if st, ok := s.engine.(sim.Stepper); ok && st.Running() {
		st.Step()
	}
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		s.saveSnapshot()
		if s.events != nil {
			_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
				SessionID:    s.ctrl.Session().ID,
				LessonID:     s.lesson.ID,
				Action:       "end",
				PhaseReached: string(s.ctrl.Current()),
			})
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.ctrl.Current() {
	case flow.PhaseHook, flow.PhaseReview, flow.PhaseTwistReview:
		return s.handleNarrativeKey(key)
	case flow.PhasePredict:
		return s.handlePredictKey(msg, &s.predict, s.lesson.Predict)
	case flow.PhaseTwistPredict:
		return s.handlePredictKey(msg, &s.twist, s.lesson.TwistPredict)
	case flow.PhasePlay, flow.PhaseTwistPlay:
		return s.handlePlayKey(key)
	case flow.PhaseTransfer:
		return s.handleTransferKey(key)
	case flow.PhaseTest:
		return s.handleTestKey(key)
	case flow.PhaseMastery:
		return s.handleMasteryKey(key)
	}
	return s, nil
}

func (s *LessonScreen) handleNarrativeKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter", "n", "right":
		return s.goNext()
	case "b", "left":
		return s.goBack()
	}
	return s, nil
}

func (s *LessonScreen) handlePredictKey(msg tea.KeyMsg, c *components.Choice, p content.PredictPrompt) (screen.Screen, tea.Cmd) {
	if !c.Confirmed() {
		var cmd tea.Cmd
		*c, cmd = c.Update(msg)
		if c.Confirmed() {
			s.ctrl.RecordPrediction(p.Options[c.Chosen].ID)
		}
		return s, cmd
	}

	switch msg.String() {
	case "enter", "n", "right":
		return s.goNext()
	case "b", "left":
		return s.goBack()
	}
	return s, nil
}

func (s *LessonScreen) handlePlayKey(key string) (screen.Screen, tea.Cmd) {
	controls := s.engine.Controls()
	toggles := s.engine.Toggles()
	rows := len(controls) + len(toggles)

	switch key {
	case "up", "k":
		if s.focus > 0 {
			s.focus--
		}
		return s, nil
	case "down", "j":
		if s.focus < rows-1 {
			s.focus++
		}
		return s, nil
	case "left", "h":
		if s.focus < len(controls) {
			controls[s.focus].Adjust(-1)
		}
		return s, nil
	case "right", "l":
		if s.focus < len(controls) {
			controls[s.focus].Adjust(1)
		}
		return s, nil
	case " ", "space", "enter":
		if i := s.focus - len(controls); i >= 0 && i < len(toggles) {
			toggles[i].Set(!toggles[i].On())
		} else if key == "enter" {
			return s.goNext()
		}
		return s, nil
	case "n":
		return s.goNext()
	case "b":
		return s.goBack()
	}

	if a, ok := s.engine.(sim.Actor); ok {
		for _, action := range a.Actions() {
			if key == action.Key {
				action.Do()
				return s, nil
			}
		}
	}
	return s, nil
}

func (s *LessonScreen) handleTransferKey(key string) (screen.Screen, tea.Cmd) {
	n := len(s.lesson.Applications)
	switch key {
	case "up", "k":
		if s.card > 0 {
			s.card--
		}
	case "down", "j":
		if s.card < n-1 {
			s.card++
		}
	case "enter", " ", "space":
		s.ctrl.RevealApplication(s.card)
	case "n", "right":
		return s.goNext()
	case "b", "left":
		return s.goBack()
	}
	return s, nil
}

func (s *LessonScreen) handleTestKey(key string) (screen.Screen, tea.Cmd) {
	q := s.ctrl.Session().Quiz

	if q.Submitted() {
		switch key {
		case "enter", "n", "right":
			if q.Passed() {
				return s.goNext()
			}
		case "r":
			s.ctrl.RetryQuiz()
			s.option = s.answeredOption()
		case "b":
			return s.goBack()
		}
		return s, nil
	}

	question := q.Bank().Questions[q.Cursor()]
	switch key {
	case "up", "k":
		if s.option > 0 {
			s.option--
		}
	case "down", "j":
		if s.option < len(question.Options)-1 {
			s.option++
		}
	case "enter":
		s.ctrl.RecordAnswer(q.Cursor(), question.Options[s.option].ID)
		if q.Cursor() < len(q.Bank().Questions)-1 {
			q.SetCursor(q.Cursor() + 1)
			s.option = s.answeredOption()
		}
	case "left":
		q.SetCursor(q.Cursor() - 1)
		s.option = s.answeredOption()
	case "right":
		q.SetCursor(q.Cursor() + 1)
		s.option = s.answeredOption()
	case "s":
		if q.AllAnswered() {
			s.ctrl.SubmitQuiz()
			s.saveSnapshot()
		} else {
			return s.showNotice("Answer every question before submitting")
		}
	case "b":
		return s.goBack()
	}
	return s, nil
}

func (s *LessonScreen) handleMasteryKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "enter":
		s.ctrl.Complete()
		s.saveSnapshot()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "b", "left":
		return s.goBack()
	}
	return s, nil
}

// answeredOption returns the option index already recorded for the current
// quiz question, or 0 when unanswered.
func (s *LessonScreen) answeredOption() int {
	q := s.ctrl.Session().Quiz
	answered, ok := q.Answer(q.Cursor())
	if !ok {
		return 0
	}
	for i, o := range q.Bank().Questions[q.Cursor()].Options {
		if o.ID == answered {
			return i
		}
	}
	return 0
}

func (s *LessonScreen) goNext() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.GoNext(); err != nil {
		if errors.Is(err, flow.ErrGateClosed) {
			return s.showNotice(s.gateHint())
		}
		// Debounced or boundary rejections are dropped silently.
		return s, nil
	}
	s.onPhaseChanged()
	return s, nil
}

func (s *LessonScreen) goBack() (screen.Screen, tea.Cmd) {
	if err := s.ctrl.GoBack(); err != nil {
		return s, nil
	}
	s.onPhaseChanged()
	return s, nil
}

func (s *LessonScreen) onPhaseChanged() {
	s.focus = 0
	s.card = 0
	s.option = s.answeredOption()
	s.notice = ""
	s.saveSnapshot()
}

func (s *LessonScreen) showNotice(text string) (screen.Screen, tea.Cmd) {
	s.notice = text
	return s, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{}
	})
}

// gateHint explains why the Continue control is refusing.
func (s *LessonScreen) gateHint() string {
	sess := s.ctrl.Session()
	switch s.ctrl.Current() {
	case flow.PhasePredict, flow.PhaseTwistPredict:
		return "Make a prediction first"
	case flow.PhasePlay:
		if s.lesson.PlayDamageGate > 0 {
			return fmt.Sprintf("Push the system until damage reaches %.0f%%", s.lesson.PlayDamageGate)
		}
		return "Try the controls before moving on"
	case flow.PhaseTwistPlay:
		return "Try the controls before moving on"
	case flow.PhaseTransfer:
		return fmt.Sprintf("Reveal all %d applications to continue", sess.Transfer.Total())
	case flow.PhaseTest:
		return fmt.Sprintf("Score %d/%d or better to continue", sess.Quiz.Bank().PassThreshold, len(sess.Quiz.Bank().Questions))
	}
	return "Not yet"
}

// saveSnapshot persists resumable state. Raw engine inputs only; derived
// readouts are recomputed on restore.
func (s *LessonScreen) saveSnapshot() {
	if s.snaps == nil {
		return
	}
	sess := s.ctrl.Session()
	data := store.SnapshotData{
		Version:          store.SnapshotVersion,
		SessionID:        sess.ID,
		LessonID:         sess.LessonID,
		Phase:            string(sess.Current),
		Prediction:       sess.Prediction,
		TwistPrediction:  sess.TwistPrediction,
		TransferRevealed: sess.Transfer.Indices(),
		QuizAnswers:      sess.Quiz.Answers(),
		QuizSubmitted:    sess.Quiz.Submitted(),
		SimInputs:        s.engine.Snapshot(),
	}
	ctx := context.Background()
	_ = s.snaps.Save(ctx, &store.Snapshot{Timestamp: time.Now(), Data: data})
	_ = s.snaps.Prune(ctx, keepSnapshots)
}

func (s *LessonScreen) tickCmd() tea.Cmd {
	return tea.Tick(s.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch s.ctrl.Current() {
	case flow.PhaseHook:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Save & exit"},
		}
	case flow.PhasePredict, flow.PhaseTwistPredict:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Lock in"},
			{Key: "B", Description: "Back"},
		}
	case flow.PhasePlay, flow.PhaseTwistPlay:
		hints := []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "←→", Description: "Adjust"},
			{Key: "N", Description: "Continue"},
		}
		if a, ok := s.engine.(sim.Actor); ok {
			for _, action := range a.Actions() {
				hints = append(hints, layout.KeyHint{Key: action.Key, Description: action.Label})
			}
		}
		return hints
	case flow.PhaseTransfer:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select card"},
			{Key: "Enter", Description: "Reveal"},
			{Key: "N", Description: "Continue"},
		}
	case flow.PhaseTest:
		if s.ctrl.Session().Quiz.Submitted() {
			if s.ctrl.Session().Quiz.Passed() {
				return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
			}
			return []layout.KeyHint{{Key: "R", Description: "Retry quiz"}, {Key: "B", Description: "Back"}}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "S", Description: "Submit"},
		}
	case flow.PhaseMastery:
		return []layout.KeyHint{{Key: "Enter", Description: "Finish lesson"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "B", Description: "Back"},
	}
}

package lesson

import (
	"context"
	"math/rand"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Coder9204/sparklab/internal/content"
	flow "github.com/Coder9204/sparklab/internal/lesson"
	"github.com/Coder9204/sparklab/internal/router"
	"github.com/Coder9204/sparklab/internal/sim"
	"github.com/Coder9204/sparklab/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	phaseEvents   []store.PhaseEventData
	quizEvents    []store.QuizEventData
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendPhaseEvent(_ context.Context, data store.PhaseEventData) error {
	m.phaseEvents = append(m.phaseEvents, data)
	return nil
}
func (m *mockEventRepo) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) Stats(_ context.Context) ([]store.LessonStats, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) LatestForLesson(_ context.Context, lessonID string) (*store.Snapshot, error) {
	for i := len(m.snapshots) - 1; i >= 0; i-- {
		if m.snapshots[i].Data.LessonID == lessonID {
			return m.snapshots[i], nil
		}
	}
	return nil, nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testScreen builds a lesson screen for the given lesson, resumed directly
// at phase. Each test gets a fresh screen so a single navigation is never
// debounced.
func testScreen(t *testing.T, lessonID string, phase flow.Phase) (*LessonScreen, *mockEventRepo, *mockSnapshotRepo) {
	t.Helper()

	l, err := content.Get(lessonID)
	require.NoError(t, err)
	engine, err := sim.ForLesson(l.ID, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	events := &mockEventRepo{}
	snaps := &mockSnapshotRepo{}

	var resume *store.SnapshotData
	if phase != flow.PhaseHook {
		resume = &store.SnapshotData{
			Version:   store.SnapshotVersion,
			SessionID: "session-test",
			LessonID:  l.ID,
			Phase:     string(phase),
		}
	}

	s := New(Options{
		Lesson:    l,
		Engine:    engine,
		EventRepo: events,
		SnapRepo:  snaps,
		Tick:      40 * time.Millisecond,
		Resume:    resume,
	})
	return s, events, snaps
}

func TestLessonScreen_StartsAtHook(t *testing.T) {
	s, _, _ := testScreen(t, "straingauge", flow.PhaseHook)

	assert.Equal(t, flow.PhaseHook, s.ctrl.Current())
	assert.Equal(t, "Strain Gauges", s.Title())
	assert.Contains(t, s.Progress(), "1/10")
}

func TestLessonScreen_HookAdvances(t *testing.T) {
	s, events, snaps := testScreen(t, "straingauge", flow.PhaseHook)

	s.Update(specialKey(tea.KeyEnter))

	assert.Equal(t, flow.PhasePredict, s.ctrl.Current())
	require.Len(t, events.phaseEvents, 1)
	assert.Equal(t, "hook", events.phaseEvents[0].FromPhase)
	assert.Equal(t, "predict", events.phaseEvents[0].ToPhase)
	assert.Len(t, snaps.snapshots, 1)
}

func TestLessonScreen_PredictGatesOnChoice(t *testing.T) {
	s, _, _ := testScreen(t, "straingauge", flow.PhasePredict)

	// Cannot advance before committing a prediction.
	s.Update(keyPress('n'))
	assert.Equal(t, flow.PhasePredict, s.ctrl.Current())

	// Move to the second option and commit.
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	require.True(t, s.predict.Confirmed())
	want := s.lesson.Predict.Options[1].ID
	assert.Equal(t, want, s.ctrl.Session().Prediction)

	// A second Enter moves on.
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, flow.PhasePlay, s.ctrl.Current())
}

func TestLessonScreen_PlayAdjustsControls(t *testing.T) {
	s, _, _ := testScreen(t, "straingauge", flow.PhasePlay)

	controls := s.engine.Controls()
	before := controls[0].Value()

	s.Update(specialKey(tea.KeyRight))
	assert.InDelta(t, before+controls[0].Step, controls[0].Value(), 1e-9)

	s.Update(specialKey(tea.KeyLeft))
	assert.InDelta(t, before, controls[0].Value(), 1e-9)
}

func TestLessonScreen_PlayFlipsToggles(t *testing.T) {
	s, _, _ := testScreen(t, "straingauge", flow.PhasePlay)

	controls := s.engine.Controls()
	toggles := s.engine.Toggles()
	require.NotEmpty(t, toggles)
	before := toggles[0].On()

	for range controls {
		s.Update(specialKey(tea.KeyDown))
	}
	s.Update(specialKey(' '))

	assert.Equal(t, !before, toggles[0].On())
}

func TestLessonScreen_PlaySeenOpensGate(t *testing.T) {
	// Resuming into play marks the phase as seen, which satisfies the
	// default forward gate.
	s, _, _ := testScreen(t, "straingauge", flow.PhasePlay)

	s.Update(keyPress('n'))
	assert.Equal(t, flow.PhaseReview, s.ctrl.Current())
}

func TestLessonScreen_DamageGateBlocks(t *testing.T) {
	s, _, _ := testScreen(t, "cavitation", flow.PhasePlay)

	_, cmd := s.Update(keyPress('n'))

	assert.Equal(t, flow.PhasePlay, s.ctrl.Current())
	assert.NotEmpty(t, s.notice)
	assert.NotNil(t, cmd, "expected a notice expiry command")
}

func TestLessonScreen_TransferUnlocksAfterAllReveals(t *testing.T) {
	s, _, _ := testScreen(t, "straingauge", flow.PhaseTransfer)

	s.Update(keyPress('n'))
	assert.Equal(t, flow.PhaseTransfer, s.ctrl.Current())
	assert.NotEmpty(t, s.notice)

	for range s.lesson.Applications {
		s.Update(specialKey(' '))
		s.Update(specialKey(tea.KeyDown))
	}
	require.True(t, s.ctrl.Session().Transfer.Unlocked())

	s.Update(keyPress('n'))
	assert.Equal(t, flow.PhaseTest, s.ctrl.Current())
}

func TestLessonScreen_QuizSubmitRequiresAllAnswers(t *testing.T) {
	s, _, _ := testScreen(t, "straingauge", flow.PhaseTest)

	s.Update(keyPress('s'))

	assert.False(t, s.ctrl.Session().Quiz.Submitted())
	assert.NotEmpty(t, s.notice)
}

func TestLessonScreen_QuizPassAdvancesToMastery(t *testing.T) {
	s, events, _ := testScreen(t, "straingauge", flow.PhaseTest)

	for i, q := range s.lesson.Bank.Questions {
		correct, ok := q.CorrectOption()
		require.True(t, ok)
		s.ctrl.RecordAnswer(i, correct.ID)
	}
	s.Update(keyPress('s'))

	quiz := s.ctrl.Session().Quiz
	require.True(t, quiz.Submitted())
	assert.True(t, quiz.Passed())
	assert.Equal(t, len(s.lesson.Bank.Questions), quiz.Score())

	require.Len(t, events.quizEvents, 1)
	assert.True(t, events.quizEvents[0].Passed)

	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, flow.PhaseMastery, s.ctrl.Current())
}

func TestLessonScreen_QuizFailBlocksAndRetries(t *testing.T) {
	s, events, _ := testScreen(t, "straingauge", flow.PhaseTest)

	for i, q := range s.lesson.Bank.Questions {
		correct, ok := q.CorrectOption()
		require.True(t, ok)
		for _, o := range q.Options {
			if o.ID != correct.ID {
				s.ctrl.RecordAnswer(i, o.ID)
				break
			}
		}
	}
	s.Update(keyPress('s'))

	quiz := s.ctrl.Session().Quiz
	require.True(t, quiz.Submitted())
	assert.False(t, quiz.Passed())
	require.Len(t, events.quizEvents, 1)
	assert.False(t, events.quizEvents[0].Passed)

	// Enter does not move on after a fail.
	s.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, flow.PhaseTest, s.ctrl.Current())

	// Retry clears the attempt.
	s.Update(keyPress('r'))
	assert.False(t, quiz.Submitted())
	assert.Zero(t, quiz.AnsweredCount())
}

func TestLessonScreen_EscSavesSnapshotAndPops(t *testing.T) {
	s, _, snaps := testScreen(t, "straingauge", flow.PhaseReview)

	_, cmd := s.Update(specialKey(tea.KeyEscape))

	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	require.Len(t, snaps.snapshots, 1)
	assert.Equal(t, "review", snaps.snapshots[0].Data.Phase)
	assert.Equal(t, "session-test", snaps.snapshots[0].Data.SessionID)
}

func TestLessonScreen_MasteryCompletes(t *testing.T) {
	s, events, _ := testScreen(t, "straingauge", flow.PhaseMastery)

	_, cmd := s.Update(specialKey(tea.KeyEnter))

	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
	require.NotEmpty(t, events.sessionEvents)
	last := events.sessionEvents[len(events.sessionEvents)-1]
	assert.Equal(t, "complete", last.Action)
	assert.Equal(t, "mastery", last.PhaseReached)
}

func TestLessonScreen_ResumeRestoresState(t *testing.T) {
	l, err := content.Get("straingauge")
	require.NoError(t, err)
	engine, err := sim.ForLesson(l.ID, nil)
	require.NoError(t, err)

	inputs := engine.Snapshot()
	inputs["force_n"] = 120

	s := New(Options{
		Lesson: l,
		Engine: engine,
		Tick:   40 * time.Millisecond,
		Resume: &store.SnapshotData{
			Version:          store.SnapshotVersion,
			SessionID:        "session-test",
			LessonID:         l.ID,
			Phase:            string(flow.PhaseTransfer),
			Prediction:       l.Predict.CorrectID,
			TwistPrediction:  l.TwistPredict.CorrectID,
			TransferRevealed: []int{0, 2},
			SimInputs:        inputs,
		},
	})

	assert.Equal(t, flow.PhaseTransfer, s.ctrl.Current())
	assert.True(t, s.predict.Confirmed())
	assert.True(t, s.twist.Confirmed())
	assert.Equal(t, 2, s.ctrl.Session().Transfer.Count())
	assert.InDelta(t, 120, engine.Snapshot()["force_n"], 1e-9)
}

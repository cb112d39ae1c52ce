package lesson

import (
	"errors"
	"testing"
	"time"

	"github.com/Coder9204/sparklab/internal/quiz"
)

// fakeClock lets tests step debounce time deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testBank() quiz.Bank {
	questions := make([]quiz.Question, 10)
	for i := range questions {
		questions[i] = quiz.Question{
			Prompt: "q",
			Options: []quiz.Option{
				{ID: "right", Label: "right", Correct: true},
				{ID: "wrong", Label: "wrong"},
			},
		}
	}
	return quiz.Bank{Questions: questions, PassThreshold: 7}
}

func newTestController(t *testing.T, initial Phase) (*Controller, *fakeClock, *[]Event) {
	t.Helper()
	clock := &fakeClock{t: time.Unix(1000, 0)}
	var events []Event
	s := NewSession("sess-1", "overlay", initial, testBank(), 4)
	c := NewController(s, Gates{}, NotifierFunc(func(e Event) {
		events = append(events, e)
	}))
	c.now = clock.now
	return c, clock, &events
}

func TestInitDefaultsToHook(t *testing.T) {
	s := NewSession("s", "overlay", Phase("bogus"), testBank(), 4)
	if s.Current != PhaseHook {
		t.Errorf("invalid initial phase landed on %q, want hook", s.Current)
	}

	s = NewSession("s", "overlay", PhaseTest, testBank(), 4)
	if s.Current != PhaseTest {
		t.Errorf("valid initial phase landed on %q, want test", s.Current)
	}
}

func TestGoToPhaseEmitsNotification(t *testing.T) {
	c, _, events := newTestController(t, PhaseHook)

	if err := c.GoToPhase(PhasePredict); err != nil {
		t.Fatalf("goToPhase: %v", err)
	}
	if c.Current() != PhasePredict {
		t.Errorf("current = %q", c.Current())
	}
	if len(*events) != 1 {
		t.Fatalf("got %d events, want 1", len(*events))
	}
	e := (*events)[0]
	if e.Type != EventPhaseChanged || e.From != PhaseHook || e.To != PhasePredict {
		t.Errorf("event = %+v", e)
	}
	if e.SessionID != "sess-1" || e.LessonID != "overlay" {
		t.Errorf("event ids = %q, %q", e.SessionID, e.LessonID)
	}
}

func TestDebounceRejectsRapidNavigation(t *testing.T) {
	c, clock, _ := newTestController(t, PhaseHook)

	if err := c.GoToPhase(PhasePredict); err != nil {
		t.Fatalf("first nav: %v", err)
	}

	// Within the settling lock: dropped.
	clock.advance(150 * time.Millisecond)
	if err := c.GoToPhase(PhasePlay); !errors.Is(err, ErrNavigationLocked) {
		t.Fatalf("second nav err = %v, want lock rejection", err)
	}
	if c.Current() != PhasePredict {
		t.Errorf("rejected nav moved phase to %q", c.Current())
	}

	// After the lock expires: accepted.
	clock.advance(300 * time.Millisecond)
	if err := c.GoToPhase(PhasePlay); err != nil {
		t.Fatalf("nav after lock: %v", err)
	}
	if c.Current() != PhasePlay {
		t.Errorf("current = %q, want play", c.Current())
	}
}

func TestGoNextStopsAtMastery(t *testing.T) {
	c, _, events := newTestController(t, PhaseMastery)

	err := c.GoNext()
	if !errors.Is(err, ErrAtBoundary) {
		t.Fatalf("goNext at mastery = %v, want boundary", err)
	}
	if c.Current() != PhaseMastery {
		t.Errorf("phase moved to %q", c.Current())
	}
	if len(*events) != 0 {
		t.Errorf("no-op navigation emitted %d events", len(*events))
	}
}

func TestGoBackStopsAtHook(t *testing.T) {
	c, _, _ := newTestController(t, PhaseHook)
	if err := c.GoBack(); !errors.Is(err, ErrAtBoundary) {
		t.Fatalf("goBack at hook = %v, want boundary", err)
	}
}

func TestGoBackHasNoGate(t *testing.T) {
	c, _, _ := newTestController(t, PhaseTest)
	// Test's forward gate is closed (quiz not passed) but back is free.
	if err := c.GoBack(); err != nil {
		t.Fatalf("goBack: %v", err)
	}
	if c.Current() != PhaseTransfer {
		t.Errorf("current = %q, want transfer", c.Current())
	}
}

func TestGoNextEnforcesPredictGate(t *testing.T) {
	c, clock, _ := newTestController(t, PhasePredict)

	if err := c.GoNext(); !errors.Is(err, ErrGateClosed) {
		t.Fatalf("goNext without prediction = %v, want gate closed", err)
	}

	c.RecordPrediction("problem")
	clock.advance(time.Second)
	if err := c.GoNext(); err != nil {
		t.Fatalf("goNext with prediction: %v", err)
	}
	if c.Current() != PhasePlay {
		t.Errorf("current = %q, want play", c.Current())
	}
}

func TestGoNextEnforcesTransferGate(t *testing.T) {
	c, clock, _ := newTestController(t, PhaseTransfer)

	for i := 0; i < 4; i++ {
		if err := c.GoNext(); !errors.Is(err, ErrGateClosed) {
			t.Fatalf("goNext with %d/4 cards = %v, want gate closed", i, err)
		}
		c.RevealApplication(i)
		clock.advance(time.Second)
	}
	if err := c.GoNext(); err != nil {
		t.Fatalf("goNext with all cards: %v", err)
	}
	if c.Current() != PhaseTest {
		t.Errorf("current = %q, want test", c.Current())
	}
}

func TestGoNextEnforcesTestGate(t *testing.T) {
	c, clock, events := newTestController(t, PhaseTest)

	if err := c.GoNext(); !errors.Is(err, ErrGateClosed) {
		t.Fatalf("goNext before submit = %v, want gate closed", err)
	}

	// Fail the quiz: gate stays closed.
	for i := 0; i < 10; i++ {
		c.RecordAnswer(i, "wrong")
	}
	c.SubmitQuiz()
	if err := c.GoNext(); !errors.Is(err, ErrGateClosed) {
		t.Fatalf("goNext after failed quiz = %v, want gate closed", err)
	}

	// Retry and pass.
	c.RetryQuiz()
	for i := 0; i < 10; i++ {
		c.RecordAnswer(i, "right")
	}
	c.SubmitQuiz()
	clock.advance(time.Second)
	if err := c.GoNext(); err != nil {
		t.Fatalf("goNext after passing: %v", err)
	}
	if c.Current() != PhaseMastery {
		t.Errorf("current = %q, want mastery", c.Current())
	}

	// Two quiz_submitted events, one per submission.
	quizEvents := 0
	for _, e := range *events {
		if e.Type == EventQuizSubmitted {
			quizEvents++
		}
	}
	if quizEvents != 2 {
		t.Errorf("quiz events = %d, want 2", quizEvents)
	}
}

func TestPlayGateOverride(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	damage := 0.0
	s := NewSession("s", "cavitation", PhasePlay, testBank(), 4)
	c := NewController(s, Gates{
		PlayReady: func() bool { return damage > 30 },
	}, nil)
	c.now = clock.now

	if err := c.GoNext(); !errors.Is(err, ErrGateClosed) {
		t.Fatalf("goNext below damage threshold = %v, want gate closed", err)
	}
	damage = 45
	if err := c.GoNext(); err != nil {
		t.Fatalf("goNext past threshold: %v", err)
	}
}

func TestSyncExternalPhaseBypassesDebounce(t *testing.T) {
	c, _, events := newTestController(t, PhaseHook)

	if err := c.GoToPhase(PhasePredict); err != nil {
		t.Fatalf("nav: %v", err)
	}
	// Immediately forcing a phase is allowed: trusted host override.
	c.SyncExternalPhase(PhaseTransfer)
	if c.Current() != PhaseTransfer {
		t.Errorf("current = %q, want transfer", c.Current())
	}
	// Override is not a learner navigation: no extra event.
	if len(*events) != 1 {
		t.Errorf("events = %d, want 1", len(*events))
	}

	c.SyncExternalPhase(Phase("nonsense"))
	if c.Current() != PhaseTransfer {
		t.Errorf("invalid override moved phase to %q", c.Current())
	}
}

func TestRecordPredictionOnlyInPredictPhases(t *testing.T) {
	c, clock, _ := newTestController(t, PhaseHook)

	c.RecordPrediction("bubbles")
	if c.Session().Prediction != "" {
		t.Error("prediction recorded outside predict phase")
	}

	if err := c.GoToPhase(PhasePredict); err != nil {
		t.Fatal(err)
	}
	c.RecordPrediction("bubbles")
	if c.Session().Prediction != "bubbles" {
		t.Errorf("prediction = %q", c.Session().Prediction)
	}

	clock.advance(time.Second)
	if err := c.GoToPhase(PhaseTwistPredict); err != nil {
		t.Fatal(err)
	}
	c.RecordPrediction("erode")
	if c.Session().TwistPrediction != "erode" {
		t.Errorf("twist prediction = %q", c.Session().TwistPrediction)
	}
	if c.Session().Prediction != "bubbles" {
		t.Errorf("first prediction clobbered: %q", c.Session().Prediction)
	}
}

func TestCompleteOnlyAtMastery(t *testing.T) {
	c, clock, events := newTestController(t, PhaseTest)

	c.Complete()
	if len(*events) != 0 {
		t.Fatalf("complete outside mastery emitted %d events", len(*events))
	}

	clock.advance(time.Second)
	if err := c.GoToPhase(PhaseMastery); err != nil {
		t.Fatal(err)
	}
	c.Complete()

	var completed *Event
	for i := range *events {
		if (*events)[i].Type == EventLessonCompleted {
			completed = &(*events)[i]
		}
	}
	if completed == nil {
		t.Fatal("no lesson_completed event")
	}
	if completed.Phase != PhaseMastery {
		t.Errorf("completed phase = %q", completed.Phase)
	}
}

func TestEndToEndOverlayLesson(t *testing.T) {
	c, clock, _ := newTestController(t, PhaseHook)
	step := func() {
		clock.advance(time.Second)
	}

	// hook -> predict
	step()
	if err := c.GoNext(); err != nil {
		t.Fatalf("hook -> predict: %v", err)
	}

	// record prediction, advance to review via play
	c.RecordPrediction("problem")
	step()
	if err := c.GoNext(); err != nil {
		t.Fatalf("predict -> play: %v", err)
	}
	step()
	if err := c.GoNext(); err != nil {
		t.Fatalf("play -> review: %v", err)
	}
	if !c.Session().PredictionCorrect("problem") {
		t.Error("prediction should compare correct")
	}

	// twist arc
	step()
	if err := c.GoNext(); err != nil {
		t.Fatalf("review -> twist_predict: %v", err)
	}
	c.RecordPrediction("ok")
	step()
	if err := c.GoNext(); err != nil {
		t.Fatalf("twist_predict -> twist_play: %v", err)
	}
	step()
	if err := c.GoNext(); err != nil {
		t.Fatalf("twist_play -> twist_review: %v", err)
	}
	step()
	if err := c.GoNext(); err != nil {
		t.Fatalf("twist_review -> transfer: %v", err)
	}

	// reveal all 4 cards
	for i := 0; i < 4; i++ {
		c.RevealApplication(i)
	}
	step()
	if err := c.GoNext(); err != nil {
		t.Fatalf("transfer -> test: %v", err)
	}

	// perfect quiz
	for i := 0; i < 10; i++ {
		c.RecordAnswer(i, "right")
	}
	c.SubmitQuiz()
	if got := c.Session().Quiz.Score(); got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
	if !c.CanAdvance() {
		t.Error("gate to mastery should be open")
	}
	step()
	if err := c.GoNext(); err != nil {
		t.Fatalf("test -> mastery: %v", err)
	}
	if c.Current() != PhaseMastery {
		t.Errorf("final phase = %q", c.Current())
	}
}

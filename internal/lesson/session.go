package lesson

import (
	"time"

	"github.com/Coder9204/sparklab/internal/quiz"
	"github.com/Coder9204/sparklab/internal/transfer"
)

// Session is the long-lived state for one learner pass through one lesson.
// It is created when the lesson starts and discarded when the host tears it
// down; any save/resume goes through the host's snapshot layer.
type Session struct {
	// ID is the UUID grouping this session's events.
	ID string

	// LessonID identifies the lesson content this session runs.
	LessonID string

	// Current is the active phase.
	Current Phase

	// Prediction is the category id recorded in the predict phase.
	// Empty means not yet recorded.
	Prediction string

	// TwistPrediction is the category id recorded in the twist predict phase.
	TwistPrediction string

	// Transfer tracks revealed application cards.
	Transfer *transfer.Tracker

	// Quiz tracks test-phase answers and scoring.
	Quiz *quiz.State

	// PlaySeen and TwistPlaySeen record that the learner reached the
	// respective play phase at least once.
	PlaySeen      bool
	TwistPlaySeen bool

	// StartedAt is when the session began.
	StartedAt time.Time
}

// NewSession creates session state for a lesson. initialPhase must already
// be validated; pass PhaseHook for a fresh start.
func NewSession(id, lessonID string, initialPhase Phase, bank quiz.Bank, applications int) *Session {
	if !initialPhase.Valid() {
		initialPhase = PhaseHook
	}
	return &Session{
		ID:        id,
		LessonID:  lessonID,
		Current:   initialPhase,
		Transfer:  transfer.NewTracker(applications),
		Quiz:      quiz.NewState(bank),
		StartedAt: time.Now(),
	}
}

// PredictionCorrect compares the recorded prediction against the lesson's
// known-correct category id.
func (s *Session) PredictionCorrect(correctID string) bool {
	return s.Prediction != "" && s.Prediction == correctID
}

// TwistPredictionCorrect is the twist-arc mirror of PredictionCorrect.
func (s *Session) TwistPredictionCorrect(correctID string) bool {
	return s.TwistPrediction != "" && s.TwistPrediction == correctID
}

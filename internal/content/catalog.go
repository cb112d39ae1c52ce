package content

import "github.com/Coder9204/sparklab/internal/quiz"

// Category is one selectable answer for a prediction prompt.
type Category struct {
	ID    string
	Label string
}

// PredictPrompt asks the learner for a categorical guess before a play
// phase; the following review phase compares the guess to CorrectID.
type PredictPrompt struct {
	Prompt    string
	Options   []Category
	CorrectID string
}

// Application is one real-world application card in the transfer phase.
type Application struct {
	Title       string
	Description string
	Prompt      string
	Answer      string
}

// Lesson is the full static content for one interactive lesson. Immutable
// after load; all learner state lives in the session.
type Lesson struct {
	ID      string
	Title   string
	Tagline string

	Hook          string
	Predict       PredictPrompt
	PlayHint      string
	Review        string
	TwistPredict  PredictPrompt
	TwistPlayHint string
	TwistReview   string
	Mastery       string

	Applications []Application
	Bank         quiz.Bank

	// PlayDamageGate, when positive, requires the play simulation's damage
	// readout to pass this value before the continue control unlocks.
	PlayDamageGate float64
}

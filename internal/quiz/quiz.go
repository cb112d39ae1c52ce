package quiz

// Option is one answer choice for a question. Exactly one option per
// question carries Correct = true.
type Option struct {
	ID      string
	Label   string
	Correct bool
}

// Question pairs a scenario with a prompt and its answer options.
type Question struct {
	Scenario string
	Prompt   string
	Options  []Option
}

// CorrectOption returns the option marked correct, or ok=false if the
// question has none (malformed content).
func (q Question) CorrectOption() (Option, bool) {
	for _, o := range q.Options {
		if o.Correct {
			return o, true
		}
	}
	return Option{}, false
}

// Bank is an immutable question set with its pass threshold. Thresholds
// vary per lesson and are content configuration, not a shared rule.
type Bank struct {
	Questions     []Question
	PassThreshold int
}

// State tracks one learner's pass through a quiz. Answers are recorded by
// question index, scored once at submission, and frozen until an explicit
// retry.
type State struct {
	bank      Bank
	answers   []string
	cursor    int
	submitted bool
	score     int
}

// Result is the outcome of a submission.
type Result struct {
	Score  int
	Total  int
	Passed bool
}

// NewState creates quiz state with all answer slots unset.
func NewState(bank Bank) *State {
	return &State{
		bank:    bank,
		answers: make([]string, len(bank.Questions)),
	}
}

// Bank returns the underlying question bank.
func (s *State) Bank() Bank {
	return s.bank
}

// Record stores the learner's chosen option for a question, overwriting any
// prior choice. It is a no-op after submission and for out-of-range
// indices: regrading a submitted quiz is never allowed.
func (s *State) Record(question int, optionID string) {
	if s.submitted || question < 0 || question >= len(s.answers) {
		return
	}
	s.answers[question] = optionID
}

// Answer returns the recorded option for a question, ok=false if unset.
func (s *State) Answer(question int) (string, bool) {
	if question < 0 || question >= len(s.answers) || s.answers[question] == "" {
		return "", false
	}
	return s.answers[question], true
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *State) AnsweredCount() int {
	n := 0
	for _, a := range s.answers {
		if a != "" {
			n++
		}
	}
	return n
}

// AllAnswered reports whether every question has a recorded answer.
func (s *State) AllAnswered() bool {
	return s.AnsweredCount() == len(s.answers)
}

// Submit scores the recorded answers: one point per question whose chosen
// option is marked correct. Unanswered questions score zero, never error.
// Submission is one-way; calling Submit again returns the existing result.
func (s *State) Submit() Result {
	if s.submitted {
		return Result{Score: s.score, Total: len(s.answers), Passed: s.Passed()}
	}
	score := 0
	for i, q := range s.bank.Questions {
		chosen := s.answers[i]
		if chosen == "" {
			continue
		}
		for _, o := range q.Options {
			if o.ID == chosen && o.Correct {
				score++
				break
			}
		}
	}
	s.score = score
	s.submitted = true
	return Result{Score: score, Total: len(s.answers), Passed: s.Passed()}
}

// Retry clears all answers and the submitted flag and resets the cursor to
// the first question. The stale score must not be read before the next
// Submit.
func (s *State) Retry() {
	s.answers = make([]string, len(s.bank.Questions))
	s.submitted = false
	s.cursor = 0
}

// Submitted reports whether the quiz has been scored.
func (s *State) Submitted() bool {
	return s.submitted
}

// Score returns the score computed at the last submission.
func (s *State) Score() int {
	return s.score
}

// Passed reports whether the quiz was submitted and met the pass threshold.
func (s *State) Passed() bool {
	return s.submitted && s.score >= s.bank.PassThreshold
}

// Cursor returns the active question index.
func (s *State) Cursor() int {
	return s.cursor
}

// SetCursor moves the active question index, clamped to the valid range.
func (s *State) SetCursor(i int) {
	if i < 0 {
		i = 0
	}
	if max := len(s.bank.Questions) - 1; i > max {
		i = max
	}
	s.cursor = i
}

// RestoreAnswers replaces the answer slots from a saved session. Slots
// beyond the bank size are dropped; missing slots stay unset. No-op after
// submission.
func (s *State) RestoreAnswers(answers []string) {
	if s.submitted {
		return
	}
	for i, a := range answers {
		if i >= len(s.answers) {
			break
		}
		s.answers[i] = a
	}
}

// Answers returns a copy of the raw answer slots for persistence.
func (s *State) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

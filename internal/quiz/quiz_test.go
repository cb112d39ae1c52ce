package quiz

import "testing"

func bankOf(n int) Bank {
	questions := make([]Question, n)
	for i := range questions {
		questions[i] = Question{
			Prompt: "q",
			Options: []Option{
				{ID: "a", Label: "right", Correct: true},
				{ID: "b", Label: "wrong"},
				{ID: "c", Label: "also wrong"},
			},
		}
	}
	return Bank{Questions: questions, PassThreshold: 7}
}

func TestAllCorrectScoresFull(t *testing.T) {
	s := NewState(bankOf(10))
	for i := 0; i < 10; i++ {
		s.Record(i, "a")
	}
	res := s.Submit()
	if res.Score != 10 || !res.Passed {
		t.Errorf("result = %+v, want 10 and passed", res)
	}
}

func TestAllWrongScoresZero(t *testing.T) {
	s := NewState(bankOf(10))
	for i := 0; i < 10; i++ {
		s.Record(i, "b")
	}
	res := s.Submit()
	if res.Score != 0 || res.Passed {
		t.Errorf("result = %+v, want 0 and failed", res)
	}
}

func TestUnansweredScoreWrongNeverError(t *testing.T) {
	s := NewState(bankOf(10))
	s.Record(0, "a")
	s.Record(5, "a")
	res := s.Submit()
	if res.Score != 2 {
		t.Errorf("score = %d, want 2", res.Score)
	}
}

func TestPassExactlyAtThreshold(t *testing.T) {
	tests := []struct {
		correct int
		passed  bool
	}{
		{6, false},
		{7, true}, // threshold itself passes
		{8, true},
	}
	for _, tt := range tests {
		s := NewState(bankOf(10))
		for i := 0; i < tt.correct; i++ {
			s.Record(i, "a")
		}
		for i := tt.correct; i < 10; i++ {
			s.Record(i, "b")
		}
		s.Submit()
		if s.Passed() != tt.passed {
			t.Errorf("%d correct: passed = %v, want %v", tt.correct, s.Passed(), tt.passed)
		}
	}
}

func TestRecordAfterSubmitIsNoOp(t *testing.T) {
	s := NewState(bankOf(10))
	for i := 0; i < 10; i++ {
		s.Record(i, "b")
	}
	s.Submit()

	// Attempted regrade must not change anything.
	for i := 0; i < 10; i++ {
		s.Record(i, "a")
	}
	res := s.Submit()
	if res.Score != 0 {
		t.Errorf("score after regrade attempt = %d, want 0", res.Score)
	}
	if got, _ := s.Answer(0); got != "b" {
		t.Errorf("answer mutated after submit: %q", got)
	}
}

func TestRecordOverwritesBeforeSubmit(t *testing.T) {
	s := NewState(bankOf(10))
	s.Record(3, "b")
	s.Record(3, "a")
	if got, ok := s.Answer(3); !ok || got != "a" {
		t.Errorf("answer = %q, %v", got, ok)
	}
	if s.AnsweredCount() != 1 {
		t.Errorf("answered count = %d, want 1", s.AnsweredCount())
	}
}

func TestRecordOutOfRangeIgnored(t *testing.T) {
	s := NewState(bankOf(3))
	s.Record(-1, "a")
	s.Record(3, "a")
	if s.AnsweredCount() != 0 {
		t.Errorf("out-of-range records counted: %d", s.AnsweredCount())
	}
}

func TestRetryClearsState(t *testing.T) {
	s := NewState(bankOf(10))
	for i := 0; i < 10; i++ {
		s.Record(i, "a")
	}
	s.SetCursor(9)
	s.Submit()
	if !s.Submitted() {
		t.Fatal("expected submitted")
	}

	s.Retry()
	if s.Submitted() {
		t.Error("submitted flag survived retry")
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("answers survived retry: %d", s.AnsweredCount())
	}
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
	if s.Passed() {
		t.Error("passed must be false after retry")
	}

	// Full round trip after retry.
	for i := 0; i < 10; i++ {
		s.Record(i, "a")
	}
	if res := s.Submit(); res.Score != 10 {
		t.Errorf("score after retry = %d, want 10", res.Score)
	}
}

func TestSubmitIdempotent(t *testing.T) {
	s := NewState(bankOf(10))
	for i := 0; i < 7; i++ {
		s.Record(i, "a")
	}
	first := s.Submit()
	second := s.Submit()
	if first != second {
		t.Errorf("second submit = %+v, want %+v", second, first)
	}
}

func TestRestoreAnswers(t *testing.T) {
	s := NewState(bankOf(3))
	s.RestoreAnswers([]string{"a", "", "b", "extra-dropped"})
	if got, ok := s.Answer(0); !ok || got != "a" {
		t.Errorf("answer 0 = %q, %v", got, ok)
	}
	if _, ok := s.Answer(1); ok {
		t.Error("answer 1 should stay unset")
	}
	if got, _ := s.Answer(2); got != "b" {
		t.Errorf("answer 2 = %q", got)
	}
}

func TestCursorClamped(t *testing.T) {
	s := NewState(bankOf(5))
	s.SetCursor(-3)
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
	s.SetCursor(99)
	if s.Cursor() != 4 {
		t.Errorf("cursor = %d, want 4", s.Cursor())
	}
}

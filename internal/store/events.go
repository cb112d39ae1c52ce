package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/Coder9204/sparklab/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPhaseEvent(ctx context.Context, data PhaseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PhaseEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetFromPhase(data.FromPhase).
		SetToPhase(data.ToPhase).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save phase event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetAction(data.Action).
		SetPhaseReached(data.PhaseReached).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) Stats(ctx context.Context) ([]LessonStats, error) {
	byLesson := make(map[string]*LessonStats)
	get := func(lessonID string) *LessonStats {
		if s, ok := byLesson[lessonID]; ok {
			return s
		}
		s := &LessonStats{LessonID: lessonID}
		byLesson[lessonID] = s
		return s
	}

	sessions, err := r.client.SessionEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	for _, e := range sessions {
		s := get(e.LessonID)
		switch e.Action {
		case "start":
			s.Sessions++
		case "complete":
			s.Completed++
		}
	}

	quizzes, err := r.client.QuizEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz events: %w", err)
	}
	for _, e := range quizzes {
		s := get(e.LessonID)
		s.QuizAttempts++
		if e.Passed {
			s.QuizPasses++
		}
		if e.Score > s.BestScore {
			s.BestScore = e.Score
		}
	}

	out := make([]LessonStats, 0, len(byLesson))
	for _, s := range byLesson {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LessonID < out[j].LessonID })
	return out, nil
}

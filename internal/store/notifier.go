package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Coder9204/sparklab/internal/lesson"
)

// EventNotifier adapts the EventRepo to the controller's outbound
// notification hook, persisting every accepted navigation, quiz
// submission, and mastery completion.
type EventNotifier struct {
	repo EventRepo
	// sessionStart backs the completion event's duration.
	sessionStart time.Time
}

// NewEventNotifier creates a store-backed notifier.
func NewEventNotifier(repo EventRepo) *EventNotifier {
	return &EventNotifier{repo: repo, sessionStart: time.Now()}
}

// Notify persists the event. Persistence failures are logged, never
// surfaced: the lesson must not break because the event log is sick.
func (n *EventNotifier) Notify(e lesson.Event) {
	ctx := context.Background()
	var err error
	switch e.Type {
	case lesson.EventPhaseChanged:
		err = n.repo.AppendPhaseEvent(ctx, PhaseEventData{
			SessionID: e.SessionID,
			LessonID:  e.LessonID,
			FromPhase: string(e.From),
			ToPhase:   string(e.To),
		})
	case lesson.EventQuizSubmitted:
		err = n.repo.AppendQuizEvent(ctx, QuizEventData{
			SessionID: e.SessionID,
			LessonID:  e.LessonID,
			Score:     e.Score,
			Total:     e.Total,
			Passed:    e.Passed,
		})
	case lesson.EventLessonCompleted:
		err = n.repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:    e.SessionID,
			LessonID:     e.LessonID,
			Action:       "complete",
			PhaseReached: string(e.Phase),
			DurationSecs: int(time.Since(n.sessionStart).Seconds()),
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "event log:", err)
	}
}

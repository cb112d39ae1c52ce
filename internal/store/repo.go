package store

import (
	"context"
	"time"
)

// PhaseEventData is one accepted lesson navigation.
type PhaseEventData struct {
	SessionID string
	LessonID  string
	FromPhase string
	ToPhase   string
}

// QuizEventData is one quiz submission.
type QuizEventData struct {
	SessionID string
	LessonID  string
	Score     int
	Total     int
	Passed    bool
}

// SessionEventData is one session lifecycle event.
type SessionEventData struct {
	SessionID    string
	LessonID     string
	Action       string // "start", "end", or "complete"
	PhaseReached string
	DurationSecs int
}

// LessonStats aggregates the event log for one lesson, for the stats
// command.
type LessonStats struct {
	LessonID     string
	Sessions     int
	Completed    int
	QuizAttempts int
	QuizPasses   int
	BestScore    int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	AppendPhaseEvent(ctx context.Context, data PhaseEventData) error
	AppendQuizEvent(ctx context.Context, data QuizEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// Stats aggregates per-lesson attempt and pass counts.
	Stats(ctx context.Context) ([]LessonStats, error)
}

// SnapshotData is the resumable state of one lesson session. Raw engine
// inputs only; derived outputs are always recomputed.
type SnapshotData struct {
	Version         int                `json:"version"`
	SessionID       string             `json:"session_id"`
	LessonID        string             `json:"lesson_id"`
	Phase           string             `json:"phase"`
	Prediction      string             `json:"prediction,omitempty"`
	TwistPrediction string             `json:"twist_prediction,omitempty"`
	TransferRevealed []int             `json:"transfer_revealed,omitempty"`
	QuizAnswers     []string           `json:"quiz_answers,omitempty"`
	QuizSubmitted   bool               `json:"quiz_submitted"`
	SimInputs       map[string]float64 `json:"sim_inputs,omitempty"`
}

// SnapshotVersion guards against reading snapshots written by an
// incompatible build.
const SnapshotVersion = 1

// Snapshot is a point-in-time capture of a resumable session.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages resumable session snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// LatestForLesson returns the most recent snapshot for one lesson,
	// or nil if none exist.
	LatestForLesson(ctx context.Context, lessonID string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

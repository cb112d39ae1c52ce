package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", LessonID: "overlay", Action: "start",
	}); err != nil {
		t.Fatalf("append session start: %v", err)
	}
	if err := repo.AppendPhaseEvent(ctx, PhaseEventData{
		SessionID: "s1", LessonID: "overlay", FromPhase: "hook", ToPhase: "predict",
	}); err != nil {
		t.Fatalf("append phase event: %v", err)
	}
	if err := repo.AppendQuizEvent(ctx, QuizEventData{
		SessionID: "s1", LessonID: "overlay", Score: 9, Total: 10, Passed: true,
	}); err != nil {
		t.Fatalf("append quiz event: %v", err)
	}
	if err := repo.AppendQuizEvent(ctx, QuizEventData{
		SessionID: "s2", LessonID: "overlay", Score: 4, Total: 10, Passed: false,
	}); err != nil {
		t.Fatalf("append quiz event: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", LessonID: "overlay", Action: "complete", PhaseReached: "mastery",
	}); err != nil {
		t.Fatalf("append session complete: %v", err)
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d lesson rows, want 1", len(stats))
	}
	got := stats[0]
	if got.LessonID != "overlay" {
		t.Errorf("lesson id = %q", got.LessonID)
	}
	if got.Sessions != 1 || got.Completed != 1 {
		t.Errorf("sessions = %d, completed = %d, want 1, 1", got.Sessions, got.Completed)
	}
	if got.QuizAttempts != 2 || got.QuizPasses != 1 {
		t.Errorf("attempts = %d, passes = %d, want 2, 1", got.QuizAttempts, got.QuizPasses)
	}
	if got.BestScore != 9 {
		t.Errorf("best score = %d, want 9", got.BestScore)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	data := SnapshotData{
		Version:          SnapshotVersion,
		SessionID:        "s1",
		LessonID:         "straingauge",
		Phase:            "twist_play",
		Prediction:       "doubles",
		TransferRevealed: []int{0, 2},
		QuizAnswers:      []string{"a", "", "c"},
		SimInputs:        map[string]float64{"force_n": 120},
	}
	if err := repo.Save(ctx, &Snapshot{Sequence: 7, Timestamp: now, Data: data}); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if snap.Data.LessonID != "straingauge" || snap.Data.Phase != "twist_play" {
		t.Errorf("round-trip lost fields: %+v", snap.Data)
	}
	if snap.Data.SimInputs["force_n"] != 120 {
		t.Errorf("sim inputs = %v", snap.Data.SimInputs)
	}

	byLesson, err := repo.LatestForLesson(ctx, "straingauge")
	if err != nil {
		t.Fatalf("latest for lesson: %v", err)
	}
	if byLesson == nil || byLesson.Data.SessionID != "s1" {
		t.Errorf("latest for lesson = %+v", byLesson)
	}
	miss, err := repo.LatestForLesson(ctx, "cavitation")
	if err != nil {
		t.Fatalf("latest for other lesson: %v", err)
	}
	if miss != nil {
		t.Error("expected nil for lesson with no snapshots")
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: SnapshotVersion, LessonID: "overlay", Phase: "hook"},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}
	latest, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if latest == nil || latest.Sequence != 4 {
		t.Errorf("latest after prune = %+v, want sequence 4", latest)
	}
}

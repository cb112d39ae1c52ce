package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Coder9204/sparklab/internal/app"
	"github.com/Coder9204/sparklab/internal/content"
	"github.com/Coder9204/sparklab/internal/lesson"
	"github.com/Coder9204/sparklab/internal/sim"
	"github.com/Coder9204/sparklab/internal/store"
)

// runApp opens the store, loads the catalog, and launches the TUI. When
// lessonID is non-empty the home screen is skipped and that lesson opens
// directly.
func runApp(cmd *cobra.Command, lessonID string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		fmt.Fprintln(os.Stderr, "Continuing with defaults.")
	}

	lessons, err := content.Catalog()
	if err != nil {
		return fmt.Errorf("load lessons: %w", err)
	}

	opts := app.Options{
		Lessons: lessons,
		Config:  cfg,
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	opts.EventRepo = st.EventRepo()
	opts.SnapRepo = st.SnapshotRepo()

	if lessonID != "" {
		l, err := content.Get(lessonID)
		if err != nil {
			return err
		}
		l.Bank.PassThreshold = cfg.PassThreshold(l.ID, l.Bank.PassThreshold, len(l.Bank.Questions))
		engine, err := sim.ForLesson(l.ID, rand.New(rand.NewSource(time.Now().UnixNano())))
		if err != nil {
			return err
		}
		opts.InitialLesson = &l
		opts.InitialEngine = engine
		opts.InitialResume = resumeFor(cmd, opts.SnapRepo, l.ID)
	}

	return app.Run(opts)
}

// resumeFor builds the snapshot a directly launched lesson resumes from.
// A --phase override wins over the saved phase; with no saved snapshot it
// yields a fresh session jumped to that phase.
func resumeFor(cmd *cobra.Command, snaps store.SnapshotRepo, lessonID string) *store.SnapshotData {
	var data *store.SnapshotData
	if fresh, _ := cmd.Flags().GetBool("fresh"); !fresh {
		snap, err := snaps.LatestForLesson(context.Background(), lessonID)
		if err == nil && snap != nil && snap.Data.Version == store.SnapshotVersion &&
			snap.Data.Phase != string(lesson.PhaseMastery) {
			data = &snap.Data
		}
	}

	phase, _ := cmd.Flags().GetString("phase")
	if phase == "" {
		return data
	}
	if !lesson.Phase(phase).Valid() {
		fmt.Fprintf(os.Stderr, "unknown phase %q, starting at the hook\n", phase)
		return data
	}
	if data == nil {
		data = &store.SnapshotData{
			Version:   store.SnapshotVersion,
			SessionID: uuid.New().String(),
			LessonID:  lessonID,
		}
	}
	data.Phase = phase
	return data
}

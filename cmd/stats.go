package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Coder9204/sparklab/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-lesson progress from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _ := loadConfig(cmd)
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.EventRepo().Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("aggregate events: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		fmt.Printf("%-14s %9s %10s %9s %7s %11s\n",
			"LESSON", "SESSIONS", "COMPLETED", "ATTEMPTS", "PASSES", "BEST SCORE")
		for _, s := range stats {
			fmt.Printf("%-14s %9d %10d %9d %7d %11d\n",
				s.LessonID, s.Sessions, s.Completed, s.QuizAttempts, s.QuizPasses, s.BestScore)
		}
		return nil
	},
}

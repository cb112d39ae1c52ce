package cmd

import (
	"fmt"

	"github.com/Coder9204/sparklab/internal/config"
	"github.com/Coder9204/sparklab/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sparklab",
	Short: "Interactive physics playground for the terminal",
	Long:  "SparkLab — terminal lessons where you predict, break, and master real engineering phenomena.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SPARKLAB_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides SPARKLAB_CONFIG env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is empty.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	p, _ := cmd.Flags().GetString("config")
	if p == "" {
		var err error
		p, err = config.DefaultPath()
		if err != nil {
			return config.Default(), fmt.Errorf("resolve config path: %w", err)
		}
	}
	return config.Load(p)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then SPARKLAB_DB / the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database != "" {
		return cfg.Database, store.EnsureDir(cfg.Database)
	}
	return store.DefaultDBPath()
}

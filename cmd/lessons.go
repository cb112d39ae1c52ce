package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Coder9204/sparklab/internal/content"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the available lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		lessons, err := content.Catalog()
		if err != nil {
			return fmt.Errorf("load lessons: %w", err)
		}
		for _, l := range lessons {
			fmt.Printf("%-14s %-28s %s\n", l.ID, l.Title, l.Tagline)
		}
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [lesson]",
	Short: "Open a lesson directly",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("lesson")
		if len(args) > 0 {
			id = args[0]
		}
		if id == "" {
			return fmt.Errorf("a lesson id is required (try 'sparklab lessons')")
		}
		return runApp(cmd, id)
	},
}

func init() {
	playCmd.Flags().String("lesson", "", "Lesson id to open")
	playCmd.Flags().String("phase", "", "Jump to a phase, overriding the saved one")
	playCmd.Flags().Bool("fresh", false, "Ignore any saved session for this lesson")
}

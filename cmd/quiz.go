package cmd

import (
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Pick a lesson and take a quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "quiz")
	},
}

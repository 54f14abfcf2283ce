package cmd

import (
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Jump straight into a review session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "review")
	},
}

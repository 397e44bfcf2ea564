package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "repo-pulse",
	Short: "Commit activity dashboard for GitHub repositories",
	Long: `Repo Pulse serves an interactive dashboard of a GitHub repository's
commit activity: commit frequency per calendar week, the top contributors,
and summary metrics, recomputed from the GitHub REST API on every refresh.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

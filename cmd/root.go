package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "semtag",
	Short: "A CLI tool that computes the next semantic version tag",
	Long: `semtag inspects a repository's tags and commit history on each
integration event and computes (and optionally creates) the next semantic
version tag, driven by conventional commits, branch role and configurable
bump rules.`,
}

func Execute() error {
	return rootCmd.Execute()
}

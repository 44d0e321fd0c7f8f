package cmd

import (
	"fmt"

	"github.com/semtag-io/semtag/internal/orchestrator"
	"github.com/spf13/cobra"
)

// NewTagCmd creates the tag command, the single one-shot entry point.
func NewTagCmd() *cobra.Command {
	var (
		tagDryRun bool
		tagDebug  bool
	)
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Compute and create the next semantic version tag",
		Long: `Compute the next semantic version tag for the current ref.

The command reads its inputs from the environment (INPUT_* variables as a
CI runner passes them), reconstructs the existing tag catalog, classifies
the branch, resolves the version bump from the commit history and creates
the resulting tag unless --dry-run is set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newContainer(tagDebug)
			if err != nil {
				return err
			}
			defer c.log.Sync() //nolint:errcheck // best-effort flush on shutdown
			if tagDryRun {
				c.cfg.DryRun = true
			}
			// Outside a CI runner GITHUB_SHA is unset; fall back to the
			// tip of the local clone.
			if c.cfg.ResolvedSHA() == "" {
				sha, err := c.repo.RefSHA(cmd.Context(), "HEAD")
				if err != nil {
					return fmt.Errorf("failed to resolve HEAD: %w", err)
				}
				c.cfg.SHA = sha
			}
			orch := orchestrator.NewTagOrchestrator(c.cfg, c.repo, c.analyzer, c.notes, c.outputs, c.log)
			result, err := orch.Execute(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if result.Skipped {
				fmt.Fprintf(out, "No tag created: %s\n", result.SkipReason)
				return nil
			}
			fmt.Fprintf(out, "Release type:\t%s\n", result.ReleaseType)
			if result.PreviousTag != "" {
				fmt.Fprintf(out, "Previous tag:\t%s\n", result.PreviousTag)
			}
			fmt.Fprintf(out, "New tag:\t%s\n", result.NewTag)
			if !result.TagCreated {
				fmt.Fprintln(out, "Tag creation skipped (dry run or tag already exists)")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&tagDryRun, "dry-run", false, "Compute and report without creating the tag")
	cmd.Flags().BoolVar(&tagDebug, "debug", false, "Enable debug logging")
	return cmd
}

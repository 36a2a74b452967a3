package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Check the project for ownership problems",
	Long: `Check the project for ownership problems.

If one or more files are given, the no-owner/multiple-owners/invalid-
team-reference checks are restricted to those paths. The stale-
CODEOWNERS check always covers the whole project.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cache, err := newEngine()
		if err != nil {
			return err
		}
		defer cache.Persist()

		if err := engine.Validate(args...); err != nil {
			term.Error("validation failed")
			for _, line := range splitErrors(err) {
				term.Info("  %s", line)
			}
			os.Exit(1)
		}
		term.Success("no ownership problems found")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

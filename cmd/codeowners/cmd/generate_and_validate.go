package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var generateAndValidateStage bool

var generateAndValidateCmd = &cobra.Command{
	Use:   "generate-and-validate [files...]",
	Short: "Regenerate CODEOWNERS, then validate the result",
	Long: `Regenerate CODEOWNERS, then validate the result.

If one or more files are given, the no-owner/multiple-owners/invalid-
team-reference checks are restricted to those paths.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cache, err := newEngine()
		if err != nil {
			return err
		}
		defer cache.Persist()

		if _, err := engine.WriteCodeowners(codeownersFile); err != nil {
			return err
		}
		term.Success("wrote %s", codeownersFile)

		if generateAndValidateStage {
			if err := codeownersStage(); err != nil {
				term.Warning("could not stage %s: %v", codeownersFile, err)
			}
		}

		// Re-scan so the validator compares against the file we just wrote,
		// rather than the stale CodeownersFileContents read before generation.
		engine, cache2, err := newEngine()
		if err != nil {
			return err
		}
		defer cache2.Persist()

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
	generateAndValidateCmd.Flags().BoolVar(&generateAndValidateStage, "stage", false, "git add the regenerated file")
	rootCmd.AddCommand(generateAndValidateCmd)
}

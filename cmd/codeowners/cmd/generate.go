package cmd

import (
	"github.com/spf13/cobra"
)

var generateStage bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the CODEOWNERS file",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cache, err := newEngine()
		if err != nil {
			return err
		}
		defer cache.Persist()

		if _, err := engine.WriteCodeowners(codeownersFile); err != nil {
			return err
		}

		if generateStage {
			if err := codeownersStage(); err != nil {
				term.Warning("could not stage %s: %v", codeownersFile, err)
			}
		}

		term.Success("wrote %s", codeownersFile)
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateStage, "stage", false, "git add the regenerated file")
	rootCmd.AddCommand(generateCmd)
}

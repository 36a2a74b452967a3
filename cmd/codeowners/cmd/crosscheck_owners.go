package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ownerscan/codeowners/pkg/languages"
)

var crosscheckShowLanguages bool

var crosscheckOwnersCmd = &cobra.Command{
	Use:   "crosscheck-owners",
	Short: "Compare the on-disk CODEOWNERS against a fresh resolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cache, err := newEngine()
		if err != nil {
			return err
		}
		defer cache.Persist()

		mismatches := engine.Crosscheck()
		if len(mismatches) == 0 {
			term.Success("CODEOWNERS matches the live resolution")
			return nil
		}

		term.Warning("%d mismatch(es)", len(mismatches))
		paths := make([]string, 0, len(mismatches))
		for _, m := range mismatches {
			fmt.Println(m.String())
			paths = append(paths, m.Path)
		}

		if crosscheckShowLanguages {
			term.Header("Language breakdown of mismatched files")
			for _, stat := range languages.Breakdown(paths) {
				fmt.Printf("  %-20s %5d files (%.1f%%)\n", stat.Language, stat.FileCount, stat.Percentage)
			}
		}
		return nil
	},
}

func init() {
	crosscheckOwnersCmd.Flags().BoolVar(&crosscheckShowLanguages, "languages", false, "Show a per-language breakdown of mismatched files")
	rootCmd.AddCommand(crosscheckOwnersCmd)
}

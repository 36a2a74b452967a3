package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ownerscan/codeowners/pkg/languages"
)

var forTeamShowLanguages bool

var forTeamCmd = &cobra.Command{
	Use:   "for-team <name>",
	Short: "List every file a team owns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cache, err := newEngine()
		if err != nil {
			return err
		}
		defer cache.Persist()

		files := engine.FilesForTeam(args[0])
		if len(files) == 0 {
			term.Warning("%s owns no files", args[0])
			return nil
		}
		for _, f := range files {
			fmt.Println(f)
		}

		if forTeamShowLanguages {
			term.Header(fmt.Sprintf("Language breakdown for %s", args[0]))
			for _, stat := range languages.Breakdown(files) {
				fmt.Printf("  %-20s %5d files (%.1f%%)\n", stat.Language, stat.FileCount, stat.Percentage)
			}
		}
		return nil
	},
}

func init() {
	forTeamCmd.Flags().BoolVar(&forTeamShowLanguages, "languages", false, "Show a per-language breakdown of the team's owned files")
	rootCmd.AddCommand(forTeamCmd)
}

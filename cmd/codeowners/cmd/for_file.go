package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ownerscan/codeowners/pkg/codeowners"
)

var forFileJSON bool

var forFileCmd = &cobra.Command{
	Use:   "for-file <path> [--json]",
	Short: "Show the resolved owner(s) of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, cache, err := newEngine()
		if err != nil {
			return err
		}
		defer cache.Persist()

		owners := engine.OwnersForFile(args[0])

		if forFileJSON {
			return printForFileJSON(args[0], owners)
		}

		if len(owners) == 0 {
			term.Warning("no owner found for %s", args[0])
			return nil
		}
		for _, fo := range owners {
			var sources []string
			for _, s := range fo.Sources {
				sources = append(sources, s.Kind.String())
			}
			fmt.Printf("%s  (%v)\n", fo.Team.Name, sources)
		}
		return nil
	},
}

func init() {
	forFileCmd.Flags().BoolVar(&forFileJSON, "json", false, "Print the resolved owners as JSON")
	rootCmd.AddCommand(forFileCmd)
}

// printForFileJSON mirrors the {path, owners: [{team, sources}]} shape
// the MCP for_file tool and the HTTP /api/owners/file/{path} endpoint
// both return, so all three surfaces agree on wire format.
func printForFileJSON(path string, owners []codeowners.FileOwner) error {
	type owner struct {
		Team    string   `json:"team"`
		Sources []string `json:"sources"`
	}
	out := make([]owner, 0, len(owners))
	for _, fo := range owners {
		var sources []string
		for _, s := range fo.Sources {
			sources = append(sources, s.Kind.String())
		}
		out = append(out, owner{Team: fo.Team.Name, Sources: sources})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"path": path, "owners": out})
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ownerscan/codeowners/pkg/codeowners"
)

var deleteCacheCmd = &cobra.Command{
	Use:   "delete-cache",
	Short: "Delete the annotation cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache := codeowners.NewFileCache(cfg.CacheDirectory)
		if err := cache.Delete(); err != nil {
			return err
		}
		term.Success("deleted annotation cache")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCacheCmd)
}

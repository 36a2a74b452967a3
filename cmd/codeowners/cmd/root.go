// Package cmd implements the codeowners CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ownerscan/codeowners/pkg/codeowners"
	"github.com/ownerscan/codeowners/pkg/core/logging"
	"github.com/ownerscan/codeowners/pkg/core/terminal"
)

var (
	configPath     string
	projectRoot    string
	codeownersFile string
	noCache        bool
	verbose        bool
	noColor        bool

	term *terminal.Terminal
	cfg  *codeowners.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "codeowners",
	Short: "Resolve, generate, and validate monorepo code ownership",
	Long: `codeowners resolves which team owns which file across a monorepo
and keeps the generated CODEOWNERS file honest.

Quick Start:
  codeowners for-file app/models/user.rb   Show the resolved owner for a file
  codeowners for-team payments              List every file a team owns
  codeowners generate                       Rewrite CODEOWNERS
  codeowners validate                       Check for ownership problems`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			os.Setenv("NO_COLOR", "1")
		}
		term = terminal.New()

		if verbose {
			logging.SetDefault(logging.New(os.Stderr, logging.LevelDebug))
		}

		loaded, err := codeowners.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/codeowners.yml", "Path to the codeowners config file")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", ".", "Root of the monorepo to scan")
	rootCmd.PersistentFlags().StringVar(&codeownersFile, "codeowners-file", "CODEOWNERS", "Path to the generated CODEOWNERS artifact")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Disable the annotation cache")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// newEngine builds the shared Engine for a command, wiring the
// annotation cache unless --no-cache was passed.
func newEngine() (*codeowners.Engine, codeowners.Cache, error) {
	var cache codeowners.Cache
	if noCache {
		cache = codeowners.NewNoopCache()
	} else {
		cache = codeowners.NewFileCache(cfg.CacheDirectory)
	}

	engine, err := codeowners.NewEngine(projectRoot, cfg, cache)
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", projectRoot, err)
	}
	return engine, cache, nil
}

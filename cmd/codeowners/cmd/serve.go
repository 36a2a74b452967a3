package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ownerscan/codeowners/pkg/api"
	"github.com/ownerscan/codeowners/pkg/core/terminal"
)

var (
	servePort int
	serveDev  bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ownership query HTTP API",
	Long: `Start the HTTP API server exposing ownership queries over the
scanned project: owner-for-file, files-for-team, and crosscheck.

Examples:
  codeowners serve                    # Start server on port 3001
  codeowners serve --port 8080        # Start on custom port
  codeowners serve --dev              # Enable CORS for frontend dev server`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 3001, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "Enable development mode (CORS: *)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nShutting down server...")
		cancel()
	}()

	engine, cache, err := newEngine()
	if err != nil {
		return fmt.Errorf("failed to scan project: %w", err)
	}
	defer cache.Persist()

	server := api.NewServer(engine, &api.Options{
		Port:    servePort,
		DevMode: serveDev,
	})

	// Print startup info
	term.Divider()
	term.Info("%s %s", term.Color(terminal.Green, "codeowners API server"), "v0.1.0")
	fmt.Println()
	term.Info("  API:          http://localhost:%d/api", servePort)
	term.Info("  Health:       http://localhost:%d/api/health", servePort)
	term.Info("  Owners:       http://localhost:%d/api/owners/file/{path}", servePort)
	term.Info("  Team files:   http://localhost:%d/api/owners/team/{name}", servePort)
	term.Info("  Crosscheck:   http://localhost:%d/api/crosscheck", servePort)
	fmt.Println()
	if serveDev {
		term.Info("  Mode: %s (CORS enabled for all origins)", term.Color(terminal.Yellow, "development"))
	} else {
		term.Info("  Mode: %s", term.Color(terminal.Green, "production"))
	}
	term.Divider()
	fmt.Println()
	term.Info("Press Ctrl+C to stop the server")
	fmt.Println()

	return server.Run(ctx)
}

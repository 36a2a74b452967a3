package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ownerscan/codeowners/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Start the MCP server for Claude Desktop integration",
	Long: `Start the Model Context Protocol (MCP) server.

Exposes for_file, for_team, and validate tools over stdio so an MCP
client (e.g. Claude Desktop) can query ownership directly.

Add to your Claude Desktop config:
{
  "mcpServers": {
    "codeowners": {
      "command": "/path/to/codeowners",
      "args": ["mcp-serve"]
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	engine, cache, err := newEngine()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	server := mcp.NewServer(engine, cache)
	return server.Run(ctx)
}

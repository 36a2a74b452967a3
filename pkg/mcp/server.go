// Package mcp provides an MCP server exposing code ownership queries.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ownerscan/codeowners/pkg/codeowners"
)

// DefaultMaxOutputSize caps JSON tool output to avoid flooding an MCP
// client; larger results are replaced by a truncation notice.
var DefaultMaxOutputSize = 1024 * 1024

// Server exposes ownership queries over MCP on stdio.
type Server struct {
	engine *codeowners.Engine
	cache  codeowners.Cache
	server *mcp.Server
}

// NewServer builds an MCP server over an already-scanned Engine.
func NewServer(engine *codeowners.Engine, cache codeowners.Cache) *Server {
	s := &Server{engine: engine, cache: cache}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "codeowners",
		Version: "1.0.0",
	}, nil)

	s.registerTools()
	return s
}

// Run starts the server on stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	defer s.cache.Persist()
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "for_file",
		Description: "Resolve the owning team(s) of a single file, with the sources that claimed it",
	}, s.handleForFile)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "for_team",
		Description: "List every file a team owns",
	}, s.handleForTeam)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate",
		Description: "Check the project for ownership problems: unknown team references, unowned or multiply-owned files, and a stale CODEOWNERS artifact",
	}, s.handleValidate)
}

// TextOutput is the uniform tool output shape; the SDK populates
// Content from it automatically.
type TextOutput struct {
	Text string `json:"text"`
}

// ForFileInput parameters the for_file tool.
type ForFileInput struct {
	Path string `json:"path"`
}

func (s *Server) handleForFile(ctx context.Context, req *mcp.CallToolRequest, input ForFileInput) (*mcp.CallToolResult, TextOutput, error) {
	owners := s.engine.OwnersForFile(input.Path)

	type owner struct {
		Team    string   `json:"team"`
		Sources []string `json:"sources"`
	}
	out := make([]owner, 0, len(owners))
	for _, fo := range owners {
		var sources []string
		for _, src := range fo.Sources {
			sources = append(sources, src.Kind.String())
		}
		out = append(out, owner{Team: fo.Team.Name, Sources: sources})
	}

	data, err := safeJSONMarshal(map[string]any{"path": input.Path, "owners": out})
	if err != nil {
		return nil, TextOutput{}, err
	}
	return nil, TextOutput{Text: string(data)}, nil
}

// ForTeamInput parameters the for_team tool.
type ForTeamInput struct {
	Team string `json:"team"`
}

func (s *Server) handleForTeam(ctx context.Context, req *mcp.CallToolRequest, input ForTeamInput) (*mcp.CallToolResult, TextOutput, error) {
	files := s.engine.FilesForTeam(input.Team)
	data, err := safeJSONMarshal(map[string]any{"team": input.Team, "files": files, "count": len(files)})
	if err != nil {
		return nil, TextOutput{}, err
	}
	return nil, TextOutput{Text: string(data)}, nil
}

// ValidateInput is empty: validate always runs against the whole project.
type ValidateInput struct{}

func (s *Server) handleValidate(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, TextOutput, error) {
	err := s.engine.Validate()
	result := map[string]any{"ok": err == nil}
	if err != nil {
		result["problems"] = err.Error()
	}
	data, jsonErr := safeJSONMarshal(result)
	if jsonErr != nil {
		return nil, TextOutput{}, jsonErr
	}
	return nil, TextOutput{Text: string(data)}, nil
}

func safeJSONMarshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if len(data) > DefaultMaxOutputSize {
		truncated := map[string]any{
			"_warning":   fmt.Sprintf("output truncated - exceeded %d bytes", DefaultMaxOutputSize),
			"_truncated": true,
		}
		return json.MarshalIndent(truncated, "", "  ")
	}
	return data, nil
}

package codeowners

import (
	"os"

	"github.com/ownerscan/codeowners/pkg/core/logging"
)

// Engine is the facade the CLI, HTTP API, and MCP server all build once
// per invocation: scan, then answer queries against the resulting
// Project without re-walking the tree.
type Engine struct {
	cfg       *Config
	project   *Project
	resolver  *Resolver
	generator *Generator
}

// NewEngine scans projectRoot and wires the resolver/generator over the
// result. cache is persisted by the caller once it's done issuing
// queries (CLI commands call cache.Persist() in their deferred cleanup).
func NewEngine(projectRoot string, cfg *Config, cache Cache) (*Engine, error) {
	scanner := NewScanner(cfg, cache)
	project, err := scanner.Scan(projectRoot)
	if err != nil {
		return nil, err
	}

	mappers := AllMappers()
	return &Engine{
		cfg:       cfg,
		project:   project,
		resolver:  NewResolver(project, mappers),
		generator: NewGenerator(mappers, cfg.ExecutableName),
	}, nil
}

// Project returns the underlying scan result.
func (e *Engine) Project() *Project { return e.project }

// relPath normalizes a path the caller may have given absolute or
// relative-to-cwd into one relative to the project root.
func (e *Engine) relPath(path string) string {
	return relPath(e.project.BasePath, path)
}

// OwnersForFile resolves and combines every owner claiming path.
func (e *Engine) OwnersForFile(path string) []FileOwner {
	return Combine(e.resolver.OwnersFor(e.relPath(path)))
}

// FilesForTeam returns every project file this team owns, in path order.
func (e *Engine) FilesForTeam(teamName string) []string {
	var files []string
	for _, f := range e.project.Files {
		rel := e.relPath(f.Path)
		for _, fo := range e.OwnersForFile(rel) {
			if fo.Team.Name == teamName {
				files = append(files, rel)
				break
			}
		}
	}
	return files
}

// Validate runs the full validation pass (§4.G.1). If paths is
// non-empty, the NoOwner/MultipleOwners/InvalidTeamReference checks are
// restricted to those paths; StaleCodeowners always covers the whole
// project.
func (e *Engine) Validate(paths ...string) error {
	v := NewValidator(e.project, e.cfg.ExecutableName)
	return v.Validate(e.project, paths...)
}

// Generate returns the canonical CODEOWNERS text for the current scan.
func (e *Engine) Generate() string {
	return e.generator.Generate(e.project)
}

// WriteCodeowners regenerates and writes the CODEOWNERS artifact to
// codeownersPath, returning the rendered text.
func (e *Engine) WriteCodeowners(codeownersPath string) (string, error) {
	text := e.Generate()
	if err := os.WriteFile(codeownersPath, []byte(text), 0o644); err != nil {
		return "", err
	}
	return text, nil
}

// Crosscheck compares the on-disk CODEOWNERS artifact against a fresh
// resolution (§4.G.2).
func (e *Engine) Crosscheck() []CrosscheckMismatch {
	return Crosscheck(e.project, e.resolver)
}

// Logger returns the package-default logger, scoped for CLI commands
// that want to report engine-level context (project root, team, etc.).
func (e *Engine) Logger() *logging.Logger {
	return logging.Default().WithPath(e.project.BasePath)
}

// Package codeowners resolves file ownership across a monorepo from
// annotations, directory markers, package manifests, and team
// definitions, and generates/validates the CODEOWNERS artifact that
// summarizes that resolution.
package codeowners

import (
	"path/filepath"
	"strings"
)

// PackageKind distinguishes the two manifest families the scanner
// understands.
type PackageKind string

const (
	PackageKindRuby       PackageKind = "ruby"
	PackageKindJavascript PackageKind = "javascript"
)

// Team is a named owner. Teams are referred to by Name everywhere
// downstream of construction; there are no cyclic references.
type Team struct {
	Name            string   // stable identifier, unique across the project
	GithubTeam      string   // emitted verbatim into CODEOWNERS
	ConfigPath      string   // relative path to the team's own YAML file
	OwnedGlobs      []string // globs this team claims
	SubtractedGlobs []string // exclusions carved out of OwnedGlobs
	OwnedGems       []string // vendored-dependency directory names
	AvoidOwnership  bool     // true: contributes matchers but emits commented-out lines
}

// ProjectFile is a file that matched owned_globs (and not unowned_globs)
// during the scan. Immutable once built.
type ProjectFile struct {
	Path            string // absolute path
	AnnotationOwner string // team name from the first line, or ""
}

// Package is a package.yml / package.json manifest with an owner key.
type Package struct {
	Path  string // relative path to the manifest file
	Kind  PackageKind
	Owner string // team name, verbatim from the manifest
}

// Dir returns the directory containing the manifest.
func (p Package) Dir() string {
	return dirOf(p.Path)
}

// DirectoryCodeownerMarker is a `.codeowner` file naming the owner of
// everything below its parent directory.
type DirectoryCodeownerMarker struct {
	Path  string // relative path to the `.codeowner` file itself
	Owner string // trimmed single line of the file
}

// Dir returns the directory the marker applies to.
func (m DirectoryCodeownerMarker) Dir() string {
	return dirOf(m.Path)
}

// VendoredGem is a direct subdirectory of the configured vendored-gems
// root.
type VendoredGem struct {
	Path string // absolute path
	Name string // basename
}

// Project is the immutable result of one scan. It is built once and
// read concurrently by every mapper and the validator; nothing mutates
// it after Scan returns.
type Project struct {
	BasePath                string
	Files                   []ProjectFile
	Packages                []Package
	DirectoryMarkers        []DirectoryCodeownerMarker
	Teams                   []Team
	VendoredGems            []VendoredGem
	CodeownersFileContents  string // raw bytes read from disk, "" if absent

	teamsByName map[string]*Team
}

// TeamByName looks up a team by its stable name, after Scan has
// populated the lookup index.
func (p *Project) TeamByName(name string) (*Team, bool) {
	t, ok := p.teamsByName[name]
	return t, ok
}

// indexTeams builds the name lookup. Scan calls it once, right after
// the team definitions are loaded.
func (p *Project) indexTeams() {
	p.teamsByName = make(map[string]*Team, len(p.Teams))
	for i := range p.Teams {
		p.teamsByName[p.Teams[i].Name] = &p.Teams[i]
	}
}

// relPath normalizes a path a caller may have given absolute or
// relative-to-cwd into one relative to basePath, the way every mapper
// and matcher in this package expects.
func relPath(basePath, path string) string {
	if filepath.IsAbs(path) {
		if rel, err := filepath.Rel(basePath, path); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(strings.TrimPrefix(path, basePath+"/"))
}

func dirOf(path string) string {
	i := len(path) - 1
	for i >= 0 && path[i] != '/' {
		i--
	}
	if i < 0 {
		return ""
	}
	return path[:i]
}

package codeowners

import "sort"

// SourceKind tags the kind of evidence a matcher carries (§3).
// Priority orders the Combiner's fold: lower value wins.
type SourceKind int

const (
	SourceAnnotatedFile SourceKind = iota
	SourceDirectory
	SourcePackage
	SourceTeamGlob
	SourceTeamGem
	SourceTeamYml
)

// Priority returns the source's rank in the §4.E ordering.
func (k SourceKind) Priority() int { return int(k) }

func (k SourceKind) String() string {
	switch k {
	case SourceAnnotatedFile:
		return "annotated_file"
	case SourceDirectory:
		return "directory"
	case SourcePackage:
		return "package"
	case SourceTeamGlob:
		return "team_glob"
	case SourceTeamGem:
		return "team_gem"
	case SourceTeamYml:
		return "team_yml"
	default:
		return "unknown"
	}
}

// Source carries enough information to explain a match. Exactly one of
// Dir, ManifestPath/PackageGlob, or Glob is populated depending on Kind.
type Source struct {
	Kind         SourceKind
	Dir          string // SourceDirectory, SourceTeamGem
	ManifestPath string // SourcePackage
	PackageGlob  string // SourcePackage
	Glob         string // SourceTeamGlob
}

// Entry is one line the File Generator will eventually emit: a path
// (already bracket-escaped), the team that owns it, and whether the
// team opted out of being listed live.
type Entry struct {
	Path       string
	GithubTeam string
	TeamName   string
	Disabled   bool
}

// ExactPaths is an OwnerMatcher keyed by exact relative path, used by
// the annotation and team-yml mappers.
type ExactPaths struct {
	Paths  map[string]string // relative path -> team name
	Source Source
}

// GlobRule is an OwnerMatcher that matches any path satisfying Glob and
// none of SubtractedGlobs.
type GlobRule struct {
	Glob            string
	TeamName        string
	Source          Source
	SubtractedGlobs []string
}

// OwnerMatcher is the tagged-union interface both matcher shapes
// implement; dispatch happens through each shape's own OwnerFor
// method, never by inheritance.
type OwnerMatcher interface {
	// OwnerFor returns the owning team name and source for path, if
	// this matcher claims it.
	OwnerFor(path string) (team string, source Source, ok bool)
}

func (m ExactPaths) OwnerFor(path string) (string, Source, bool) {
	team, ok := m.Paths[path]
	if !ok {
		return "", Source{}, false
	}
	return team, m.Source, true
}

func (m GlobRule) OwnerFor(path string) (string, Source, bool) {
	if !globMatch(m.Glob, path) {
		return "", Source{}, false
	}
	if matchesAny(m.SubtractedGlobs, path) {
		return "", Source{}, false
	}
	return m.TeamName, m.Source, true
}

// Mapper is implemented by each of the six ownership sources (§4.C).
type Mapper interface {
	Name() string
	Entries(p *Project) []Entry
	OwnerMatchers(p *Project) []OwnerMatcher
}

// sortEntries applies the §4.F comparator: descending specificity
// (longer paths first within the same directory prefix), then lexical.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Path, entries[j].Path
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
}

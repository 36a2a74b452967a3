package codeowners

// directoryMapper builds ownership from `.codeowner` marker files
// (§4.C.2). Grounded on original_source's directory_mapper.rs.
type directoryMapper struct{}

func newDirectoryMapper() Mapper { return directoryMapper{} }

func (directoryMapper) Name() string { return "Owner in .codeowner" }

func (directoryMapper) Entries(p *Project) []Entry {
	var entries []Entry
	for _, m := range p.DirectoryMarkers {
		team, ok := p.TeamByName(m.Owner)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Path:       EscapeBrackets(m.Dir()) + "/**/**",
			GithubTeam: team.GithubTeam,
			TeamName:   team.Name,
			Disabled:   team.AvoidOwnership,
		})
	}
	sortEntries(entries)
	return entries
}

func (directoryMapper) OwnerMatchers(p *Project) []OwnerMatcher {
	matchers := make([]OwnerMatcher, 0, len(p.DirectoryMarkers))
	for _, m := range p.DirectoryMarkers {
		if _, ok := p.TeamByName(m.Owner); !ok {
			continue
		}
		matchers = append(matchers, GlobRule{
			Glob:     EscapeBrackets(m.Dir()) + "/**/**",
			TeamName: m.Owner,
			Source:   Source{Kind: SourceDirectory, Dir: m.Dir()},
		})
	}
	return matchers
}

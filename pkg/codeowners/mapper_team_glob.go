package codeowners

// teamGlobMapper builds ownership from each team's own owned_globs
// (§4.C.4). Grounded on original_source's team_glob_mapper.rs.
type teamGlobMapper struct{}

func newTeamGlobMapper() Mapper { return teamGlobMapper{} }

func (teamGlobMapper) Name() string { return "Team-specific owned globs" }

func (teamGlobMapper) Entries(p *Project) []Entry {
	var entries []Entry
	for _, team := range p.Teams {
		for _, glob := range team.OwnedGlobs {
			entries = append(entries, Entry{
				Path:       EscapeBrackets(glob),
				GithubTeam: team.GithubTeam,
				TeamName:   team.Name,
				Disabled:   team.AvoidOwnership,
			})
		}
	}
	sortEntries(entries)
	return entries
}

func (teamGlobMapper) OwnerMatchers(p *Project) []OwnerMatcher {
	var matchers []OwnerMatcher
	for _, team := range p.Teams {
		for _, glob := range team.OwnedGlobs {
			matchers = append(matchers, GlobRule{
				Glob:            glob,
				TeamName:        team.Name,
				Source:          Source{Kind: SourceTeamGlob, Glob: glob},
				SubtractedGlobs: team.SubtractedGlobs,
			})
		}
	}
	return matchers
}

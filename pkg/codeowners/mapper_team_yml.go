package codeowners

// teamYmlMapper makes each team own its own config file (§4.C.6).
// Grounded on original_source's team_yml_mapper.rs.
type teamYmlMapper struct{}

func newTeamYmlMapper() Mapper { return teamYmlMapper{} }

func (teamYmlMapper) Name() string { return "Team YML ownership" }

func (teamYmlMapper) Entries(p *Project) []Entry {
	var entries []Entry
	for _, team := range p.Teams {
		if team.AvoidOwnership {
			continue
		}
		entries = append(entries, Entry{
			Path:       EscapeBrackets(team.ConfigPath),
			GithubTeam: team.GithubTeam,
			TeamName:   team.Name,
			Disabled:   false,
		})
	}
	sortEntries(entries)
	return entries
}

func (teamYmlMapper) OwnerMatchers(p *Project) []OwnerMatcher {
	paths := make(map[string]string)
	for _, team := range p.Teams {
		paths[team.ConfigPath] = team.Name
	}
	return []OwnerMatcher{ExactPaths{Paths: paths, Source: Source{Kind: SourceTeamYml}}}
}

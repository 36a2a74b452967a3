package codeowners

// teamGemMapper builds ownership from each team's owned_gems, resolved
// against the scanned VendoredGem list (§4.C.5). The matcher glob is
// `/**/*` (single star) while the emitted entry is `/**/**` — an
// intentional asymmetry preserved from original_source's
// team_gem_mapper.rs: the single star excludes the gem directory
// itself from ownership, the double star is only used for display.
type teamGemMapper struct{}

func newTeamGemMapper() Mapper { return teamGemMapper{} }

func (teamGemMapper) Name() string { return "Team owned gems" }

func (m teamGemMapper) ownedGemDirs(p *Project) []struct {
	dir  string
	team Team
} {
	gemsByName := make(map[string]VendoredGem, len(p.VendoredGems))
	for _, g := range p.VendoredGems {
		gemsByName[g.Name] = g
	}

	var out []struct {
		dir  string
		team Team
	}
	for _, team := range p.Teams {
		for _, gemName := range team.OwnedGems {
			gem, ok := gemsByName[gemName]
			if !ok {
				continue
			}
			out = append(out, struct {
				dir  string
				team Team
			}{dir: gem.Path, team: team})
		}
	}
	return out
}

func (m teamGemMapper) Entries(p *Project) []Entry {
	var entries []Entry
	for _, og := range m.ownedGemDirs(p) {
		entries = append(entries, Entry{
			Path:       EscapeBrackets(og.dir) + "/**/**",
			GithubTeam: og.team.GithubTeam,
			TeamName:   og.team.Name,
			Disabled:   og.team.AvoidOwnership,
		})
	}
	sortEntries(entries)
	return entries
}

func (m teamGemMapper) OwnerMatchers(p *Project) []OwnerMatcher {
	var matchers []OwnerMatcher
	for _, og := range m.ownedGemDirs(p) {
		matchers = append(matchers, GlobRule{
			Glob:     og.dir + "/**/*",
			TeamName: og.team.Name,
			Source:   Source{Kind: SourceTeamGem, Dir: og.dir},
		})
	}
	return matchers
}

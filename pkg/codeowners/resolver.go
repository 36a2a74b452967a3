package codeowners

// FileOwner is the resolver's per-team view of a file: which team, and
// every source that claimed it (§3).
type FileOwner struct {
	Team    Team
	Sources []Source
}

// Resolver queries the matcher set built by every mapper (§4.D). Beyond
// the matchers it keeps only the Project's read-only team index, keeping
// it reusable across a parallel resolve pass.
type Resolver struct {
	matchers []OwnerMatcher
	teams    map[string]*Team
}

// AllMappers returns the seven mappers in the canonical wiring order used
// throughout this package: annotation, team-glob, directory, ruby
// package, javascript package, team-yml, team-gem. Grounded on
// original_source's ownership.rs, which wires exactly these seven
// mapper instances (ruby/js package count as two).
func AllMappers() []Mapper {
	return []Mapper{
		newAnnotationMapper(),
		newTeamGlobMapper(),
		newDirectoryMapper(),
		newRubyPackageMapper(),
		newJavascriptPackageMapper(),
		newTeamYmlMapper(),
		newTeamGemMapper(),
	}
}

// NewResolver builds matchers from every mapper against p.
func NewResolver(p *Project, mappers []Mapper) *Resolver {
	var matchers []OwnerMatcher
	for _, m := range mappers {
		matchers = append(matchers, m.OwnerMatchers(p)...)
	}
	return &Resolver{matchers: matchers, teams: p.teamsByName}
}

// OwnersFor gathers every (team, source) pair that claims path and
// aggregates them into one FileOwner per distinct team.
func (r *Resolver) OwnersFor(path string) []FileOwner {
	byTeam := make(map[string]*FileOwner)
	var order []string

	for _, m := range r.matchers {
		teamName, source, ok := m.OwnerFor(path)
		if !ok {
			continue
		}
		fo, seen := byTeam[teamName]
		if !seen {
			team := r.teams[teamName]
			if team == nil {
				team = &Team{Name: teamName}
			}
			fo = &FileOwner{Team: *team}
			byTeam[teamName] = fo
			order = append(order, teamName)
		}
		fo.Sources = append(fo.Sources, source)
	}

	owners := make([]FileOwner, 0, len(order))
	for _, name := range order {
		owners = append(owners, *byTeam[name])
	}
	return owners
}

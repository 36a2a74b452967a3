package codeowners

import (
	"sort"
	"strings"
)

// Combine applies the priority ranking across every source that
// matched a file and returns the result sorted for a for-file response
// (§4.E): directory-specificity fold first, then sort by (min source
// priority ascending, team name ascending).
func Combine(owners []FileOwner) []FileOwner {
	folded := foldSpecificity(owners)

	sort.SliceStable(folded, func(i, j int) bool {
		pi, pj := minPriority(folded[i]), minPriority(folded[j])
		if pi != pj {
			return pi < pj
		}
		return folded[i].Team.Name < folded[j].Team.Name
	})
	return folded
}

// foldSpecificity implements the directory-specificity rule and its
// natural extension to nested packages: among all Directory sources
// matching a file, only the deepest marker counts; among all Package
// sources, only the deepest manifest counts (mirrors the scenario seed
// "Resolver still returns B for packs/a/b/x.rb"). A FileOwner that
// loses its only source is dropped entirely.
func foldSpecificity(owners []FileOwner) []FileOwner {
	maxDirDepth := deepestSourceDepth(owners, SourceDirectory, func(s Source) string { return s.Dir })
	maxPkgDepth := deepestSourceDepth(owners, SourcePackage, func(s Source) string { return dirOf(s.ManifestPath) })

	result := make([]FileOwner, 0, len(owners))
	for _, fo := range owners {
		kept := make([]Source, 0, len(fo.Sources))
		for _, s := range fo.Sources {
			switch s.Kind {
			case SourceDirectory:
				if pathDepth(s.Dir) == maxDirDepth {
					kept = append(kept, s)
				}
			case SourcePackage:
				if pathDepth(dirOf(s.ManifestPath)) == maxPkgDepth {
					kept = append(kept, s)
				}
			default:
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			continue
		}
		fo.Sources = kept
		result = append(result, fo)
	}
	return result
}

func deepestSourceDepth(owners []FileOwner, kind SourceKind, dirOf func(Source) string) int {
	max := -1
	for _, fo := range owners {
		for _, s := range fo.Sources {
			if s.Kind != kind {
				continue
			}
			if d := pathDepth(dirOf(s)); d > max {
				max = d
			}
		}
	}
	return max
}

func pathDepth(dir string) int {
	if dir == "" {
		return 0
	}
	return strings.Count(dir, "/") + 1
}

func minPriority(fo FileOwner) int {
	min := SourceTeamYml.Priority() + 1
	for _, s := range fo.Sources {
		if s.Kind.Priority() < min {
			min = s.Kind.Priority()
		}
	}
	return min
}

// DistinctTeams returns the distinct team names among owners, the
// input to the validator's MultipleOwners check.
func DistinctTeams(owners []FileOwner) []string {
	seen := make(map[string]bool)
	var names []string
	for _, fo := range owners {
		if !seen[fo.Team.Name] {
			seen[fo.Team.Name] = true
			names = append(names, fo.Team.Name)
		}
	}
	sort.Strings(names)
	return names
}

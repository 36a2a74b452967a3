package codeowners

import (
	"sort"
	"strings"
)

// packageMapper builds ownership from package.yml / package.json
// manifests (§4.C.3). Ruby and JS package mappers share this logic,
// differing only in the Kind filter — mirroring original_source's
// package_mapper.rs, which has one generic PackageMapper behind two
// named constructors.
type packageMapper struct {
	kind PackageKind
	name string
}

func newRubyPackageMapper() Mapper {
	return packageMapper{kind: PackageKindRuby, name: "Owner metadata key in package.yml"}
}

func newJavascriptPackageMapper() Mapper {
	return packageMapper{kind: PackageKindJavascript, name: "Owner metadata key in package.json"}
}

func (m packageMapper) Name() string { return m.name }

func (m packageMapper) packages(p *Project) []Package {
	var out []Package
	for _, pkg := range p.Packages {
		if pkg.Kind == m.kind {
			out = append(out, pkg)
		}
	}
	return out
}

// removeNestedPackages drops any package whose directory is nested
// inside another kept package's directory, retaining the outermost
// owner. Packages must already be sorted by Dir()+"/", so every nested
// package directly follows the package that contains it. Grounded on
// original_source's remove_nested_packages (package_mapper.rs).
func removeNestedPackages(pkgs []Package) []Package {
	if len(pkgs) == 0 {
		return nil
	}
	kept := []Package{pkgs[0]}
	for _, pkg := range pkgs[1:] {
		last := kept[len(kept)-1]
		if strings.HasPrefix(pkg.Dir()+"/", last.Dir()+"/") {
			continue
		}
		kept = append(kept, pkg)
	}
	return kept
}

func (m packageMapper) Entries(p *Project) []Entry {
	pkgs := m.packages(p)
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Dir()+"/" < pkgs[j].Dir()+"/" })
	pkgs = removeNestedPackages(pkgs)

	var entries []Entry
	for _, pkg := range pkgs {
		team, ok := p.TeamByName(pkg.Owner)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Path:       EscapeBrackets(pkg.Dir()) + "/**/**",
			GithubTeam: team.GithubTeam,
			TeamName:   team.Name,
			Disabled:   team.AvoidOwnership,
		})
	}
	sortEntries(entries)
	return entries
}

func (m packageMapper) OwnerMatchers(p *Project) []OwnerMatcher {
	// Resolution still honours nested packages: the deepest manifest
	// wins for any file under it, so matchers are built from every
	// package, not the deduplicated set used for emission.
	pkgs := m.packages(p)
	matchers := make([]OwnerMatcher, 0, len(pkgs))
	for _, pkg := range pkgs {
		if _, ok := p.TeamByName(pkg.Owner); !ok {
			continue
		}
		matchers = append(matchers, GlobRule{
			Glob:     pkg.Dir() + "/**/**",
			TeamName: pkg.Owner,
			Source: Source{
				Kind:         SourcePackage,
				ManifestPath: pkg.Path,
				PackageGlob:  pkg.Dir() + "/**/**",
			},
		})
	}
	return matchers
}

package codeowners

import (
	"fmt"
	"sort"
	"strings"
)

const unownedLabel = "Unowned"

// CrosscheckMismatch is one file where the on-disk CODEOWNERS owner and
// the freshly resolved owner disagree.
type CrosscheckMismatch struct {
	Path       string
	FromFile   string // team claimed by the on-disk CODEOWNERS text
	FromFast   string // team claimed by Resolver+Combine over the live scan
}

// String renders the mismatch the way the CLI prints it:
// "- <relative_path>: CODEOWNERS=<team> fast=<team>".
func (m CrosscheckMismatch) String() string {
	return fmt.Sprintf("- %s: CODEOWNERS=%s fast=%s", m.Path, m.FromFile, m.FromFast)
}

// Crosscheck compares the owner recorded in the on-disk CODEOWNERS
// artifact against the owner the resolver computes directly from the
// scan, for every project file. A divergence means the checked-in
// CODEOWNERS file is stale in a way a pure content diff wouldn't catch
// (same bytes, different resolution, e.g. after a config change).
func Crosscheck(p *Project, resolver *Resolver) []CrosscheckMismatch {
	rules := ParseCodeowners(p.CodeownersFileContents)

	var mismatches []CrosscheckMismatch
	for _, f := range p.Files {
		rel := strings.TrimPrefix(f.Path, p.BasePath+"/")

		fromFile, ok := OwnerFromCodeowners(rules, rel)
		fileTeam := unownedLabel
		if ok {
			fileTeam = fromFile
		}

		owners := Combine(resolver.OwnersFor(rel))
		fastTeam := unownedLabel
		if len(owners) > 0 {
			fastTeam = owners[0].Team.GithubTeam
		}

		if fileTeam != fastTeam {
			mismatches = append(mismatches, CrosscheckMismatch{
				Path:     rel,
				FromFile: fileTeam,
				FromFast: fastTeam,
			})
		}
	}

	sort.Slice(mismatches, func(i, j int) bool { return mismatches[i].Path < mismatches[j].Path })
	return mismatches
}

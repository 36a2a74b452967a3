package codeowners

import (
	"strings"
	"sync"
)

// Validator checks a scanned Project for ownership problems (§4.G.1):
// dangling team references, files with no owner or competing owners,
// and a CODEOWNERS artifact that no longer matches what Generate would
// produce.
type Validator struct {
	resolver       *Resolver
	generator      *Generator
	executableName string
}

// NewValidator wires a Resolver and Generator over the canonical mapper set.
func NewValidator(p *Project, executableName string) *Validator {
	mappers := AllMappers()
	return &Validator{
		resolver:       NewResolver(p, mappers),
		generator:      NewGenerator(mappers, executableName),
		executableName: executableName,
	}
}

// Validate runs every check and returns the accumulated errors. Per-file
// owner checks run concurrently; a nil return means the project is
// clean. If paths is non-empty, the team-reference and per-file owner
// checks are restricted to those paths (normalized the same way
// Engine.OwnersForFile normalizes its argument); StaleCodeowners always
// covers the whole project regardless of paths.
func (v *Validator) Validate(p *Project, paths ...string) error {
	var errs ValidationErrors
	filter := pathFilter(p, paths)

	v.checkTeamReferences(p, &errs, filter)
	v.checkFileOwners(p, &errs, filter)
	v.checkStaleCodeowners(p, &errs)

	return errs.ErrorOrNil()
}

// pathFilter normalizes paths into a set relative to p.BasePath, or nil
// if paths is empty (meaning "check everything").
func pathFilter(p *Project, paths []string) map[string]bool {
	if len(paths) == 0 {
		return nil
	}
	filter := make(map[string]bool, len(paths))
	for _, raw := range paths {
		filter[relPath(p.BasePath, raw)] = true
	}
	return filter
}

// checkTeamReferences finds annotations and package owner keys that
// name a team absent from the scanned team list.
func (v *Validator) checkTeamReferences(p *Project, errs *ValidationErrors, filter map[string]bool) {
	var mu sync.Mutex
	record := func(path, team string) {
		mu.Lock()
		errs.Add(path, InvalidTeamReferenceError(path, team))
		mu.Unlock()
	}

	for _, f := range p.Files {
		if f.AnnotationOwner == "" {
			continue
		}
		rel := relPath(p.BasePath, f.Path)
		if filter != nil && !filter[rel] {
			continue
		}
		if _, ok := p.TeamByName(f.AnnotationOwner); !ok {
			record(f.Path, f.AnnotationOwner)
		}
	}
	for _, pkg := range p.Packages {
		if pkg.Owner == "" {
			continue
		}
		if filter != nil && !filter[pkg.Path] {
			continue
		}
		if _, ok := p.TeamByName(pkg.Owner); !ok {
			record(pkg.Path, pkg.Owner)
		}
	}
	for _, m := range p.DirectoryMarkers {
		if m.Owner == "" {
			continue
		}
		if filter != nil && !filter[m.Path] {
			continue
		}
		if _, ok := p.TeamByName(m.Owner); !ok {
			record(m.Path, m.Owner)
		}
	}
}

// checkFileOwners resolves every project file and flags zero-owner and
// multiple-owner results. Resolution is read-only over shared state, so
// files are checked concurrently.
func (v *Validator) checkFileOwners(p *Project, errs *ValidationErrors, filter map[string]bool) {
	type result struct {
		path string
		err  error
	}

	paths := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		rel := strings.TrimPrefix(f.Path, p.BasePath+"/")
		if filter != nil && !filter[rel] {
			continue
		}
		paths = append(paths, rel)
	}

	results := make(chan result, len(paths))
	const workers = 8
	work := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range work {
				owners := Combine(v.resolver.OwnersFor(rel))
				switch len(owners) {
				case 0:
					results <- result{path: rel, err: NoOwnerError(rel)}
				case 1:
					results <- result{path: rel, err: nil}
				default:
					results <- result{path: rel, err: MultipleOwnersError(rel, DistinctTeams(owners))}
				}
			}
		}()
	}

	go func() {
		for _, rel := range paths {
			work <- rel
		}
		close(work)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		errs.Add(r.path, r.err)
	}
}

// checkStaleCodeowners regenerates the CODEOWNERS text and compares it
// byte-for-byte against what's on disk.
func (v *Validator) checkStaleCodeowners(p *Project, errs *ValidationErrors) {
	want := v.generator.Generate(p)
	if want != p.CodeownersFileContents {
		errs.Add("CODEOWNERS", StaleCodeownersError(v.executableName))
	}
}

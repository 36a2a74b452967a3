package codeowners

import "strings"

// annotationMapper builds ownership from first-line team annotations
// (§4.C.1). Grounded on original_source's annotated_file_mapper.rs,
// which despite its name is the annotation mapper, not a team-level one.
type annotationMapper struct{}

func newAnnotationMapper() Mapper { return annotationMapper{} }

func (annotationMapper) Name() string { return "Annotation at top of file" }

func (annotationMapper) Entries(p *Project) []Entry {
	var entries []Entry
	for _, f := range p.Files {
		if f.AnnotationOwner == "" {
			continue
		}
		team, ok := p.TeamByName(f.AnnotationOwner)
		if !ok {
			continue
		}
		rel := strings.TrimPrefix(f.Path, p.BasePath+"/")
		entries = append(entries, Entry{
			Path:       EscapeBrackets(rel),
			GithubTeam: team.GithubTeam,
			TeamName:   team.Name,
			Disabled:   team.AvoidOwnership,
		})
	}
	sortEntries(entries)
	return entries
}

func (annotationMapper) OwnerMatchers(p *Project) []OwnerMatcher {
	paths := make(map[string]string)
	for _, f := range p.Files {
		if f.AnnotationOwner == "" {
			continue
		}
		if _, ok := p.TeamByName(f.AnnotationOwner); !ok {
			continue
		}
		rel := strings.TrimPrefix(f.Path, p.BasePath+"/")
		paths[rel] = f.AnnotationOwner
	}
	return []OwnerMatcher{ExactPaths{Paths: paths, Source: Source{Kind: SourceAnnotatedFile}}}
}

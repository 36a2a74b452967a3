package codeowners

import "testing"

func buildTestProject() *Project {
	p := &Project{
		BasePath: "/repo",
		Files: []ProjectFile{
			{Path: "/repo/app/models/user.rb", AnnotationOwner: ""},
			{Path: "/repo/app/models/annotated.rb", AnnotationOwner: "Platform"},
		},
		DirectoryMarkers: []DirectoryCodeownerMarker{
			{Path: "app/.codeowner", Owner: "AppTeam"},
		},
		Teams: []Team{
			{Name: "Platform", GithubTeam: "@org/platform"},
			{Name: "AppTeam", GithubTeam: "@org/app-team", OwnedGlobs: []string{"app/**/*.rb"}},
		},
	}
	p.indexTeams()
	return p
}

func TestResolver_AnnotationBeatsDirectory(t *testing.T) {
	p := buildTestProject()
	r := NewResolver(p, AllMappers())

	owners := Combine(r.OwnersFor("app/models/annotated.rb"))
	if len(owners) != 2 || owners[0].Team.Name != "Platform" {
		t.Fatalf("expected both owners with the annotation owner sorted first, got %+v", owners)
	}
}

func TestResolver_TeamGlobAndDirectoryBothClaim(t *testing.T) {
	p := buildTestProject()
	r := NewResolver(p, AllMappers())

	owners := r.OwnersFor("app/models/user.rb")
	if len(owners) != 1 {
		t.Fatalf("expected one team to claim the file via two sources, got %+v", owners)
	}
	if owners[0].Team.Name != "AppTeam" {
		t.Errorf("expected AppTeam, got %q", owners[0].Team.Name)
	}
	if len(owners[0].Sources) != 2 {
		t.Errorf("expected both the directory marker and the team glob to contribute, got %+v", owners[0].Sources)
	}
}

func TestResolver_UnclaimedFile(t *testing.T) {
	p := buildTestProject()
	r := NewResolver(p, AllMappers())

	owners := r.OwnersFor("spec/unrelated_spec.rb")
	if len(owners) != 0 {
		t.Errorf("expected no owners, got %+v", owners)
	}
}

package codeowners

import "testing"

func TestCrosscheck_FindsMismatch(t *testing.T) {
	p := &Project{
		BasePath: "/repo",
		Teams: []Team{
			{Name: "Platform", GithubTeam: "@org/platform", OwnedGlobs: []string{"app/**/*.rb"}},
		},
		Files: []ProjectFile{
			{Path: "/repo/app/file.rb"},
		},
		CodeownersFileContents: "/app/file.rb @org/someone-else\n",
	}
	p.indexTeams()

	r := NewResolver(p, AllMappers())
	mismatches := Crosscheck(p, r)
	if len(mismatches) != 1 {
		t.Fatalf("expected 1 mismatch, got %+v", mismatches)
	}
	if mismatches[0].FromFile != "@org/someone-else" || mismatches[0].FromFast != "@org/platform" {
		t.Errorf("unexpected mismatch contents: %+v", mismatches[0])
	}
}

func TestCrosscheck_NoMismatchWhenAgreeing(t *testing.T) {
	p := &Project{
		BasePath: "/repo",
		Teams: []Team{
			{Name: "Platform", GithubTeam: "@org/platform", OwnedGlobs: []string{"app/**/*.rb"}},
		},
		Files: []ProjectFile{
			{Path: "/repo/app/file.rb"},
		},
		CodeownersFileContents: "/app/file.rb @org/platform\n",
	}
	p.indexTeams()

	r := NewResolver(p, AllMappers())
	if got := Crosscheck(p, r); len(got) != 0 {
		t.Errorf("expected no mismatches, got %+v", got)
	}
}

func TestCrosscheck_UnownedOnBothSides(t *testing.T) {
	p := &Project{
		BasePath:               "/repo",
		Files:                  []ProjectFile{{Path: "/repo/spec/unowned_spec.rb"}},
		CodeownersFileContents: "",
	}
	p.indexTeams()

	r := NewResolver(p, AllMappers())
	if got := Crosscheck(p, r); len(got) != 0 {
		t.Errorf("expected Unowned==Unowned to not be a mismatch, got %+v", got)
	}
}

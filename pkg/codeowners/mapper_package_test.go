package codeowners

import (
	"reflect"
	"testing"
)

func TestRemoveNestedPackages(t *testing.T) {
	pkgs := []Package{
		{Path: "packs/a/package.yml", Kind: PackageKindRuby, Owner: "Alpha"},
		{Path: "packs/a/b/package.yml", Kind: PackageKindRuby, Owner: "Beta"},
		{Path: "packs/a/b/c/package.yml", Kind: PackageKindRuby, Owner: "Gamma"},
		{Path: "packs/d/package.yml", Kind: PackageKindRuby, Owner: "Delta"},
	}

	got := removeNestedPackages(pkgs)
	want := []Package{pkgs[0], pkgs[3]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("removeNestedPackages = %+v, want %+v", got, want)
	}
}

func TestRemoveNestedPackages_Empty(t *testing.T) {
	if got := removeNestedPackages(nil); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestPackageMapper_OwnerMatchers_KeepsNested(t *testing.T) {
	p := &Project{
		Packages: []Package{
			{Path: "packs/a/package.yml", Kind: PackageKindRuby, Owner: "Alpha"},
			{Path: "packs/a/b/package.yml", Kind: PackageKindRuby, Owner: "Beta"},
		},
		Teams: []Team{{Name: "Alpha", GithubTeam: "@org/alpha"}, {Name: "Beta", GithubTeam: "@org/beta"}},
	}
	p.indexTeams()

	m := newRubyPackageMapper()
	matchers := m.OwnerMatchers(p)
	if len(matchers) != 2 {
		t.Fatalf("expected 2 matchers (nested packages preserved), got %d", len(matchers))
	}

	r := NewResolver(p, []Mapper{m})
	owners := r.OwnersFor("packs/a/b/x.rb")
	var teams []string
	for _, fo := range owners {
		teams = append(teams, fo.Team.Name)
	}
	if len(teams) != 2 {
		t.Fatalf("expected both packages to claim the nested file, got %v", teams)
	}

	folded := Combine(owners)
	if len(folded) != 1 || folded[0].Team.Name != "Beta" {
		t.Errorf("Combine should fold to the deepest package (Beta), got %+v", folded)
	}
}

func TestPackageMapper_Entries_DropsNested(t *testing.T) {
	p := &Project{
		Packages: []Package{
			{Path: "packs/a/package.yml", Kind: PackageKindRuby, Owner: "Alpha"},
			{Path: "packs/a/b/package.yml", Kind: PackageKindRuby, Owner: "Beta"},
		},
		Teams: []Team{{Name: "Alpha", GithubTeam: "@org/alpha"}, {Name: "Beta", GithubTeam: "@org/beta"}},
	}
	p.indexTeams()

	entries := newRubyPackageMapper().Entries(p)
	if len(entries) != 1 {
		t.Fatalf("expected the nested package to be dropped from emission, got %+v", entries)
	}
	if entries[0].TeamName != "Alpha" {
		t.Errorf("expected the outermost package to be emitted, got %q", entries[0].TeamName)
	}
}

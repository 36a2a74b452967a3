package codeowners

import (
	"strings"
	"testing"
)

func buildGeneratorProject() *Project {
	p := &Project{
		BasePath: "/repo",
		Teams: []Team{
			{Name: "Platform", GithubTeam: "@org/platform", ConfigPath: "config/teams/platform.yml", OwnedGlobs: []string{"lib/**/*.rb"}},
		},
		Files: []ProjectFile{
			{Path: "/repo/app/special.rb", AnnotationOwner: "Platform"},
		},
		DirectoryMarkers: []DirectoryCodeownerMarker{
			{Path: "vendor/.codeowner", Owner: "Platform"},
		},
	}
	p.indexTeams()
	return p
}

func TestGenerator_SectionOrder(t *testing.T) {
	p := buildGeneratorProject()
	g := NewGenerator(AllMappers(), "codeowners")
	text := g.Generate(p)

	order := []string{
		"# Annotations at the top of file",
		"# Team-specific owned globs",
		"# Owner metadata key in package.yml",
		"# Owner metadata key in package.json",
		"# Team YML ownership",
		"# Team owned gems",
		"# Owner in .codeowner",
	}

	last := -1
	for _, heading := range order {
		idx := strings.Index(text, heading)
		if idx == -1 {
			t.Fatalf("missing section heading %q in:\n%s", heading, text)
		}
		if idx <= last {
			t.Errorf("section %q out of order", heading)
		}
		last = idx
	}
}

func TestGenerator_DisabledTeamIsCommented(t *testing.T) {
	p := &Project{
		BasePath: "/repo",
		Teams: []Team{
			{Name: "Ghost", GithubTeam: "@org/ghost", ConfigPath: "config/teams/ghost.yml", AvoidOwnership: true, OwnedGlobs: []string{"ghost/**"}},
		},
	}
	p.indexTeams()

	g := NewGenerator(AllMappers(), "codeowners")
	text := g.Generate(p)
	if !strings.Contains(text, "# /ghost/** @org/ghost") {
		t.Errorf("expected disabled team's glob to be emitted commented out, got:\n%s", text)
	}
}

func TestParseCodeowners_RoundTrip(t *testing.T) {
	text := `# Annotations at the top of file
/app/special.rb @org/platform

# Owner in .codeowner
/vendor/**/** @org/platform
`
	rules := ParseCodeowners(text)
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d: %+v", len(rules), rules)
	}
	// Later-in-file rules come first (CODEOWNERS grants precedence to later lines).
	if rules[0].Path != "vendor/**/**" {
		t.Errorf("expected the later rule first, got %+v", rules[0])
	}

	team, ok := OwnerFromCodeowners(rules, "vendor/gems/foo/file.rb")
	if !ok || team != "@org/platform" {
		t.Errorf("OwnerFromCodeowners = %q, %v", team, ok)
	}
}

func TestParseCodeowners_SkipsDisabledLinesAsCommentsButStillReadsThem(t *testing.T) {
	text := "# /ghost/** @org/ghost\n"
	rules := ParseCodeowners(text)
	if len(rules) != 1 || !rules[0].Disabled {
		t.Fatalf("expected one disabled rule, got %+v", rules)
	}
}

package codeowners

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestEngine_EndToEnd(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "config/teams/platform.yml"), "name: Platform\ngithub:\n  team: \"@org/platform\"\nowned_globs:\n  - \"lib/**/*.rb\"\n")
	writeFile(t, filepath.Join(root, "app/annotated.rb"), "# @team: Platform\nclass Annotated; end\n")
	writeFile(t, filepath.Join(root, "app/plain.rb"), "class Plain; end\n")

	cfg := DefaultConfig()
	cfg.OwnedGlobs = []string{"app/**/*.rb"}
	cfg.TeamFileGlob = []string{"config/teams/**/*.yml"}

	engine, err := NewEngine(root, cfg, NewNoopCache())
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	owners := engine.OwnersForFile(filepath.Join(root, "app/annotated.rb"))
	if len(owners) != 1 || owners[0].Team.Name != "Platform" {
		t.Fatalf("expected Platform to own annotated.rb, got %+v", owners)
	}

	files := engine.FilesForTeam("Platform")
	foundAnnotated := false
	for _, f := range files {
		if strings.HasSuffix(f, "annotated.rb") {
			foundAnnotated = true
		}
	}
	if !foundAnnotated {
		t.Fatalf("expected FilesForTeam(Platform) to include annotated.rb, got %v", files)
	}

	if err := engine.Validate(); err == nil {
		t.Fatal("expected a no-owner validation error for plain.rb")
	}

	text := engine.Generate()
	if !strings.Contains(text, "@org/platform") {
		t.Fatalf("expected generated CODEOWNERS to mention @org/platform, got:\n%s", text)
	}

	mismatches := engine.Crosscheck()
	if len(mismatches) == 0 {
		t.Fatal("expected a crosscheck mismatch since no CODEOWNERS file exists on disk yet")
	}
}

package codeowners

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("missing config should not be an error, got %v", err)
	}
	if cfg.VendoredGemsPath != DefaultConfig().VendoredGemsPath {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig_OverlayMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codeowners.yml")
	contents := "vendored_gems_path: third_party\nskip_untracked_files: true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.VendoredGemsPath != "third_party" {
		t.Errorf("expected overlay to win, got %q", cfg.VendoredGemsPath)
	}
	if !cfg.SkipUntrackedFiles {
		t.Error("expected skip_untracked_files to be true")
	}
	if len(cfg.OwnedGlobs) == 0 {
		t.Error("expected owned_globs to fall back to defaults")
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codeowners.yml")
	if err := os.WriteFile(path, []byte("not: valid: yaml: at: all:"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigMalformed) {
		t.Errorf("expected ErrConfigMalformed, got %v", err)
	}
}

func TestTeamYAML_ToTeam_DerivesSubtractedGlobs(t *testing.T) {
	ty := TeamYAML{Name: "Platform", OwnedGlobs: []string{"app/**/*.rb", "!app/legacy/**"}}
	ty.Github.Team = "@org/platform"

	team := ty.toTeam("config/teams/platform.yml")
	if len(team.OwnedGlobs) != 1 || team.OwnedGlobs[0] != "app/**/*.rb" {
		t.Errorf("unexpected OwnedGlobs: %v", team.OwnedGlobs)
	}
	if len(team.SubtractedGlobs) != 1 || team.SubtractedGlobs[0] != "app/legacy/**" {
		t.Errorf("unexpected SubtractedGlobs: %v", team.SubtractedGlobs)
	}
}

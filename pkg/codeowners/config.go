package codeowners

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the recognised shape of the project's YAML configuration
// file. Unrecognised keys are ignored by yaml.v3's default behavior.
type Config struct {
	OwnedGlobs              []string `yaml:"owned_globs"`
	UnownedGlobs            []string `yaml:"unowned_globs"`
	RubyPackagePaths        []string `yaml:"ruby_package_paths"`
	JavascriptPackagePaths  []string `yaml:"javascript_package_paths"`
	TeamFileGlob            []string `yaml:"team_file_glob"`
	VendoredGemsPath        string   `yaml:"vendored_gems_path"`
	CacheDirectory          string   `yaml:"cache_directory"`
	SkipUntrackedFiles      bool     `yaml:"skip_untracked_files"`
	ExecutableName          string   `yaml:"executable_name"`
}

// DefaultConfig returns the §6 defaults, used when a key is absent from
// the file or when no config file exists at all.
func DefaultConfig() *Config {
	return &Config{
		OwnedGlobs: []string{
			"{app,components,config,frontend,lib,packs,spec,danger,script}/**/*.{rb,arb,erb,rake,js,jsx,ts,tsx}",
		},
		UnownedGlobs:     []string{},
		RubyPackagePaths: []string{"packs/**"},
		JavascriptPackagePaths: []string{
			"{app,components}/javascript/packages/**",
			"packs/**",
			"frontend/packs/**",
		},
		TeamFileGlob:       []string{"config/teams/**/*.yml"},
		VendoredGemsPath:   "components",
		CacheDirectory:     "tmp/cache/codeowners",
		SkipUntrackedFiles: false,
		ExecutableName:     "codeowners",
	}
}

// LoadConfig reads path and merges it over DefaultConfig. A missing
// file is not an error: the defaults are returned. A file that exists
// but cannot be read yields ErrConfigNotFound, and a file that cannot
// be parsed yields ErrConfigMalformed.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%s: %w: %v", path, ErrConfigNotFound, err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, ConfigError(path, err)
	}

	if len(overlay.OwnedGlobs) > 0 {
		cfg.OwnedGlobs = overlay.OwnedGlobs
	}
	if len(overlay.UnownedGlobs) > 0 {
		cfg.UnownedGlobs = overlay.UnownedGlobs
	}
	if len(overlay.RubyPackagePaths) > 0 {
		cfg.RubyPackagePaths = overlay.RubyPackagePaths
	}
	if len(overlay.JavascriptPackagePaths) > 0 {
		cfg.JavascriptPackagePaths = overlay.JavascriptPackagePaths
	}
	if len(overlay.TeamFileGlob) > 0 {
		cfg.TeamFileGlob = overlay.TeamFileGlob
	}
	if overlay.VendoredGemsPath != "" {
		cfg.VendoredGemsPath = overlay.VendoredGemsPath
	}
	if overlay.CacheDirectory != "" {
		cfg.CacheDirectory = overlay.CacheDirectory
	}
	if overlay.ExecutableName != "" {
		cfg.ExecutableName = overlay.ExecutableName
	}
	cfg.SkipUntrackedFiles = overlay.SkipUntrackedFiles

	return cfg, nil
}

// TeamYAML is the recognised shape of a team definition file.
type TeamYAML struct {
	Name   string `yaml:"name"`
	Github struct {
		Team               string `yaml:"team"`
		DoNotAddToCodeowners bool `yaml:"do_not_add_to_codeowners_file"`
	} `yaml:"github"`
	OwnedGlobs []string `yaml:"owned_globs"`
	Ruby       struct {
		OwnedGems []string `yaml:"owned_gems"`
	} `yaml:"ruby"`
}

// toTeam converts the parsed YAML into a Team, deriving subtracted
// globs from any owned glob prefixed with "!" — the only syntactically
// derivable exclusion form (§3 invariant: subtracted globs must come
// from owned_globs, never be arbitrary).
func (t TeamYAML) toTeam(configPath string) Team {
	owned := make([]string, 0, len(t.OwnedGlobs))
	subtracted := make([]string, 0)
	for _, g := range t.OwnedGlobs {
		if strings.HasPrefix(g, "!") {
			subtracted = append(subtracted, strings.TrimPrefix(g, "!"))
			continue
		}
		owned = append(owned, g)
	}
	return Team{
		Name:            t.Name,
		GithubTeam:      t.Github.Team,
		ConfigPath:      configPath,
		OwnedGlobs:      owned,
		SubtractedGlobs: subtracted,
		OwnedGems:       t.Ruby.OwnedGems,
		AvoidOwnership:  t.Github.DoNotAddToCodeowners,
	}
}

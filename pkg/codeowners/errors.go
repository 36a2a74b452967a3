package codeowners

import (
	"fmt"
	"sort"
	"strings"

	coreerrors "github.com/ownerscan/codeowners/pkg/core/errors"
)

// Sentinel errors, one per error kind this system reports.
var (
	ErrConfigNotFound           = coreerrors.New("config not found")
	ErrConfigMalformed          = coreerrors.New("config malformed")
	ErrTeamManifestMalformed    = coreerrors.New("team manifest malformed")
	ErrPackageManifestMalformed = coreerrors.New("package manifest malformed")
	ErrInvalidTeamReference     = coreerrors.New("references an unknown team")
	ErrNoOwner                  = coreerrors.New("no owner")
	ErrMultipleOwners           = coreerrors.New("multiple owners")
	ErrStaleCodeowners          = coreerrors.New("codeowners file is stale")
	ErrCacheCorrupt             = coreerrors.New("annotation cache corrupt")
	ErrGitUnavailable           = coreerrors.New("git unavailable")
)

// ConfigError wraps a config load/parse failure with the offending path.
func ConfigError(path string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", path, ErrConfigMalformed)
	}
	return fmt.Errorf("%s: %w: %v", path, ErrConfigMalformed, err)
}

// TeamManifestError wraps a team YAML parse failure.
func TeamManifestError(path string, err error) error {
	return fmt.Errorf("%s: %w: %v", path, ErrTeamManifestMalformed, err)
}

// PackageManifestError wraps a package manifest parse failure.
func PackageManifestError(path string, err error) error {
	return fmt.Errorf("%s: %w: %v", path, ErrPackageManifestMalformed, err)
}

// InvalidTeamReferenceError names the path and the unknown team it references.
func InvalidTeamReferenceError(path, team string) error {
	return fmt.Errorf("%s: %q %w", path, team, ErrInvalidTeamReference)
}

// NoOwnerError names a file with zero resolved owners.
func NoOwnerError(path string) error {
	return fmt.Errorf("%s: %w", path, ErrNoOwner)
}

// MultipleOwnersError names a file and the competing teams/sources.
func MultipleOwnersError(path string, teams []string) error {
	sorted := append([]string(nil), teams...)
	sort.Strings(sorted)
	return fmt.Errorf("%s: %w: %s", path, ErrMultipleOwners, strings.Join(sorted, ", "))
}

// StaleCodeownersError names the executable to rerun to refresh the artifact.
func StaleCodeownersError(executableName string) error {
	return fmt.Errorf("run `%s generate` to refresh it: %w", executableName, ErrStaleCodeowners)
}

// ValidationErrors accumulates every error a validation pass produces;
// the validator never short-circuits on the first failure.
type ValidationErrors struct {
	// Path is the file or artifact the error concerns, used to sort
	// the accumulated errors deterministically before they're reported.
	entries []validationEntry
}

type validationEntry struct {
	path string
	err  error
}

// Add records an error against path. A nil err is a no-op.
func (v *ValidationErrors) Add(path string, err error) {
	if err == nil {
		return
	}
	v.entries = append(v.entries, validationEntry{path: path, err: err})
}

// HasErrors reports whether anything has been recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.entries) > 0
}

// Sorted returns the accumulated errors ordered by path, then message,
// for deterministic CLI and test output.
func (v *ValidationErrors) Sorted() []error {
	entries := append([]validationEntry(nil), v.entries...)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].path != entries[j].path {
			return entries[i].path < entries[j].path
		}
		return entries[i].err.Error() < entries[j].err.Error()
	})
	out := make([]error, len(entries))
	for i, e := range entries {
		out[i] = e.err
	}
	return out
}

// ErrorOrNil returns nil if nothing was recorded, otherwise a single
// error joining every accumulated entry in sorted order.
func (v *ValidationErrors) ErrorOrNil() error {
	if !v.HasErrors() {
		return nil
	}
	return coreerrors.Join(v.Sorted()...)
}

package codeowners

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// globMatch is the single glob-matching entrypoint used by scanning
// classification, resolution, and CODEOWNERS rule lookup
// (OwnerFromCodeowners) alike, so all three agree on what a pattern
// means (§4.D).
func globMatch(pattern, path string) bool {
	ok, _ := doublestar.Match(pattern, path)
	return ok
}

// matchesAny reports whether path matches any of globs.
func matchesAny(globs []string, path string) bool {
	for _, g := range globs {
		if globMatch(g, path) {
			return true
		}
	}
	return false
}

// EscapeBrackets escapes literal '[' and ']' in a path so it can be
// embedded in a glob pattern (or emitted into CODEOWNERS) without the
// consumer mistaking them for a character class.
func EscapeBrackets(path string) string {
	r := strings.NewReplacer("[", `\[`, "]", `\]`)
	return r.Replace(path)
}

// UnescapeBrackets reverses EscapeBrackets.
func UnescapeBrackets(path string) string {
	r := strings.NewReplacer(`\[`, "[", `\]`, "]")
	return r.Replace(path)
}

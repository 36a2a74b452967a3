// Package languages provides a thin language-detection wrapper around
// go-enry, used to annotate ownership reports with a per-language file
// breakdown.
package languages

import (
	"path/filepath"
	"sort"

	"github.com/go-enry/go-enry/v2"
)

// Stat holds the file count for one detected language within a set of
// owned paths.
type Stat struct {
	Language   string  `json:"language"`
	FileCount  int     `json:"file_count"`
	Percentage float64 `json:"percentage"`
}

// DetectFromPath returns the language for a file path based on its
// filename or extension, without reading the file.
func DetectFromPath(path string) string {
	filename := filepath.Base(path)
	if lang, _ := enry.GetLanguageByFilename(filename); lang != "" {
		return lang
	}
	lang, _ := enry.GetLanguageByExtension(filename)
	return lang
}

// Breakdown detects the language of each path and returns the
// per-language counts sorted by descending file count, then language
// name, matching the deterministic-ordering requirement the rest of
// this package holds itself to.
func Breakdown(paths []string) []Stat {
	counts := make(map[string]int)
	for _, p := range paths {
		lang := DetectFromPath(p)
		if lang == "" {
			lang = "Unknown"
		}
		counts[lang]++
	}

	stats := make([]Stat, 0, len(counts))
	total := len(paths)
	for lang, count := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		stats = append(stats, Stat{Language: lang, FileCount: count, Percentage: pct})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].FileCount != stats[j].FileCount {
			return stats[i].FileCount > stats[j].FileCount
		}
		return stats[i].Language < stats[j].Language
	})
	return stats
}

package codeowners

import (
	"bufio"
	"fmt"
	"strings"
)

const disclaimer = `# This file is generated. Do not edit it by hand.
# Run ` + "`%s generate`" + ` to regenerate it after changing ownership.
`

// section pairs a CODEOWNERS heading with the mapper whose Entries()
// populate it. Order here is the fixed emission order of §4.F. It is not
// the runtime priority order of §4.E: annotations come first and
// directory markers last. CODEOWNERS grants precedence to later rules,
// so in the consumed file a directory-marker rule takes precedence over
// a rule from any earlier section.
type section struct {
	heading string
	mapper  Mapper
}

func sections(mappers []Mapper) []section {
	byName := make(map[string]Mapper, len(mappers))
	for _, m := range mappers {
		byName[m.Name()] = m
	}
	return []section{
		{"# Annotations at the top of file", byName["Annotation at top of file"]},
		{"# Team-specific owned globs", byName["Team-specific owned globs"]},
		{"# Owner metadata key in package.yml", byName["Owner metadata key in package.yml"]},
		{"# Owner metadata key in package.json", byName["Owner metadata key in package.json"]},
		{"# Team YML ownership", byName["Team YML ownership"]},
		{"# Team owned gems", byName["Team owned gems"]},
		{"# Owner in .codeowner", byName["Owner in .codeowner"]},
	}
}

// Generator produces the canonical CODEOWNERS artifact (§4.F).
type Generator struct {
	mappers        []Mapper
	executableName string
}

// NewGenerator builds a Generator over the given mapper set.
func NewGenerator(mappers []Mapper, executableName string) *Generator {
	return &Generator{mappers: mappers, executableName: executableName}
}

// Generate produces the full CODEOWNERS text for p.
func (g *Generator) Generate(p *Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, disclaimer, g.executableName)

	for _, sec := range sections(g.mappers) {
		if sec.mapper == nil {
			continue
		}
		entries := sec.mapper.Entries(p)
		b.WriteString("\n")
		b.WriteString(sec.heading)
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString(entryLine(e))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// entryLine renders one Entry as `/<path> <team>`, prefixed with "# "
// when the owning team opted out of being listed live.
func entryLine(e Entry) string {
	line := fmt.Sprintf("/%s %s", e.Path, e.GithubTeam)
	if e.Disabled {
		return "# " + line
	}
	return line
}

// ParsedRule is one rule recovered from an on-disk CODEOWNERS file.
type ParsedRule struct {
	Path       string
	GithubTeam string
	Disabled   bool
}

// ParseCodeowners is the inverse of Generate: it recovers the list of
// rules in priority-descending order (later-in-file first), since
// CODEOWNERS itself grants precedence to later rules. Recognises both
// live lines (`/<path> <team>`) and commented-but-authoritative lines
// (`# /<path> <team>`, produced when avoid_ownership=true); plain
// comment lines that aren't rule lines (section headings, the
// disclaimer) are skipped.
func ParseCodeowners(text string) []ParsedRule {
	var rules []ParsedRule
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		disabled := false
		body := line
		if strings.HasPrefix(body, "#") {
			rest := strings.TrimSpace(strings.TrimPrefix(body, "#"))
			if !strings.HasPrefix(rest, "/") {
				continue // section heading or disclaimer text
			}
			disabled = true
			body = rest
		}
		if !strings.HasPrefix(body, "/") {
			continue
		}
		fields := strings.Fields(body)
		if len(fields) < 2 {
			continue
		}
		rules = append(rules, ParsedRule{
			Path:       strings.TrimPrefix(fields[0], "/"),
			GithubTeam: fields[1],
			Disabled:   disabled,
		})
	}

	// Reverse to recover priority-descending (later-in-file first) order.
	for i, j := 0, len(rules)-1; i < j; i, j = i+1, j-1 {
		rules[i], rules[j] = rules[j], rules[i]
	}
	return rules
}

// OwnerFromCodeowners returns the first (highest-priority) rule whose
// path, matched as a glob, claims rel. Brackets in rel are expected
// already literal (unescaped); rule paths keep their `\[`/`\]` escapes,
// which the glob matcher reads as literal brackets, so both sides agree.
func OwnerFromCodeowners(rules []ParsedRule, rel string) (githubTeam string, ok bool) {
	for _, r := range rules {
		pattern := r.Path
		if globMatch(pattern, rel) || globMatch(pattern+"/**/**", rel) {
			return r.GithubTeam, true
		}
	}
	return "", false
}

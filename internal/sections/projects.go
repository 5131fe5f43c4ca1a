package sections

import (
	"regexp"
	"strings"
	"unicode"
)

// projectsCap bounds how many projects survive into the record.
const projectsCap = 5

// TechnologiesFallback is used when a project block names no technologies.
const TechnologiesFallback = "Various technologies"

// ProjectEntry is one project in the projects section.
type ProjectEntry struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

// projectKeywords mark a line as a project title even without leading
// capitalization.
var projectKeywords = []string{"app", "system", "platform", "website", "tool", "api", "dashboard"}

// techMarkerRes introduce a technologies line inside a project block, checked
// in order. Each runs case-insensitively on the original line so the slice
// index after the marker is rune-aligned in it.
var techMarkerRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)technologies:`),
	regexp.MustCompile(`(?i)tools:`),
	regexp.MustCompile(`(?i)built with:`),
}

// Projects applies the same title/description accumulation as Experience with
// a simpler title rule: a line under 100 characters that either has an
// uppercase letter within its first 10 characters or mentions a project-type
// keyword. A "technologies:"/"tools:"/"built with:" line inside a block sets
// Technologies instead of joining the description. Output is capped at
// projectsCap entries.
func Projects(lines []string) []ProjectEntry {
	var entries []ProjectEntry
	var cur *ProjectEntry

	finish := func() {
		if cur == nil {
			return
		}
		if cur.Technologies == "" {
			cur.Technologies = TechnologiesFallback
		}
		entries = append(entries, *cur)
		cur = nil
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if tech, ok := technologiesLine(line); ok && cur != nil {
			cur.Technologies = tech
			continue
		}
		if isProjectTitle(line) {
			finish()
			cur = &ProjectEntry{Name: line}
			continue
		}
		if cur != nil {
			cur.Description = joinDescription(cur.Description, line)
		}
	}
	finish()

	if len(entries) > projectsCap {
		entries = entries[:projectsCap]
	}
	return entries
}

func isProjectTitle(line string) bool {
	if len(line) >= 100 {
		return false
	}
	for i, r := range line {
		if i >= 10 {
			break
		}
		if unicode.IsUpper(r) {
			return true
		}
	}
	lower := strings.ToLower(line)
	for _, kw := range projectKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// technologiesLine extracts the remainder after a technologies marker.
func technologiesLine(line string) (string, bool) {
	for _, re := range techMarkerRes {
		if loc := re.FindStringIndex(line); loc != nil {
			return strings.TrimSpace(line[loc[1]:]), true
		}
	}
	return "", false
}

package sections

import (
	"regexp"
	"strings"

	"github.com/hyperifyio/foliogen/internal/fields"
)

// EducationEntry is one degree in the education section. Year is a
// best-effort four-digit match.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// degreeKeywords qualify a line as a degree line.
var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "associate", "diploma", "certificate",
}

// institutionRe splits a degree line into degree and institution halves at the
// leftmost institution keyword. Matching runs on the original line so the cut
// index is rune-aligned in it; a lowercased copy can have different byte
// offsets.
var institutionRe = regexp.MustCompile(`(?i)university|college|institute|school`)

// Education keeps every line containing a degree keyword. The first 19xx/20xx
// year on the line becomes Year and is cut out; if an institution keyword
// appears in the remainder, the text before it is the degree and the text
// from the keyword onward is the institution, otherwise the whole remainder
// is the degree.
func Education(lines []string) []EducationEntry {
	var entries []EducationEntry
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || !isDegreeLine(line) {
			continue
		}
		entries = append(entries, parseDegreeLine(line))
	}
	return entries
}

func isDegreeLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range degreeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func parseDegreeLine(line string) EducationEntry {
	var entry EducationEntry

	if year, loc := fields.Year(line); year != "" {
		entry.Year = year
		line = line[:loc[0]] + line[loc[1]:]
	}

	if loc := institutionRe.FindStringIndex(line); loc != nil {
		entry.Degree = trimEdges(line[:loc[0]])
		entry.Institution = trimEdges(line[loc[0]:])
	} else {
		entry.Degree = trimEdges(line)
	}
	return entry
}

// trimEdges removes the separator debris left behind after cutting out the
// year or institution.
func trimEdges(s string) string {
	return strings.Trim(s, " \t,-|")
}

package sections

import (
	"regexp"
	"strings"
)

// experienceCap bounds how many positions survive into the record.
const experienceCap = 5

// ExperienceEntry is one position in the experience section.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

var (
	rangeRe   = regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*(?:-|to)\s*(?:(19|20)\d{2}|present|current|now)\b`)
	monthRe   = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept?|oct|nov|dec)\.?\s+(19|20)\d{2}`)
	presentRe = regexp.MustCompile(`(?i)\b(present|current|now)\b`)

	// atRe finds the "at" connector case-insensitively on the original line,
	// keeping the split indexes rune-aligned in it. Lowercasing a copy first
	// is not safe: ToLower can change byte lengths.
	atRe = regexp.MustCompile(`(?i) at `)
)

// Experience walks the experience section classifying each line as a title
// line (opens a new entry), a date line (sets the open entry's duration), or
// description (space-joined onto the open entry). Date detection runs before
// title detection so a bare year range is never mistaken for a dash-separated
// title/company pair. Output is capped at experienceCap entries; entries
// without a title are dropped later during post-processing.
func Experience(lines []string) []ExperienceEntry {
	var entries []ExperienceEntry
	var cur *ExperienceEntry

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case isDateLine(line):
			if cur != nil {
				cur.Duration = line
			}
		case isTitleLine(line):
			if cur != nil {
				entries = append(entries, *cur)
			}
			title, company := splitTitleCompany(line)
			cur = &ExperienceEntry{Title: title, Company: company}
		default:
			if cur != nil {
				cur.Description = joinDescription(cur.Description, line)
			}
		}
	}
	if cur != nil {
		entries = append(entries, *cur)
	}
	if len(entries) > experienceCap {
		entries = entries[:experienceCap]
	}
	return entries
}

// isDateLine reports whether the line carries duration information: a year
// range, a month-plus-year, or an open-ended marker like "present".
func isDateLine(line string) bool {
	return rangeRe.MatchString(line) || monthRe.MatchString(line) || presentRe.MatchString(line)
}

// isTitleLine applies the title/company heuristic: an "at" connector, a
// comma- or dash-separated two-part pattern, or a leading Title-Case word
// pair.
func isTitleLine(line string) bool {
	if containsAt(line) {
		return true
	}
	if before, after, ok := splitTwoPart(line); ok && before != "" && after != "" {
		return true
	}
	return titleCasePair(line)
}

// splitTitleCompany derives the title and company halves of a title line.
// Lines that match only the Title-Case heuristic have no company part.
func splitTitleCompany(line string) (title, company string) {
	if loc := atRe.FindStringIndex(line); loc != nil {
		return strings.TrimSpace(line[:loc[0]]), strings.TrimSpace(line[loc[1]:])
	}
	if before, after, ok := splitTwoPart(line); ok && before != "" && after != "" {
		return before, after
	}
	return line, ""
}

// containsAt reports a word-bounded "at" connector.
func containsAt(line string) bool {
	return atRe.MatchString(line)
}

// splitTwoPart splits on the first comma or spaced dash.
func splitTwoPart(line string) (string, string, bool) {
	for _, sep := range []string{",", " - "} {
		if idx := strings.Index(line, sep); idx >= 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):]), true
		}
	}
	return "", "", false
}

// titleCasePair reports whether the line starts with two capitalized words,
// the classic "Senior Engineer" shape.
func titleCasePair(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return false
	}
	return startsUpper(tokens[0]) && startsUpper(tokens[1])
}

func startsUpper(tok string) bool {
	return tok != "" && tok[0] >= 'A' && tok[0] <= 'Z'
}

// joinDescription accumulates description lines with single spaces.
func joinDescription(acc, line string) string {
	if acc == "" {
		return line
	}
	return acc + " " + line
}

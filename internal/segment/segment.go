package segment

import "strings"

// Tag identifies one of the fixed resume section kinds the segmenter
// recognizes.
type Tag string

const (
	Summary        Tag = "summary"
	Skills         Tag = "skills"
	Experience     Tag = "experience"
	Education      Tag = "education"
	Projects       Tag = "projects"
	Certifications Tag = "certifications"
)

// Span is a half-open line-index range [Start, End) covering a section's
// content lines. The header line itself is not part of the span, and
// Start < End always holds: sections that turn out to be empty produce no
// span at all.
type Span struct {
	Start int
	End   int
}

// Lines returns the content lines the span covers.
func (s Span) Lines(lines []string) []string {
	return lines[s.Start:s.End]
}

// maxHeaderLen filters body text out of header detection: a long line that
// happens to contain a keyword substring is content, not a header.
const maxHeaderLen = 50

// tagOrder fixes the tie-break when one short line matches the keyword sets
// of several not-yet-seen tags: the earliest tag in this order wins.
var tagOrder = []Tag{Summary, Skills, Experience, Education, Projects, Certifications}

// keywords maps each tag to the lowercase substrings that mark its header.
var keywords = map[Tag][]string{
	Summary:        {"summary", "objective", "profile", "about"},
	Skills:         {"skills", "technologies", "technical", "competencies"},
	Experience:     {"experience", "employment", "work history", "career"},
	Education:      {"education", "academic", "qualification"},
	Projects:       {"projects", "portfolio"},
	Certifications: {"certification", "certificate", "licenses"},
}

// Segment scans normalized lines top to bottom and assigns each recognized
// section a contiguous content span. A tag opens at its first matching header
// line and never reopens: later lines matching an already-seen tag are
// ordinary content of whatever section is currently open, which keeps a
// keyword like "skills" inside an experience bullet from re-segmenting the
// document. The last opened section runs to end of input. Input with no
// recognizable headers yields an empty map.
func Segment(lines []string) map[Tag]Span {
	spans := make(map[Tag]Span)

	// Explicit per-tag open/closed state instead of map-presence checks.
	seen := make(map[Tag]bool, len(tagOrder))

	var openTag Tag
	open := false
	start := 0

	closeOpen := func(end int) {
		if open && start < end {
			spans[openTag] = Span{Start: start, End: end}
		}
		open = false
	}

	for i, line := range lines {
		tag, ok := headerTag(line, seen)
		if !ok {
			continue
		}
		closeOpen(i)
		seen[tag] = true
		openTag = tag
		open = true
		start = i + 1
	}
	closeOpen(len(lines))

	return spans
}

// headerTag reports which not-yet-seen tag the line opens, if any.
func headerTag(line string, seen map[Tag]bool) (Tag, bool) {
	if len(line) >= maxHeaderLen {
		return "", false
	}
	lower := strings.ToLower(line)
	for _, tag := range tagOrder {
		if seen[tag] {
			continue
		}
		for _, kw := range keywords[tag] {
			if strings.Contains(lower, kw) {
				return tag, true
			}
		}
	}
	return "", false
}

// Package fields extracts document-wide scalar fields (name, email, phone)
// from normalized resume text. The extractors run independently of section
// segmentation, tolerate absent data, and never fail: a field that cannot be
// found comes back as its default.
package fields

import (
	"regexp"
	"strings"
)

// NamePlaceholder is returned when no line in the document head looks like a
// person's name.
const NamePlaceholder = "Your Name"

// nameScanLines bounds the search for the candidate's name to the top of the
// document, where resumes put it.
const nameScanLines = 10

// contactMarkers disqualify a line from being a name: they indicate contact
// details or a resume header rather than a person.
var contactMarkers = []string{"@", "phone", "email", "linkedin", "github", "resume", "curriculum vitae"}

var (
	nameTokenRe = regexp.MustCompile(`^[A-Za-z][A-Za-z.'-]*$`)
	emailRe     = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	yearRe      = regexp.MustCompile(`(19|20)\d{2}`)

	// phoneRes is ordered most-specific first: parenthesized area code, then
	// international prefix, then separated groups, then a bare 10-digit run.
	// The first pattern that matches anywhere wins.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
		regexp.MustCompile(`\d{10}`),
	}

	// placeholderDomains filters out sample addresses that resume templates
	// leave behind.
	placeholderDomains = []string{"example", "test", "sample"}
)

// Name scans the first lines of the document for something that looks like a
// person's name: two to four alphabetic tokens, at least one of them
// capitalized, on a line free of contact markers. Falls back to
// NamePlaceholder.
func Name(lines []string) string {
	limit := len(lines)
	if limit > nameScanLines {
		limit = nameScanLines
	}
scan:
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		for _, marker := range contactMarkers {
			if strings.Contains(lower, marker) {
				continue scan
			}
		}
		for _, tok := range strings.Fields(lower) {
			if tok == "cv" {
				continue scan
			}
		}
		if looksLikeName(line) {
			return line
		}
	}
	return NamePlaceholder
}

func looksLikeName(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	upper := false
	for _, tok := range tokens {
		if !nameTokenRe.MatchString(tok) {
			return false
		}
		if tok[0] >= 'A' && tok[0] <= 'Z' {
			upper = true
		}
	}
	return upper
}

// Email returns the first address in the document, skipping placeholder
// domains like example.com. Empty string when nothing usable matches.
func Email(text string) string {
	for _, loc := range emailRe.FindAllString(text, -1) {
		lower := strings.ToLower(loc)
		if containsAny(lower, placeholderDomains) {
			continue
		}
		return loc
	}
	return ""
}

// Phone tries the pattern ladder from most to least specific and returns the
// first match of the first pattern that hits, with internal whitespace
// collapsed. Empty string when no pattern matches.
func Phone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return strings.Join(strings.Fields(m), " ")
		}
	}
	return ""
}

// Year returns the first four-digit year in 19xx/20xx within s, plus its
// location, for callers that want to cut it out of the line.
func Year(s string) (string, []int) {
	loc := yearRe.FindStringIndex(s)
	if loc == nil {
		return "", nil
	}
	return s[loc[0]:loc[1]], loc
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

package sections

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// skillsCap bounds the size of the skills list in the assembled record.
const skillsCap = 15

// vocabulary is the fixed set of well-known skills matched as substrings
// anywhere in the document. Order matters: it is the deterministic tie-break
// for truncation, vocabulary hits before section tokens, first seen first.
var vocabulary = []string{
	"python", "javascript", "typescript", "java", "c++", "c#", "golang",
	"rust", "ruby", "php", "swift", "kotlin",
	"react", "angular", "vue", "html", "css",
	"sql", "mongodb", "postgresql", "mysql", "redis",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"git", "linux", "django", "flask", "spring", "nodejs", "express",
	"graphql", "machine learning", "data science", "tensorflow", "pytorch",
}

var titleCaser = cases.Title(language.English)

// Skills unions two sources: vocabulary terms found anywhere in the
// normalized document (title-cased on output) and comma-separated tokens from
// the skills section's own lines (kept verbatim, length-filtered). The result
// is de-duplicated case-insensitively in first-seen order and truncated to
// skillsCap entries.
func Skills(doc string, sectionLines []string) []string {
	seen := make(map[string]bool, skillsCap)
	out := make([]string, 0, skillsCap)

	add := func(skill string) {
		if len(out) >= skillsCap {
			return
		}
		key := strings.ToLower(skill)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, skill)
	}

	lowerDoc := strings.ToLower(doc)
	for _, term := range vocabulary {
		if strings.Contains(lowerDoc, term) {
			add(titleCaser.String(term))
		}
	}

	for _, line := range sectionLines {
		if !strings.Contains(line, ",") {
			continue
		}
		for _, tok := range strings.Split(line, ",") {
			tok = strings.TrimSpace(tok)
			n := len([]rune(tok))
			if n < 2 || n > 30 {
				continue
			}
			add(tok)
		}
	}

	return out
}

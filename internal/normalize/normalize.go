package normalize

import (
	"strings"
	"unicode"
)

// replacer maps common PDF punctuation variants onto their plain ASCII
// equivalents so downstream heuristics only ever see one spelling. Bullet
// glyphs all collapse to a single hyphen marker.
var replacer = strings.NewReplacer(
	"—", "-", // em dash
	"–", "-", // en dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"•", "-", // bullet
	"●", "-", // black circle
	"▪", "-", // black small square
	"◦", "-", // white bullet
	"‣", "-", // triangular bullet
	"·", "-", // middle dot
	"∙", "-", // bullet operator
	" ", " ", // no-break space
)

// Normalize prepares raw extracted text for segmentation. Within each line,
// whitespace runs collapse to single spaces and punctuation variants are
// rewritten; line breaks are preserved because they carry section-boundary
// information. Purely numeric lines (page numbers) and lines shorter than
// three characters (extraction artifacts) are dropped.
//
// Normalize is pure and idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = replacer.Replace(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = collapseSpaces(strings.TrimSpace(line))
		if len([]rune(line)) < 3 {
			continue
		}
		if isNumeric(line) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// Lines splits normalized text into its line sequence. Empty input yields an
// empty slice rather than a single empty line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}

// isNumeric reports whether the line consists solely of digits and spaces,
// which is how page-number artifacts typically survive extraction.
func isNumeric(s string) bool {
	seen := false
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
		seen = true
	}
	return seen
}

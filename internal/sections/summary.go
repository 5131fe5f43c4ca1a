// Package sections decomposes the line ranges produced by the segmenter into
// structured per-section entries. Every parser here degrades to an empty
// result on empty or unrecognizable input; none of them can fail.
package sections

import "strings"

// summaryMaxSentences caps how much of a summary section survives into the
// record.
const summaryMaxSentences = 3

// summaryMinSentenceLen filters fragments left over from aggressive line
// splitting.
const summaryMinSentenceLen = 10

// Summary joins the first few substantive sentences of the summary section
// into a single period-terminated paragraph. An absent section yields the
// empty string.
func Summary(lines []string) string {
	text := strings.Join(lines, " ")
	kept := make([]string, 0, summaryMaxSentences)
	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= summaryMinSentenceLen {
			continue
		}
		kept = append(kept, sentence)
		if len(kept) == summaryMaxSentences {
			break
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

// splitSentences cuts text on sentence terminators. The terminators
// themselves are discarded; Summary re-punctuates when it rejoins.
func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

package sections

import "strings"

// certificationsCap bounds how many certification lines survive.
const certificationsCap = 10

// certificationMinLen filters out leftover separators and stray artifacts.
const certificationMinLen = 5

// Certifications keeps each substantive line of the certifications section
// verbatim, up to certificationsCap entries.
func Certifications(lines []string) []string {
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= certificationMinLen {
			continue
		}
		out = append(out, line)
		if len(out) == certificationsCap {
			break
		}
	}
	return out
}

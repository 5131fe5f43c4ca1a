// Package resume is the single authoritative resume-parsing policy: it
// composes normalization, section segmentation, document-wide field
// extraction, and the per-section parsers into one Record per input. The
// entry point takes already-extracted plain text, keeping the pipeline
// independent of any particular PDF library.
package resume

import (
	"strings"

	"github.com/hyperifyio/foliogen/internal/fields"
	"github.com/hyperifyio/foliogen/internal/normalize"
	"github.com/hyperifyio/foliogen/internal/sections"
	"github.com/hyperifyio/foliogen/internal/segment"
)

// Record is the assembled output of one extraction. Scalar fields default to
// empty strings and list fields to empty slices; no field is ever null. A
// Record is immutable after assembly.
type Record struct {
	Name           string                     `json:"name"`
	Email          string                     `json:"email"`
	Phone          string                     `json:"phone"`
	Summary        string                     `json:"summary"`
	Skills         []string                   `json:"skills"`
	Experience     []sections.ExperienceEntry `json:"experience"`
	Education      []sections.EducationEntry  `json:"education"`
	Projects       []sections.ProjectEntry    `json:"projects"`
	Certifications []string                   `json:"certifications"`
}

// Parse runs the full heuristic pipeline over raw resume text. It cannot
// fail: unrecognizable input produces a Record of defaults and empties.
// Each invocation builds fresh intermediate state, so concurrent calls need
// no coordination.
func Parse(raw string) Record {
	norm := normalize.Normalize(raw)
	lines := normalize.Lines(norm)
	spans := segment.Segment(lines)

	content := func(tag segment.Tag) []string {
		if sp, ok := spans[tag]; ok {
			return sp.Lines(lines)
		}
		return nil
	}

	rec := Record{
		Name:           fields.Name(lines),
		Email:          fields.Email(norm),
		Phone:          fields.Phone(norm),
		Summary:        sections.Summary(content(segment.Summary)),
		Skills:         sections.Skills(norm, content(segment.Skills)),
		Experience:     sections.Experience(content(segment.Experience)),
		Education:      sections.Education(content(segment.Education)),
		Projects:       sections.Projects(content(segment.Projects)),
		Certifications: sections.Certifications(content(segment.Certifications)),
	}
	postProcess(&rec)
	return rec
}

// postProcess drops entries whose primary identifying field is empty,
// terminates description text, and replaces nil list fields so the record
// serializes without nulls.
func postProcess(rec *Record) {
	exp := rec.Experience[:0]
	for _, e := range rec.Experience {
		if strings.TrimSpace(e.Title) == "" {
			continue
		}
		e.Description = terminate(e.Description)
		exp = append(exp, e)
	}
	rec.Experience = exp

	edu := rec.Education[:0]
	for _, e := range rec.Education {
		if strings.TrimSpace(e.Degree) == "" {
			continue
		}
		edu = append(edu, e)
	}
	rec.Education = edu

	prj := rec.Projects[:0]
	for _, p := range rec.Projects {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		p.Description = terminate(p.Description)
		prj = append(prj, p)
	}
	rec.Projects = prj

	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	if rec.Experience == nil {
		rec.Experience = []sections.ExperienceEntry{}
	}
	if rec.Education == nil {
		rec.Education = []sections.EducationEntry{}
	}
	if rec.Projects == nil {
		rec.Projects = []sections.ProjectEntry{}
	}
	if rec.Certifications == nil {
		rec.Certifications = []string{}
	}
}

// terminate appends a period to non-empty text that does not already end in
// sentence punctuation.
func terminate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}

package sections

import (
	"testing"
	"unicode/utf8"
)

func TestEducation_DegreeYearInstitution(t *testing.T) {
	got := Education([]string{
		"Bachelor of Science in Computing, 2015, University of Texas",
		"irrelevant line without keywords",
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %v", got)
	}
	e := got[0]
	if e.Year != "2015" {
		t.Fatalf("year wrong: %+v", e)
	}
	if e.Degree != "Bachelor of Science in Computing" {
		t.Fatalf("degree wrong: %+v", e)
	}
	if e.Institution != "University of Texas" {
		t.Fatalf("institution wrong: %+v", e)
	}
}

func TestEducation_NoInstitutionKeyword(t *testing.T) {
	got := Education([]string{"Master of Arts 2019"})
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	e := got[0]
	if e.Degree != "Master of Arts" || e.Institution != "" || e.Year != "2019" {
		t.Fatalf("got %+v", e)
	}
}

func TestEducation_NoYear(t *testing.T) {
	got := Education([]string{"Associate Degree, Community College"})
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	e := got[0]
	if e.Year != "" || e.Degree != "Associate Degree, Community" || e.Institution != "College" {
		t.Fatalf("got %+v", e)
	}
}

func TestEducation_Empty(t *testing.T) {
	if got := Education(nil); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
	if got := Education([]string{"no matching words here"}); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestEducation_NonASCIIDegreeLine(t *testing.T) {
	got := Education([]string{"Bachelor of Science ȺȺȺȺ University of Somewhere 2018"})
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(got), got)
	}
	e := got[0]
	if e.Degree != "Bachelor of Science ȺȺȺȺ" || e.Institution != "University of Somewhere" || e.Year != "2018" {
		t.Fatalf("got %+v", e)
	}
	if !utf8.ValidString(e.Degree) || !utf8.ValidString(e.Institution) {
		t.Fatalf("invalid UTF-8 in entry: %+v", e)
	}
}

package resume

import (
	"encoding/json"
	"strings"
	"testing"
)

const sample = "John Smith\njohn.smith@company.com\n555-123-4567\n\nEXPERIENCE\nSenior Engineer at Acme Corp\n2020-2023\nBuilt scalable systems.\n"

func TestParse_EndToEnd(t *testing.T) {
	rec := Parse(sample)

	if rec.Name != "John Smith" {
		t.Fatalf("name: %q", rec.Name)
	}
	if rec.Email != "john.smith@company.com" {
		t.Fatalf("email: %q", rec.Email)
	}
	if !strings.Contains(rec.Phone, "555-123-4567") {
		t.Fatalf("phone: %q", rec.Phone)
	}
	if len(rec.Experience) != 1 {
		t.Fatalf("experience: %v", rec.Experience)
	}
	e := rec.Experience[0]
	if !strings.Contains(e.Title, "Senior Engineer") {
		t.Fatalf("title: %q", e.Title)
	}
	if !strings.Contains(e.Duration, "2020-2023") {
		t.Fatalf("duration: %q", e.Duration)
	}
}

func TestParse_NoSections(t *testing.T) {
	rec := Parse("Jane Doe\njane@realcorp.com\nsome unstructured prose that matches nothing")
	if rec.Name != "Jane Doe" || rec.Email != "jane@realcorp.com" {
		t.Fatalf("fields: %+v", rec)
	}
	if len(rec.Experience) != 0 || len(rec.Education) != 0 || len(rec.Projects) != 0 || len(rec.Certifications) != 0 {
		t.Fatalf("expected empty lists: %+v", rec)
	}
	if rec.Summary != "" {
		t.Fatalf("summary: %q", rec.Summary)
	}
}

func TestParse_DescriptionsTerminated(t *testing.T) {
	rec := Parse("John Smith\nEXPERIENCE\nEngineer at Acme\nbuilt the pipeline")
	if len(rec.Experience) != 1 {
		t.Fatalf("experience: %v", rec.Experience)
	}
	if got := rec.Experience[0].Description; got != "built the pipeline." {
		t.Fatalf("description: %q", got)
	}
}

func TestParse_NoEntryWithoutPrimaryKey(t *testing.T) {
	// A section whose lines never form a titled entry must not leak partial
	// entries into the record.
	rec := Parse("John Smith\nPROJECTS\nlowercase ramble without keywords or capitals here")
	for _, p := range rec.Projects {
		if strings.TrimSpace(p.Name) == "" {
			t.Fatalf("empty project name survived: %+v", rec.Projects)
		}
	}
	for _, e := range rec.Experience {
		if strings.TrimSpace(e.Title) == "" {
			t.Fatalf("empty title survived: %+v", rec.Experience)
		}
	}
}

func TestParse_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Parse(sample))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"name"`, `"email"`, `"phone"`, `"summary"`, `"skills"`, `"experience"`, `"education"`, `"projects"`, `"certifications"`, `"title"`, `"company"`, `"duration"`, `"description"`} {
		if !strings.Contains(s, key) {
			t.Fatalf("missing %s in %s", key, s)
		}
	}
	if strings.Contains(s, "null") {
		t.Fatalf("null field in %s", s)
	}
}

func TestParse_SkillsRoundTrip(t *testing.T) {
	rec := Parse("Jane Doe\nSKILLS\nPython, Go, Rust")
	want := map[string]bool{"Python": true, "Go": true, "Rust": true}
	for skill := range want {
		found := false
		for _, s := range rec.Skills {
			if s == skill {
				found = true
			}
		}
		if !found {
			t.Fatalf("missing %q in %v", skill, rec.Skills)
		}
	}
	if len(rec.Skills) > 15 {
		t.Fatalf("skills over cap: %v", rec.Skills)
	}
}

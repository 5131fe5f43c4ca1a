package fields

import (
	"strings"
	"testing"
)

func TestName_FirstQualifyingLine(t *testing.T) {
	lines := strings.Split("Curriculum Vitae\njohn.smith@realcorp.com\nJohn Smith\nSenior Engineer", "\n")
	if got := Name(lines); got != "John Smith" {
		t.Fatalf("got %q", got)
	}
}

func TestName_Placeholder(t *testing.T) {
	cases := [][]string{
		{},
		{"email: someone@realcorp.com", "phone: 555-123-4567"},
		{"a b c d e f", "one"},
		{"all lowercase words here"},
	}
	for _, lines := range cases {
		if got := Name(lines); got != NamePlaceholder {
			t.Fatalf("lines %q: got %q want placeholder", lines, got)
		}
	}
}

func TestName_TokenShape(t *testing.T) {
	if got := Name([]string{"Mary-Jane O'Brien"}); got != "Mary-Jane O'Brien" {
		t.Fatalf("punctuated name rejected: %q", got)
	}
	if got := Name([]string{"Dr. Jane van Dam"}); got != "Dr. Jane van Dam" {
		t.Fatalf("four-token name rejected: %q", got)
	}
	if got := Name([]string{"Jane"}); got == "Jane" {
		t.Fatalf("single token accepted")
	}
}

func TestEmail_FiltersPlaceholders(t *testing.T) {
	if got := Email("Contact: jane.doe@example.com for info"); got != "" {
		t.Fatalf("placeholder not filtered: %q", got)
	}
	if got := Email("Contact: jane.doe@realcorp.com"); got != "jane.doe@realcorp.com" {
		t.Fatalf("got %q", got)
	}
	// First non-placeholder wins even after a filtered one.
	text := "a@test.org then b@realcorp.com then c@other.net"
	if got := Email(text); got != "b@realcorp.com" {
		t.Fatalf("got %q", got)
	}
}

func TestEmail_Absent(t *testing.T) {
	if got := Email("no contact information at all"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestPhone_PatternLadder(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"call (555) 123-4567 today", "(555) 123-4567"},
		{"intl +1 555 123 4567", "+1 555 123 4567"},
		{"plain 555-123-4567", "555-123-4567"},
		{"bare 5551234567 digits", "5551234567"},
		{"no number here", ""},
		{"duration 2020-2023 is not a phone", ""},
	}
	for _, c := range cases {
		if got := Phone(c.in); got != c.want {
			t.Fatalf("Phone(%q) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestPhone_MostSpecificWins(t *testing.T) {
	// A parenthesized match later in the document still beats an earlier
	// less-specific one, because the ladder is tried pattern by pattern.
	text := "alt 555-123-4567 main (999) 888-7777"
	if got := Phone(text); got != "(999) 888-7777" {
		t.Fatalf("got %q", got)
	}
}

func TestYear(t *testing.T) {
	y, loc := Year("BS Computer Science, 2015, State University")
	if y != "2015" || loc == nil {
		t.Fatalf("got %q %v", y, loc)
	}
	if y, _ := Year("no year"); y != "" {
		t.Fatalf("got %q", y)
	}
}

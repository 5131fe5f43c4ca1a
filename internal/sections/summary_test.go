package sections

import (
	"strings"
	"testing"
)

func TestSummary_KeepsFirstThreeSubstantiveSentences(t *testing.T) {
	lines := []string{
		"Seasoned backend engineer with a decade of experience.",
		"Focused on distributed systems! Ok. Also mentors junior engineers.",
		"This fourth substantive sentence must not appear.",
	}
	got := Summary(lines)
	if !strings.HasSuffix(got, ".") {
		t.Fatalf("missing trailing period: %q", got)
	}
	if strings.Contains(got, "Ok") {
		t.Fatalf("trivial sentence kept: %q", got)
	}
	if strings.Contains(got, "fourth substantive") {
		t.Fatalf("more than three sentences kept: %q", got)
	}
	if n := strings.Count(got, "."); n != 3 {
		t.Fatalf("expected 3 sentences, counted %d periods: %q", n, got)
	}
}

func TestSummary_Empty(t *testing.T) {
	if got := Summary(nil); got != "" {
		t.Fatalf("got %q", got)
	}
	if got := Summary([]string{"short. ok. no"}); got != "" {
		t.Fatalf("only fragments should yield empty, got %q", got)
	}
}

package pdftext

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// writeFixturePDF renders a small single-page resume PDF for extraction tests.
func writeFixturePDF(t *testing.T, lines []string) string {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 11)
	doc.AddPage()
	for _, line := range lines {
		doc.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := doc.OutputFileAndClose(path); err != nil {
		t.Fatalf("write fixture pdf: %v", err)
	}
	return path
}

func TestExtract_FixturePDF(t *testing.T) {
	path := writeFixturePDF(t, []string{
		"John Smith",
		"john.smith@realcorp.com",
		"EXPERIENCE",
		"Senior Engineer at Acme Corp",
	})
	text, err := New().Extract(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	for _, want := range []string{"John Smith", "EXPERIENCE", "Acme Corp"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in extracted text:\n%s", want, text)
		}
	}
}

func TestExtract_BothBackendsEmpty(t *testing.T) {
	// Not a PDF at all: both backends must fail and the single fatal error
	// must surface.
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	if err := os.WriteFile(path, []byte("plain text, no pdf structure"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	_, err := New().Extract(path)
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

type fakeBackend struct {
	name string
	text string
	err  error
}

func (f fakeBackend) Name() string                  { return f.name }
func (f fakeBackend) Extract(string) (string, error) { return f.text, f.err }

func TestExtract_FallsBackOnPrimaryError(t *testing.T) {
	e := &Extractor{
		Primary:  fakeBackend{name: "primary", err: errors.New("boom")},
		Fallback: fakeBackend{name: "fallback", text: "recovered text"},
	}
	text, err := e.Extract("whatever.pdf")
	if err != nil || text != "recovered text" {
		t.Fatalf("got %q, %v", text, err)
	}
}

func TestExtract_FallsBackOnEmptyPrimary(t *testing.T) {
	e := &Extractor{
		Primary:  fakeBackend{name: "primary", text: "  \n "},
		Fallback: fakeBackend{name: "fallback", text: "fallback text"},
	}
	text, err := e.Extract("whatever.pdf")
	if err != nil || text != "fallback text" {
		t.Fatalf("got %q, %v", text, err)
	}
}

func TestExtract_PrimaryWinsWhenUsable(t *testing.T) {
	e := &Extractor{
		Primary:  fakeBackend{name: "primary", text: "primary text"},
		Fallback: fakeBackend{name: "fallback", err: errors.New("never called")},
	}
	text, err := e.Extract("whatever.pdf")
	if err != nil || text != "primary text" {
		t.Fatalf("got %q, %v", text, err)
	}
}

package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/foliogen/internal/pdftext"
)

type stubBackend struct {
	text string
	err  error
}

func (s stubBackend) Name() string { return "stub" }

func (s stubBackend) Extract(string) (string, error) { return s.text, s.err }

const sampleResume = "John Smith\njohn.smith@company.com\n555-123-4567\n\n" +
	"SUMMARY\nExperienced engineer who ships reliable systems.\n\n" +
	"SKILLS\nPython, Golang, Docker\n\n" +
	"EXPERIENCE\nSenior Engineer at Acme Corp\n2020-2023\nBuilt scalable systems.\n"

func newStubApp(cfg Config, text string) *App {
	return &App{
		cfg:       cfg,
		extractor: &pdftext.Extractor{Primary: stubBackend{text: text}, Fallback: stubBackend{}},
	}
}

func TestRun_WritesPortfolioHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "portfolio.html")
	a := newStubApp(Config{InputPath: "cv.pdf", OutputPath: out}, sampleResume)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	page := string(got)
	if !strings.Contains(page, "<!DOCTYPE html>") || !strings.Contains(page, "John Smith") {
		t.Fatalf("unexpected page: %.200s", page)
	}
}

func TestRun_WritesRecordJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "record.json")
	a := newStubApp(Config{InputPath: "cv.pdf", OutputPath: out, JSONOut: true}, sampleResume)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var rec map[string]any
	if err := json.Unmarshal(got, &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec["name"] != "John Smith" || rec["email"] != "john.smith@company.com" {
		t.Fatalf("record: %v", rec)
	}
}

func TestRun_ExtractionFailureIsFatal(t *testing.T) {
	out := filepath.Join(t.TempDir(), "portfolio.html")
	a := &App{
		cfg:       Config{InputPath: "scan.pdf", OutputPath: out},
		extractor: &pdftext.Extractor{Primary: stubBackend{}, Fallback: stubBackend{}},
	}
	if err := a.Run(context.Background()); err == nil {
		t.Fatalf("expected error for empty extraction")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output written despite failure")
	}
}

func TestProcessPDF_ReturnsHTML(t *testing.T) {
	a := newStubApp(Config{}, sampleResume)
	html, err := a.ProcessPDF(context.Background(), "cv.pdf")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !strings.Contains(html, "John Smith") {
		t.Fatalf("unexpected html: %.200s", html)
	}
}

func TestNew_WithoutModelDisablesEnrichment(t *testing.T) {
	a, err := New(context.Background(), Config{InputPath: "cv.pdf", OutputPath: "out.html"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if a.enricher != nil {
		t.Fatalf("enricher configured without model")
	}
}

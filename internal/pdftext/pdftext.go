// Package pdftext turns PDF bytes on disk into plain text. Extraction tries a
// primary backend page by page and falls back to a secondary one; it fails
// only when both produce no text at all.
package pdftext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"
)

// ErrNoText is the single fatal extraction error: neither backend produced
// any text for the document.
var ErrNoText = errors.New("no text could be extracted from document")

// Backend extracts plain text from a PDF file on disk.
type Backend interface {
	Name() string
	Extract(path string) (string, error)
}

// Extractor runs the primary backend and falls back to the secondary when the
// primary errors or yields an entirely empty document. It holds no state
// between calls.
type Extractor struct {
	Primary  Backend
	Fallback Backend
}

// New returns the default backend pair.
func New() *Extractor {
	return &Extractor{Primary: pageBackend{}, Fallback: contentBackend{}}
}

// Extract returns the document's plain text, or ErrNoText when both backends
// come up empty. Per-page failures inside a backend are recovered locally and
// never abort the whole extraction.
func (e *Extractor) Extract(path string) (string, error) {
	text, err := e.Primary.Extract(path)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("backend", e.Primary.Name()).Str("file", filepath.Base(path)).Msg("primary extraction failed, trying fallback")
	} else {
		log.Warn().Str("backend", e.Primary.Name()).Str("file", filepath.Base(path)).Msg("primary extraction empty, trying fallback")
	}

	text, err = e.Fallback.Extract(path)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if err != nil {
		log.Warn().Err(err).Str("backend", e.Fallback.Name()).Str("file", filepath.Base(path)).Msg("fallback extraction failed")
	}
	return "", fmt.Errorf("%w: %s", ErrNoText, filepath.Base(path))
}

// pageBackend is the primary backend, reading page by page through
// ledongthuc/pdf. Pages that cannot be read are logged and skipped.
type pageBackend struct{}

func (pageBackend) Name() string { return "ledongthuc" }

func (pageBackend) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			log.Warn().Int("page", i).Str("file", filepath.Base(path)).Msg("skipping null page")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", i).Str("file", filepath.Base(path)).Msg("skipping unreadable page")
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// contentBackend is the fallback, extracting raw page content through pdfcpu
// with relaxed validation. Its output is rougher than the primary's but still
// feeds the heuristics when the primary chokes on the file.
type contentBackend struct{}

func (contentBackend) Name() string { return "pdfcpu" }

func (contentBackend) Extract(path string) (string, error) {
	tmpDir, err := os.MkdirTemp("", "foliogen-pdf-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ExtractContentFile(path, tmpDir, nil, conf); err != nil {
		return "", fmt.Errorf("extract pdf content: %w", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return "", fmt.Errorf("read temp dir: %w", err)
	}

	var b strings.Builder
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(tmpDir, entry.Name()))
		if err != nil {
			log.Warn().Err(err).Str("page", entry.Name()).Msg("skipping unreadable page content")
			continue
		}
		b.Write(data)
		b.WriteString("\n")
	}
	return b.String(), nil
}

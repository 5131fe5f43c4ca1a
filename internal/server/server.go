// Package server exposes the pipeline as a small upload web service: POST a
// resume PDF, get back the name of a generated portfolio page, fetch or
// download it. The service keeps no state beyond the generated HTML
// artifacts.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/foliogen/internal/pdftext"
)

// maxUploadBytes caps request bodies at 16 MiB, matching the original
// service's limit.
const maxUploadBytes = 16 << 20

// artifactRe constrains servable artifact names; anything else is a
// traversal attempt or a typo.
var artifactRe = regexp.MustCompile(`^portfolio_[0-9a-f]{8}\.html$`)

// Server wires HTTP handling to the processing pipeline. Process is injected
// so tests can run without PDFs or a model backend.
type Server struct {
	UploadDir    string
	PortfolioDir string

	// Process turns a stored PDF into portfolio HTML.
	Process func(ctx context.Context, pdfPath string) (string, error)
}

// Routes builds the service's handler with request logging attached.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /portfolio/{name}", s.handleArtifact(false))
	mux.HandleFunc("GET /download/{name}", s.handleArtifact(true))
	return logRequests(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>foliogen</title></head>
<body>
<h1>Resume to Portfolio</h1>
<form action="/upload" method="post" enctype="multipart/form-data">
<input type="file" name="resume" accept=".pdf" required>
<button type="submit">Generate portfolio</button>
</form>
</body></html>`)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file selected")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, "please upload a PDF file")
		return
	}

	// Unique prefix plus sanitized original name, as artifact lineage.
	id := uuid.NewString()[:8]
	name := id + "_" + filepath.Base(header.Filename)
	pdfPath := filepath.Join(s.UploadDir, name)
	if err := saveUpload(pdfPath, file); err != nil {
		log.Error().Err(err).Msg("saving upload")
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer os.Remove(pdfPath)

	html, err := s.Process(r.Context(), pdfPath)
	if err != nil {
		if errors.Is(err, pdftext.ErrNoText) {
			writeError(w, http.StatusUnprocessableEntity, "could not extract text from the PDF; it may be scanned or empty")
			return
		}
		log.Error().Err(err).Str("file", name).Msg("processing upload")
		writeError(w, http.StatusInternalServerError, "failed to process resume")
		return
	}

	artifact := "portfolio_" + id + ".html"
	outPath := filepath.Join(s.PortfolioDir, artifact)
	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		log.Error().Err(err).Msg("writing artifact")
		writeError(w, http.StatusInternalServerError, "failed to write portfolio")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"id":        id,
		"portfolio": artifact,
		"url":       "/portfolio/" + artifact,
	})
}

func (s *Server) handleArtifact(download bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		if !artifactRe.MatchString(name) {
			writeError(w, http.StatusNotFound, "no such portfolio")
			return
		}
		path := filepath.Join(s.PortfolioDir, name)
		if _, err := os.Stat(path); err != nil {
			writeError(w, http.StatusNotFound, "no such portfolio")
			return
		}
		if download {
			w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
		}
		http.ServeFile(w, r, path)
	}
}

func saveUpload(path string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// statusWriter records the response code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// Package app wires configuration, extraction, parsing, enrichment and
// rendering into the two run modes the binary offers: a one-shot conversion
// and an upload server.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/foliogen/internal/cache"
	"github.com/hyperifyio/foliogen/internal/enrich"
	"github.com/hyperifyio/foliogen/internal/llm"
	"github.com/hyperifyio/foliogen/internal/pdftext"
	"github.com/hyperifyio/foliogen/internal/portfolio"
	"github.com/hyperifyio/foliogen/internal/resume"
	"github.com/hyperifyio/foliogen/internal/server"
)

type App struct {
	cfg       Config
	extractor *pdftext.Extractor
	enricher  *enrich.Enricher
}

func New(ctx context.Context, cfg Config) (*App, error) {
	a := &App{cfg: cfg, extractor: pdftext.New()}

	var store *cache.Store
	if cfg.CacheDir != "" {
		store = &cache.Store{Dir: cfg.CacheDir}
		if cfg.CacheMaxAge > 0 {
			if n, err := store.PurgeByAge(cfg.CacheMaxAge); err == nil && n > 0 {
				log.Debug().Int("removed", n).Msg("purged stale cache entries")
			}
		}
	}

	if cfg.LLMModel != "" {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		provider := &llm.OpenAIProvider{Inner: openai.NewClientWithConfig(transportCfg)}
		a.enricher = &enrich.Enricher{Client: provider, Cache: store, Model: cfg.LLMModel}

		// Quick connectivity check by listing models. Best-effort: warn and
		// continue, enrichment failures are non-fatal anyway.
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if models, err := provider.ListModels(pctx); err != nil {
			log.Warn().Err(err).Msg("LLM model list failed; continuing")
		} else if len(models.Models) == 0 {
			log.Warn().Msg("LLM returned zero models")
		} else {
			log.Info().Int("count", len(models.Models)).Msg("LLM models available")
		}
	} else {
		log.Debug().Msg("no LLM model configured; enrichment disabled")
	}

	return a, nil
}

// ProcessPDF runs the full pipeline on one PDF and returns the rendered
// portfolio page. Enrichment failures are logged and skipped so a dead or
// absent model backend never blocks conversion.
func (a *App) ProcessPDF(ctx context.Context, pdfPath string) (string, error) {
	rec, raw, err := a.parsePDF(pdfPath)
	if err != nil {
		return "", err
	}
	return portfolio.Render(rec, a.enrichRecord(ctx, rec, raw))
}

// Run executes the one-shot conversion: read the input PDF, write either the
// portfolio page or the record as JSON to the output path.
func (a *App) Run(ctx context.Context) error {
	rec, raw, err := a.parsePDF(a.cfg.InputPath)
	if err != nil {
		return err
	}

	var out []byte
	if a.cfg.JSONOut {
		out, err = json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		out = append(out, '\n')
	} else {
		html, err := portfolio.Render(rec, a.enrichRecord(ctx, rec, raw))
		if err != nil {
			return err
		}
		out = []byte(html)
	}

	if err := os.WriteFile(a.cfg.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("in", a.cfg.InputPath).Str("out", a.cfg.OutputPath).Msg("wrote output")
	return nil
}

// Serve runs the upload service until the context is cancelled.
func (a *App) Serve(ctx context.Context) error {
	for _, dir := range []string{a.cfg.UploadsDir, a.cfg.PortfoliosDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	srv := &http.Server{
		Addr: a.cfg.ServeAddr,
		Handler: (&server.Server{
			UploadDir:    a.cfg.UploadsDir,
			PortfolioDir: a.cfg.PortfoliosDir,
			Process:      a.ProcessPDF,
		}).Routes(),
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", a.cfg.ServeAddr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shCtx)
		return ctx.Err()
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

func (a *App) parsePDF(pdfPath string) (resume.Record, string, error) {
	raw, err := a.extractor.Extract(pdfPath)
	if err != nil {
		return resume.Record{}, "", err
	}
	rec := resume.Parse(raw)
	log.Debug().
		Str("file", filepath.Base(pdfPath)).
		Str("name", rec.Name).
		Int("skills", len(rec.Skills)).
		Int("experience", len(rec.Experience)).
		Msg("parsed resume")
	return rec, raw, nil
}

func (a *App) enrichRecord(ctx context.Context, rec resume.Record, raw string) enrich.Result {
	res, err := a.enricher.Enrich(ctx, rec, raw)
	if err != nil {
		if err != enrich.ErrNotConfigured {
			log.Warn().Err(err).Msg("enrichment failed; using parsed content only")
		}
		return enrich.Result{}
	}
	return res
}

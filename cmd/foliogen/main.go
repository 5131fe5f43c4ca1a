package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/foliogen/internal/app"
	"github.com/hyperifyio/foliogen/internal/pdftext"
)

func main() {
	// Local .env is a convenience for development; absence is not an error.
	_ = godotenv.Load()

	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputPath   string
		outputPath  string
		jsonOut     bool
		serveAddr   string
		uploadsDir  string
		portfolios  string
		llmBaseURL  string
		llmModel    string
		llmKey      string
		cacheDir    string
		cacheMaxAge time.Duration
		verbose     bool
		configPath  string
	)

	flag.StringVar(&inputPath, "input", "", "Path to the resume PDF to convert")
	flag.StringVar(&outputPath, "output", "portfolio.html", "Path to write the portfolio page (or record JSON with -json)")
	flag.BoolVar(&jsonOut, "json", false, "Write the parsed record as JSON instead of a portfolio page")
	flag.StringVar(&serveAddr, "serve", "", "Run the upload web service on this address (e.g. :8080) instead of one-shot conversion")
	flag.StringVar(&uploadsDir, "server.uploads", "uploads", "Directory for uploaded PDFs in serve mode")
	flag.StringVar(&portfolios, "server.portfolios", "portfolios", "Directory for generated portfolio pages in serve mode")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for content enrichment (empty disables enrichment)")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for OpenAI-compatible server")
	flag.StringVar(&cacheDir, "cache.dir", ".foliogen-cache", "Cache directory for enrichment responses")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputPath:     inputPath,
		OutputPath:    outputPath,
		JSONOut:       jsonOut,
		ServeAddr:     serveAddr,
		UploadsDir:    uploadsDir,
		PortfoliosDir: portfolios,
		LLMBaseURL:    llmBaseURL,
		LLMModel:      llmModel,
		LLMAPIKey:     llmKey,
		CacheDir:      cacheDir,
		CacheMaxAge:   cacheMaxAge,
		Verbose:       verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("load config file")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		flag.Usage()
		os.Exit(1)
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		if errors.Is(err, pdftext.ErrNoText) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	if cfg.ServeAddr != "" {
		if err := a.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
	return a.Run(ctx)
}

package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	InputPath  string
	OutputPath string

	// Output the assembled record as JSON instead of a portfolio page.
	JSONOut bool

	// Server
	ServeAddr     string
	UploadsDir    string
	PortfoliosDir string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Behavior
	CacheDir    string
	CacheMaxAge time.Duration
	Verbose     bool
}

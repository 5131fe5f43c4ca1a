// Package llm isolates the enrichment step from the concrete OpenAI client so
// tests can substitute a fake backend.
package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the one call enrichment makes against a chat model. Anything
// OpenAI-compatible, including the local stub, satisfies it.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider wraps *openai.Client as a Client. It also exposes ListModels,
// which the app uses once at startup as a connectivity preflight.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}

func (p *OpenAIProvider) ListModels(ctx context.Context) (openai.ModelsList, error) {
	return p.Inner.ListModels(ctx)
}

// Package enrich is the optional text-generation collaborator: given an
// assembled record and the original text, it may return an improved summary,
// a tagline, achievements, and skill categories. Its output is strictly
// additive; callers must treat every failure here as ignorable and continue
// with the record's own fields.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/foliogen/internal/cache"
	"github.com/hyperifyio/foliogen/internal/llm"
	"github.com/hyperifyio/foliogen/internal/resume"
)

// maxRawChars bounds how much of the original document goes into the prompt.
const maxRawChars = 2000

// Result is the enrichment contract. A zero Result means no enrichment.
type Result struct {
	ImprovedSummary string              `json:"improved_summary"`
	Tagline         string              `json:"tagline"`
	Achievements    []string            `json:"achievements"`
	SkillCategories map[string][]string `json:"skill_categories"`
}

// Empty reports whether enrichment produced nothing usable.
func (r Result) Empty() bool {
	return r.ImprovedSummary == "" && r.Tagline == "" && len(r.Achievements) == 0 && len(r.SkillCategories) == 0
}

// Enricher calls the chat model to embellish a parsed record. Responses are
// cached by model and prompt digest when a cache is configured.
type Enricher struct {
	Client llm.Client
	Cache  *cache.Store
	Model  string
}

// ErrNotConfigured indicates the enricher has no client or model; callers
// skip enrichment entirely.
var ErrNotConfigured = errors.New("enrichment not configured")

// Enrich requests the enrichment payload for the record. Any transport or
// parse failure comes back as an error the caller is expected to swallow.
func (e *Enricher) Enrich(ctx context.Context, rec resume.Record, rawText string) (Result, error) {
	if e == nil || e.Client == nil || strings.TrimSpace(e.Model) == "" {
		return Result{}, ErrNotConfigured
	}

	system := systemMessage()
	user := userMessage(rec, rawText)

	if e.Cache != nil {
		key := cache.KeyFrom(e.Model, system+"\n\n"+user)
		if raw, ok, _ := e.Cache.Get(ctx, key); ok {
			var res Result
			if err := json.Unmarshal(raw, &res); err == nil && !res.Empty() {
				return res, nil
			}
		}
	}

	req := openai.ChatCompletionRequest{
		Model: e.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.7,
		MaxTokens:   800,
		N:           1,
	}
	resp, err := e.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("enrichment call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Result{}, errors.New("enrichment: empty response")
	}

	raw := stripFences(strings.TrimSpace(resp.Choices[0].Message.Content))
	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Result{}, fmt.Errorf("enrichment parse: %w", err)
	}
	if res.Empty() {
		return Result{}, errors.New("enrichment: empty payload")
	}

	if e.Cache != nil {
		if b, err := json.Marshal(res); err == nil {
			_ = e.Cache.Save(ctx, cache.KeyFrom(e.Model, system+"\n\n"+user), b)
		}
	}
	return res, nil
}

func systemMessage() string {
	return "You are a portfolio copywriter. Respond with strict JSON only: {\"improved_summary\":string,\"tagline\":string,\"achievements\":string[],\"skill_categories\":{string:string[]}}. Write an improved professional summary of 2-3 sentences, a catchy tagline, 3-5 key achievements, and a categorization of the skills. Use only facts present in the provided resume."
}

func userMessage(rec resume.Record, rawText string) string {
	if len(rawText) > maxRawChars {
		rawText = rawText[:maxRawChars]
	}
	var sb strings.Builder
	sb.WriteString("Improve the content of this resume for a professional portfolio website.\n\n")
	sb.WriteString("Parsed fields:\n")
	sb.WriteString("Name: " + rec.Name + "\n")
	sb.WriteString("Email: " + rec.Email + "\n")
	sb.WriteString("Summary: " + rec.Summary + "\n")
	if len(rec.Skills) > 0 {
		sb.WriteString("Skills: " + strings.Join(rec.Skills, ", ") + "\n")
	}
	sb.WriteString("\nResume text:\n\n")
	sb.WriteString(rawText)
	return sb.String()
}

// stripFences removes a Markdown code fence wrapper some models put around
// JSON output.
func stripFences(s string) string {
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimLeft(s, "\r\n")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

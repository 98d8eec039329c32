// Package openai provides a Generator adapter backed by the OpenAI
// chat completions API, or any compatible server via a base URL
// override.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/neurobreath/nbassist/internal/core/domain"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/logger"
)

// Ensure Generator implements the interface.
var _ driven.Generator = (*Generator)(nil)

// Default configuration values.
const (
	DefaultModel = "gpt-4o-mini"

	// DefaultRequestsPerMinute throttles outbound calls. The assistant
	// is interactive; bursts beyond this indicate a loop, not a user.
	DefaultRequestsPerMinute = 20

	maxHistoryTurns = 12
	maxAnswerTokens = 1024
	temperature     = 0.3
)

// Config holds configuration for the OpenAI generator.
type Config struct {
	// APIKey is the API key (required).
	APIKey string

	// BaseURL overrides the API endpoint, e.g. for a local
	// OpenAI-compatible inference server.
	BaseURL string

	// Model is the chat model to use (default: gpt-4o-mini).
	Model string

	// RequestsPerMinute caps outbound request rate (default: 20).
	RequestsPerMinute int
}

// Generator produces answers through the OpenAI chat completions API.
type Generator struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
}

// New creates a generator from config.
func New(cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", domain.ErrGeneratorUnavailable)
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = DefaultRequestsPerMinute
	}

	return &Generator{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}, nil
}

// Generate produces an answer under the composed system prompt.
func (g *Generator) Generate(ctx context.Context, systemPrompt, query string, history []domain.ChatTurn) (*driven.GenerateResult, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	// Keep the tail of long conversations; the system prompt carries
	// the durable context.
	turns := history
	if len(turns) > maxHistoryTurns {
		turns = turns[len(turns)-maxHistoryTurns:]
	}
	for _, turn := range turns {
		role := openai.ChatMessageRoleUser
		if strings.EqualFold(turn.Role, "assistant") {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: query,
	})

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		MaxTokens:   maxAnswerTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion: empty response")
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	logger.Debug("Generated %d chars with %s (tokens: %d)", len(answer), g.model, resp.Usage.TotalTokens)

	return &driven.GenerateResult{Answer: answer}, nil
}

// ModelName returns the configured model.
func (g *Generator) ModelName() string {
	return g.model
}

// Ping validates the backend is reachable.
func (g *Generator) Ping(ctx context.Context) error {
	if _, err := g.client.ListModels(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrGeneratorUnavailable, err)
	}
	return nil
}

// Close releases resources. The underlying HTTP client needs none.
func (g *Generator) Close() error {
	return nil
}

package driven

import (
	"context"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// Generator produces assistant answers from a composed system prompt.
// This is an optional service - when nil, the assistant runs in degraded
// mode and returns routing metadata without generated text.
//
// Implementations may include:
//   - OpenAI (GPT-4o, GPT-4o-mini)
//   - Local inference servers with OpenAI-compatible APIs
type Generator interface {
	// Generate produces an answer for the query under the given system
	// prompt. History carries prior turns of the conversation, oldest
	// first.
	Generate(ctx context.Context, systemPrompt, query string, history []domain.ChatTurn) (*GenerateResult, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateResult is the raw model output before safety validation.
type GenerateResult struct {
	// Answer is the generated text.
	Answer string

	// SourceURLs are URLs the model referenced, in order of first
	// appearance. Each must still pass the registry allowlist before it
	// becomes a citation.
	SourceURLs []string
}

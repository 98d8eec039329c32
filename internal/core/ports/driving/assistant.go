package driving

import (
	"context"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// AssistantService runs the complete assistant turn: sanitise, gate,
// route, compose, generate, validate, cite. It is the only driving port
// that touches the generation backend.
type AssistantService interface {
	// Ask answers one query. Escalating safety levels short-circuit to
	// signposting before any generation. Without a generation backend
	// the response is degraded, not an error.
	Ask(ctx context.Context, query string, qctx domain.QueryContext, history []domain.ChatTurn) (*domain.AssistantResponse, error)
}

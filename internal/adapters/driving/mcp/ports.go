package mcp

import (
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant runs complete gated assistant turns. Optional; without
	// it the ask tool reports the backend as unavailable.
	Assistant driving.AssistantService

	// Router runs the safety gate and classifier.
	Router driving.RouterService

	// Citations builds and validates allowlisted citations.
	Citations driving.CitationService

	// Preference manages the stored preference document. Optional.
	Preference driving.PreferenceService

	// Registry is the evidence source catalogue, exposed as a resource.
	// Optional.
	Registry driven.SourceRegistry
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Router == nil {
		return ErrMissingRouterService
	}
	if p.Citations == nil {
		return ErrMissingCitationService
	}
	// Assistant, Preference and Registry are optional.
	return nil
}

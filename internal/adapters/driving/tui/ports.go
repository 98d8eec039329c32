// Package tui provides an interactive chat terminal interface for
// nbassist. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/neurobreath/nbassist/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant runs complete gated assistant turns.
	Assistant driving.AssistantService

	// Citations formats citation groups for the transcript. Optional;
	// without it citations are omitted from the display.
	Citations driving.CitationService

	// Preference supplies the stored preference document. Optional.
	Preference driving.PreferenceService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	// Citations and Preference are optional.
	return nil
}

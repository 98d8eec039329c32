package driven

import "github.com/neurobreath/nbassist/internal/core/domain"

// SourceRegistry provides lookup over the approved evidence sources.
// The registry is the single authority on which publishers may be cited;
// a URL whose host is not covered by a registered source never becomes
// a citation.
type SourceRegistry interface {
	// GetSourceByID returns the source with the given registry ID.
	// Returns domain.ErrNotFound if the ID is not registered.
	GetSourceByID(id string) (*domain.EvidenceSource, error)

	// ValidateSourceURL checks a URL against the registry allowlist.
	// A URL passes when its host equals, or is a subdomain of, one of
	// the domains registered for the source.
	ValidateSourceURL(sourceID, rawURL string) bool

	// SourcesByTopic returns all sources covering the topic, Tier A
	// before Tier B.
	SourcesByTopic(topic domain.Topic) []domain.EvidenceSource

	// AllSources returns every registered source.
	AllSources() []domain.EvidenceSource
}

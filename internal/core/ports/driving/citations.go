package driving

import "github.com/neurobreath/nbassist/internal/core/domain"

// CitationService mediates between answer text and the evidence source
// registry. Construction is total: a citation that cannot be validated
// is reported as nil, never as a partial value.
type CitationService interface {
	// Create builds a citation for a registered source. Returns nil when
	// the source ID is unknown or the URL fails the registry allowlist.
	Create(sourceID, title, rawURL, excerpt string) *domain.Citation

	// ResolveURL finds the registered source whose domains cover the URL
	// and builds a citation from it. Returns nil when no source covers
	// the URL.
	ResolveURL(rawURL, title string) *domain.Citation

	// Deduplicate removes citations with duplicate URLs, keeping first
	// occurrence order.
	Deduplicate(citations []domain.Citation) []domain.Citation

	// Group partitions citations for display: clinical guidelines,
	// research, and support organisations.
	Group(citations []domain.Citation) domain.CitationGroup

	// Format renders one citation as a display line.
	Format(citation domain.Citation) string

	// FormatGroup renders a grouped citation block with section
	// headings, omitting empty sections.
	FormatGroup(group domain.CitationGroup) string

	// Validate re-checks an existing citation against the registry.
	Validate(citation domain.Citation) domain.CitationValidation
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neurobreath/nbassist/internal/core/domain"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/core/ports/driving"
	"github.com/neurobreath/nbassist/internal/logger"
)

// Ensure CitationService implements the interface.
var _ driving.CitationService = (*CitationService)(nil)

// supportOrgSuffix is appended to Tier B source labels so support
// material never reads as clinical authority.
const supportOrgSuffix = " (support organisation)"

// CitationService mediates between answer text and the source registry.
type CitationService struct {
	registry driven.SourceRegistry
}

// NewCitationService creates a new citation service.
func NewCitationService(registry driven.SourceRegistry) *CitationService {
	return &CitationService{registry: registry}
}

// Create builds a citation for a registered source. A nil return means
// the reference must not be displayed; there is no partially-valid
// citation.
func (s *CitationService) Create(sourceID, title, rawURL, excerpt string) *domain.Citation {
	source, err := s.registry.GetSourceByID(sourceID)
	if err != nil {
		logger.Debug("Citation rejected: unknown source %q", sourceID)
		return nil
	}

	if !s.registry.ValidateSourceURL(sourceID, rawURL) {
		logger.Debug("Citation rejected: URL %q fails allowlist for %q", rawURL, sourceID)
		return nil
	}

	label := source.ShortName
	if label == "" {
		label = source.Name
	}
	if source.Tier == domain.TierB {
		label += supportOrgSuffix
	}

	return &domain.Citation{
		ID:          uuid.NewString(),
		Title:       title,
		URL:         rawURL,
		SourceID:    sourceID,
		SourceLabel: label,
		AccessedAt:  time.Now().UTC(),
		IsExternal:  true,
		Excerpt:     excerpt,
	}
}

// ResolveURL finds the registered source whose domains cover the URL.
// Used for citations proposed by the generation backend, which names
// URLs but not registry IDs.
func (s *CitationService) ResolveURL(rawURL, title string) *domain.Citation {
	for _, source := range s.registry.AllSources() {
		if s.registry.ValidateSourceURL(source.ID, rawURL) {
			return s.Create(source.ID, title, rawURL, "")
		}
	}
	logger.Debug("Citation rejected: no registered source covers %q", rawURL)
	return nil
}

// Deduplicate removes citations with duplicate URLs, keeping first
// occurrence order.
func (s *CitationService) Deduplicate(citations []domain.Citation) []domain.Citation {
	seen := make(map[string]bool, len(citations))
	out := make([]domain.Citation, 0, len(citations))
	for _, c := range citations {
		key := strings.TrimSuffix(strings.ToLower(c.URL), "/")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// Group partitions citations for display. Tier B sources always land in
// Support; Tier A splits on the registered citation type.
func (s *CitationService) Group(citations []domain.Citation) domain.CitationGroup {
	var group domain.CitationGroup
	for _, c := range citations {
		source, err := s.registry.GetSourceByID(c.SourceID)
		if err != nil || source.Tier == domain.TierB {
			group.Support = append(group.Support, c)
			continue
		}
		if source.CitationFormat.Type.IsResearch() {
			group.Research = append(group.Research, c)
			continue
		}
		group.Clinical = append(group.Clinical, c)
	}
	return group
}

// Format renders one citation as a display line.
func (s *CitationService) Format(citation domain.Citation) string {
	line := fmt.Sprintf("%s — %s", citation.SourceLabel, citation.Title)
	if citation.UpdatedAt != "" {
		line += fmt.Sprintf(" (updated %s)", citation.UpdatedAt)
	}
	line += fmt.Sprintf(". %s", citation.URL)
	return line
}

// FormatGroup renders a grouped citation block, omitting empty sections.
func (s *CitationService) FormatGroup(group domain.CitationGroup) string {
	if group.Total() == 0 {
		return ""
	}

	var b strings.Builder
	writeSection := func(heading string, citations []domain.Citation) {
		if len(citations) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(heading + "\n")
		for _, c := range citations {
			b.WriteString("  • " + s.Format(c) + "\n")
		}
	}

	writeSection("Clinical guidance:", group.Clinical)
	writeSection("Research:", group.Research)
	writeSection("Support organisations:", group.Support)
	return b.String()
}

// Validate re-checks an existing citation against the registry. Used
// immediately before display in case the registry changed since the
// citation was constructed.
func (s *CitationService) Validate(citation domain.Citation) domain.CitationValidation {
	var errs []string

	if citation.Title == "" {
		errs = append(errs, "citation has no title")
	}
	if citation.URL == "" {
		errs = append(errs, "citation has no URL")
	}
	if _, err := s.registry.GetSourceByID(citation.SourceID); err != nil {
		errs = append(errs, fmt.Sprintf("source %q is not registered", citation.SourceID))
	} else if !s.registry.ValidateSourceURL(citation.SourceID, citation.URL) {
		errs = append(errs, fmt.Sprintf("URL %q fails the allowlist for source %q", citation.URL, citation.SourceID))
	}

	return domain.CitationValidation{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// Package registry provides the static evidence source registry.
// The table is the single authority on which publishers may be cited.
// Entries are never added without verification: each must be
// authoritative in its domain, correctly tiered, and clearly labelled.
package registry

import (
	"net/url"
	"sort"
	"strings"

	"github.com/neurobreath/nbassist/internal/core/domain"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
)

// Ensure StaticRegistry implements the interface.
var _ driven.SourceRegistry = (*StaticRegistry)(nil)

// KnowledgeBaseID is the internal knowledge base pseudo-source. It can
// be suggested by the router but carries no domains, so it can never
// back an external citation.
const KnowledgeBaseID = "kb"

// StaticRegistry serves the built-in source table.
type StaticRegistry struct {
	byID  map[string]domain.EvidenceSource
	order []string
}

// New creates a registry over the built-in source table.
func New() *StaticRegistry {
	r := &StaticRegistry{byID: make(map[string]domain.EvidenceSource, len(evidenceSources))}
	for _, s := range evidenceSources {
		r.byID[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r
}

// GetSourceByID returns the source with the given registry ID.
func (r *StaticRegistry) GetSourceByID(id string) (*domain.EvidenceSource, error) {
	source, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &source, nil
}

// ValidateSourceURL checks a URL against the source's domain allowlist.
// The host must equal a registered domain or be a subdomain of one;
// anything unparseable fails closed.
func (r *StaticRegistry) ValidateSourceURL(sourceID, rawURL string) bool {
	source, ok := r.byID[sourceID]
	if !ok {
		return false
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return false
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	for _, d := range source.Domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// SourcesByTopic returns all sources covering the topic, Tier A before
// Tier B, stable within each tier.
func (r *StaticRegistry) SourcesByTopic(topic domain.Topic) []domain.EvidenceSource {
	var out []domain.EvidenceSource
	for _, id := range r.order {
		if s := r.byID[id]; s.CoversTopic(topic) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Tier < out[j].Tier
	})
	return out
}

// AllSources returns every registered source in table order.
func (r *StaticRegistry) AllSources() []domain.EvidenceSource {
	out := make([]domain.EvidenceSource, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// ClinicalSources returns every Tier A source.
func (r *StaticRegistry) ClinicalSources() []domain.EvidenceSource {
	var out []domain.EvidenceSource
	for _, id := range r.order {
		if s := r.byID[id]; s.Tier == domain.TierA {
			out = append(out, s)
		}
	}
	return out
}

// SourcesByJurisdiction returns sources homed in the given jurisdiction
// ("UK", "US", "International").
func (r *StaticRegistry) SourcesByJurisdiction(jurisdiction string) []domain.EvidenceSource {
	var out []domain.EvidenceSource
	for _, id := range r.order {
		if s := r.byID[id]; s.CitationFormat.Jurisdiction == jurisdiction {
			out = append(out, s)
		}
	}
	return out
}

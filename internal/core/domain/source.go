package domain

// SourceTier ranks the evidentiary weight of a source.
type SourceTier string

// Source tiers.
const (
	// TierA is governmental health bodies, clinical guidelines and
	// peer-reviewed journals.
	TierA SourceTier = "A"

	// TierB is established charities and support organisations. Tier B
	// sources are always labelled as such when cited, so they never read
	// as clinical authority.
	TierB SourceTier = "B"
)

// IsValid returns true if the tier is recognised.
func (t SourceTier) IsValid() bool {
	return t == TierA || t == TierB
}

// String returns the string representation.
func (t SourceTier) String() string {
	return string(t)
}

// Description returns a human-readable description of the tier.
func (t SourceTier) Description() string {
	switch t {
	case TierA:
		return "Tier A (clinical/peer-reviewed)"
	case TierB:
		return "Tier B (support organisation)"
	default:
		return unknownDescription
	}
}

// CitationType identifies the kind of material a source publishes,
// used when grouping citations for display.
type CitationType string

// Citation types.
const (
	CitationClinicalGuideline CitationType = "clinical_guideline"
	CitationResearch          CitationType = "research"
	CitationJournal           CitationType = "journal"
	CitationSupportOrg        CitationType = "support_org"
	CitationPolicy            CitationType = "policy"
)

// IsResearch returns true for research-style material (journal articles,
// systematic reviews) as opposed to clinical guidance.
func (t CitationType) IsResearch() bool {
	return t == CitationResearch || t == CitationJournal
}

// String returns the string representation.
func (t CitationType) String() string {
	return string(t)
}

// CitationFormat describes how a source's material should be attributed.
type CitationFormat struct {
	// Publisher is the attribution name, e.g. "NICE".
	Publisher string

	// Jurisdiction is the source's home jurisdiction, e.g. "UK",
	// or "International".
	Jurisdiction string

	// Type is the kind of material this source publishes.
	Type CitationType
}

// EvidenceSource is an entry in the external source registry. The gate
// consumes this catalogue; it does not own or edit it.
type EvidenceSource struct {
	// ID is the registry key, e.g. "nhs", "nice", "pubmed".
	ID string

	// Name is the full organisation name.
	Name string

	// ShortName is the display abbreviation, e.g. "NICE".
	ShortName string

	// Tier ranks evidentiary weight.
	Tier SourceTier

	// Domains is the hostname allowlist for URL validation. A citation
	// URL must resolve to one of these hosts (or a subdomain of one).
	Domains []string

	// BaseURL is the source's canonical site.
	BaseURL string

	// Topics lists the topics this source covers.
	Topics []Topic

	// CitationFormat describes attribution for this source.
	CitationFormat CitationFormat

	// Notes is optional registry commentary, not shown to users.
	Notes string
}

// CoversTopic returns true if the source covers the given topic, either
// directly or via general coverage.
func (s EvidenceSource) CoversTopic(topic Topic) bool {
	for _, t := range s.Topics {
		if t == topic || t == TopicGeneral {
			return true
		}
	}
	return false
}

package domain

import "time"

// Citation is a validated evidentiary reference attached to an answer.
// A Citation is only ever constructed through the citation service, which
// rejects anything that fails the source allowlist. A Citation value in
// flight has already passed that check once.
type Citation struct {
	// ID is a unique identifier for this citation instance.
	ID string

	// Title is the human-readable reference title.
	Title string

	// URL is the reference link. It matches the allowlist pattern
	// registered for SourceID.
	URL string

	// SourceID is the registry key of the originating source.
	SourceID string

	// SourceLabel is the display label from the registry, with Tier B
	// sources suffixed as support organisations.
	SourceLabel string

	// UpdatedAt is when the referenced material was last updated, if known.
	UpdatedAt string

	// AccessedAt is when this citation was constructed.
	AccessedAt time.Time

	// IsExternal is always true; this system cites no internal pages.
	IsExternal bool

	// Excerpt is an optional short quotation from the source.
	Excerpt string
}

// CitationGroup buckets citations by evidentiary character for display,
// ordered clinical → research → support.
type CitationGroup struct {
	// Clinical holds Tier A guidance (NHS, NICE, WHO...).
	Clinical []Citation

	// Research holds Tier A research material (PubMed, Cochrane...).
	Research []Citation

	// Support holds Tier B support-organisation material.
	Support []Citation
}

// Total returns the number of citations across all buckets.
func (g CitationGroup) Total() int {
	return len(g.Clinical) + len(g.Research) + len(g.Support)
}

// CitationValidation is the outcome of re-validating a citation
// immediately before display.
type CitationValidation struct {
	// Valid is true when no errors were found.
	Valid bool

	// Errors lists the checks that failed.
	Errors []string
}

package driving

import "github.com/neurobreath/nbassist/internal/core/domain"

// RouterService turns a raw query into a complete routing decision.
// Every step is deterministic: the same query and context always produce
// the same decision.
type RouterService interface {
	// CheckSafety scans the query for safety concerns before any other
	// processing. The result always carries signposting when the level
	// is above none.
	CheckSafety(query string, jurisdiction domain.Jurisdiction) domain.SafetyCheckResult

	// Classify assigns a query type and topic. Safety is not consulted;
	// callers needing the gate use Route.
	Classify(query string, qctx domain.QueryContext) domain.Classification

	// Route runs the full pipeline: safety gate, classification, source
	// suggestion, and priority. An escalating safety level forces
	// emergency routing regardless of query content.
	Route(query string, qctx domain.QueryContext) domain.RoutingDecision

	// NeedsLLM reports whether the decision requires text generation.
	// Emergency and navigation turns are served without a model.
	NeedsLLM(decision domain.RoutingDecision) bool

	// EmergencyResponse builds the complete escalate_only answer for a
	// failed safety check: signposting plus a short supportive line,
	// never generated content.
	EmergencyResponse(check domain.SafetyCheckResult) string
}

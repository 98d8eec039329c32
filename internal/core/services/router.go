package services

import (
	"strings"

	"github.com/neurobreath/nbassist/internal/core/domain"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/core/ports/driving"
	"github.com/neurobreath/nbassist/internal/logger"
)

// Ensure RouterService implements the interface.
var _ driving.RouterService = (*RouterService)(nil)

// suggestedSources maps query type and jurisdiction to registry source
// IDs in preference order. "kb" is the internal knowledge base
// pseudo-source and always comes last.
var suggestedSources = map[domain.QueryType]map[domain.Jurisdiction][]string{
	domain.QueryHealthEvidence: {
		domain.JurisdictionUK: {"nhs", "nice", "pubmed", "kb"},
		domain.JurisdictionUS: {"pubmed", "medlineplus", "cdc", "kb"},
		domain.JurisdictionEU: {"who", "pubmed", "kb"},
	},
	domain.QueryNavigation: {
		domain.JurisdictionUK: {"kb"},
		domain.JurisdictionUS: {"kb"},
		domain.JurisdictionEU: {"kb"},
	},
	domain.QueryToolHelp: {
		domain.JurisdictionUK: {"kb"},
		domain.JurisdictionUS: {"kb"},
		domain.JurisdictionEU: {"kb"},
	},
	domain.QueryGeneralInfo: {
		domain.JurisdictionUK: {"nhs", "kb"},
		domain.JurisdictionUS: {"medlineplus", "kb"},
		domain.JurisdictionEU: {"who", "kb"},
	},
}

// RouterService decides how each query is handled: safety gate first,
// then classification, source suggestion, and priority.
type RouterService struct {
	matcher driven.KeywordMatcher
}

// NewRouterService creates a new router service.
func NewRouterService(matcher driven.KeywordMatcher) *RouterService {
	return &RouterService{matcher: matcher}
}

// CheckSafety scans the query for safeguarding concerns. The safety gate
// runs before classification on every query without exception.
func (s *RouterService) CheckSafety(query string, jurisdiction domain.Jurisdiction) domain.SafetyCheckResult {
	if !jurisdiction.IsValid() {
		jurisdiction = domain.JurisdictionUK
	}

	level, keywords := s.matcher.DetectConcerns(query)
	signposting := s.matcher.CrisisSignposting(level, jurisdiction)

	result := domain.NewSafetyCheckResult(level, keywords, signposting)
	if !result.Safe {
		logger.Warn("Safety gate: level=%s keywords=%d", result.Level, len(result.Keywords))
	}
	return result
}

// Route runs the full routing pipeline. An escalating safety level
// short-circuits: the decision carries emergency routing and no
// classification is attempted.
func (s *RouterService) Route(query string, qctx domain.QueryContext) domain.RoutingDecision {
	jurisdiction := qctx.EffectiveJurisdiction()
	check := s.CheckSafety(query, jurisdiction)

	if check.Action == domain.ActionEscalateOnly {
		return domain.RoutingDecision{
			QueryType:        domain.QueryEmergency,
			RequiresEvidence: false,
			SafetyCheck:      check,
			SuggestedSources: nil,
			Priority:         domain.PriorityImmediate,
		}
	}

	classification := s.Classify(query, qctx)

	priority := domain.PriorityNormal
	if check.Level == domain.SafetyCrisis || check.Level == domain.SafetyUrgent {
		priority = domain.PriorityHigh
	}

	decision := domain.RoutingDecision{
		QueryType:        classification.QueryType,
		RequiresEvidence: classification.QueryType == domain.QueryHealthEvidence,
		Topic:            classification.Topic,
		SafetyCheck:      check,
		SuggestedSources: sourcesFor(classification.QueryType, jurisdiction),
		Priority:         priority,
	}

	logger.Debug("Routed query: type=%s topic=%s priority=%s sources=%s",
		decision.QueryType, decision.Topic, decision.Priority,
		strings.Join(decision.SuggestedSources, ","))
	return decision
}

// NeedsLLM reports whether the decision requires text generation.
// Emergency turns return fixed signposting and navigation turns are
// answered from the site map, so neither needs a model.
func (s *RouterService) NeedsLLM(decision domain.RoutingDecision) bool {
	switch decision.QueryType {
	case domain.QueryEmergency, domain.QueryNavigation:
		return false
	default:
		return true
	}
}

// EmergencyResponse builds the complete escalate-only answer: a short
// supportive line followed by the jurisdiction signposting. No part of
// it is generated.
func (s *RouterService) EmergencyResponse(check domain.SafetyCheckResult) string {
	var b strings.Builder
	b.WriteString("I'm really glad you reached out. What you're describing needs support from a real person, right now, and that matters more than anything I can tell you.\n\n")
	b.WriteString(check.Signposting)
	return b.String()
}

// sourcesFor returns a copy of the suggested source list so callers can
// never mutate the shared table.
func sourcesFor(queryType domain.QueryType, jurisdiction domain.Jurisdiction) []string {
	byJurisdiction, ok := suggestedSources[queryType]
	if !ok {
		return nil
	}
	sources, ok := byJurisdiction[jurisdiction]
	if !ok {
		sources = byJurisdiction[domain.JurisdictionUK]
	}
	out := make([]string, len(sources))
	copy(out, sources)
	return out
}

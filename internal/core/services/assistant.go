package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/neurobreath/nbassist/internal/core/domain"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/core/ports/driving"
	"github.com/neurobreath/nbassist/internal/logger"
)

// Ensure AssistantService implements the interface.
var _ driving.AssistantService = (*AssistantService)(nil)

// degradedNotice is shown instead of a generated answer when no
// generation backend is configured.
const degradedNotice = "I can't generate a full answer right now, but here is where this question would be routed:"

// navigationNotice answers navigation questions without a model.
const navigationNotice = "This looks like a question about finding your way around the site. " +
	"Use the site menu or the search box at the top of any page; every tool and topic page is listed there."

// AssistantService runs the complete assistant turn. The generator is
// optional; everything else is required.
type AssistantService struct {
	router      driving.RouterService
	prompts     driving.PromptService
	citations   driving.CitationService
	preferences driving.PreferenceService
	checker     *ResponseChecker
	generator   driven.Generator
}

// NewAssistantService creates a new assistant service. Pass a nil
// generator to run in degraded mode.
func NewAssistantService(
	router driving.RouterService,
	prompts driving.PromptService,
	citations driving.CitationService,
	preferences driving.PreferenceService,
	generator driven.Generator,
) *AssistantService {
	return &AssistantService{
		router:      router,
		prompts:     prompts,
		citations:   citations,
		preferences: preferences,
		checker:     NewResponseChecker(),
		generator:   generator,
	}
}

// Ask answers one query end to end: sanitise, gate, route, compose,
// generate, validate, cite. The safety gate result always wins over
// anything the model produces.
func (s *AssistantService) Ask(ctx context.Context, query string, qctx domain.QueryContext, history []domain.ChatTurn) (*domain.AssistantResponse, error) {
	query = s.checker.SanitizeInput(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}

	logger.Debug("Handling query: %s", logger.Redact(query))

	prefs := s.preferences.Load()
	qctx = fillFromPreferences(qctx, prefs)

	decision := s.router.Route(query, qctx)

	if decision.SafetyCheck.Action == domain.ActionEscalateOnly {
		return &domain.AssistantResponse{
			Answer:  s.router.EmergencyResponse(decision.SafetyCheck),
			Routing: decision,
		}, nil
	}

	if !s.router.NeedsLLM(decision) {
		return &domain.AssistantResponse{
			Answer:  s.checker.WrapAnswerWithSafety(navigationNotice, decision),
			Routing: decision,
		}, nil
	}

	if s.generator == nil {
		return s.degradedResponse(decision), nil
	}

	systemPrompt, err := s.prompts.Compose(qctx.Role, decision, prefs, qctx)
	if err != nil {
		return nil, fmt.Errorf("compose prompt: %w", err)
	}

	result, err := s.generator.Generate(ctx, systemPrompt, query, history)
	if err != nil {
		logger.Warn("Generation failed, degrading: %v", err)
		return s.degradedResponse(decision), nil
	}

	validation := s.checker.ValidateResponseSafety(result.Answer, decision)
	if !validation.Valid {
		logger.Warn("Response blocked: %s", strings.Join(validation.Errors, "; "))
		return nil, fmt.Errorf("%w: %s", domain.ErrResponseBlocked, strings.Join(validation.Errors, "; "))
	}

	answer := s.checker.WrapAnswerWithSafety(result.Answer, decision)

	return &domain.AssistantResponse{
		Answer:    answer,
		Routing:   decision,
		Citations: s.collectCitations(result),
		Warnings:  validation.Warnings,
	}, nil
}

// degradedResponse carries routing metadata and signposting when no
// generated answer is available.
func (s *AssistantService) degradedResponse(decision domain.RoutingDecision) *domain.AssistantResponse {
	var b strings.Builder
	b.WriteString(degradedNotice)
	b.WriteString(fmt.Sprintf("\n\n%s", decision.QueryType.Description()))
	if decision.Topic != "" && decision.Topic != domain.TopicGeneral {
		b.WriteString(fmt.Sprintf("\nTopic: %s", decision.Topic))
	}
	if len(decision.SuggestedSources) > 0 {
		b.WriteString(fmt.Sprintf("\nSuggested sources: %s", strings.Join(decision.SuggestedSources, ", ")))
	}

	return &domain.AssistantResponse{
		Answer:   s.checker.WrapAnswerWithSafety(b.String(), decision),
		Routing:  decision,
		Degraded: true,
	}
}

// collectCitations resolves URLs the model referenced, in the answer
// body or its proposed source list, into validated citations. Anything
// the registry does not cover is silently dropped.
func (s *AssistantService) collectCitations(result *driven.GenerateResult) domain.CitationGroup {
	urls := s.checker.ExtractCitationURLs(result.Answer)
	urls = append(urls, result.SourceURLs...)

	var citations []domain.Citation
	for _, u := range urls {
		if c := s.citations.ResolveURL(u, u); c != nil {
			citations = append(citations, *c)
		}
	}
	return s.citations.Group(s.citations.Deduplicate(citations))
}

// fillFromPreferences defaults unset context fields from the stored
// preferences: caller-supplied context always wins.
func fillFromPreferences(qctx domain.QueryContext, prefs domain.UserPreferences) domain.QueryContext {
	if !qctx.Jurisdiction.IsValid() {
		qctx.Jurisdiction = prefs.Regional.Jurisdiction
	}
	if !qctx.Role.IsValid() {
		qctx.Role = prefs.AI.PreferredRole
	}
	return qctx
}

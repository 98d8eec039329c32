package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

func newTestAssistant(generator *stubGenerator) (*AssistantService, *PreferenceService) {
	registry := newFakeRegistry()
	router := NewRouterService(&fakeMatcher{})
	prompts := NewPromptService(nil)
	citations := NewCitationService(registry)
	preferences := NewPreferenceService(newMemKVStore())

	if generator == nil {
		return NewAssistantService(router, prompts, citations, preferences, nil), preferences
	}
	return NewAssistantService(router, prompts, citations, preferences, generator), preferences
}

// TestAssistantService_Ask_EmergencyShortCircuit tests an escalating
// query never reaches the generation backend.
func TestAssistantService_Ask_EmergencyShortCircuit(t *testing.T) {
	generator := &stubGenerator{answer: "should never appear"}
	svc, _ := newTestAssistant(generator)

	response, err := svc.Ask(context.Background(), "I want to kill myself", domain.QueryContext{Jurisdiction: domain.JurisdictionUK}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, generator.calls)
	assert.Equal(t, domain.QueryEmergency, response.Routing.QueryType)
	assert.Contains(t, response.Answer, "SIGNPOST:emergency:UK")
	assert.NotContains(t, response.Answer, "should never appear")
	assert.False(t, response.Degraded)
	assert.Zero(t, response.Citations.Total())
}

// TestAssistantService_Ask_NavigationWithoutModel tests navigation
// queries are answered without generation.
func TestAssistantService_Ask_NavigationWithoutModel(t *testing.T) {
	generator := &stubGenerator{answer: "should never appear"}
	svc, _ := newTestAssistant(generator)

	response, err := svc.Ask(context.Background(), "where is the breathing page", domain.QueryContext{}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, generator.calls)
	assert.Equal(t, domain.QueryNavigation, response.Routing.QueryType)
	assert.Contains(t, response.Answer, "site menu")
}

// TestAssistantService_Ask_FullPipeline tests a clean evidence query
// flows through generation, validation and citation resolution.
func TestAssistantService_Ask_FullPipeline(t *testing.T) {
	generator := &stubGenerator{
		answer:     "NICE recommends structured routines: https://nice.org.uk/NG87",
		sourceURLs: []string{"https://nhs.uk/conditions/adhd/", "https://example.com/blog"},
	}
	svc, _ := newTestAssistant(generator)

	history := []domain.ChatTurn{{Role: "user", Content: "hi"}}
	response, err := svc.Ask(context.Background(), "strategies for managing ADHD focus", domain.QueryContext{
		Jurisdiction: domain.JurisdictionUK,
		Role:         domain.RoleCoach,
	}, history)
	require.NoError(t, err)

	assert.Equal(t, 1, generator.calls)
	assert.Contains(t, generator.lastSystem, "wellbeing coach")
	assert.Contains(t, generator.lastSystem, "Safety rules")
	assert.Equal(t, "strategies for managing ADHD focus", generator.lastQuery)
	require.Len(t, generator.lastHistories, 1)
	assert.Equal(t, history, generator.lastHistories[0])

	assert.Contains(t, response.Answer, "NICE recommends")
	assert.Contains(t, response.Answer, "educational purposes")
	assert.False(t, response.Degraded)

	// nice.org.uk and nhs.uk resolve; example.com is dropped silently.
	assert.Equal(t, 2, response.Citations.Total())
	assert.Len(t, response.Citations.Clinical, 2)
}

// TestAssistantService_Ask_DegradedWithoutGenerator tests a nil backend
// degrades instead of erroring.
func TestAssistantService_Ask_DegradedWithoutGenerator(t *testing.T) {
	svc, _ := newTestAssistant(nil)

	response, err := svc.Ask(context.Background(), "strategies for managing ADHD focus", domain.QueryContext{Jurisdiction: domain.JurisdictionUK}, nil)
	require.NoError(t, err)

	assert.True(t, response.Degraded)
	assert.Contains(t, response.Answer, "Suggested sources: nhs, nice, pubmed, kb")
	assert.Equal(t, domain.QueryHealthEvidence, response.Routing.QueryType)
}

// TestAssistantService_Ask_DegradesOnGeneratorError tests backend
// failure degrades instead of surfacing the error.
func TestAssistantService_Ask_DegradesOnGeneratorError(t *testing.T) {
	generator := &stubGenerator{err: domain.ErrGeneratorUnavailable}
	svc, _ := newTestAssistant(generator)

	response, err := svc.Ask(context.Background(), "is therapy effective for anxiety", domain.QueryContext{}, nil)
	require.NoError(t, err)

	assert.True(t, response.Degraded)
	assert.Equal(t, 1, generator.calls)
}

// TestAssistantService_Ask_BlocksUnsafeResponse tests diagnosis language
// from the backend is never displayed.
func TestAssistantService_Ask_BlocksUnsafeResponse(t *testing.T) {
	generator := &stubGenerator{answer: "It sounds like you have ADHD."}
	svc, _ := newTestAssistant(generator)

	_, err := svc.Ask(context.Background(), "strategies for managing ADHD focus", domain.QueryContext{}, nil)
	assert.ErrorIs(t, err, domain.ErrResponseBlocked)
}

// TestAssistantService_Ask_WrapsCrisisAnswer tests answerable crisis
// queries get signposting prepended to the generated answer.
func TestAssistantService_Ask_WrapsCrisisAnswer(t *testing.T) {
	generator := &stubGenerator{answer: "Gentle routines can help: https://nhs.uk/mental-health/"}
	svc, _ := newTestAssistant(generator)

	response, err := svc.Ask(context.Background(), "I feel hopeless, can therapy help with depression", domain.QueryContext{Jurisdiction: domain.JurisdictionUK}, nil)
	require.NoError(t, err)

	assert.Contains(t, response.Answer, "SIGNPOST:crisis:UK")
	assert.Contains(t, response.Answer, "Gentle routines")
	assert.Equal(t, domain.PriorityHigh, response.Routing.Priority)
}

// TestAssistantService_Ask_EmptyQuery tests whitespace-only queries are
// rejected before the gate.
func TestAssistantService_Ask_EmptyQuery(t *testing.T) {
	svc, _ := newTestAssistant(nil)

	_, err := svc.Ask(context.Background(), "   \n\t ", domain.QueryContext{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestAssistantService_Ask_PreferencesFillContext tests unset context
// fields default from the stored preferences.
func TestAssistantService_Ask_PreferencesFillContext(t *testing.T) {
	generator := &stubGenerator{answer: "Plain answer with a source: https://pubmed.ncbi.nlm.nih.gov/1/"}
	svc, preferences := newTestAssistant(generator)

	_, err := preferences.Update(domain.SectionRegional, map[string]any{"jurisdiction": "US"})
	require.NoError(t, err)
	_, err = preferences.Update(domain.SectionAI, map[string]any{"preferredRole": "blog"})
	require.NoError(t, err)

	response, err := svc.Ask(context.Background(), "evidence on sleep and ADHD", domain.QueryContext{}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"pubmed", "medlineplus", "cdc", "kb"}, response.Routing.SuggestedSources)
	assert.Contains(t, generator.lastSystem, "research and education assistant")
}

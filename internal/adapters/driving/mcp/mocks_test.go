package mcp

import (
	"context"
	"encoding/json"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// mockAssistantService is a mock implementation of driving.AssistantService.
type mockAssistantService struct {
	resp *domain.AssistantResponse
	err  error
}

func (m *mockAssistantService) Ask(
	_ context.Context,
	_ string,
	_ domain.QueryContext,
	_ []domain.ChatTurn,
) (*domain.AssistantResponse, error) {
	return m.resp, m.err
}

// mockRouterService is a mock implementation of driving.RouterService.
type mockRouterService struct {
	decision  domain.RoutingDecision
	needsLLM  bool
	emergency string
}

func (m *mockRouterService) CheckSafety(_ string, _ domain.Jurisdiction) domain.SafetyCheckResult {
	return m.decision.SafetyCheck
}

func (m *mockRouterService) Classify(_ string, _ domain.QueryContext) domain.Classification {
	return domain.Classification{QueryType: m.decision.QueryType, Topic: m.decision.Topic}
}

func (m *mockRouterService) Route(_ string, _ domain.QueryContext) domain.RoutingDecision {
	return m.decision
}

func (m *mockRouterService) NeedsLLM(_ domain.RoutingDecision) bool {
	return m.needsLLM
}

func (m *mockRouterService) EmergencyResponse(_ domain.SafetyCheckResult) string {
	return m.emergency
}

// mockCitationService is a mock implementation of driving.CitationService.
type mockCitationService struct {
	citation *domain.Citation
}

func (m *mockCitationService) Create(_, _, _, _ string) *domain.Citation {
	return m.citation
}

func (m *mockCitationService) ResolveURL(_, _ string) *domain.Citation {
	return m.citation
}

func (m *mockCitationService) Deduplicate(citations []domain.Citation) []domain.Citation {
	return citations
}

func (m *mockCitationService) Group(citations []domain.Citation) domain.CitationGroup {
	return domain.CitationGroup{Clinical: citations}
}

func (m *mockCitationService) Format(c domain.Citation) string {
	return c.SourceLabel + " — " + c.URL
}

func (m *mockCitationService) FormatGroup(_ domain.CitationGroup) string {
	return "grouped"
}

func (m *mockCitationService) Validate(_ domain.Citation) domain.CitationValidation {
	return domain.CitationValidation{Valid: m.citation != nil}
}

// mockPreferenceService is a mock implementation of driving.PreferenceService.
type mockPreferenceService struct {
	prefs     domain.UserPreferences
	updateErr error
}

func (m *mockPreferenceService) Load() domain.UserPreferences {
	return m.prefs
}

func (m *mockPreferenceService) Save(_ domain.UserPreferences) bool {
	return true
}

func (m *mockPreferenceService) Update(_ domain.PreferenceSection, _ map[string]any) (domain.UserPreferences, error) {
	return m.prefs, m.updateErr
}

func (m *mockPreferenceService) Reset() domain.UserPreferences {
	return m.prefs
}

func (m *mockPreferenceService) Export() ([]byte, error) {
	return json.Marshal(m.prefs)
}

func (m *mockPreferenceService) Import(data []byte) (domain.UserPreferences, error) {
	var prefs domain.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return domain.UserPreferences{}, err
	}
	return prefs, nil
}

// mockRegistry is a mock implementation of driven.SourceRegistry.
type mockRegistry struct {
	sources []domain.EvidenceSource
}

func (m *mockRegistry) GetSourceByID(id string) (*domain.EvidenceSource, error) {
	for i := range m.sources {
		if m.sources[i].ID == id {
			return &m.sources[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistry) ValidateSourceURL(_, _ string) bool {
	return true
}

func (m *mockRegistry) SourcesByTopic(_ domain.Topic) []domain.EvidenceSource {
	return m.sources
}

func (m *mockRegistry) AllSources() []domain.EvidenceSource {
	return m.sources
}

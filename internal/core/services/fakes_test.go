package services

import (
	"context"
	"strings"

	"github.com/neurobreath/nbassist/internal/core/domain"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
)

// fakeMatcher is a minimal keyword matcher for gate tests. Keyword
// coverage is deliberately tiny; precedence and signposting behaviour
// are what these tests exercise.
type fakeMatcher struct{}

var _ driven.KeywordMatcher = (*fakeMatcher)(nil)

func (m *fakeMatcher) DetectConcerns(text string) (domain.SafetyLevel, []string) {
	lowered := strings.ToLower(text)
	levels := []struct {
		level    domain.SafetyLevel
		keywords []string
	}{
		{domain.SafetyEmergency, []string{"kill myself", "end my life"}},
		{domain.SafetySafeguarding, []string{"being abused"}},
		{domain.SafetyCrisis, []string{"self harm", "hopeless"}},
		{domain.SafetyUrgent, []string{"panic attack", "can't cope"}},
	}
	for _, entry := range levels {
		var matched []string
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			return entry.level, matched
		}
	}
	return domain.SafetyNone, nil
}

func (m *fakeMatcher) CrisisSignposting(level domain.SafetyLevel, jurisdiction domain.Jurisdiction) string {
	if level == domain.SafetyNone {
		return ""
	}
	return "SIGNPOST:" + level.String() + ":" + jurisdiction.String()
}

// fakeRegistry holds a small source table sufficient for citation and
// routing tests.
type fakeRegistry struct {
	sources []domain.EvidenceSource
}

var _ driven.SourceRegistry = (*fakeRegistry)(nil)

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{sources: []domain.EvidenceSource{
		{
			ID: "nhs", Name: "National Health Service", ShortName: "NHS",
			Tier: domain.TierA, Domains: []string{"nhs.uk"},
			Topics:         []Topic{domain.TopicGeneral},
			CitationFormat: domain.CitationFormat{Publisher: "NHS", Type: domain.CitationClinicalGuideline},
		},
		{
			ID: "nice", Name: "National Institute for Health and Care Excellence", ShortName: "NICE",
			Tier: domain.TierA, Domains: []string{"nice.org.uk"},
			Topics:         []Topic{domain.TopicADHD, domain.TopicAnxiety, domain.TopicDepression},
			CitationFormat: domain.CitationFormat{Publisher: "NICE", Type: domain.CitationClinicalGuideline},
		},
		{
			ID: "pubmed", Name: "PubMed", ShortName: "PubMed",
			Tier: domain.TierA, Domains: []string{"pubmed.ncbi.nlm.nih.gov"},
			Topics:         []Topic{domain.TopicGeneral},
			CitationFormat: domain.CitationFormat{Publisher: "PubMed", Type: domain.CitationResearch},
		},
		{
			ID: "adhd_foundation", Name: "ADHD Foundation", ShortName: "ADHD Foundation",
			Tier: domain.TierB, Domains: []string{"adhdfoundation.org.uk"},
			Topics:         []Topic{domain.TopicADHD},
			CitationFormat: domain.CitationFormat{Publisher: "ADHD Foundation", Type: domain.CitationSupportOrg},
		},
	}}
}

// Topic aliased for table brevity in newFakeRegistry.
type Topic = domain.Topic

func (r *fakeRegistry) GetSourceByID(id string) (*domain.EvidenceSource, error) {
	for i := range r.sources {
		if r.sources[i].ID == id {
			return &r.sources[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRegistry) ValidateSourceURL(sourceID, rawURL string) bool {
	source, err := r.GetSourceByID(sourceID)
	if err != nil {
		return false
	}
	for _, d := range source.Domains {
		if strings.Contains(rawURL, "://"+d+"/") || strings.Contains(rawURL, "."+d+"/") ||
			strings.HasSuffix(rawURL, "://"+d) || strings.Contains(rawURL, "://"+d+"?") {
			return true
		}
	}
	return false
}

func (r *fakeRegistry) SourcesByTopic(topic domain.Topic) []domain.EvidenceSource {
	var out []domain.EvidenceSource
	for _, s := range r.sources {
		if s.CoversTopic(topic) {
			out = append(out, s)
		}
	}
	return out
}

func (r *fakeRegistry) AllSources() []domain.EvidenceSource {
	return r.sources
}

// memKVStore is an in-memory KVStore for preference tests.
type memKVStore struct {
	data    map[string][]byte
	failSet bool
}

var _ driven.KVStore = (*memKVStore)(nil)

func newMemKVStore() *memKVStore {
	return &memKVStore{data: make(map[string][]byte)}
}

func (s *memKVStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *memKVStore) Set(key string, value []byte) error {
	if s.failSet {
		return domain.ErrStorageFailure
	}
	s.data[key] = value
	return nil
}

func (s *memKVStore) Delete(key string) error {
	delete(s.data, key)
	return nil
}

func (s *memKVStore) Close() error { return nil }

// stubGenerator returns a canned answer and records the prompts it saw.
type stubGenerator struct {
	answer     string
	sourceURLs []string
	err        error

	calls         int
	lastSystem    string
	lastQuery     string
	lastHistories [][]domain.ChatTurn
}

var _ driven.Generator = (*stubGenerator)(nil)

func (g *stubGenerator) Generate(_ context.Context, systemPrompt, query string, history []domain.ChatTurn) (*driven.GenerateResult, error) {
	g.calls++
	g.lastSystem = systemPrompt
	g.lastQuery = query
	g.lastHistories = append(g.lastHistories, history)
	if g.err != nil {
		return nil, g.err
	}
	return &driven.GenerateResult{Answer: g.answer, SourceURLs: g.sourceURLs}, nil
}

func (g *stubGenerator) ModelName() string          { return "stub" }
func (g *stubGenerator) Ping(context.Context) error { return nil }
func (g *stubGenerator) Close() error               { return nil }

// fakeTemplates serves overrides from a map; missing names error.
type fakeTemplates struct {
	templates map[string]string
	reloads   int
}

var _ driven.TemplateStore = (*fakeTemplates)(nil)

func (t *fakeTemplates) Load(name string) (string, error) {
	if v, ok := t.templates[name]; ok {
		return v, nil
	}
	return "", domain.ErrNotFound
}

func (t *fakeTemplates) Reload() { t.reloads++ }

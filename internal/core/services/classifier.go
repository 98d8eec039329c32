package services

import (
	"strings"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// Classification keyword tables. Matching is case-insensitive substring
// matching over the lowercased query; precedence is navigation, tool
// help, health evidence, then the general fallback. The tables are
// deliberately small: anything ambiguous falls through to general_info
// rather than guessing.
var (
	navigationKeywords = []string{
		"where is",
		"where can i find",
		"where do i find",
		"how do i get to",
		"take me to",
		"go to the",
		"navigate to",
		"show me the page",
		"which page",
		"link to",
	}

	toolHelpKeywords = []string{
		"how do i use",
		"how to use",
		"how does the",
		"how do i start",
		"how do i turn on",
		"how do i change",
		"doesn't work",
		"not working",
		"settings",
		"timer",
		"tracker",
		"breathing exercise",
	}

	healthEvidenceKeywords = []string{
		"evidence",
		"research",
		"studies",
		"study",
		"effective",
		"symptom",
		"diagnos",
		"treatment",
		"therapy",
		"medication",
		"strategies for",
		"strategy for",
		"managing",
		"manage",
		"help with",
		"is it true",
		"guideline",
	}
)

// topicKeywords maps each topic to the phrases that select it. Ordered
// so the first topic whose keyword appears wins; more specific topics
// come before broad ones (stress last among the moods).
var topicKeywords = []struct {
	topic    domain.Topic
	keywords []string
}{
	{domain.TopicADHD, []string{"adhd", "attention deficit", "hyperactiv", "focus", "concentration", "impulsiv"}},
	{domain.TopicAutism, []string{"autism", "autistic", "asd", "sensory overload", "stimming", "meltdown"}},
	{domain.TopicDyslexia, []string{"dyslexia", "dyslexic", "reading difficult", "spelling difficult"}},
	{domain.TopicBipolar, []string{"bipolar", "manic", "mania", "mood swings"}},
	{domain.TopicDepression, []string{"depress", "low mood", "feeling down", "no motivation"}},
	{domain.TopicAnxiety, []string{"anxiety", "anxious", "panic", "worry", "worried"}},
	{domain.TopicBreathing, []string{"breathing", "breathe", "breath work", "box breathing"}},
	{domain.TopicSleep, []string{"sleep", "insomnia", "can't fall asleep", "waking up at night"}},
	{domain.TopicBurnout, []string{"burnout", "burnt out", "burned out", "exhausted"}},
	{domain.TopicStress, []string{"stress", "overwhelm", "pressure"}},
}

// Classify assigns a query type and topic without consulting the safety
// gate. The same query always classifies the same way.
func (s *RouterService) Classify(query string, qctx domain.QueryContext) domain.Classification {
	lowered := strings.ToLower(query)

	return domain.Classification{
		QueryType: classifyType(lowered),
		Topic:     classifyTopic(lowered),
	}
}

func classifyType(lowered string) domain.QueryType {
	if matchesAny(lowered, navigationKeywords) {
		return domain.QueryNavigation
	}
	if matchesAny(lowered, toolHelpKeywords) {
		return domain.QueryToolHelp
	}
	if matchesAny(lowered, healthEvidenceKeywords) {
		return domain.QueryHealthEvidence
	}
	// A named health topic makes the query evidentiary even without an
	// explicit evidence keyword.
	if topic := classifyTopic(lowered); topic != domain.TopicGeneral {
		return domain.QueryHealthEvidence
	}
	return domain.QueryGeneralInfo
}

func classifyTopic(lowered string) domain.Topic {
	for _, entry := range topicKeywords {
		if matchesAny(lowered, entry.keywords) {
			return entry.topic
		}
	}
	return domain.TopicGeneral
}

func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

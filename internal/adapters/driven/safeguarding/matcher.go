// Package safeguarding provides the keyword matcher behind the safety
// gate. It holds the crisis vocabulary and the jurisdiction signposting
// blocks; the gate's precedence rules live in core.
package safeguarding

import (
	"strings"

	"github.com/neurobreath/nbassist/internal/core/domain"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
)

// Ensure Matcher implements the interface.
var _ driven.KeywordMatcher = (*Matcher)(nil)

// Keyword lists per level. Matching is case-insensitive substring
// matching; false positives here cost a signposting block, false
// negatives cost much more, so the lists err broad.
var (
	emergencyKeywords = []string{
		"suicide",
		"kill myself",
		"end my life",
		"overdose",
		"self-harm crisis",
		"immediate danger",
		"life threatening",
		"chest pain",
		"severe bleeding",
		"can't breathe",
		"unconscious",
	}

	safeguardingKeywords = []string{
		"abuse",
		"being hurt",
		"unsafe at home",
		"adult hurting me",
		"someone touching me",
		"scared of",
		"child protection",
		"domestic violence",
		"neglect",
	}

	crisisKeywords = []string{
		"self-harm",
		"self harm",
		"hurting myself",
		"suicidal thoughts",
		"want to die",
		"hopeless",
		"no point",
		"better off dead",
	}

	urgentKeywords = []string{
		"very depressed",
		"can't cope",
		"urgent help",
		"crisis",
		"breakdown",
		"severe anxiety",
		"panic attack lasting hours",
		"not eating",
		"can't sleep for days",
	}
)

// detectionOrder fixes level precedence: emergency outranks
// safeguarding outranks crisis outranks urgent. "crisis" as a word
// appears in both the emergency and urgent lists' territory, so order
// matters.
var detectionOrder = []struct {
	level    domain.SafetyLevel
	keywords []string
}{
	{domain.SafetyEmergency, emergencyKeywords},
	{domain.SafetySafeguarding, safeguardingKeywords},
	{domain.SafetyCrisis, crisisKeywords},
	{domain.SafetyUrgent, urgentKeywords},
}

// Matcher is the built-in keyword matcher.
type Matcher struct{}

// New creates a keyword matcher over the built-in lists.
func New() *Matcher {
	return &Matcher{}
}

// DetectConcerns returns the highest concern level present in the text
// together with every keyword that matched at that level.
func (m *Matcher) DetectConcerns(text string) (domain.SafetyLevel, []string) {
	lowered := strings.ToLower(text)

	for _, entry := range detectionOrder {
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

// CrisisSignposting returns the signposting block for the level and
// jurisdiction. An unknown jurisdiction falls back to UK rather than
// returning nothing.
func (m *Matcher) CrisisSignposting(level domain.SafetyLevel, jurisdiction domain.Jurisdiction) string {
	if level == domain.SafetyNone || !level.IsValid() {
		return ""
	}

	signpost, ok := signposts[jurisdiction]
	if !ok {
		signpost = signposts[domain.JurisdictionUK]
	}

	var b strings.Builder
	b.WriteString("Immediate support:\n\n")

	switch level {
	case domain.SafetyEmergency:
		b.WriteString(signpost.emergency.guidance)
		b.WriteString("\n\n")
		b.WriteString(signpost.emergency.label + ": " + signpost.emergency.number)
	case domain.SafetyUrgent:
		b.WriteString(signpost.urgent.guidance)
		b.WriteString("\n\n")
		b.WriteString(signpost.urgent.label + ": " + signpost.urgent.number)
	case domain.SafetyCrisis:
		b.WriteString(signpost.crisis.guidance)
		if signpost.crisis.number != "" {
			b.WriteString("\n\n" + signpost.crisis.label + ": " + signpost.crisis.number)
		}
		if signpost.crisis.url != "" {
			b.WriteString("\nMore info: " + signpost.crisis.url)
		}
	case domain.SafetySafeguarding:
		// Not every jurisdiction has a dedicated safeguarding route;
		// emergency services are always a correct answer.
		if signpost.safeguarding.guidance != "" {
			b.WriteString(signpost.safeguarding.guidance)
			if signpost.safeguarding.url != "" {
				b.WriteString("\nMore info: " + signpost.safeguarding.url)
			}
		} else {
			b.WriteString(signpost.emergency.guidance)
			b.WriteString("\n\n")
			b.WriteString(signpost.emergency.label + ": " + signpost.emergency.number)
		}
	}

	return b.String()
}

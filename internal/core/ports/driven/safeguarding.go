package driven

import "github.com/neurobreath/nbassist/internal/core/domain"

// KeywordMatcher detects safety concerns in free text and supplies
// jurisdiction-appropriate crisis signposting. Implementations hold the
// keyword lists; core holds the precedence rules.
type KeywordMatcher interface {
	// DetectConcerns scans text and returns the highest concern level
	// present together with every keyword that matched at that level.
	// Returns domain.SafetyNone with no keywords for clean text.
	// Matching is case-insensitive; detection order is
	// emergency, safeguarding, crisis, urgent.
	DetectConcerns(text string) (domain.SafetyLevel, []string)

	// CrisisSignposting returns the signposting block for the level and
	// jurisdiction. Returns the empty string for domain.SafetyNone.
	CrisisSignposting(level domain.SafetyLevel, jurisdiction domain.Jurisdiction) string
}

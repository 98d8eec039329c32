package domain

import "time"

// CurrentPreferencesVersion is the schema version written on every save.
// Loads of documents carrying an older version are migrated before any
// field is read by a caller.
const CurrentPreferencesVersion = 2

// PreferenceSection names a top-level section of the preference document.
type PreferenceSection string

// Preference sections. Update() accepts exactly these.
const (
	SectionTTS           PreferenceSection = "tts"
	SectionAccessibility PreferenceSection = "accessibility"
	SectionRegional      PreferenceSection = "regional"
	SectionAI            PreferenceSection = "ai"
)

// IsValid returns true if the section name is recognised.
func (s PreferenceSection) IsValid() bool {
	switch s {
	case SectionTTS, SectionAccessibility, SectionRegional, SectionAI:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s PreferenceSection) String() string {
	return string(s)
}

// TTSPreferences holds text-to-speech output settings.
type TTSPreferences struct {
	// Enabled turns spoken output on.
	Enabled bool `json:"enabled"`

	// AutoSpeak reads assistant answers aloud without a click.
	AutoSpeak bool `json:"autoSpeak"`

	// Rate is the speech rate multiplier (0.5–2.0).
	Rate float64 `json:"rate"`

	// PreferUKVoice selects a UK voice when one is available.
	PreferUKVoice bool `json:"preferUKVoice"`

	// FilterNonAlphanumeric strips symbols and emoji before speaking.
	FilterNonAlphanumeric bool `json:"filterNonAlphanumeric"`
}

// AccessibilityPreferences holds reading and display accommodations.
type AccessibilityPreferences struct {
	// ReadingLevel is one of "simple", "standard", "detailed".
	ReadingLevel string `json:"readingLevel"`

	// DyslexiaFriendly enables dyslexia-friendly typography.
	DyslexiaFriendly bool `json:"dyslexiaFriendly"`

	// ReducedMotion disables animated transitions.
	ReducedMotion bool `json:"reducedMotion"`

	// TextSize is one of "small", "medium", "large".
	TextSize string `json:"textSize"`

	// HighContrast enables the high-contrast palette.
	HighContrast bool `json:"highContrast"`
}

// RegionalPreferences holds the user's jurisdiction.
type RegionalPreferences struct {
	// Jurisdiction selects crisis signposting and evidence source
	// preference for every routed query.
	Jurisdiction Jurisdiction `json:"jurisdiction"`
}

// AIPreferences holds answer-style settings consumed by the assistants.
type AIPreferences struct {
	// Verbosity is one of "concise", "standard", "detailed".
	Verbosity string `json:"verbosity"`

	// ShowCitations displays the formatted citation block under answers.
	ShowCitations bool `json:"showCitations"`

	// PreferredRole is the assistant role used when none is specified.
	PreferredRole AssistantRole `json:"preferredRole"`
}

// UserPreferences is the versioned preference document, the only entity
// in this subsystem with cross-request lifetime. It is persisted whole
// under a single storage key with last-writer-wins semantics.
type UserPreferences struct {
	// Version is the schema version; rewritten to
	// CurrentPreferencesVersion on every save.
	Version int `json:"version"`

	TTS           TTSPreferences           `json:"tts"`
	Accessibility AccessibilityPreferences `json:"accessibility"`
	Regional      RegionalPreferences      `json:"regional"`
	AI            AIPreferences            `json:"ai"`

	// LastUpdated is rewritten to the save time on every save.
	LastUpdated time.Time `json:"lastUpdated"`
}

// DefaultUserPreferences returns the document created on first access.
func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		Version: CurrentPreferencesVersion,
		TTS: TTSPreferences{
			Enabled:               false,
			AutoSpeak:             false,
			Rate:                  1.0,
			PreferUKVoice:         true,
			FilterNonAlphanumeric: true,
		},
		Accessibility: AccessibilityPreferences{
			ReadingLevel:     "standard",
			DyslexiaFriendly: false,
			ReducedMotion:    false,
			TextSize:         "medium",
			HighContrast:     false,
		},
		Regional: RegionalPreferences{
			Jurisdiction: JurisdictionUK,
		},
		AI: AIPreferences{
			Verbosity:     "standard",
			ShowCitations: true,
			PreferredRole: RoleBuddy,
		},
	}
}

// Validate checks structural integrity of a loaded document. It does not
// check the version; version mismatch is handled by migration, not
// rejection.
func (p UserPreferences) Validate() error {
	if p.Version <= 0 {
		return ErrInvalidPreferences
	}
	if !p.Regional.Jurisdiction.IsValid() {
		return ErrInvalidPreferences
	}
	if p.TTS.Rate < 0.5 || p.TTS.Rate > 2.0 {
		return ErrInvalidPreferences
	}
	switch p.Accessibility.ReadingLevel {
	case "simple", "standard", "detailed":
	default:
		return ErrInvalidPreferences
	}
	switch p.Accessibility.TextSize {
	case "small", "medium", "large":
	default:
		return ErrInvalidPreferences
	}
	switch p.AI.Verbosity {
	case "concise", "standard", "detailed":
	default:
		return ErrInvalidPreferences
	}
	if !p.AI.PreferredRole.IsValid() {
		return ErrInvalidPreferences
	}
	return nil
}

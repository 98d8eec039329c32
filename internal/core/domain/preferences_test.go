package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultUserPreferences tests defaults are structurally valid.
func TestDefaultUserPreferences(t *testing.T) {
	prefs := DefaultUserPreferences()

	require.NoError(t, prefs.Validate())
	assert.Equal(t, CurrentPreferencesVersion, prefs.Version)
	assert.Equal(t, JurisdictionUK, prefs.Regional.Jurisdiction)
	assert.Equal(t, 1.0, prefs.TTS.Rate)
	assert.Equal(t, "standard", prefs.AI.Verbosity)
	assert.True(t, prefs.AI.ShowCitations)
}

// TestUserPreferences_Validate tests structural validation failures.
func TestUserPreferences_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UserPreferences)
	}{
		{"zero version", func(p *UserPreferences) { p.Version = 0 }},
		{"bad jurisdiction", func(p *UserPreferences) { p.Regional.Jurisdiction = "XX" }},
		{"rate too low", func(p *UserPreferences) { p.TTS.Rate = 0.1 }},
		{"rate too high", func(p *UserPreferences) { p.TTS.Rate = 3.0 }},
		{"bad reading level", func(p *UserPreferences) { p.Accessibility.ReadingLevel = "loud" }},
		{"bad text size", func(p *UserPreferences) { p.Accessibility.TextSize = "huge" }},
		{"bad verbosity", func(p *UserPreferences) { p.AI.Verbosity = "rambling" }},
		{"bad preferred role", func(p *UserPreferences) { p.AI.PreferredRole = "wizard" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := DefaultUserPreferences()
			tt.mutate(&prefs)
			assert.ErrorIs(t, prefs.Validate(), ErrInvalidPreferences)
		})
	}
}

// TestPreferenceSection_IsValid tests section name recognition.
func TestPreferenceSection_IsValid(t *testing.T) {
	assert.True(t, SectionTTS.IsValid())
	assert.True(t, SectionAccessibility.IsValid())
	assert.True(t, SectionRegional.IsValid())
	assert.True(t, SectionAI.IsValid())
	assert.False(t, PreferenceSection("myPlan").IsValid())
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewSafetyCheckResult_Totality tests every valid level maps to a
// defined outcome.
func TestNewSafetyCheckResult_Totality(t *testing.T) {
	tests := []struct {
		name       string
		level      SafetyLevel
		wantSafe   bool
		wantAction SafetyAction
	}{
		{"none answers", SafetyNone, true, ActionAnswer},
		{"urgent answers", SafetyUrgent, false, ActionAnswer},
		{"crisis answers", SafetyCrisis, false, ActionAnswer},
		{"safeguarding escalates", SafetySafeguarding, false, ActionEscalateOnly},
		{"emergency escalates", SafetyEmergency, false, ActionEscalateOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewSafetyCheckResult(tt.level, nil, "")
			assert.Equal(t, tt.wantSafe, result.Safe)
			assert.Equal(t, tt.wantAction, result.Action)
			assert.Equal(t, tt.level, result.Level)
		})
	}
}

// TestNewSafetyCheckResult_UnknownLevel tests an unrecognised level is
// treated as the most restrictive case, never passed through.
func TestNewSafetyCheckResult_UnknownLevel(t *testing.T) {
	result := NewSafetyCheckResult(SafetyLevel("bogus"), nil, "")

	assert.False(t, result.Safe)
	assert.Equal(t, SafetyEmergency, result.Level)
	assert.Equal(t, ActionEscalateOnly, result.Action)
}

// TestNewSafetyCheckResult_Keywords tests matched keywords and
// signposting are carried through.
func TestNewSafetyCheckResult_Keywords(t *testing.T) {
	result := NewSafetyCheckResult(SafetyCrisis, []string{"hopeless"}, "call 111")

	assert.Equal(t, []string{"hopeless"}, result.Keywords)
	assert.Equal(t, "call 111", result.Signposting)
}

// TestSafetyLevel_Escalates tests the escalate partition.
func TestSafetyLevel_Escalates(t *testing.T) {
	assert.True(t, SafetyEmergency.Escalates())
	assert.True(t, SafetySafeguarding.Escalates())
	assert.False(t, SafetyCrisis.Escalates())
	assert.False(t, SafetyUrgent.Escalates())
	assert.False(t, SafetyNone.Escalates())
}

// TestSafetyLevel_Signposts tests that every concern level signposts.
func TestSafetyLevel_Signposts(t *testing.T) {
	assert.False(t, SafetyNone.Signposts())
	assert.False(t, SafetyLevel("bogus").Signposts())
	assert.True(t, SafetyUrgent.Signposts())
	assert.True(t, SafetyCrisis.Signposts())
	assert.True(t, SafetySafeguarding.Signposts())
	assert.True(t, SafetyEmergency.Signposts())
}

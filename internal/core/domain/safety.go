package domain

// SafetyLevel is the severity assigned to a query by safeguarding
// keyword detection. Severity of required response restriction ascends:
// none < urgent/crisis < safeguarding/emergency.
type SafetyLevel string

// Safety levels.
const (
	// SafetyNone indicates no safeguarding concern was detected.
	SafetyNone SafetyLevel = "none"

	// SafetyUrgent indicates an urgent but non-life-threatening concern.
	// The answer proceeds with signposting prepended.
	SafetyUrgent SafetyLevel = "urgent"

	// SafetyCrisis indicates a mental health crisis signal.
	// The answer proceeds with signposting prepended.
	SafetyCrisis SafetyLevel = "crisis"

	// SafetySafeguarding indicates abuse/child-protection territory.
	// Generation is skipped entirely.
	SafetySafeguarding SafetyLevel = "safeguarding"

	// SafetyEmergency indicates immediate danger to life.
	// Generation is skipped entirely.
	SafetyEmergency SafetyLevel = "emergency"
)

// IsValid returns true if the safety level is recognised.
func (l SafetyLevel) IsValid() bool {
	switch l {
	case SafetyNone, SafetyUrgent, SafetyCrisis, SafetySafeguarding, SafetyEmergency:
		return true
	default:
		return false
	}
}

// Escalates returns true if this level forbids answer generation.
func (l SafetyLevel) Escalates() bool {
	return l == SafetyEmergency || l == SafetySafeguarding
}

// Signposts returns true if this level requires crisis signposting to be
// attached to whatever the user receives.
func (l SafetyLevel) Signposts() bool {
	return l != SafetyNone && l.IsValid()
}

// String returns the string representation.
func (l SafetyLevel) String() string {
	return string(l)
}

// SafetyAction tells the caller what to do with the query.
type SafetyAction string

// Safety actions.
const (
	// ActionAnswer permits answer generation.
	ActionAnswer SafetyAction = "answer"

	// ActionEscalateOnly directs the caller to return fixed signposting
	// text and skip generation entirely.
	ActionEscalateOnly SafetyAction = "escalate_only"
)

// String returns the string representation.
func (a SafetyAction) String() string {
	return string(a)
}

// SafetyCheckResult is the outcome of the safety gate for one query.
// Produced fresh per query; never cached or mutated after creation.
//
// Invariant: Level ∈ {emergency, safeguarding} ⇒ Action = escalate_only
// and Safe = false. NewSafetyCheckResult is the only constructor and
// enforces this as a total function of the level.
type SafetyCheckResult struct {
	// Safe is false when any safeguarding concern was detected.
	Safe bool

	// Level is the detected severity.
	Level SafetyLevel

	// Keywords are the matched safeguarding keywords, if any.
	Keywords []string

	// Signposting is the jurisdiction-specific crisis guidance, empty
	// when Level is none.
	Signposting string

	// Action tells the caller whether generation may proceed.
	Action SafetyAction
}

// NewSafetyCheckResult maps a detected level to a complete check result.
// The mapping is total: every valid level has a defined outcome, and an
// unrecognised level is treated as the most restrictive case rather than
// passed through silently.
func NewSafetyCheckResult(level SafetyLevel, keywords []string, signposting string) SafetyCheckResult {
	if !level.IsValid() {
		level = SafetyEmergency
	}

	action := ActionAnswer
	if level.Escalates() {
		action = ActionEscalateOnly
	}

	return SafetyCheckResult{
		Safe:        level == SafetyNone,
		Level:       level,
		Keywords:    keywords,
		Signposting: signposting,
		Action:      action,
	}
}

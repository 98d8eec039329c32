package domain

const unknownDescription = "Unknown"

// Jurisdiction identifies the regional context used for crisis signposting
// and evidence source preference.
type Jurisdiction string

// Supported jurisdictions.
const (
	// JurisdictionUK prefers NHS/NICE guidance and UK crisis lines.
	JurisdictionUK Jurisdiction = "UK"

	// JurisdictionUS prefers CDC/NIH guidance and US crisis lines.
	JurisdictionUS Jurisdiction = "US"

	// JurisdictionEU uses the 112 emergency number and local services.
	JurisdictionEU Jurisdiction = "EU"
)

// IsValid returns true if the jurisdiction is recognised.
func (j Jurisdiction) IsValid() bool {
	switch j {
	case JurisdictionUK, JurisdictionUS, JurisdictionEU:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (j Jurisdiction) String() string {
	return string(j)
}

// AssistantRole identifies which embedded assistant is asking on the
// user's behalf. Each role carries its own behavioural prompt template.
type AssistantRole string

// Available assistant roles.
const (
	// RoleBuddy is the per-page guide assistant.
	RoleBuddy AssistantRole = "buddy"

	// RoleCoach is the personalised wellbeing coach.
	RoleCoach AssistantRole = "coach"

	// RoleBlog is the research and education assistant.
	RoleBlog AssistantRole = "blog"

	// RoleNarrator reads page content aloud; it never makes health claims,
	// so evidence rules are not embedded in its prompt.
	RoleNarrator AssistantRole = "narrator"
)

// IsValid returns true if the assistant role is recognised.
func (r AssistantRole) IsValid() bool {
	switch r {
	case RoleBuddy, RoleCoach, RoleBlog, RoleNarrator:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r AssistantRole) String() string {
	return string(r)
}

// UserRole is the role the user has declared for themselves, used to
// tailor coach guidance. Optional.
type UserRole string

// Declared user roles.
const (
	UserRoleParent       UserRole = "parent"
	UserRoleTeacher      UserRole = "teacher"
	UserRoleCarer        UserRole = "carer"
	UserRoleIndividual   UserRole = "individual"
	UserRoleProfessional UserRole = "professional"
)

// IsValid returns true if the user role is recognised.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleParent, UserRoleTeacher, UserRoleCarer, UserRoleIndividual, UserRoleProfessional:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r UserRole) String() string {
	return string(r)
}

// QueryType classifies what kind of question was asked.
type QueryType string

// Query types, in classification precedence order.
const (
	// QueryEmergency is assigned only by the safety short-circuit path.
	QueryEmergency QueryType = "emergency"

	// QueryNavigation asks where something is on the site.
	QueryNavigation QueryType = "navigation"

	// QueryToolHelp asks how to use a tool or feature.
	QueryToolHelp QueryType = "tool_help"

	// QueryHealthEvidence asks a health question that needs cited evidence.
	QueryHealthEvidence QueryType = "health_evidence"

	// QueryGeneralInfo is the deterministic fallback for everything else.
	QueryGeneralInfo QueryType = "general_info"
)

// IsValid returns true if the query type is recognised.
func (t QueryType) IsValid() bool {
	switch t {
	case QueryEmergency, QueryNavigation, QueryToolHelp, QueryHealthEvidence, QueryGeneralInfo:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t QueryType) String() string {
	return string(t)
}

// Description returns a human-readable description of the query type.
func (t QueryType) Description() string {
	switch t {
	case QueryEmergency:
		return "Emergency (signposting only)"
	case QueryNavigation:
		return "Navigation (site orientation)"
	case QueryToolHelp:
		return "Tool Help (feature guidance)"
	case QueryHealthEvidence:
		return "Health Evidence (cited answer required)"
	case QueryGeneralInfo:
		return "General Information"
	default:
		return unknownDescription
	}
}

// Priority ranks how urgently a routing decision should be acted on.
type Priority string

// Priorities in descending order of urgency.
const (
	// PriorityImmediate is reserved for the escalate-only safety path.
	PriorityImmediate Priority = "immediate"

	// PriorityHigh is used for crisis/urgent safety levels that still answer.
	PriorityHigh Priority = "high"

	// PriorityNormal is everything else.
	PriorityNormal Priority = "normal"
)

// IsValid returns true if the priority is recognised.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityImmediate, PriorityHigh, PriorityNormal:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Priority) String() string {
	return string(p)
}

// QueryContext carries the caller-supplied context for a single question.
// It is owned by the request that created it and is never persisted.
type QueryContext struct {
	// PagePath is the path of the page the assistant is embedded in, if any.
	PagePath string

	// PageName is the display name of the current page, if any.
	PageName string

	// Jurisdiction selects crisis signposting and source preference.
	// Defaults to UK when unset.
	Jurisdiction Jurisdiction

	// Role is the assistant role asking on the user's behalf.
	Role AssistantRole

	// UserRole is the user's declared role, if any.
	UserRole UserRole

	// SkipEvidenceRules omits the evidence-rules block from composed
	// prompts. The block is included for every role except the narrator
	// unless the caller opts out here.
	SkipEvidenceRules bool
}

// EffectiveJurisdiction returns the context jurisdiction, defaulting to UK.
func (c QueryContext) EffectiveJurisdiction() Jurisdiction {
	if c.Jurisdiction.IsValid() {
		return c.Jurisdiction
	}
	return JurisdictionUK
}

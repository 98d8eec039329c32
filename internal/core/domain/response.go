package domain

// ChatTurn is a single prior message in an assistant conversation.
type ChatTurn struct {
	// Role is one of "user" or "assistant".
	Role string `json:"role"`

	// Content is the message text.
	Content string `json:"content"`
}

// ResponseValidation is the outcome of post-generation safety checks.
// Errors block display of the answer; warnings are surfaced alongside it.
type ResponseValidation struct {
	// Valid is false when any error was recorded.
	Valid bool `json:"valid"`

	// Errors are violations that make the answer undisplayable.
	Errors []string `json:"errors,omitempty"`

	// Warnings are concerns that do not block display.
	Warnings []string `json:"warnings,omitempty"`
}

// AssistantResponse is the complete result of one assistant turn:
// the answer (possibly empty in degraded or escalated turns), the
// routing decision that shaped it, and the citations that survived
// allowlist validation.
type AssistantResponse struct {
	// Answer is the displayable text. For escalate_only turns this is
	// the crisis signposting, never generated content.
	Answer string `json:"answer"`

	// Routing is the decision the answer was produced under.
	Routing RoutingDecision `json:"routing"`

	// Citations groups the validated citations for display.
	Citations CitationGroup `json:"citations"`

	// Degraded is true when no generation backend was available and the
	// answer carries routing metadata and signposting only.
	Degraded bool `json:"degraded"`

	// Warnings carries non-blocking findings from response validation.
	Warnings []string `json:"warnings,omitempty"`
}

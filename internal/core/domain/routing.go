package domain

// RoutingDecision summarises how a single query should be handled
// downstream. It is owned by the request that created it and is never
// mutated after construction.
//
// Invariants:
//   - RequiresEvidence ⇔ QueryType = health_evidence
//   - Priority = immediate ⇔ SafetyCheck.Action = escalate_only
type RoutingDecision struct {
	// QueryType is the classified kind of question.
	QueryType QueryType

	// RequiresEvidence is true only for health evidence queries.
	RequiresEvidence bool

	// Topic is the detected health topic; TopicGeneral when none matched.
	// Empty on the emergency short-circuit path, where classification
	// is skipped entirely.
	Topic Topic

	// SafetyCheck is the safety gate outcome this decision was built from.
	SafetyCheck SafetyCheckResult

	// SuggestedSources lists registry source IDs in preference order.
	// Empty on the escalate-only path.
	SuggestedSources []string

	// Priority ranks urgency of handling.
	Priority Priority
}

// Classification is the classifier's output for one query.
type Classification struct {
	// QueryType is the matched type; QueryGeneralInfo when nothing matched.
	QueryType QueryType

	// Topic is the matched topic; TopicGeneral when nothing matched.
	Topic Topic
}

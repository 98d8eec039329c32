package driving

import "github.com/neurobreath/nbassist/internal/core/domain"

// PromptService composes system prompts for the assistant roles.
// Composition is block-ordered: persona, audience, topic guidance,
// evidence rules, jurisdiction guidance, safety rules. Safety rules
// always come last so they are hardest to override.
type PromptService interface {
	// Compose builds the full system prompt for a role and routing
	// decision, adjusted for the user's preferences.
	Compose(role domain.AssistantRole, decision domain.RoutingDecision, prefs domain.UserPreferences, qctx domain.QueryContext) (string, error)

	// ComposeBuddy, ComposeCoach and ComposeBlog are role-fixed
	// shorthands for Compose.
	ComposeBuddy(decision domain.RoutingDecision, prefs domain.UserPreferences, qctx domain.QueryContext) (string, error)
	ComposeCoach(decision domain.RoutingDecision, prefs domain.UserPreferences, qctx domain.QueryContext) (string, error)
	ComposeBlog(decision domain.RoutingDecision, prefs domain.UserPreferences, qctx domain.QueryContext) (string, error)

	// TopicGuideline returns the topic-specific guidance block, or the
	// empty string for topics without one.
	TopicGuideline(topic domain.Topic) string
}

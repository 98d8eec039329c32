package driven

// TemplateStore provides access to prompt template overrides.
// Implementations may load templates from files, embed them in the
// binary, or fetch them from a remote configuration service.
type TemplateStore interface {
	// Load returns the template for the given name.
	// Returns the template content and any error encountered. If the
	// template has no override, implementations return the built-in
	// default.
	Load(name string) (string, error)

	// Reload clears any cached templates, forcing fresh loads on next
	// access. This is useful when templates may have been edited on disk.
	Reload()
}

// Well-known template names used throughout the application.
// These constants define the contract between prompt composers and
// template providers.
const (
	// TemplateBuddyPersona is the persona block for the support buddy.
	TemplateBuddyPersona = "buddy_persona"

	// TemplateCoachPersona is the persona block for the focus coach.
	TemplateCoachPersona = "coach_persona"

	// TemplateBlogPersona is the persona block for the blog writer.
	TemplateBlogPersona = "blog_persona"

	// TemplateNarratorPersona is the persona block for the exercise
	// narrator.
	TemplateNarratorPersona = "narrator_persona"

	// TemplateSafetyRules is the non-negotiable safety rule block
	// appended to every composed prompt.
	TemplateSafetyRules = "safety_rules"
)

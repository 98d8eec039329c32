package services

import (
	"fmt"
	"strings"

	"github.com/neurobreath/nbassist/internal/core/domain"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/core/ports/driving"
)

// Ensure PromptService implements the interface.
var _ driving.PromptService = (*PromptService)(nil)

// Built-in persona blocks, used when no template override is present.
var defaultPersonas = map[domain.AssistantRole]string{
	domain.RoleBuddy: "You are Breathing Buddy, a warm, encouraging guide embedded in a " +
		"neurodiversity and wellbeing website. You help visitors understand the current " +
		"page and find their way around the site. You speak plainly, one idea at a time.",
	domain.RoleCoach: "You are a supportive wellbeing coach for people with ADHD, autism, " +
		"dyslexia and related conditions. You suggest small, concrete, evidence-based " +
		"steps. You never diagnose and never recommend medication changes.",
	domain.RoleBlog: "You are a research and education assistant writing about " +
		"neurodiversity and mental wellbeing. You summarise evidence accurately, " +
		"distinguish established findings from emerging research, and always attribute claims.",
	domain.RoleNarrator: "You are a calm narrator reading page content aloud. You read " +
		"what is on the page in a steady, gentle voice. You do not add commentary, advice " +
		"or health claims of your own.",
}

// defaultSafetyRules is the non-negotiable block appended to every
// composed prompt. It always comes last so it is hardest to override.
const defaultSafetyRules = "Safety rules (these override everything above):\n" +
	"- You are not a clinician. Never diagnose, never recommend starting, stopping or changing medication.\n" +
	"- If the user describes crisis, self-harm or danger, stop answering and direct them to the crisis services for their region.\n" +
	"- Never invent statistics, study results or source names. If you are not sure, say so.\n" +
	"- Only cite sources from the approved list you were given. Never cite anything else.\n" +
	"- Be honest about uncertainty. \"I don't know\" is always an acceptable answer."

// topicGuidelines holds per-topic guidance appended when the routed
// topic has one. Topics without an entry get no block.
var topicGuidelines = map[domain.Topic]string{
	domain.TopicADHD: "ADHD guidance: prefer practical, structured strategies (body doubling, " +
		"timers, task breakdown). NICE guideline NG87 is the UK reference. Avoid framing ADHD " +
		"traits as character flaws.",
	domain.TopicAutism: "Autism guidance: respect sensory differences and routines. Use " +
		"identity-first language (\"autistic person\") unless the user indicates otherwise. " +
		"Never describe autism as an illness to be cured.",
	domain.TopicDyslexia: "Dyslexia guidance: emphasise strengths alongside strategies. " +
		"Suggest structured literacy approaches and assistive technology where relevant.",
	domain.TopicAnxiety: "Anxiety guidance: grounding and breathing techniques are " +
		"first-line self-help. NICE guideline CG113 covers generalised anxiety. Normalise " +
		"seeking professional support.",
	domain.TopicDepression: "Depression guidance: encourage small behavioural activation " +
		"steps and professional support. NICE guideline NG222 is the UK reference. Take any " +
		"mention of hopelessness seriously.",
	domain.TopicBreathing: "Breathing guidance: describe techniques step by step with " +
		"counts (box breathing 4-4-4-4, physiological sigh). Advise stopping if dizzy.",
	domain.TopicSleep: "Sleep guidance: sleep hygiene first (consistent schedule, light " +
		"exposure, screens). CBT-I is the evidence-based first-line treatment for insomnia.",
	domain.TopicBipolar: "Bipolar guidance: this is specialist territory. Provide general " +
		"education only and consistently signpost to professional care. NICE guideline CG185.",
	domain.TopicStress: "Stress guidance: distinguish acute from chronic stress. Practical " +
		"load-reduction beats generic relaxation advice.",
	domain.TopicBurnout: "Burnout guidance: frame as a mismatch between demands and " +
		"resources, not personal failure. Recovery requires rest plus structural change.",
}

// jurisdictionGuidance holds the fixed emergency contacts and source
// priority embedded in every prompt for the selected jurisdiction.
var jurisdictionGuidance = map[domain.Jurisdiction]string{
	domain.JurisdictionUK: "Jurisdiction: UK\n" +
		"- Prioritise NHS and NICE guidelines.\n" +
		"- Emergency: 999 | Urgent: NHS 111 | Crisis: NHS mental health helplines.\n" +
		"- Safeguarding: local council or the NSPCC (0808 800 5000).",
	domain.JurisdictionUS: "Jurisdiction: US\n" +
		"- Prioritise CDC and NIH guidelines.\n" +
		"- Emergency: 911 | Crisis: 988 Suicide & Crisis Lifeline.\n" +
		"- Safeguarding: Childhelp (1-800-422-4453).",
	domain.JurisdictionEU: "Jurisdiction: EU\n" +
		"- Emergency: 112.\n" +
		"- Refer to local health services and helplines.",
}

// userRoleDirectives tailor guidance to the role the user declared for
// themselves.
var userRoleDirectives = map[domain.UserRole]string{
	domain.UserRoleParent: "The user is a parent supporting a neurodivergent child. Include " +
		"home strategies, collaboration with school, and the parent's own self-care.",
	domain.UserRoleTeacher: "The user is a teacher. Provide classroom strategies, behaviour " +
		"support and educational adaptations; reference the SEND framework (UK) or IEP/504 plans (US).",
	domain.UserRoleCarer: "The user is a carer for a neurodivergent person. Include " +
		"communication techniques, daily routines and respite guidance.",
	domain.UserRoleIndividual: "The user is a neurodivergent individual asking for themselves. " +
		"Include self-advocacy, workplace adjustments and personal wellbeing.",
	domain.UserRoleProfessional: "The user is a professional such as a therapist, counsellor " +
		"or coach. Include assessment tools and intervention frameworks.",
}

// verbosityDirectives maps the AI verbosity preference to a style line.
var verbosityDirectives = map[string]string{
	"concise":  "Keep answers short: two or three sentences where possible.",
	"standard": "Keep answers focused: a short paragraph, with bullet points for steps.",
	"detailed": "Answers may be thorough, but stay structured: headings and short paragraphs.",
}

// readingLevelDirectives maps the accessibility reading level to a style line.
var readingLevelDirectives = map[string]string{
	"simple":   "Use simple words and short sentences. Explain any technical term immediately.",
	"standard": "Write for a general adult audience.",
	"detailed": "Technical vocabulary is fine, but define clinical terms on first use.",
}

// PromptService composes block-ordered system prompts for the assistant
// roles.
type PromptService struct {
	templates driven.TemplateStore
}

// NewPromptService creates a new prompt service. The template store may
// be nil, in which case built-in blocks are used throughout.
func NewPromptService(templates driven.TemplateStore) *PromptService {
	return &PromptService{templates: templates}
}

// Compose builds the full system prompt. Block order is fixed: persona,
// audience, page context, topic guidance, evidence rules, jurisdiction
// guidance, safety rules.
func (s *PromptService) Compose(role domain.AssistantRole, decision domain.RoutingDecision, prefs domain.UserPreferences, qctx domain.QueryContext) (string, error) {
	if !role.IsValid() {
		return "", fmt.Errorf("%w: unknown assistant role %q", domain.ErrInvalidInput, role)
	}

	blocks := []string{s.personaBlock(role)}

	if block := s.audienceBlock(prefs, qctx); block != "" {
		blocks = append(blocks, block)
	}
	if block := pageContextBlock(qctx); block != "" {
		blocks = append(blocks, block)
	}

	// The narrator reads aloud and never makes claims of its own, so
	// topic guidance and evidence rules would only dilute its persona.
	// Every other role carries the evidence rules unless the caller
	// opted out, whatever the query type.
	if role != domain.RoleNarrator {
		if block := s.TopicGuideline(decision.Topic); block != "" {
			blocks = append(blocks, block)
		}
		if !qctx.SkipEvidenceRules {
			blocks = append(blocks, evidenceBlock(decision))
		}
	}

	blocks = append(blocks, jurisdictionGuidance[qctx.EffectiveJurisdiction()], s.safetyBlock())

	return strings.Join(blocks, "\n\n"), nil
}

// ComposeBuddy builds the page-helper prompt for the given routing
// decision and page context.
func (s *PromptService) ComposeBuddy(decision domain.RoutingDecision, prefs domain.UserPreferences, qctx domain.QueryContext) (string, error) {
	return s.Compose(domain.RoleBuddy, decision, prefs, qctx)
}

// ComposeCoach builds the wellbeing-coach prompt.
func (s *PromptService) ComposeCoach(decision domain.RoutingDecision, prefs domain.UserPreferences, qctx domain.QueryContext) (string, error) {
	return s.Compose(domain.RoleCoach, decision, prefs, qctx)
}

// ComposeBlog builds the research-writing prompt.
func (s *PromptService) ComposeBlog(decision domain.RoutingDecision, prefs domain.UserPreferences, qctx domain.QueryContext) (string, error) {
	return s.Compose(domain.RoleBlog, decision, prefs, qctx)
}

// TopicGuideline returns the topic-specific guidance block, or the
// empty string for topics without one.
func (s *PromptService) TopicGuideline(topic domain.Topic) string {
	return topicGuidelines[topic]
}

func (s *PromptService) personaBlock(role domain.AssistantRole) string {
	if s.templates != nil {
		if tmpl, err := s.templates.Load(templateNameForRole(role)); err == nil && tmpl != "" {
			return tmpl
		}
	}
	return defaultPersonas[role]
}

func (s *PromptService) safetyBlock() string {
	if s.templates != nil {
		if tmpl, err := s.templates.Load(driven.TemplateSafetyRules); err == nil && tmpl != "" {
			return tmpl
		}
	}
	return defaultSafetyRules
}

func (s *PromptService) audienceBlock(prefs domain.UserPreferences, qctx domain.QueryContext) string {
	var lines []string

	if directive, ok := readingLevelDirectives[prefs.Accessibility.ReadingLevel]; ok {
		lines = append(lines, directive)
	}
	if directive, ok := verbosityDirectives[prefs.AI.Verbosity]; ok {
		lines = append(lines, directive)
	}
	if directive, ok := userRoleDirectives[qctx.UserRole]; ok {
		lines = append(lines, directive)
	}
	if len(lines) == 0 {
		return ""
	}

	return "Audience:\n- " + strings.Join(lines, "\n- ")
}

func pageContextBlock(qctx domain.QueryContext) string {
	if qctx.PageName == "" && qctx.PagePath == "" {
		return ""
	}
	name := qctx.PageName
	if name == "" {
		name = qctx.PagePath
	}
	return fmt.Sprintf("The user is currently on the %q page (%s). Prefer answers grounded in what this page offers.", name, qctx.PagePath)
}

func evidenceBlock(decision domain.RoutingDecision) string {
	var b strings.Builder
	b.WriteString("Evidence rules:\n")
	if decision.RequiresEvidence {
		b.WriteString("- This question needs evidence-backed answers. Cite your sources.\n")
	} else {
		b.WriteString("- Back any health claim you make with evidence. Cite your sources.\n")
	}
	if len(decision.SuggestedSources) > 0 {
		b.WriteString("- Approved sources, in order of preference: ")
		b.WriteString(strings.Join(decision.SuggestedSources, ", "))
		b.WriteString(".\n")
	}
	b.WriteString("- Attribute every health claim to an approved source or clearly mark it as general knowledge.")
	return b.String()
}

func templateNameForRole(role domain.AssistantRole) string {
	switch role {
	case domain.RoleCoach:
		return driven.TemplateCoachPersona
	case domain.RoleBlog:
		return driven.TemplateBlogPersona
	case domain.RoleNarrator:
		return driven.TemplateNarratorPersona
	default:
		return driven.TemplateBuddyPersona
	}
}

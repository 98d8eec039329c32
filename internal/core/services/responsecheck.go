package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// maxQueryLength caps sanitised input. Anything longer is truncated,
// not rejected; overlong queries are usually pasted page content.
const maxQueryLength = 2000

// urlPattern extracts http(s) URLs from generated text.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"')\]]+`)

// statClaimPattern matches statistic-shaped claims ("73% of", "1 in 4")
// used by the fabrication heuristics.
var statClaimPattern = regexp.MustCompile(`(?i)(\d{1,3}(\.\d+)?\s?%\s+of|\d+\s+in\s+\d+\s+(people|children|adults))`)

// studyClaimPattern matches claims of specific research backing.
var studyClaimPattern = regexp.MustCompile(`(?i)(studies\s+(show|found|suggest)|research\s+(shows|found|suggests)|a\s+\d{4}\s+study|et\s+al\.?)`)

// diagnosisPhrases are phrasings that read as a diagnosis of the user.
// Any of these in generated text is a blocking error.
var diagnosisPhrases = []string{
	"you have adhd",
	"you have autism",
	"you are autistic",
	"you have dyslexia",
	"you have depression",
	"you have anxiety disorder",
	"you have bipolar",
	"i diagnose",
	"my diagnosis",
}

// medicationPhrases are phrasings that read as medication directives.
var medicationPhrases = []string{
	"you should take",
	"increase your dose",
	"decrease your dose",
	"reduce your dose",
	"stop taking your",
	"start taking",
	"double your",
}

// educationalDisclaimer accompanies every health answer. Appended by
// WrapAnswerWithSafety when the answer does not already carry one.
const educationalDisclaimer = "**Important:** This information is for educational purposes only " +
	"and does not constitute medical advice. Always consult a qualified healthcare professional " +
	"for diagnosis and treatment."

// disclaimerMarkers identify answers that already carry a disclaimer.
var disclaimerMarkers = []string{
	"educational purposes",
	"not medical advice",
	"consult a healthcare professional",
}

// absolutistPhrases overpromise outcomes; warnings, not errors.
var absolutistPhrases = []string{
	"guaranteed to",
	"will cure",
	"cures",
	"always works",
	"100% effective",
	"never fails",
}

// ResponseChecker validates generated text before display. The
// generation backend is untrusted: its answers are checked for
// diagnosis language, medication directives and fabricated evidence,
// and its proposed citations never bypass the registry allowlist.
type ResponseChecker struct{}

// NewResponseChecker creates a new response checker.
func NewResponseChecker() *ResponseChecker {
	return &ResponseChecker{}
}

// SanitizeInput normalises raw query text: control characters dropped,
// whitespace runs collapsed, length capped. Sanitisation runs before
// the safety gate so the gate sees what the classifier will see.
func (c *ResponseChecker) SanitizeInput(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}

	out := strings.TrimSpace(b.String())
	if len(out) > maxQueryLength {
		// Back up to a rune boundary so the cap never leaves a split
		// multi-byte character behind.
		cut := maxQueryLength
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut]
	}
	return out
}

// ValidateResponseSafety checks generated text against the routing
// decision. Errors block display; warnings ride along with the answer.
func (c *ResponseChecker) ValidateResponseSafety(answer string, decision domain.RoutingDecision) domain.ResponseValidation {
	lowered := strings.ToLower(answer)

	var errs, warnings []string

	for _, phrase := range diagnosisPhrases {
		if strings.Contains(lowered, phrase) {
			errs = append(errs, "response contains diagnosis language: "+phrase)
		}
	}
	for _, phrase := range medicationPhrases {
		if strings.Contains(lowered, phrase) {
			errs = append(errs, "response contains a medication directive: "+phrase)
		}
	}
	for _, phrase := range absolutistPhrases {
		if strings.Contains(lowered, phrase) {
			warnings = append(warnings, "response overpromises: "+phrase)
		}
	}

	if decision.RequiresEvidence && !c.HasCitation(answer) {
		warnings = append(warnings, "evidence question answered without any source reference")
	}

	if requiresDisclaimer(decision.QueryType) && !c.HasDisclaimer(answer) {
		warnings = append(warnings, "health answer missing the educational disclaimer")
	}

	warnings = append(warnings, c.DetectFabricatedClaims(answer)...)

	return domain.ResponseValidation{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

// DetectFabricatedClaims flags evidence-shaped claims with nothing
// behind them. These are best-effort heuristics and surface as
// warnings only; they never block an answer on their own.
func (c *ResponseChecker) DetectFabricatedClaims(answer string) []string {
	var warnings []string
	hasURL := c.HasCitation(answer)

	if statClaimPattern.MatchString(answer) && !hasURL {
		warnings = append(warnings, "statistic cited without a source URL")
	}
	if studyClaimPattern.MatchString(answer) && !hasURL {
		warnings = append(warnings, "research claim made without a source URL")
	}
	return warnings
}

// WrapAnswerWithSafety prepends crisis signposting to an answer when
// the safety level signposts but still permits answering, and appends
// the educational disclaimer to health answers that lack one.
// Escalating levels never reach this path; their answer is the
// signposting.
func (c *ResponseChecker) WrapAnswerWithSafety(answer string, decision domain.RoutingDecision) string {
	check := decision.SafetyCheck
	if check.Level.Signposts() && check.Action != domain.ActionEscalateOnly && check.Signposting != "" {
		answer = check.Signposting + "\n\n" + answer
	}
	if requiresDisclaimer(decision.QueryType) && !c.HasDisclaimer(answer) {
		answer += "\n\n---\n\n" + educationalDisclaimer
	}
	return answer
}

// HasDisclaimer reports whether the text already carries an educational
// disclaimer.
func (c *ResponseChecker) HasDisclaimer(text string) bool {
	lowered := strings.ToLower(text)
	for _, marker := range disclaimerMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// requiresDisclaimer reports whether answers to this query type carry
// the educational disclaimer. UI questions do not.
func requiresDisclaimer(t domain.QueryType) bool {
	return t == domain.QueryHealthEvidence || t == domain.QueryGeneralInfo
}

// HasCitation reports whether the text contains at least one URL.
func (c *ResponseChecker) HasCitation(text string) bool {
	return urlPattern.MatchString(text)
}

// ExtractCitationURLs returns every URL in the text, in order of first
// appearance, with trailing punctuation trimmed and duplicates removed.
func (c *ResponseChecker) ExtractCitationURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimRight(m, ".,;:!?")
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

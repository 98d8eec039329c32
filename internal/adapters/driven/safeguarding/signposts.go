package safeguarding

import "github.com/neurobreath/nbassist/internal/core/domain"

type signpostLine struct {
	number   string
	label    string
	guidance string
	url      string
}

type crisisSignpost struct {
	emergency    signpostLine
	urgent       signpostLine
	crisis       signpostLine
	safeguarding signpostLine
}

// signposts holds the per-jurisdiction contact blocks. Numbers and
// services here are load-bearing; verify against the official service
// before changing any of them.
var signposts = map[domain.Jurisdiction]crisisSignpost{
	domain.JurisdictionUK: {
		emergency: signpostLine{
			number:   "999",
			label:    "Emergency Services",
			guidance: "If this is a medical emergency or someone is in immediate danger, call 999 or go to A&E immediately.",
		},
		urgent: signpostLine{
			number:   "111",
			label:    "NHS 111",
			guidance: "For urgent but non-life-threatening concerns, call NHS 111 (available 24/7) or visit 111.nhs.uk.",
		},
		crisis: signpostLine{
			label:    "Mental Health Crisis",
			guidance: "If you're experiencing a mental health crisis, call NHS 111 and select the mental health option, or contact your local NHS urgent mental health helpline.",
			url:      "https://www.nhs.uk/service-search/mental-health/find-an-urgent-mental-health-helpline",
		},
		safeguarding: signpostLine{
			label:    "Safeguarding Concerns",
			guidance: "If you or someone else is at risk of abuse or neglect, contact your local council's safeguarding team or call the NSPCC on 0808 800 5000 (children) or Hourglass on 0808 808 8141 (adults).",
			url:      "https://www.gov.uk/report-child-abuse-to-local-council",
		},
	},
	domain.JurisdictionUS: {
		emergency: signpostLine{
			number:   "911",
			label:    "Emergency Services",
			guidance: "If this is a medical emergency or someone is in immediate danger, call 911 immediately.",
		},
		urgent: signpostLine{
			number:   "988",
			label:    "988 Suicide & Crisis Lifeline",
			guidance: "For mental health crisis support, call or text 988 (24/7 confidential support).",
		},
		crisis: signpostLine{
			number:   "988",
			label:    "Mental Health Crisis",
			guidance: "Call or text 988 for the Suicide & Crisis Lifeline, or text \"HELLO\" to 741741 for Crisis Text Line.",
			url:      "https://988lifeline.org",
		},
		safeguarding: signpostLine{
			label:    "Safeguarding Concerns",
			guidance: "If you suspect child abuse or neglect, call the Childhelp National Child Abuse Hotline at 1-800-422-4453.",
			url:      "https://www.childwelfare.gov/topics/responding/reporting/",
		},
	},
	domain.JurisdictionEU: {
		emergency: signpostLine{
			number:   "112",
			label:    "Emergency Services",
			guidance: "If this is a medical emergency or someone is in immediate danger, call 112 (EU emergency number).",
		},
		urgent: signpostLine{
			number:   "116 117",
			label:    "Non-Emergency Medical Help",
			guidance: "For non-emergency medical help, call 116 117 (available in many EU countries) or contact your local health service.",
		},
		crisis: signpostLine{
			label:    "Mental Health Crisis",
			guidance: "Contact your local mental health crisis service or emergency services. Check your country's national mental health helpline.",
			url:      "https://www.iasp.info/resources/Crisis_Centres/",
		},
	},
}

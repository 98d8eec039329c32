package registry

import "github.com/neurobreath/nbassist/internal/core/domain"

// evidenceSources is the canonical source table, Tier A before Tier B.
var evidenceSources = []domain.EvidenceSource{
	// Tier A: UK government and clinical authorities.
	{
		ID:        "nhs",
		Name:      "National Health Service",
		ShortName: "NHS",
		Tier:      domain.TierA,
		Domains:   []string{"nhs.uk", "www.nhs.uk"},
		BaseURL:   "https://www.nhs.uk",
		Topics: []domain.Topic{
			domain.TopicADHD, domain.TopicAutism, domain.TopicDyslexia,
			domain.TopicAnxiety, domain.TopicDepression, domain.TopicSleep,
			domain.TopicBipolar, domain.TopicGeneral,
		},
		CitationFormat: domain.CitationFormat{
			Publisher:    "NHS",
			Jurisdiction: "UK",
			Type:         domain.CitationClinicalGuideline,
		},
	},
	{
		ID:        "nice",
		Name:      "National Institute for Health and Care Excellence",
		ShortName: "NICE",
		Tier:      domain.TierA,
		Domains:   []string{"nice.org.uk", "www.nice.org.uk"},
		BaseURL:   "https://www.nice.org.uk",
		Topics: []domain.Topic{
			domain.TopicADHD, domain.TopicAutism, domain.TopicAnxiety,
			domain.TopicDepression, domain.TopicBipolar, domain.TopicGeneral,
		},
		CitationFormat: domain.CitationFormat{
			Publisher:    "NICE",
			Jurisdiction: "UK",
			Type:         domain.CitationClinicalGuideline,
		},
		Notes: "Evidence-based clinical practice guidelines for the NHS",
	},
	{
		ID:        "gov_uk",
		Name:      "GOV.UK",
		ShortName: "GOV.UK",
		Tier:      domain.TierA,
		Domains:   []string{"gov.uk", "www.gov.uk"},
		BaseURL:   "https://www.gov.uk",
		Topics:    []domain.Topic{domain.TopicSafeguarding, domain.TopicGeneral},
		CitationFormat: domain.CitationFormat{
			Publisher:    "UK Government",
			Jurisdiction: "UK",
			Type:         domain.CitationPolicy,
		},
		Notes: "Policy, safeguarding, education (SEND) guidance",
	},
	{
		ID:        "rcpsych",
		Name:      "Royal College of Psychiatrists",
		ShortName: "RCPsych",
		Tier:      domain.TierA,
		Domains:   []string{"rcpsych.ac.uk", "www.rcpsych.ac.uk"},
		BaseURL:   "https://www.rcpsych.ac.uk",
		Topics: []domain.Topic{
			domain.TopicADHD, domain.TopicAutism, domain.TopicAnxiety,
			domain.TopicDepression, domain.TopicBipolar, domain.TopicGeneral,
		},
		CitationFormat: domain.CitationFormat{
			Publisher:    "Royal College of Psychiatrists",
			Jurisdiction: "UK",
			Type:         domain.CitationClinicalGuideline,
		},
		Notes: "Professional body for psychiatrists in the UK",
	},

	// Tier A: international clinical and research.
	{
		ID:        "pubmed",
		Name:      "PubMed",
		ShortName: "PubMed",
		Tier:      domain.TierA,
		Domains:   []string{"pubmed.ncbi.nlm.nih.gov", "ncbi.nlm.nih.gov"},
		BaseURL:   "https://pubmed.ncbi.nlm.nih.gov",
		Topics: []domain.Topic{
			domain.TopicADHD, domain.TopicAutism, domain.TopicDyslexia,
			domain.TopicAnxiety, domain.TopicDepression, domain.TopicBreathing,
			domain.TopicSleep, domain.TopicBipolar, domain.TopicStress,
			domain.TopicGeneral,
		},
		CitationFormat: domain.CitationFormat{
			Publisher:    "US National Library of Medicine",
			Jurisdiction: "International",
			Type:         domain.CitationResearch,
		},
		Notes: "Peer-reviewed biomedical literature",
	},
	{
		ID:        "medlineplus",
		Name:      "MedlinePlus",
		ShortName: "MedlinePlus",
		Tier:      domain.TierA,
		Domains:   []string{"medlineplus.gov", "www.medlineplus.gov"},
		BaseURL:   "https://medlineplus.gov",
		Topics: []domain.Topic{
			domain.TopicADHD, domain.TopicAutism, domain.TopicDyslexia,
			domain.TopicAnxiety, domain.TopicDepression, domain.TopicBreathing,
			domain.TopicSleep, domain.TopicBipolar, domain.TopicStress,
			domain.TopicGeneral,
		},
		CitationFormat: domain.CitationFormat{
			Publisher:    "US National Library of Medicine",
			Jurisdiction: "International",
			Type:         domain.CitationClinicalGuideline,
		},
		Notes: "Evidence-informed health topic summaries",
	},
	{
		ID:        "cochrane",
		Name:      "Cochrane Library",
		ShortName: "Cochrane",
		Tier:      domain.TierA,
		Domains:   []string{"cochranelibrary.com", "www.cochranelibrary.com"},
		BaseURL:   "https://www.cochranelibrary.com",
		Topics: []domain.Topic{
			domain.TopicADHD, domain.TopicAutism, domain.TopicAnxiety,
			domain.TopicDepression, domain.TopicGeneral,
		},
		CitationFormat: domain.CitationFormat{
			Publisher:    "Cochrane",
			Jurisdiction: "International",
			Type:         domain.CitationResearch,
		},
		Notes: "Systematic reviews and meta-analyses",
	},
	{
		ID:        "who",
		Name:      "World Health Organization",
		ShortName: "WHO",
		Tier:      domain.TierA,
		Domains:   []string{"who.int", "www.who.int"},
		BaseURL:   "https://www.who.int",
		Topics:    []domain.Topic{domain.TopicGeneral, domain.TopicSafeguarding},
		CitationFormat: domain.CitationFormat{
			Publisher:    "World Health Organization",
			Jurisdiction: "International",
			Type:         domain.CitationClinicalGuideline,
		},
	},
	{
		ID:        "cdc",
		Name:      "Centers for Disease Control and Prevention",
		ShortName: "CDC",
		Tier:      domain.TierA,
		Domains:   []string{"cdc.gov", "www.cdc.gov"},
		BaseURL:   "https://www.cdc.gov",
		Topics:    []domain.Topic{domain.TopicADHD, domain.TopicAutism, domain.TopicGeneral},
		CitationFormat: domain.CitationFormat{
			Publisher:    "CDC",
			Jurisdiction: "US",
			Type:         domain.CitationClinicalGuideline,
		},
		Notes: "US public health authority",
	},

	// Tier B: UK support organisations, always labelled non-clinical.
	{
		ID:        "nas",
		Name:      "National Autistic Society",
		ShortName: "NAS",
		Tier:      domain.TierB,
		Domains:   []string{"autism.org.uk", "www.autism.org.uk"},
		BaseURL:   "https://www.autism.org.uk",
		Topics:    []domain.Topic{domain.TopicAutism},
		CitationFormat: domain.CitationFormat{
			Publisher:    "National Autistic Society",
			Jurisdiction: "UK",
			Type:         domain.CitationSupportOrg,
		},
		Notes: "Support and advocacy; not clinical authority",
	},
	{
		ID:        "adhd_foundation",
		Name:      "ADHD Foundation",
		ShortName: "ADHD Foundation",
		Tier:      domain.TierB,
		Domains:   []string{"adhdfoundation.org.uk", "www.adhdfoundation.org.uk"},
		BaseURL:   "https://www.adhdfoundation.org.uk",
		Topics:    []domain.Topic{domain.TopicADHD},
		CitationFormat: domain.CitationFormat{
			Publisher:    "ADHD Foundation",
			Jurisdiction: "UK",
			Type:         domain.CitationSupportOrg,
		},
		Notes: "Support and resources; not clinical authority",
	},
	{
		ID:        "mind",
		Name:      "Mind",
		ShortName: "Mind",
		Tier:      domain.TierB,
		Domains:   []string{"mind.org.uk", "www.mind.org.uk"},
		BaseURL:   "https://www.mind.org.uk",
		Topics: []domain.Topic{
			domain.TopicAnxiety, domain.TopicDepression, domain.TopicBipolar,
			domain.TopicStress, domain.TopicGeneral,
		},
		CitationFormat: domain.CitationFormat{
			Publisher:    "Mind",
			Jurisdiction: "UK",
			Type:         domain.CitationSupportOrg,
		},
		Notes: "Information and support; not clinical authority",
	},
	{
		ID:        "young_minds",
		Name:      "YoungMinds",
		ShortName: "YoungMinds",
		Tier:      domain.TierB,
		Domains:   []string{"youngminds.org.uk", "www.youngminds.org.uk"},
		BaseURL:   "https://www.youngminds.org.uk",
		Topics:    []domain.Topic{domain.TopicAnxiety, domain.TopicDepression, domain.TopicGeneral},
		CitationFormat: domain.CitationFormat{
			Publisher:    "YoungMinds",
			Jurisdiction: "UK",
			Type:         domain.CitationSupportOrg,
		},
		Notes: "Children and young people's mental health charity",
	},
	{
		ID:        "british_dyslexia",
		Name:      "British Dyslexia Association",
		ShortName: "BDA",
		Tier:      domain.TierB,
		Domains:   []string{"bdadyslexia.org.uk", "www.bdadyslexia.org.uk"},
		BaseURL:   "https://www.bdadyslexia.org.uk",
		Topics:    []domain.Topic{domain.TopicDyslexia},
		CitationFormat: domain.CitationFormat{
			Publisher:    "British Dyslexia Association",
			Jurisdiction: "UK",
			Type:         domain.CitationSupportOrg,
		},
		Notes: "Dyslexia support and advocacy organisation",
	},

	// Internal knowledge base pseudo-source. No domains: never citable.
	{
		ID:        KnowledgeBaseID,
		Name:      "Internal Knowledge Base",
		ShortName: "Knowledge Base",
		Tier:      domain.TierB,
		Domains:   nil,
		Topics:    []domain.Topic{domain.TopicGeneral},
		CitationFormat: domain.CitationFormat{
			Publisher: "Internal",
			Type:      domain.CitationSupportOrg,
		},
		Notes: "Routing target only; answers from it are not cited externally",
	},
}

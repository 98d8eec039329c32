package domain

// Topic is a health/neurodiversity topic recognised by the classifier
// and the evidence source registry.
type Topic string

// Recognised topics.
const (
	TopicADHD         Topic = "adhd"
	TopicAutism       Topic = "autism"
	TopicDyslexia     Topic = "dyslexia"
	TopicAnxiety      Topic = "anxiety"
	TopicDepression   Topic = "depression"
	TopicBreathing    Topic = "breathing"
	TopicSleep        Topic = "sleep"
	TopicBipolar      Topic = "bipolar"
	TopicStress       Topic = "stress"
	TopicBurnout      Topic = "burnout"
	TopicSafeguarding Topic = "safeguarding"

	// TopicGeneral is the deterministic fallback when no topic matches.
	TopicGeneral Topic = "general"
)

// IsValid returns true if the topic is recognised.
func (t Topic) IsValid() bool {
	switch t {
	case TopicADHD, TopicAutism, TopicDyslexia, TopicAnxiety, TopicDepression,
		TopicBreathing, TopicSleep, TopicBipolar, TopicStress, TopicBurnout,
		TopicSafeguarding, TopicGeneral:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t Topic) String() string {
	return string(t)
}

// AllTopics returns every recognised topic, general last.
func AllTopics() []Topic {
	return []Topic{
		TopicADHD,
		TopicAutism,
		TopicDyslexia,
		TopicAnxiety,
		TopicDepression,
		TopicBreathing,
		TopicSleep,
		TopicBipolar,
		TopicStress,
		TopicBurnout,
		TopicSafeguarding,
		TopicGeneral,
	}
}

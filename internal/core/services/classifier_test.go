package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// TestClassify tests query type and topic assignment across the
// precedence order.
func TestClassify(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name      string
		query     string
		wantType  domain.QueryType
		wantTopic domain.Topic
	}{
		{"navigation", "where is the breathing page", domain.QueryNavigation, domain.TopicBreathing},
		{"navigation link", "link to the sleep diary", domain.QueryNavigation, domain.TopicSleep},
		{"tool help", "how do I use the focus timer", domain.QueryToolHelp, domain.TopicADHD},
		{"tool help settings", "the settings won't save", domain.QueryToolHelp, domain.TopicGeneral},
		{"health evidence explicit", "what does the research say about ADHD and diet", domain.QueryHealthEvidence, domain.TopicADHD},
		{"health evidence via strategies", "strategies for managing ADHD focus", domain.QueryHealthEvidence, domain.TopicADHD},
		{"health evidence via topic only", "tell me about dyslexia", domain.QueryHealthEvidence, domain.TopicDyslexia},
		{"anxiety topic", "is therapy effective for anxiety", domain.QueryHealthEvidence, domain.TopicAnxiety},
		{"bipolar before depression", "manic and depressed mood swings", domain.QueryHealthEvidence, domain.TopicBipolar},
		{"burnout before stress", "burnout from work stress", domain.QueryHealthEvidence, domain.TopicBurnout},
		{"general fallback", "hello there", domain.QueryGeneralInfo, domain.TopicGeneral},
		{"case insensitive", "STRATEGIES FOR MANAGING ADHD", domain.QueryHealthEvidence, domain.TopicADHD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := router.Classify(tt.query, domain.QueryContext{})
			assert.Equal(t, tt.wantType, got.QueryType, "query type for %q", tt.query)
			assert.Equal(t, tt.wantTopic, got.Topic, "topic for %q", tt.query)
		})
	}
}

// TestClassify_PrecedenceNavigationFirst tests navigation wins even when
// evidence keywords also appear.
func TestClassify_PrecedenceNavigationFirst(t *testing.T) {
	router := newTestRouter()

	got := router.Classify("where can I find research about ADHD", domain.QueryContext{})
	assert.Equal(t, domain.QueryNavigation, got.QueryType)
	assert.Equal(t, domain.TopicADHD, got.Topic)
}

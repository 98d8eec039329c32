package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatCmd_Use(t *testing.T) {
	assert.Equal(t, "chat", chatCmd.Use)
}

func TestChatCmd_Long(t *testing.T) {
	assert.Contains(t, chatCmd.Long, "safeguarding gate")
}

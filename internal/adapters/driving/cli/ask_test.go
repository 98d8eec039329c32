package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

// cannedAssistant returns a fixed response, for exercising output
// formatting without a generation backend.
type cannedAssistant struct {
	resp *domain.AssistantResponse
}

func (a *cannedAssistant) Ask(_ context.Context, _ string, _ domain.QueryContext, _ []domain.ChatTurn) (*domain.AssistantResponse, error) {
	return a.resp, nil
}

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_Long(t *testing.T) {
	assert.Contains(t, askCmd.Long, "safeguarding gate")
	assert.Contains(t, askCmd.Long, "signposting")
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_EmergencyQueryGetsSignpostingOnly(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--jurisdiction", "UK", "I want to kill myself"})
	defer func() {
		rootCmd.SetArgs(nil)
		askJurisdiction = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "999")
	assert.Contains(t, buf.String(), "Immediate support")
}

func TestAskCmd_DegradedWithoutBackend(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "strategies for managing ADHD focus"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "can't generate a full answer right now")
	assert.Contains(t, buf.String(), "nhs")
}

func TestAskCmd_CitationsFollowPreference(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	citation := citationService.Create("nice", "NICE Guideline NG87", "https://nice.org.uk/NG87", "")
	require.NotNil(t, citation)

	prevAssistant := assistantService
	assistantService = &cannedAssistant{resp: &domain.AssistantResponse{
		Answer:    "Structured routines help.",
		Citations: citationService.Group([]domain.Citation{*citation}),
	}}
	defer func() {
		assistantService = prevAssistant
		rootCmd.SetArgs(nil)
	}()

	_, err := preferenceService.Update(domain.SectionAI, map[string]any{"showCitations": false})
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "strategies for managing ADHD focus"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Structured routines help.")
	assert.NotContains(t, buf.String(), "NG87")

	_, err = preferenceService.Update(domain.SectionAI, map[string]any{"showCitations": true})
	require.NoError(t, err)

	buf.Reset()
	rootCmd.SetArgs([]string{"ask", "strategies for managing ADHD focus"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "NG87")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "tips for better sleep"})
	defer func() {
		rootCmd.SetArgs(nil)
		askJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"degraded": true`)
	assert.Contains(t, buf.String(), `"routing"`)
}

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteCmd_Use(t *testing.T) {
	assert.Equal(t, "route [query]", routeCmd.Use)
}

func TestRouteCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"route"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestRouteCmd_HealthEvidenceQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"route", "--jurisdiction", "UK", "strategies for managing ADHD focus"})
	defer func() {
		rootCmd.SetArgs(nil)
		routeJurisdiction = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Health Evidence")
	assert.Contains(t, out, "Topic:             adhd")
	assert.Contains(t, out, "nhs, nice, pubmed, kb")
	assert.Contains(t, out, "Priority:          normal")
}

func TestRouteCmd_EmergencyQuery(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"route", "I want to kill myself"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "escalate_only")
	assert.Contains(t, out, "Priority:          immediate")
	assert.Contains(t, out, "Needs generation:  false")
}

func TestRouteCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"route", "--json", "where is the breathing tool"})
	defer func() {
		rootCmd.SetArgs(nil)
		routeJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"QueryType": "navigation"`)
}

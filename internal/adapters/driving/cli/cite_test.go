package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCiteCmd_Use(t *testing.T) {
	assert.Equal(t, "cite [source-id] [url]", citeCmd.Use)
}

func TestCiteCmd_ValidSourceURL(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cite", "--title", "NG87", "nice", "https://www.nice.org.uk/guidance/ng87"})
	defer func() {
		rootCmd.SetArgs(nil)
		citeTitle = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "NG87")
	assert.Contains(t, buf.String(), "nice.org.uk")
}

func TestCiteCmd_RejectsOffAllowlistURL(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cite", "nice", "https://example.com/fake-guideline"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Rejected")
}

func TestCiteResolveCmd_FindsCoveringSource(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cite", "resolve", "https://www.nhs.uk/conditions/adhd/"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Source: nhs")
}

func TestCiteResolveCmd_UnknownHost(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"cite", "resolve", "https://random-blog.example/adhd"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No approved source covers")
}

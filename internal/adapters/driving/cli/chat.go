package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/neurobreath/nbassist/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Opens an interactive terminal chat with the assistant. Every
question passes the same safeguarding gate and citation allowlist as
the ask command; conversation history is carried between turns.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	ports := &tui.Ports{
		Assistant:  assistantService,
		Citations:  citationService,
		Preference: preferenceService,
	}

	return tui.Run(cmd.Context(), ports)
}

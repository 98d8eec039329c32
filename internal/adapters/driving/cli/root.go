// Package cli provides the command-line interface for nbassist.
// Commands are thin adapters over the driving ports; all behaviour
// lives in the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/core/ports/driving"
	"github.com/neurobreath/nbassist/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	assistantService  driving.AssistantService
	routerService     driving.RouterService
	citationService   driving.CitationService
	preferenceService driving.PreferenceService
	sourceRegistry    driven.SourceRegistry
	configStore       driven.ConfigStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nbassist",
	Short: "Safety-gated routing for health and wellbeing assistants",
	Long: `nbassist routes questions for embedded health and wellbeing
assistants: every query passes a safeguarding gate, gets classified,
and is answered only with citations from an allowlisted evidence
registry. Crisis queries are never answered by a model; they receive
jurisdiction-specific signposting instead.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Services bundles everything the commands need. Main wires real
// adapters; tests wire fakes.
type Services struct {
	Assistant  driving.AssistantService
	Router     driving.RouterService
	Citations  driving.CitationService
	Preference driving.PreferenceService
	Registry   driven.SourceRegistry
	Config     driven.ConfigStore
}

// SetServices injects service implementations. Must be called before
// Execute.
func SetServices(s Services) {
	assistantService = s.Assistant
	routerService = s.Router
	citationService = s.Citations
	preferenceService = s.Preference
	sourceRegistry = s.Registry
	configStore = s.Config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

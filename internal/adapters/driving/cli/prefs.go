package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neurobreath/nbassist/internal/core/domain"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage user preferences",
	Long: `View and configure the stored preference document: text-to-speech,
accessibility, regional and AI answer-style settings.

Use subcommands to change individual settings or export/import the
whole document.`,
	RunE: runPrefsShow,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE:  runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set [section] [key=value ...]",
	Short: "Update preference fields",
	Long: `Update one or more fields within a preference section.

Sections and their fields:
  tts            enabled, autoSpeak, rate, preferUKVoice, filterNonAlphanumeric
  accessibility  readingLevel, dyslexiaFriendly, reducedMotion, textSize, highContrast
  regional       jurisdiction
  ai             verbosity, showCitations, preferredRole

Examples:
  nbassist prefs set tts rate=1.5
  nbassist prefs set regional jurisdiction=US
  nbassist prefs set ai verbosity=concise showCitations=true`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPrefsSet,
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default preferences",
	RunE:  runPrefsReset,
}

var prefsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export preferences as JSON",
	Long:  `Writes the preference document as JSON to the given file, or to stdout when no file is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPrefsExport,
}

var prefsImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import preferences from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsImport,
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsResetCmd)
	prefsCmd.AddCommand(prefsExportCmd)
	prefsCmd.AddCommand(prefsImportCmd)
	rootCmd.AddCommand(prefsCmd)
}

func runPrefsShow(cmd *cobra.Command, _ []string) error {
	if preferenceService == nil {
		return errors.New("preference service not configured")
	}

	prefs := preferenceService.Load()
	printPreferences(cmd, prefs)
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	if preferenceService == nil {
		return errors.New("preference service not configured")
	}

	section := domain.PreferenceSection(args[0])
	patch := make(map[string]any, len(args)-1)
	for _, pair := range args[1:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid assignment %q, expected key=value", pair)
		}
		patch[key] = parsePrefValue(value)
	}

	prefs, err := preferenceService.Update(section, patch)
	if err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}

	cmd.Printf("Updated [%s].\n\n", section)
	printPreferences(cmd, prefs)
	return nil
}

func runPrefsReset(cmd *cobra.Command, _ []string) error {
	if preferenceService == nil {
		return errors.New("preference service not configured")
	}

	prefs := preferenceService.Reset()
	cmd.Println("Preferences reset to defaults.")
	cmd.Println()
	printPreferences(cmd, prefs)
	return nil
}

func runPrefsExport(cmd *cobra.Command, args []string) error {
	if preferenceService == nil {
		return errors.New("preference service not configured")
	}

	data, err := preferenceService.Export()
	if err != nil {
		return fmt.Errorf("failed to export preferences: %w", err)
	}

	if len(args) == 0 {
		cmd.Println(string(data))
		return nil
	}

	if err := os.WriteFile(args[0], data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}
	cmd.Printf("Preferences exported to %s\n", args[0])
	return nil
}

func runPrefsImport(cmd *cobra.Command, args []string) error {
	if preferenceService == nil {
		return errors.New("preference service not configured")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	prefs, err := preferenceService.Import(data)
	if err != nil {
		return fmt.Errorf("failed to import preferences: %w", err)
	}

	cmd.Printf("Preferences imported from %s\n\n", args[0])
	printPreferences(cmd, prefs)
	return nil
}

// parsePrefValue interprets a CLI value the way the patch layer expects:
// booleans and numbers are typed, everything else stays a string.
func parsePrefValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func printPreferences(cmd *cobra.Command, prefs domain.UserPreferences) {
	cmd.Println("Current Preferences")
	cmd.Println("===================")
	cmd.Println()

	cmd.Println("[tts]")
	cmd.Printf("  enabled:               %t\n", prefs.TTS.Enabled)
	cmd.Printf("  autoSpeak:             %t\n", prefs.TTS.AutoSpeak)
	cmd.Printf("  rate:                  %.2f\n", prefs.TTS.Rate)
	cmd.Printf("  preferUKVoice:         %t\n", prefs.TTS.PreferUKVoice)
	cmd.Printf("  filterNonAlphanumeric: %t\n", prefs.TTS.FilterNonAlphanumeric)
	cmd.Println()

	cmd.Println("[accessibility]")
	cmd.Printf("  readingLevel:     %s\n", prefs.Accessibility.ReadingLevel)
	cmd.Printf("  dyslexiaFriendly: %t\n", prefs.Accessibility.DyslexiaFriendly)
	cmd.Printf("  reducedMotion:    %t\n", prefs.Accessibility.ReducedMotion)
	cmd.Printf("  textSize:         %s\n", prefs.Accessibility.TextSize)
	cmd.Printf("  highContrast:     %t\n", prefs.Accessibility.HighContrast)
	cmd.Println()

	cmd.Println("[regional]")
	cmd.Printf("  jurisdiction: %s\n", prefs.Regional.Jurisdiction)
	cmd.Println()

	cmd.Println("[ai]")
	cmd.Printf("  verbosity:     %s\n", prefs.AI.Verbosity)
	cmd.Printf("  showCitations: %t\n", prefs.AI.ShowCitations)
	cmd.Printf("  preferredRole: %s\n", prefs.AI.PreferredRole)

	if !prefs.LastUpdated.IsZero() {
		cmd.Println()
		cmd.Printf("Last updated: %s\n", prefs.LastUpdated.Format("2006-01-02 15:04:05"))
	}
}

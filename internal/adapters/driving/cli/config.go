package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	configfile "github.com/neurobreath/nbassist/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
	Long: `View and change application configuration: the generation backend,
storage backend and template directory. Configuration is stored in
config.toml under the application directory.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value by dot-notation key.

Common keys:
  generator.model     chat model name (default gpt-4o-mini)
  generator.base_url  OpenAI-compatible endpoint override
  storage.backend     sqlite, file or memory
  storage.dir         storage directory override
  templates.dir       prompt template directory override
  templates.watch     reload templates on change (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Set the generator API key",
	Long:  `Prompts for the generation backend API key without echoing it.`,
	RunE:  runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[generator]")
	if key := configStore.GetString(configfile.KeyGeneratorAPIKey); key != "" {
		cmd.Printf("  api_key:  %s\n", maskAPIKey(key))
	} else {
		cmd.Printf("  api_key:  (not set, degraded mode)\n")
	}
	printConfigValue(cmd, "model", configfile.KeyGeneratorModel)
	printConfigValue(cmd, "base_url", configfile.KeyGeneratorBaseURL)
	cmd.Println()

	cmd.Println("[storage]")
	printConfigValue(cmd, "backend", configfile.KeyStorageBackend)
	printConfigValue(cmd, "dir", configfile.KeyStorageDir)
	cmd.Println()

	cmd.Println("[templates]")
	printConfigValue(cmd, "dir", configfile.KeyTemplatesDir)
	cmd.Printf("  watch:    %t\n", configStore.GetBool(configfile.KeyTemplatesWatch))
	cmd.Println()

	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	var value any = raw
	switch strings.ToLower(raw) {
	case "true":
		value = true
	case "false":
		value = false
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("API key: ")
	key := readSecret()
	cmd.Println()

	if key == "" {
		return errors.New("no API key entered")
	}

	if err := configStore.Set(configfile.KeyGeneratorAPIKey, key); err != nil {
		return fmt.Errorf("failed to set API key: %w", err)
	}

	cmd.Printf("API key saved (%s)\n", maskAPIKey(key))
	return nil
}

func printConfigValue(cmd *cobra.Command, label, key string) {
	value := configStore.GetString(key)
	if value == "" {
		value = "(default)"
	}
	cmd.Printf("  %-8s  %s\n", label+":", value)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	// Read without echo when attached to a terminal.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

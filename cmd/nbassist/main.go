// Command nbassist is the safety-gated routing CLI for health and
// wellbeing assistants.
package main

import (
	"fmt"
	"os"

	configfile "github.com/neurobreath/nbassist/internal/adapters/driven/config/file"
	"github.com/neurobreath/nbassist/internal/adapters/driven/llm/openai"
	"github.com/neurobreath/nbassist/internal/adapters/driven/registry"
	"github.com/neurobreath/nbassist/internal/adapters/driven/safeguarding"
	filestore "github.com/neurobreath/nbassist/internal/adapters/driven/storage/file"
	"github.com/neurobreath/nbassist/internal/adapters/driven/storage/memory"
	"github.com/neurobreath/nbassist/internal/adapters/driven/storage/sqlite"
	"github.com/neurobreath/nbassist/internal/adapters/driven/templates"
	"github.com/neurobreath/nbassist/internal/adapters/driving/cli"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/core/services"
	"github.com/neurobreath/nbassist/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	kv, err := openKVStore(cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer kv.Close()

	tmpl, err := templates.NewStore(cfg.GetString(configfile.KeyTemplatesDir))
	if err != nil {
		return fmt.Errorf("open templates: %w", err)
	}
	if cfg.GetBool(configfile.KeyTemplatesWatch) {
		if err := tmpl.Watch(); err != nil {
			logger.Warn("Template watching disabled: %v", err)
		}
		defer tmpl.Close()
	}

	reg := registry.New()
	router := services.NewRouterService(safeguarding.New())
	citations := services.NewCitationService(reg)
	preferences := services.NewPreferenceService(kv)
	prompts := services.NewPromptService(tmpl)
	assistant := services.NewAssistantService(router, prompts, citations, preferences, newGenerator(cfg))

	cli.SetServices(cli.Services{
		Assistant:  assistant,
		Router:     router,
		Citations:  citations,
		Preference: preferences,
		Registry:   reg,
		Config:     cfg,
	})

	return cli.Execute()
}

// openKVStore selects the preference storage backend from config.
// SQLite is the default; "file" and "memory" are for constrained or
// throwaway environments.
func openKVStore(cfg driven.ConfigStore) (driven.KVStore, error) {
	dir := cfg.GetString(configfile.KeyStorageDir)
	switch cfg.GetString(configfile.KeyStorageBackend) {
	case "memory":
		return memory.NewKVStore(), nil
	case "file":
		return filestore.NewKVStore(dir)
	default:
		return sqlite.NewStore(dir)
	}
}

// newGenerator builds the generation backend, or nil for degraded mode.
// The API key comes from config, falling back to OPENAI_API_KEY.
func newGenerator(cfg driven.ConfigStore) driven.Generator {
	apiKey := cfg.GetString(configfile.KeyGeneratorAPIKey)
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		logger.Debug("No generator API key configured, running degraded")
		return nil
	}

	gen, err := openai.New(openai.Config{
		APIKey:  apiKey,
		BaseURL: cfg.GetString(configfile.KeyGeneratorBaseURL),
		Model:   cfg.GetString(configfile.KeyGeneratorModel),
	})
	if err != nil {
		logger.Warn("Generator unavailable, running degraded: %v", err)
		return nil
	}
	return gen
}

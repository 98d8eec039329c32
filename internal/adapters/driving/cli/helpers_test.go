package cli

import (
	"os"

	configfile "github.com/neurobreath/nbassist/internal/adapters/driven/config/file"
	"github.com/neurobreath/nbassist/internal/adapters/driven/registry"
	"github.com/neurobreath/nbassist/internal/adapters/driven/safeguarding"
	"github.com/neurobreath/nbassist/internal/adapters/driven/storage/memory"
	"github.com/neurobreath/nbassist/internal/core/services"
)

// setupTestServices wires the commands to real services over in-memory
// adapters, with no generation backend. Returns a cleanup that restores
// the previous wiring.
func setupTestServices() func() {
	prevAssistant := assistantService
	prevRouter := routerService
	prevCitations := citationService
	prevPreference := preferenceService
	prevRegistry := sourceRegistry
	prevConfig := configStore

	cfgDir, err := os.MkdirTemp("", "nbassist-cli-test")
	if err != nil {
		panic(err)
	}
	cfg, err := configfile.NewConfigStore(cfgDir)
	if err != nil {
		panic(err)
	}

	reg := registry.New()
	router := services.NewRouterService(safeguarding.New())
	citations := services.NewCitationService(reg)
	preferences := services.NewPreferenceService(memory.NewKVStore())
	prompts := services.NewPromptService(nil)
	assistant := services.NewAssistantService(router, prompts, citations, preferences, nil)

	SetServices(Services{
		Assistant:  assistant,
		Router:     router,
		Citations:  citations,
		Preference: preferences,
		Registry:   reg,
		Config:     cfg,
	})

	return func() {
		assistantService = prevAssistant
		routerService = prevRouter
		citationService = prevCitations
		preferenceService = prevPreference
		sourceRegistry = prevRegistry
		configStore = prevConfig
		os.RemoveAll(cfgDir)
	}
}

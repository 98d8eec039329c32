package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/neurobreath/nbassist/internal/core/domain"
	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/core/ports/driving"
	"github.com/neurobreath/nbassist/internal/logger"
)

// Ensure PreferenceService implements the interface.
var _ driving.PreferenceService = (*PreferenceService)(nil)

// preferencesKey is the single storage key the whole document lives under.
const preferencesKey = "user_preferences"

// PreferenceService manages the versioned preference document. All
// operations serialise on an internal mutex; concurrent saves are
// last-writer-wins at the document level.
type PreferenceService struct {
	mu    sync.Mutex
	store driven.KVStore
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(store driven.KVStore) *PreferenceService {
	return &PreferenceService{store: store}
}

// Load returns the current preferences. It never fails: a missing,
// corrupt or structurally invalid document yields defaults, and an
// old-version document is migrated and persisted before being returned.
func (s *PreferenceService) Load() domain.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *PreferenceService) loadLocked() domain.UserPreferences {
	raw, found, err := s.store.Get(preferencesKey)
	if err != nil {
		logger.Warn("Preference load failed, using defaults: %v", err)
		return domain.DefaultUserPreferences()
	}
	if !found {
		return domain.DefaultUserPreferences()
	}

	var prefs domain.UserPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		logger.Warn("Preference document corrupt, using defaults: %v", err)
		return domain.DefaultUserPreferences()
	}

	if prefs.Version < domain.CurrentPreferencesVersion {
		prefs = migratePreferences(prefs)
		s.saveLocked(&prefs)
	}

	if err := prefs.Validate(); err != nil {
		logger.Warn("Preference document invalid, using defaults: %v", err)
		return domain.DefaultUserPreferences()
	}
	return prefs
}

// Save persists the document, rewriting version and lastUpdated.
// Returns false when persistence failed.
func (s *PreferenceService) Save(prefs domain.UserPreferences) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(&prefs)
}

func (s *PreferenceService) saveLocked(prefs *domain.UserPreferences) bool {
	prefs.Version = domain.CurrentPreferencesVersion
	prefs.LastUpdated = time.Now().UTC()

	raw, err := json.Marshal(prefs)
	if err != nil {
		logger.Warn("Preference save failed to serialise: %v", err)
		return false
	}
	if err := s.store.Set(preferencesKey, raw); err != nil {
		logger.Warn("Preference save failed: %v", err)
		return false
	}
	return true
}

// Update applies a partial patch to one section and persists the
// result. Unknown sections and unknown fields are rejected with
// domain.ErrInvalidInput; a patch producing an invalid document is
// rejected with domain.ErrInvalidPreferences and nothing is persisted.
func (s *PreferenceService) Update(section domain.PreferenceSection, patch map[string]any) (domain.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.loadLocked()

	if !section.IsValid() {
		return prefs, fmt.Errorf("%w: unknown preference section %q", domain.ErrInvalidInput, section)
	}

	if err := applySectionPatch(&prefs, section, patch); err != nil {
		return prefs, err
	}
	if err := prefs.Validate(); err != nil {
		return s.loadLocked(), err
	}
	if !s.saveLocked(&prefs) {
		return prefs, domain.ErrStorageFailure
	}
	return prefs, nil
}

// Reset restores defaults and persists them.
func (s *PreferenceService) Reset() domain.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := domain.DefaultUserPreferences()
	s.saveLocked(&prefs)
	return prefs
}

// Export serialises the current document for backup.
func (s *PreferenceService) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.loadLocked()
	return json.MarshalIndent(prefs, "", "  ")
}

// Import replaces the document with a previously exported one.
func (s *PreferenceService) Import(data []byte) (domain.UserPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prefs domain.UserPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return s.loadLocked(), fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if prefs.Version < domain.CurrentPreferencesVersion {
		prefs = migratePreferences(prefs)
	}
	if err := prefs.Validate(); err != nil {
		return s.loadLocked(), err
	}
	if !s.saveLocked(&prefs) {
		return prefs, domain.ErrStorageFailure
	}
	return prefs, nil
}

// migratePreferences upgrades an older document to the current schema.
// Version 1 predates the ai section; its fields are filled from
// defaults while everything the old document did carry is kept.
func migratePreferences(prefs domain.UserPreferences) domain.UserPreferences {
	defaults := domain.DefaultUserPreferences()

	if prefs.Version <= 1 {
		if prefs.AI.Verbosity == "" {
			prefs.AI = defaults.AI
		}
	}

	// Fields a partial or hand-edited document may have left zeroed.
	if prefs.TTS.Rate == 0 {
		prefs.TTS.Rate = defaults.TTS.Rate
	}
	if prefs.Accessibility.ReadingLevel == "" {
		prefs.Accessibility.ReadingLevel = defaults.Accessibility.ReadingLevel
	}
	if prefs.Accessibility.TextSize == "" {
		prefs.Accessibility.TextSize = defaults.Accessibility.TextSize
	}
	if !prefs.Regional.Jurisdiction.IsValid() {
		prefs.Regional.Jurisdiction = defaults.Regional.Jurisdiction
	}
	if !prefs.AI.PreferredRole.IsValid() {
		prefs.AI.PreferredRole = defaults.AI.PreferredRole
	}

	prefs.Version = domain.CurrentPreferencesVersion
	return prefs
}

// applySectionPatch applies a field patch to one section. Field names
// match the JSON tags of the section structs.
func applySectionPatch(prefs *domain.UserPreferences, section domain.PreferenceSection, patch map[string]any) error {
	for field, value := range patch {
		var err error
		switch section {
		case domain.SectionTTS:
			err = patchTTS(&prefs.TTS, field, value)
		case domain.SectionAccessibility:
			err = patchAccessibility(&prefs.Accessibility, field, value)
		case domain.SectionRegional:
			err = patchRegional(&prefs.Regional, field, value)
		case domain.SectionAI:
			err = patchAI(&prefs.AI, field, value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func patchTTS(tts *domain.TTSPreferences, field string, value any) error {
	switch field {
	case "enabled":
		return assignBool(&tts.Enabled, field, value)
	case "autoSpeak":
		return assignBool(&tts.AutoSpeak, field, value)
	case "rate":
		return assignFloat(&tts.Rate, field, value)
	case "preferUKVoice":
		return assignBool(&tts.PreferUKVoice, field, value)
	case "filterNonAlphanumeric":
		return assignBool(&tts.FilterNonAlphanumeric, field, value)
	default:
		return unknownField(domain.SectionTTS, field)
	}
}

func patchAccessibility(acc *domain.AccessibilityPreferences, field string, value any) error {
	switch field {
	case "readingLevel":
		return assignString(&acc.ReadingLevel, field, value)
	case "dyslexiaFriendly":
		return assignBool(&acc.DyslexiaFriendly, field, value)
	case "reducedMotion":
		return assignBool(&acc.ReducedMotion, field, value)
	case "textSize":
		return assignString(&acc.TextSize, field, value)
	case "highContrast":
		return assignBool(&acc.HighContrast, field, value)
	default:
		return unknownField(domain.SectionAccessibility, field)
	}
}

func patchRegional(reg *domain.RegionalPreferences, field string, value any) error {
	switch field {
	case "jurisdiction":
		str, ok := value.(string)
		if !ok {
			return wrongType(field, "string")
		}
		reg.Jurisdiction = domain.Jurisdiction(str)
		return nil
	default:
		return unknownField(domain.SectionRegional, field)
	}
}

func patchAI(ai *domain.AIPreferences, field string, value any) error {
	switch field {
	case "verbosity":
		return assignString(&ai.Verbosity, field, value)
	case "showCitations":
		return assignBool(&ai.ShowCitations, field, value)
	case "preferredRole":
		str, ok := value.(string)
		if !ok {
			return wrongType(field, "string")
		}
		ai.PreferredRole = domain.AssistantRole(str)
		return nil
	default:
		return unknownField(domain.SectionAI, field)
	}
}

func assignBool(dst *bool, field string, value any) error {
	v, ok := value.(bool)
	if !ok {
		return wrongType(field, "bool")
	}
	*dst = v
	return nil
}

func assignString(dst *string, field string, value any) error {
	v, ok := value.(string)
	if !ok {
		return wrongType(field, "string")
	}
	*dst = v
	return nil
}

// assignFloat accepts ints too, since JSON-decoded patches carry
// whole numbers as float64 but Go callers may pass int literals.
func assignFloat(dst *float64, field string, value any) error {
	switch v := value.(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	default:
		return wrongType(field, "number")
	}
	return nil
}

func unknownField(section domain.PreferenceSection, field string) error {
	return fmt.Errorf("%w: unknown field %q in section %q", domain.ErrInvalidInput, field, section)
}

func wrongType(field, want string) error {
	return fmt.Errorf("%w: field %q must be a %s", domain.ErrInvalidInput, field, want)
}

package driving

import "github.com/neurobreath/nbassist/internal/core/domain"

// PreferenceService manages the versioned user preference document.
// Load never fails: corrupt or missing documents yield defaults.
type PreferenceService interface {
	// Load returns the current preferences, migrating older schema
	// versions and falling back to defaults on any failure.
	Load() domain.UserPreferences

	// Save persists the document, rewriting version and lastUpdated.
	// Returns false when persistence failed; the document in memory is
	// unchanged either way.
	Save(prefs domain.UserPreferences) bool

	// Update applies a partial patch to one section and persists the
	// result. Unknown sections and unknown fields within a section are
	// rejected with domain.ErrInvalidInput.
	Update(section domain.PreferenceSection, patch map[string]any) (domain.UserPreferences, error)

	// Reset restores defaults and persists them.
	Reset() domain.UserPreferences

	// Export serialises the current document for backup.
	Export() ([]byte, error)

	// Import replaces the document with a previously exported one,
	// migrating and validating before persisting.
	Import(data []byte) (domain.UserPreferences, error)
}

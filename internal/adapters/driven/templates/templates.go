// Package templates provides the file-backed prompt template store.
// Templates are loaded from user-editable files with fallback to
// embedded defaults, so operators can tune assistant personas without a
// rebuild. An optional watcher reloads the cache when a file changes.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/neurobreath/nbassist/internal/core/ports/driven"
	"github.com/neurobreath/nbassist/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.TemplateStore = (*Store)(nil)

// defaultTemplates contains embedded defaults, used when a user file
// does not exist and as the initial content for new files. The core
// prompt composer carries its own built-ins too, so an empty store is
// never fatal.
var defaultTemplates = map[string]string{
	driven.TemplateBuddyPersona: `You are Breathing Buddy, a warm, encouraging guide embedded in a neurodiversity and wellbeing website. You help visitors understand the current page and find their way around the site. You speak plainly, one idea at a time.`,

	driven.TemplateCoachPersona: `You are a supportive wellbeing coach for people with ADHD, autism, dyslexia and related conditions. You suggest small, concrete, evidence-based steps. You never diagnose and never recommend medication changes.`,

	driven.TemplateBlogPersona: `You are a research and education assistant writing about neurodiversity and mental wellbeing. You summarise evidence accurately, distinguish established findings from emerging research, and always attribute claims.`,

	driven.TemplateNarratorPersona: `You are a calm narrator reading page content aloud. You read what is on the page in a steady, gentle voice. You do not add commentary, advice or health claims of your own.`,

	driven.TemplateSafetyRules: `Safety rules (these override everything above):
- You are not a clinician. Never diagnose, never recommend starting, stopping or changing medication.
- If the user describes crisis, self-harm or danger, stop answering and direct them to the crisis services for their region.
- Never invent statistics, study results or source names. If you are not sure, say so.
- Only cite sources from the approved list you were given. Never cite anything else.
- Be honest about uncertainty. "I don't know" is always an acceptable answer.`,
}

// Store loads templates from user-editable files on disk.
//
// The store uses lazy initialisation - files are only created when
// first accessed, not in the constructor. This makes testing easier and
// avoids unexpected I/O.
type Store struct {
	mu       sync.RWMutex
	dir      string
	cache    map[string]string
	initOnce sync.Once
	initErr  error

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewStore creates a file-based template store. If dir is empty,
// defaults to ~/.nbassist/templates/.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(home, ".nbassist", "templates")
	}

	return &Store{
		dir:   dir,
		cache: make(map[string]string),
	}, nil
}

// Load returns the template for the given name. On first call,
// initialises the template directory and writes default files. Falls
// back to the embedded default when the file is missing or unreadable.
func (s *Store) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if tmpl, ok := defaultTemplates[name]; ok {
			return tmpl, nil
		}
		return "", fmt.Errorf("template store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if tmpl, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return tmpl, nil
	}
	s.mu.RUnlock()

	tmpl, err := s.loadFromFile(name)
	if err != nil {
		if def, ok := defaultTemplates[name]; ok {
			return def, nil
		}
		return "", fmt.Errorf("load template %q: %w", name, err)
	}

	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = tmpl
	}
	s.mu.Unlock()
	return tmpl, nil
}

// Reload clears the cache, forcing fresh loads on next access.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]string)
}

// Watch starts watching the template directory and reloads the cache
// whenever a template file is written. Call Close to stop.
func (s *Store) Watch() error {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return fmt.Errorf("template store init failed: %w", s.initErr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(s.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.watchLoop(watcher, s.done)
	return nil
}

// Close stops the watcher if one is running.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	<-s.done
	s.watcher = nil
	return err
}

func (s *Store) watchLoop(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				if strings.HasSuffix(event.Name, ".txt") {
					logger.Debug("Template changed, reloading: %s", event.Name)
					s.Reload()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Template watcher error: %v", err)
		}
	}
}

// initialise creates the template directory and writes default files
// that don't already exist.
func (s *Store) initialise() {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		s.initErr = fmt.Errorf("create template directory: %w", err)
		return
	}

	for name, content := range defaultTemplates {
		path := s.filename(name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			s.initErr = fmt.Errorf("write default template %q: %w", name, err)
			return
		}
	}
}

func (s *Store) loadFromFile(name string) (string, error) {
	raw, err := os.ReadFile(s.filename(name))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *Store) filename(name string) string {
	return filepath.Join(s.dir, name+".txt")
}

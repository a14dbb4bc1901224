package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	kerrors "github.com/PolarWolf314/obslog/internal/errors"
	"github.com/PolarWolf314/obslog/internal/target"
)

// Recognised settings keys.
const (
	KeyAPIKey     = "api_key"
	KeyTargetFile = "target_file"
)

// Store is a string-to-string map persisted as a flat TOML table.
type Store struct {
	path   string
	values map[string]string
}

// NewStore returns an empty store that saves to path.
func NewStore(path string) *Store {
	return &Store{path: path, values: make(map[string]string)}
}

// LoadStore reads the store at path. A missing file gives an empty store.
func LoadStore(path string) (*Store, error) {
	store := NewStore(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return store, nil
	}

	if err := LoadTOML(path, &store.values); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if store.values == nil {
		store.values = make(map[string]string)
	}

	return store, nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key in memory. Call Save to persist it.
func (s *Store) Set(key, value string) {
	s.values[key] = value
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the file the store saves to.
func (s *Store) Path() string {
	return s.path
}

// Save flushes the store to disk.
func (s *Store) Save() error {
	if err := SaveTOML(s.path, s.values); err != nil {
		return fmt.Errorf("saving settings to %s: %v: %w", s.path, err, kerrors.ErrSettingsNotSaved)
	}
	return nil
}

// Settings is the working configuration for one invocation.
type Settings struct {
	store *Store

	// LoadErr records why the stored settings were discarded, if they were.
	LoadErr error
}

// LoadSettings loads the settings file at path. An unreadable or corrupt
// file is replaced by empty settings bound to the same path. Only the
// recognised keys are kept and target_file defaults to the daily note.
func LoadSettings(path string) *Settings {
	settings := &Settings{store: NewStore(path)}

	loaded, err := LoadStore(path)
	if err != nil {
		settings.LoadErr = err
	} else {
		for _, key := range []string{KeyAPIKey, KeyTargetFile} {
			if v, ok := loaded.Get(key); ok {
				settings.store.Set(key, v)
			}
		}
	}

	if _, ok := settings.store.Get(KeyTargetFile); !ok {
		settings.store.Set(KeyTargetFile, target.DefaultTarget)
	}

	return settings
}

// NewSettings wraps an existing store without loading or defaulting.
func NewSettings(store *Store) *Settings {
	return &Settings{store: store}
}

// APIKey returns the stored API key.
func (s *Settings) APIKey() (string, bool) {
	return s.store.Get(KeyAPIKey)
}

// SetAPIKey replaces the API key in memory.
func (s *Settings) SetAPIKey(key string) {
	s.store.Set(KeyAPIKey, key)
}

// TargetFile returns the stored, encoded target path.
func (s *Settings) TargetFile() (string, bool) {
	return s.store.Get(KeyTargetFile)
}

// SetTargetFile replaces the encoded target path in memory.
func (s *Settings) SetTargetFile(path string) {
	s.store.Set(KeyTargetFile, path)
}

// Save persists the settings.
func (s *Settings) Save() error {
	return s.store.Save()
}

// Path returns the settings file location.
func (s *Settings) Path() string {
	return s.store.Path()
}

// Dir returns the directory holding the settings file.
func (s *Settings) Dir() string {
	return filepath.Dir(s.store.Path())
}

// Package trust maintains the Fleet Agent Manager trust store: a JSON
// file mapping URLs to either a pinned TLS leaf certificate (PEM) or the
// disabled-trust marker. The agent manager later connects to those URLs
// trusting only the pinned certificate, or skipping trust establishment
// entirely for disabled entries.
package trust

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
)

// FilePermissions are enforced after every write: owner read-write,
// group and other read-only. The trust file must never be left
// world-writable.
const FilePermissions = 0o644

// Store is the in-memory trust store. Keys are the literal URL strings
// as provided by callers; there is no normalization, so
// "https://host" and "https://host/" are distinct entries.
type Store struct {
	entries map[string]Entry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: map[string]Entry{}}
}

// Get returns the entry for url, if any.
func (s *Store) Get(url string) (Entry, bool) {
	e, ok := s.entries[url]
	return e, ok
}

// Set replaces any existing entry for url.
func (s *Store) Set(url string, e Entry) {
	s.entries[url] = e
}

// Remove deletes the entry for url, if present.
func (s *Store) Remove(url string) {
	delete(s.entries, url)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// URLs returns all entry keys in sorted order.
func (s *Store) URLs() []string {
	urls := make([]string, 0, len(s.entries))
	for u := range s.entries {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// Load reads the trust store from path. A missing file is not an error:
// it yields an empty store. An unreadable or malformed file is
// propagated to the caller; there is no partial recovery.
func Load(logger *log.Logger, path string) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Infof("Agent manager trust doesn't exist at %s, using empty trust", path)
		return NewStore(), nil
	}

	logger.Infof("Loading agent manager trust from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trust file %s: %w", path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing trust file %s: %w", path, err)
	}

	s := NewStore()
	for url, v := range raw {
		s.entries[url] = entryFromValue(v)
	}
	return s, nil
}

// Save serializes the full store to path, overwriting prior content,
// then sets the file permissions. The write-then-chmod order matches the
// tool this replaces; permissions end up at FilePermissions regardless
// of what the file had before.
func Save(logger *log.Logger, path string, s *Store) error {
	logger.Infof("Storing agent manager trust to %s", path)

	raw := make(map[string]string, len(s.entries))
	for url, e := range s.entries {
		raw[url] = e.marshalValue()
	}

	data, err := json.MarshalIndent(raw, "", "   ")
	if err != nil {
		return fmt.Errorf("serializing trust store: %w", err)
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing trust file %s: %w", path, err)
	}
	if err := os.Chmod(path, FilePermissions); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	return nil
}

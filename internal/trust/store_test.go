package trust

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCertPEM = "-----BEGIN CERTIFICATE-----\nZmFrZS1jZXJ0aWZpY2F0ZQ==\n-----END CERTIFICATE-----\n"

func testLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent-trust.json")

	s, err := Load(testLogger(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent-trust.json")

	s := NewStore()
	s.Set("https://a.example", Pinned(testCertPEM))
	s.Set("https://b.example", Disabled())
	require.NoError(t, Save(testLogger(), path, s))

	loaded, err := Load(testLogger(), path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	e, ok := loaded.Get("https://a.example")
	require.True(t, ok)
	assert.Equal(t, KindPinned, e.Kind)
	assert.Equal(t, testCertPEM, e.CertPEM)

	e, ok = loaded.Get("https://b.example")
	require.True(t, ok)
	assert.Equal(t, KindDisabled, e.Kind)
}

func TestSaveWritesDisabledMarker(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent-trust.json")

	s := NewStore()
	s.Set("https://b.example", Disabled())
	require.NoError(t, Save(testLogger(), path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]string{"https://b.example": "AnyCertificate"}, raw)
}

func TestSaveSetsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent-trust.json")

	// Pre-existing file with wrong permissions must end up at 0644.
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	require.NoError(t, Save(testLogger(), path, NewStore()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(FilePermissions), info.Mode().Perm())
}

func TestSaveEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent-trust.json")

	require.NoError(t, Save(testLogger(), path, NewStore()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent-trust.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(testLogger(), path)
	assert.Error(t, err)
}

func TestKeysAreExactStrings(t *testing.T) {
	// No normalization: trailing slash makes a distinct entry.
	s := NewStore()
	s.Set("https://host", Pinned(testCertPEM))
	s.Set("https://host/", Disabled())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"https://host", "https://host/"}, s.URLs())
}

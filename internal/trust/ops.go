package trust

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const cantModifyText = "Unable to read or modify agent manager trust at %s: %v"

// Manager runs the trust-store operations. Collaborators are fields so
// tests can swap in fakes; they default to the real fetcher and a stdin
// prompt.
type Manager struct {
	Log    *log.Logger
	Path   string // trust-store file
	Fetch  FetchFunc
	Prompt ConfirmationPrompt
}

// NewManager returns a Manager wired with the real certificate fetcher
// and an interactive stdin prompt.
func NewManager(logger *log.Logger, path string) *Manager {
	return &Manager{
		Log:    logger,
		Path:   path,
		Fetch:  FetchLeafCertificate,
		Prompt: &TerminalPrompt{In: os.Stdin, Out: os.Stdout},
	}
}

// NeedsTrust reports whether a URL uses the secure scheme and therefore
// participates in trust establishment. The check is a case-insensitive
// prefix match; the URL is otherwise taken verbatim.
func NeedsTrust(rawURL string) bool {
	return strings.HasPrefix(strings.ToLower(rawURL), "https://")
}

// InstallCert pins the leaf certificate behind rawURL. Unless autoAccept
// is set, the fetched certificate is shown and the user must confirm
// with "y" before the store is touched. Any prior entry for the URL is
// overwritten. Returns 0 on success or benign no-op, 1 on failure.
func (m *Manager) InstallCert(rawURL string, autoAccept bool) int {
	if !NeedsTrust(rawURL) {
		m.Log.Infof("URL %q doesn't require trust to access. Ignoring command", rawURL)
		return 0
	}

	host, port, err := splitURLHostPort(rawURL)
	if err != nil {
		m.Log.Warnf("Couldn't parse the provided URL %s: %v", rawURL, err)
		return 1
	}

	certPEM, err := m.Fetch(host, port, DefaultFetchTimeout)
	if err != nil {
		m.Log.Warnf("Unable to obtain the certificate from %s: %v", rawURL, err)
		return 1
	}

	if !autoAccept {
		m.Log.Infof("PEM encoding of certificate behind URL %q:\n%s", rawURL, certPEM)
		agreed, err := m.Prompt.Confirm(
			"Do you want associate(pin) this certificate to this URL as trust" +
				"(enter \"y\" to confirm): ")
		if err != nil {
			m.Log.Warnf("Couldn't read confirmation answer: %v", err)
			return 1
		}
		if !agreed {
			m.Log.Info("User did not agree, stopping the operation")
			return 1
		}
	}

	store, err := Load(m.Log, m.Path)
	if err == nil {
		store.Set(rawURL, Pinned(certPEM))
		err = Save(m.Log, m.Path, store)
	}
	if err != nil {
		m.Log.Warnf(cantModifyText, m.Path, err)
		return 1
	}
	return 0
}

// UninstallCert removes the pinned certificate for rawURL. A URL with no
// entry, or with a disabled-trust entry, is reported and left alone:
// uninstall never removes a disabled-trust exemption.
func (m *Manager) UninstallCert(rawURL string) int {
	store, err := Load(m.Log, m.Path)
	if err == nil {
		if e, ok := store.Get(rawURL); ok && e.Kind == KindPinned {
			m.Log.Infof("Removing certificate pinning for URL %s trust", rawURL)
			store.Remove(rawURL)
			err = Save(m.Log, m.Path, store)
		} else {
			m.Log.Infof("URL %q doesn't have a pinned trust certificate. Ignoring command", rawURL)
		}
	}
	if err != nil {
		m.Log.Warnf(cantModifyText, m.Path, err)
		return 1
	}
	return 0
}

// DisableTrust marks rawURL as accessible without establishing trust.
// This overwrites any pinned certificate for the URL. Idempotent: an
// already-disabled URL is reported and left alone.
func (m *Manager) DisableTrust(rawURL string) int {
	if !NeedsTrust(rawURL) {
		m.Log.Infof("URL %q doesn't require trust to access. Ignoring command", rawURL)
		return 0
	}

	store, err := Load(m.Log, m.Path)
	if err == nil {
		if e, ok := store.Get(rawURL); ok && e.Kind == KindDisabled {
			m.Log.Infof("URL %q already with disabled trust. Ignoring command", rawURL)
		} else {
			m.Log.Infof("Allowing URL %q access without establishing trust", rawURL)
			store.Set(rawURL, Disabled())
			err = Save(m.Log, m.Path, store)
		}
	}
	if err != nil {
		m.Log.Warnf(cantModifyText, m.Path, err)
		return 1
	}
	return 0
}

// EnableTrust removes the disabled-trust exemption for rawURL, restoring
// default validation behavior. A URL with no entry, or with a pinned
// certificate, is reported and left alone.
func (m *Manager) EnableTrust(rawURL string) int {
	store, err := Load(m.Log, m.Path)
	if err == nil {
		if e, ok := store.Get(rawURL); ok && e.Kind == KindDisabled {
			m.Log.Infof("Removing permission to access URL %s without establishing trust", rawURL)
			store.Remove(rawURL)
			err = Save(m.Log, m.Path, store)
		} else {
			m.Log.Infof("URL %q is not with disabled trust. Ignoring command", rawURL)
		}
	}
	if err != nil {
		m.Log.Warnf(cantModifyText, m.Path, err)
		return 1
	}
	return 0
}

// ClearTrust empties the trust store. A missing trust file is a no-op.
func (m *Manager) ClearTrust() int {
	if _, err := os.Stat(m.Path); os.IsNotExist(err) {
		m.Log.Infof("Agent manager trust not found at %s. Ignoring command", m.Path)
		return 0
	}

	m.Log.Info("Clearing agent manager trust.")
	if err := Save(m.Log, m.Path, NewStore()); err != nil {
		m.Log.Warnf(cantModifyText, m.Path, err)
		return 1
	}
	return 0
}

// splitURLHostPort extracts hostname and port from a URL, defaulting the
// port to DefaultPort.
func splitURLHostPort(rawURL string) (string, int, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", 0, err
	}
	host := u.Hostname()
	if host == "" {
		return "", 0, fmt.Errorf("no hostname in URL %q", rawURL)
	}
	port := DefaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return "", 0, fmt.Errorf("invalid port in URL %q: %w", rawURL, err)
		}
	}
	return host, port, nil
}

package trust

// DisabledMarker is the literal value stored in the trust file for URLs
// the agent manager may access without establishing trust. It shares the
// value slot with PEM certificates for compatibility with existing trust
// files, so it must never appear as an actual certificate.
const DisabledMarker = "AnyCertificate"

// EntryKind discriminates the two kinds of trust entries.
type EntryKind int

const (
	// KindPinned means the entry carries the one certificate trusted for
	// the URL.
	KindPinned EntryKind = iota
	// KindDisabled means the URL may be accessed without establishing
	// trust.
	KindDisabled
)

// Entry is a single trust-store record. An Entry is either a pinned
// certificate or the disabled-trust exemption, never both.
type Entry struct {
	Kind    EntryKind
	CertPEM string // PEM-encoded certificate, only for KindPinned
}

// Pinned returns an entry pinning the given PEM certificate.
func Pinned(certPEM string) Entry {
	return Entry{Kind: KindPinned, CertPEM: certPEM}
}

// Disabled returns the disabled-trust entry.
func Disabled() Entry {
	return Entry{Kind: KindDisabled}
}

// marshalValue returns the on-disk string form of the entry.
func (e Entry) marshalValue() string {
	if e.Kind == KindDisabled {
		return DisabledMarker
	}
	return e.CertPEM
}

// entryFromValue maps an on-disk value back to a tagged entry.
func entryFromValue(v string) Entry {
	if v == DisabledMarker {
		return Disabled()
	}
	return Pinned(v)
}

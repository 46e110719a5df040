package trust

import (
	"crypto/tls"
	"encoding/pem"
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	// DefaultPort is used when a URL carries no explicit port.
	DefaultPort = 443
	// DefaultFetchTimeout bounds the dial and handshake of a fetch.
	DefaultFetchTimeout = 10 * time.Second
)

// FetchFunc is the signature of the certificate fetcher, extracted so
// operations can be tested without network access.
type FetchFunc func(host string, port int, timeout time.Duration) (string, error)

// FetchLeafCertificate connects to host:port, performs a TLS handshake,
// and returns the server's leaf certificate PEM-encoded.
//
// SECURITY: hostname verification and certificate chain verification are
// both deliberately disabled. The whole point is to harvest whatever
// certificate the server presents — misnamed, self-signed, expired —
// so it can be pinned (trust-on-first-use). This function must never be
// reused as a TLS client for validated communication.
func FetchLeafCertificate(host string, port int, timeout time.Duration) (string, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return "", fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer conn.Close()

	// Bound the handshake too; a server that accepts TCP but stalls the
	// handshake would otherwise hang past the dial timeout.
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return "", fmt.Errorf("setting deadline on %s: %w", addr, err)
	}

	tlsConn := tls.Client(conn, &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: true, //nolint:gosec // TOFU harvest, see doc comment
	})
	defer tlsConn.Close()

	if err := tlsConn.Handshake(); err != nil {
		return "", fmt.Errorf("TLS handshake with %s: %w", addr, err)
	}

	peers := tlsConn.ConnectionState().PeerCertificates
	if len(peers) == 0 {
		return "", fmt.Errorf("no certificate presented by %s", addr)
	}

	block := pem.Block{Type: "CERTIFICATE", Bytes: peers[0].Raw}
	return string(pem.EncodeToMemory(&block)), nil
}

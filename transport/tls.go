package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/indigo-web/gurt/config"
	"github.com/indigo-web/gurt/proto"
)

var ErrALPNMismatch = errors.New("transport: server didn't negotiate " + proto.ALPN)

// Dialer establishes TLS 1.3 connections with the protocol's ALPN token negotiated.
type Dialer struct {
	cfg *config.Config
	// RootCAs replaces the system pool, if set.
	RootCAs *x509.CertPool
}

func NewDialer(cfg *config.Config) *Dialer {
	return &Dialer{cfg: cfg}
}

// Dial connects to the address, using the default port if none is specified. The context
// bounds both TCP establishment and the TLS handshake, which are additionally limited by
// the configured timeouts.
func (d *Dialer) Dial(ctx context.Context, addr string) (*Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.NET.DialTimeout+d.cfg.NET.HandshakeTimeout)
	defer cancel()

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: d.cfg.NET.DialTimeout},
		Config: &tls.Config{
			MinVersion:         tls.VersionTLS13,
			NextProtos:         []string{proto.ALPN},
			ServerName:         d.cfg.TLS.ServerName,
			InsecureSkipVerify: d.cfg.TLS.InsecureSkipVerify,
			RootCAs:            d.RootCAs,
		},
	}

	conn, err := dialer.DialContext(ctx, "tcp", WithDefaultPort(addr))
	if err != nil {
		return nil, err
	}

	if conn.(*tls.Conn).ConnectionState().NegotiatedProtocol != proto.ALPN {
		_ = conn.Close()
		return nil, ErrALPNMismatch
	}

	return NewConn(conn, d.cfg.NET.RequestTimeout), nil
}

// WithDefaultPort appends proto.DefaultPort to addresses having no port.
func WithDefaultPort(addr string) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}

	host := strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")

	return net.JoinHostPort(host, strconv.Itoa(proto.DefaultPort))
}

package gurt

import (
	"context"
	"fmt"
	"net"

	"github.com/indigo-web/gurt/client"
	"github.com/indigo-web/gurt/config"
	"github.com/indigo-web/gurt/transport"
)

// Connect dials the address over TLS 1.3, negotiates the protocol via ALPN and performs
// the protocol handshake. Missing port defaults to proto.DefaultPort. If cfg is nil,
// config.Default() is used.
func Connect(ctx context.Context, addr string, cfg *config.Config) (*client.Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	return connect(ctx, transport.NewDialer(cfg), addr, cfg)
}

// NewPool returns a pool of handshaken sessions to the address.
func NewPool(addr string, cfg *config.Config, loggers ...client.Logger) *client.Pool {
	if cfg == nil {
		cfg = config.Default()
	}

	dialer := transport.NewDialer(cfg)

	return client.NewPool(cfg, func(ctx context.Context) (*client.Session, error) {
		return connect(ctx, dialer, addr, cfg)
	}, loggers...)
}

func connect(
	ctx context.Context, dialer *transport.Dialer, addr string, cfg *config.Config,
) (*client.Session, error) {
	addr = transport.WithDefaultPort(addr)
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}

	conn, err := dialer.Dial(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("gurt: connect %s: %w", addr, err)
	}

	session := client.NewSession(conn, host, cfg)
	if _, err = session.Handshake(); err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("gurt: connect %s: %w", addr, err)
	}

	return session, nil
}

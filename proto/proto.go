// Package proto holds the constants forming the public contract of the protocol.
package proto

import "time"

const (
	// Version is the protocol token used in every request and status line.
	Version = "GURT/1.0.0"
	// ALPN must be negotiated during the TLS handshake before any protocol byte is sent.
	ALPN = "GURT/1.0"
	// DefaultPort is used whenever an address has no explicit port.
	DefaultPort = 4878
	// DefaultUserAgent is sent unless the caller supplies its own.
	DefaultUserAgent = "yo-gurt/0.1"
	// MaxMessageSize limits a single message, including its body.
	MaxMessageSize = 10 * 1024 * 1024
)

// Timeouts and pool limits are declarations only. The codec never enforces them.
const (
	DefaultConnectionTimeout = 10 * time.Second
	DefaultRequestTimeout    = 30 * time.Second
	DefaultHandshakeTimeout  = 5 * time.Second
	MaxPoolSize              = 10
	PoolIdleTimeout          = 300 * time.Second
)

package config

import (
	"time"

	"github.com/indigo-web/gurt/proto"
)

type (
	HeadersNumber struct {
		Default, Maximal int
	}

	HeadersSpace struct {
		Default, Maximal int
	}
)

type (
	NET struct {
		// DialTimeout limits establishing the TCP connection.
		DialTimeout time.Duration
		// HandshakeTimeout limits both the TLS handshake and the protocol handshake exchange.
		HandshakeTimeout time.Duration
		// RequestTimeout is re-armed as a read and write deadline before every
		// operation on the connection.
		RequestTimeout time.Duration
	}

	TLS struct {
		// InsecureSkipVerify disables certificate verification. Handy for local servers
		// with self-signed certificates, dangerous anywhere else.
		InsecureSkipVerify bool `test:"nullable"`
		// ServerName overrides the name used for SNI and verification. Defaults to the
		// dialed host.
		ServerName string `test:"nullable"`
	}

	Headers struct {
		// LineSize is the size of a scratch buffer every single status and header line
		// must fit into.
		LineSize int
		// Number is responsible for headers storage size.
		// Default value is an initial size of allocated headers storage.
		// Maximal value is maximum number of headers allowed to be presented
		Number HeadersNumber
		// Space limits the amount of memory occupied by response headers.
		Space HeadersSpace
	}

	Body struct {
		// MaxSize describes the maximal size of a response body, that can be processed.
		MaxSize uint
		// BufferSize is the initial capacity of a buffer collecting a body of unknown
		// length.
		BufferSize int
	}

	Pool struct {
		// MaxSize is the number of idle connections kept per pool.
		MaxSize int
		// IdleTimeout is how long a connection may stay idle before it's dropped.
		IdleTimeout time.Duration
	}
)

// Config holds settings used across the client, mainly limitations and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	// UserAgent is sent with every request, including the handshake.
	UserAgent string
	NET       NET
	TLS       TLS
	Headers   Headers
	Body      Body
	Pool      Pool
}

// Default returns default config. Limits are derived from the protocol constants.
func Default() *Config {
	return &Config{
		UserAgent: proto.DefaultUserAgent,
		NET: NET{
			DialTimeout:      proto.DefaultConnectionTimeout,
			HandshakeTimeout: proto.DefaultHandshakeTimeout,
			RequestTimeout:   proto.DefaultRequestTimeout,
		},
		Headers: Headers{
			LineSize: 8 * 1024,
			Number: HeadersNumber{
				Default: 10,
				Maximal: 100,
			},
			Space: HeadersSpace{
				Default: 1 * 1024, // 1kb for headers must be fairly enough in most cases.
				Maximal: 64 * 1024,
			},
		},
		Body: Body{
			MaxSize:    proto.MaxMessageSize,
			BufferSize: 4 * 1024,
		},
		Pool: Pool{
			MaxSize:     proto.MaxPoolSize,
			IdleTimeout: proto.PoolIdleTimeout,
		},
	}
}

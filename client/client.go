package client

import (
	"io"

	"github.com/indigo-web/gurt/internal/uintconv"
	"github.com/indigo-web/gurt/method"
	"github.com/indigo-web/gurt/proto"
	"github.com/indigo-web/utils/uf"
)

const (
	crlf          = "\r\n"
	hostKey       = "host: "
	userAgentKey  = "user-agent: "
	contentType   = "content-type: "
	contentLength = "content-length: "
)

// Client is the request encoder. It writes every request directly into the underlying
// writer, nothing is buffered, so the writer is expected to take care of flushing (if it
// buffers at all.)
//
// A failed call leaves the stream partially written. There is no way to recover from
// this, so the connection must be considered dead.
type Client struct {
	w      io.Writer
	inBody bool
}

func New(w io.Writer) *Client {
	return &Client{w: w}
}

// Handshake writes the protocol handshake. It must be the very first exchange on a fresh
// connection, however this isn't checked.
func (c *Client) Handshake(host, userAgent string) error {
	return c.NoBody(method.HANDSHAKE, "/", host, userAgent)
}

// NoBody writes a request without a body. Empty userAgent falls back to
// proto.DefaultUserAgent.
func (c *Client) NoBody(m method.Method, path, host, userAgent string) error {
	if c.inBody {
		return ErrBodyInProgress
	}

	if err := c.requestLine(m, path, host); err != nil {
		return err
	}

	return c.write(userAgentKey, orDefaultUA(userAgent), crlf, crlf)
}

// WithBody writes the request head and returns a writer for exactly contentLength bytes
// of the body. Empty contentType omits the header. Until the returned writer is finished,
// every other call to the client fails with ErrBodyInProgress.
//
// Headers are always emitted in the order host, content-type, content-length, user-agent.
func (c *Client) WithBody(
	m method.Method, path, host, userAgent, ctype string, length uint,
) (*BodyWriter, error) {
	if c.inBody {
		return nil, ErrBodyInProgress
	}

	if err := c.requestLine(m, path, host); err != nil {
		return nil, err
	}

	if len(ctype) > 0 {
		if err := c.write(contentType, ctype, crlf); err != nil {
			return nil, err
		}
	}

	var buff [uintconv.MaxLen]byte
	err := c.write(
		contentLength, uf.B2S(uintconv.Format(&buff, length)), crlf,
		userAgentKey, orDefaultUA(userAgent), crlf, crlf,
	)
	if err != nil {
		return nil, err
	}

	c.inBody = true

	return &BodyWriter{client: c}, nil
}

func (c *Client) requestLine(m method.Method, path, host string) error {
	return c.write(m.String(), " ", path, " "+proto.Version+crlf, hostKey, host, crlf)
}

func (c *Client) write(pieces ...string) error {
	for _, piece := range pieces {
		if _, err := c.w.Write(uf.S2B(piece)); err != nil {
			return err
		}
	}

	return nil
}

func orDefaultUA(ua string) string {
	if len(ua) == 0 {
		return proto.DefaultUserAgent
	}

	return ua
}

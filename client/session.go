package client

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/indigo-web/gurt/config"
	"github.com/indigo-web/gurt/method"
	"github.com/indigo-web/gurt/status"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

var ErrHandshakeRejected = errors.New("gurt: handshake rejected")

type Request struct {
	Method method.Method
	Path   string
	// Query is appended to the path, if not empty.
	Query Query
	// ContentType is sent only along with a body.
	ContentType string
	// Body is sent whenever it's not empty or the method conventionally carries one.
	Body []byte
}

// Response is a fully read response. Headers reference the session's internal memory
// and stay valid only until the next request on the same session.
type Response struct {
	Code    status.Code
	Headers *Headers
	Body    []byte
}

// timeoutSetter is implemented by transport.Conn.
type timeoutSetter interface {
	Timeout() time.Duration
	SetTimeout(time.Duration)
}

// Session drives a single connection: requests are encoded with Client and responses are
// parsed with Reader, both operating on the same stream strictly one after another.
//
// Any failure leaves the stream at an unknown position, therefore the session becomes
// unusable and every consequent call returns ErrSessionBroken.
type Session struct {
	conn       io.ReadWriteCloser
	host       string
	cfg        *config.Config
	client     *Client
	reader     *Reader
	line       []byte
	arena      *buffer.Buffer[byte]
	headers    *Headers
	alive      bool
	releasedAt time.Time
}

func NewSession(conn io.ReadWriteCloser, host string, cfg *config.Config) *Session {
	return &Session{
		conn:    conn,
		host:    host,
		cfg:     cfg,
		client:  New(conn),
		reader:  NewReader(conn),
		line:    make([]byte, cfg.Headers.LineSize),
		arena:   buffer.NewBuffer[byte](cfg.Headers.Space.Default, cfg.Headers.Space.Maximal),
		headers: NewHeaders(cfg.Headers.Number.Default),
		alive:   true,
	}
}

// Host returns the host the session is bound to.
func (s *Session) Host() string {
	return s.host
}

// Alive reports whether the session can be used for further requests.
func (s *Session) Alive() bool {
	return s.alive
}

// Handshake performs the protocol handshake. The server is expected to answer with
// 101 SWITCHING_PROTOCOLS, anything else results in ErrHandshakeRejected. If the
// connection supports per-operation timeouts, the handshake timeout is applied for the
// duration of the exchange.
func (s *Session) Handshake() (Response, error) {
	if !s.alive {
		return Response{}, ErrSessionBroken
	}

	if conn, ok := s.conn.(timeoutSetter); ok {
		defer conn.SetTimeout(conn.Timeout())
		conn.SetTimeout(s.cfg.NET.HandshakeTimeout)
	}

	resp, err := s.exchange(method.HANDSHAKE, func() error {
		return s.client.Handshake(s.host, s.cfg.UserAgent)
	})
	if err != nil {
		return resp, err
	}

	if resp.Code != status.SwitchingProtocols {
		s.alive = false
		return resp, fmt.Errorf("%w: %d %s", ErrHandshakeRejected, resp.Code, resp.Code.Reason())
	}

	return resp, nil
}

// Do sends the request and reads the whole response.
func (s *Session) Do(req Request) (Response, error) {
	if !s.alive {
		return Response{}, ErrSessionBroken
	}

	path := req.Query.AppendTo(req.Path)

	return s.exchange(req.Method, func() error {
		if !req.Method.HasBody() && len(req.Body) == 0 {
			return s.client.NoBody(req.Method, path, s.host, s.cfg.UserAgent)
		}

		body, err := s.client.WithBody(
			req.Method, path, s.host, s.cfg.UserAgent, req.ContentType, uint(len(req.Body)),
		)
		if err != nil {
			return err
		}

		defer body.Finish()
		_, err = body.Write(req.Body)

		return err
	})
}

// JSON marshals in (unless nil) as a request body and unmarshals the response body into
// out (unless nil or the body is empty). Non-JSON responses result in ErrNotJSON.
func (s *Session) JSON(m method.Method, path string, in, out any) (status.Code, error) {
	req := Request{
		Method: m,
		Path:   path,
	}

	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}

		req.ContentType, req.Body = "application/json", body
	}

	resp, err := s.Do(req)
	if err != nil || out == nil || len(resp.Body) == 0 {
		return resp.Code, err
	}

	mime, found := resp.Headers.ContentType()
	if found && !strcomp.EqualFold(mime, "application/json") {
		return resp.Code, ErrNotJSON
	}

	return resp.Code, json.Unmarshal(resp.Body, out)
}

// Close closes the underlying connection.
func (s *Session) Close() error {
	s.alive = false
	return s.conn.Close()
}

func (s *Session) exchange(m method.Method, send func() error) (Response, error) {
	if err := send(); err != nil {
		s.alive = false
		return Response{}, err
	}

	resp, err := s.readResponse(m)
	if err != nil {
		s.alive = false
	}

	return resp, err
}

func (s *Session) readResponse(m method.Method) (Response, error) {
	code, _, err := s.reader.StatusLine(s.line)
	if err != nil {
		return Response{}, err
	}

	resp := Response{
		Code:    code,
		Headers: s.headers,
	}

	if err = s.readHeaders(); err != nil {
		return resp, err
	}

	if m == method.HEAD || m == method.HANDSHAKE ||
		code == status.NoContent || code == status.SwitchingProtocols {
		return resp, nil
	}

	resp.Body, err = s.readBody()

	return resp, err
}

func (s *Session) readHeaders() error {
	s.arena.Clear()
	s.headers.Clear()

	for {
		header, ok, err := s.reader.Header(s.line)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		if s.headers.Len() >= s.cfg.Headers.Number.Maximal {
			return ErrTooManyHeaders
		}

		if !s.arena.Append(header.Name(s.line)...) {
			return ErrHeadersTooLarge
		}

		key := uf.B2S(s.arena.Finish())

		if !s.arena.Append(header.Value(s.line)...) {
			return ErrHeadersTooLarge
		}

		s.headers.Add(key, uf.B2S(s.arena.Finish()))
	}
}

func (s *Session) readBody() ([]byte, error) {
	length, found, err := s.headers.ContentLength()
	if err != nil {
		return nil, err
	}

	if found {
		if length > s.cfg.Body.MaxSize {
			return nil, ErrBodyTooLarge
		}

		body := make([]byte, length)

		return body, s.reader.BodyExact(body)
	}

	// without a declared length the body lasts until the stream ends, so the connection
	// cannot be reused anyway
	s.alive = false
	body := make([]byte, 0, s.cfg.Body.BufferSize)

	for {
		if len(body) == cap(body) {
			body = append(body, 0)[:len(body)]
		}

		n, err := s.reader.Body(body[len(body):cap(body)])
		body = body[:len(body)+n]

		if uint(len(body)) > s.cfg.Body.MaxSize {
			return nil, ErrBodyTooLarge
		}

		switch err {
		case nil:
		case io.EOF:
			return body, nil
		default:
			return nil, err
		}
	}
}

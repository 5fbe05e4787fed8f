package client

import "errors"

var (
	ErrUnexpectedEOF     = errors.New("gurt: stream ended unexpectedly")
	ErrBufferTooSmall    = errors.New("gurt: line doesn't fit into the buffer")
	ErrInvalidProtocol   = errors.New("gurt: protocol version mismatch")
	ErrInvalidStatusLine = errors.New("gurt: malformed status line")
	ErrInvalidHeader     = errors.New("gurt: malformed header line")

	ErrBodyInProgress = errors.New("gurt: request body is still being written")
	ErrBodyFinished   = errors.New("gurt: write to a finished body")

	ErrBodyTooLarge     = errors.New("gurt: response body is too large")
	ErrHeadersTooLarge  = errors.New("gurt: too large headers section")
	ErrTooManyHeaders   = errors.New("gurt: too many headers")
	ErrBadContentLength = errors.New("gurt: malformed content-length")
	ErrSessionBroken    = errors.New("gurt: session is broken by a previous failure")
	ErrNotJSON          = errors.New("gurt: response is not application/json")
)

// TransportError wraps any failure of the underlying stream which isn't a premature
// end of it.
type TransportError struct {
	Err error
}

func (t *TransportError) Error() string {
	return "gurt: transport: " + t.Err.Error()
}

func (t *TransportError) Unwrap() error {
	return t.Err
}

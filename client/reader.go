package client

import (
	"bytes"
	"errors"
	"io"
	"math"

	"github.com/indigo-web/gurt/internal/uintconv"
	"github.com/indigo-web/gurt/proto"
	"github.com/indigo-web/gurt/status"
	"github.com/indigo-web/utils/uf"
)

// Reader parses a response straight from the stream. It never reads ahead: every call
// consumes exactly the bytes of its own line or body chunk, so the stream can be handed
// over to somebody else between calls.
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Header refers to a single header line inside the buffer passed to Reader.Header.
// Nothing is copied, so spans are valid as long as the buffer is left intact.
type Header struct {
	NameLen    int
	ValueStart int
	ValueLen   int
	// Consumed is the length of the whole line including CRLF.
	Consumed int
}

func (h Header) Name(buff []byte) []byte {
	return buff[:h.NameLen]
}

func (h Header) Value(buff []byte) []byte {
	return buff[h.ValueStart : h.ValueStart+h.ValueLen]
}

// StatusLine reads the status line into the buffer and returns the status code. The
// returned number is how many bytes were consumed from the stream, also in case of an
// error. The reason phrase is neither validated nor required.
func (r *Reader) StatusLine(buff []byte) (status.Code, int, error) {
	n, err := r.readLine(buff)
	if err != nil {
		return 0, n, err
	}

	version, rest, _ := bytes.Cut(buff[:n-len(crlf)], []byte(" "))
	if uf.B2S(version) != proto.Version {
		return 0, n, ErrInvalidProtocol
	}

	token, _, _ := bytes.Cut(rest, []byte(" "))
	num, err := uintconv.Parse(token)
	if err != nil || num > math.MaxUint16 {
		return 0, n, ErrInvalidStatusLine
	}

	code, ok := status.FromCode(uint16(num))
	if !ok {
		return 0, n, ErrInvalidStatusLine
	}

	return code, n, nil
}

// Header reads a single header line into the buffer. An empty line terminates the headers
// section, in this case false is returned.
func (r *Reader) Header(buff []byte) (h Header, ok bool, err error) {
	n, err := r.readLine(buff)
	if err != nil {
		return Header{Consumed: n}, false, err
	}

	if n == len(crlf) {
		return Header{Consumed: n}, false, nil
	}

	line := buff[:n-len(crlf)]
	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return Header{Consumed: n}, false, ErrInvalidHeader
	}

	valueStart := colon + 1
	if valueStart < len(line) && line[valueStart] == ' ' {
		valueStart++
	}

	return Header{
		NameLen:    colon,
		ValueStart: valueStart,
		ValueLen:   len(line) - valueStart,
		Consumed:   n,
	}, true, nil
}

// Body performs a single read into the buffer, returning whatever the stream produced.
// io.EOF is returned as is.
func (r *Reader) Body(buff []byte) (int, error) {
	n, err := r.r.Read(buff)
	if err != nil && err != io.EOF {
		err = &TransportError{Err: err}
	}

	return n, err
}

// BodyExact fills the buffer completely. It's meant to be used when the length is known
// from the content-length header.
func (r *Reader) BodyExact(buff []byte) error {
	_, err := io.ReadFull(r.r, buff)
	return wrapReadErr(err)
}

// readLine reads byte-by-byte until CRLF. The line may not be longer than the buffer,
// including CRLF itself.
func (r *Reader) readLine(buff []byte) (int, error) {
	for i := range buff {
		if _, err := io.ReadFull(r.r, buff[i:i+1]); err != nil {
			return i, wrapReadErr(err)
		}

		if i > 0 && buff[i-1] == '\r' && buff[i] == '\n' {
			return i + 1, nil
		}
	}

	return len(buff), ErrBufferTooSmall
}

func wrapReadErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return ErrUnexpectedEOF
	default:
		return &TransportError{Err: err}
	}
}

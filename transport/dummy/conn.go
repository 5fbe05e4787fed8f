package dummy

import (
	"io"
	"net"
	"time"
)

var _ net.Conn = new(Conn)

// Conn is an in-memory connection. Reads are served from the data it was initialised with
// (optionally in fragments of limited size), writes are journaled. Errors can be injected
// on both sides, making it thereby a universal mock suitable for most of the tests.
type Conn struct {
	pending    []byte
	fragment   int
	written    []byte
	journaling bool
	readErr    error
	writeErr   error
	writeLimit int
	closed     bool

	ReadDeadline, WriteDeadline time.Time
}

func NewConn(data ...[]byte) *Conn {
	c := &Conn{
		journaling: true,
		writeLimit: -1,
	}

	return c.Feed(data...)
}

// Feed appends data to be read.
func (c *Conn) Feed(data ...[]byte) *Conn {
	for _, piece := range data {
		c.pending = append(c.pending, piece...)
	}

	return c
}

// Fragmented limits every read to at most n bytes.
func (c *Conn) Fragmented(n int) *Conn {
	c.fragment = n
	return c
}

// FailReads makes every read after the data is drained return err instead of io.EOF.
func (c *Conn) FailReads(err error) *Conn {
	c.readErr = err
	return c
}

// FailWritesAfter makes writes fail with err once n bytes are written in total.
func (c *Conn) FailWritesAfter(n int, err error) *Conn {
	c.writeLimit = n
	c.writeErr = err
	return c
}

func (c *Conn) Journaling(flag bool) *Conn {
	c.journaling = flag
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	if len(c.pending) == 0 {
		if c.readErr != nil {
			return 0, c.readErr
		}

		return 0, io.EOF
	}

	if len(b) == 0 {
		return 0, nil
	}

	limit := len(b)
	if c.fragment > 0 && c.fragment < limit {
		limit = c.fragment
	}

	n = copy(b[:limit], c.pending)
	c.pending = c.pending[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.closed {
		return 0, net.ErrClosed
	}

	if c.writeLimit >= 0 && len(c.written)+len(b) > c.writeLimit {
		n = max(c.writeLimit-len(c.written), 0)
		c.written = append(c.written, b[:n]...)

		return n, c.writeErr
	}

	if c.journaling {
		c.written = append(c.written, b...)
	}

	return len(b), nil
}

// Written returns everything written so far.
func (c *Conn) Written() string {
	if !c.journaling {
		panic("dummy conn: cannot access written data: journaling is disabled!")
	}

	return string(c.written)
}

// Pending returns data which wasn't read yet.
func (c *Conn) Pending() string {
	return string(c.pending)
}

func (c *Conn) Closed() bool {
	return c.closed
}

func (c *Conn) Close() error {
	c.closed = true
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return nil
}

func (c *Conn) SetDeadline(t time.Time) error {
	c.ReadDeadline, c.WriteDeadline = t, t
	return nil
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	c.ReadDeadline = t
	return nil
}

func (c *Conn) SetWriteDeadline(t time.Time) error {
	c.WriteDeadline = t
	return nil
}

package transport

import (
	"net"
	"time"
)

// Conn enforces the request timeout: deadlines are re-armed before every read and write,
// so the timeout limits a single stalled operation instead of the whole connection lifetime.
type Conn struct {
	net.Conn
	timeout time.Duration
}

func NewConn(conn net.Conn, timeout time.Duration) *Conn {
	return &Conn{
		Conn:    conn,
		timeout: timeout,
	}
}

// Read reads from the underlying connection. Timeouts are also handled automatically.
func (c *Conn) Read(b []byte) (int, error) {
	if err := c.Conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}

	return c.Conn.Read(b)
}

// Write writes data into the underlying connection.
func (c *Conn) Write(b []byte) (int, error) {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(c.timeout)); err != nil {
		return 0, err
	}

	return c.Conn.Write(b)
}

// Timeout returns the currently applied per-operation timeout.
func (c *Conn) Timeout() time.Duration {
	return c.timeout
}

// SetTimeout replaces the per-operation timeout. It's used to apply a shorter limit
// during the protocol handshake.
func (c *Conn) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

package client

// BodyWriter streams a request body straight into the client's writer. It holds the client
// exclusively: no other request can be written until Finish is called.
type BodyWriter struct {
	client   *Client
	finished bool
}

// Write forwards the data as-is. Matching the total amount of written bytes with the
// declared content length is up to the caller.
func (b *BodyWriter) Write(p []byte) (n int, err error) {
	if b.finished {
		return 0, ErrBodyFinished
	}

	return b.client.w.Write(p)
}

// Finish releases the client. Nothing is flushed and the length isn't checked. Repeated
// calls are no-op.
func (b *BodyWriter) Finish() {
	if !b.finished {
		b.finished = true
		b.client.inBody = false
	}
}

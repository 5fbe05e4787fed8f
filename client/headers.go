package client

import (
	"strings"

	"github.com/indigo-web/gurt/internal/uintconv"
	"github.com/indigo-web/iter"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

const (
	contentTypeName   = "content-type"
	contentLengthName = "content-length"
)

type Pair struct {
	Key, Value string
}

// Headers is the response headers section in the order the server sent it. Duplicates
// are kept, lookups match names case-insensitively and return the first occurrence.
type Headers struct {
	pairs []Pair
}

func NewHeaders(n int) *Headers {
	return &Headers{
		pairs: make([]Pair, 0, n),
	}
}

func (h *Headers) Add(key, value string) *Headers {
	h.pairs = append(h.pairs, Pair{
		Key:   key,
		Value: value,
	})
	return h
}

// Get returns the value of the first header with the name.
func (h *Headers) Get(key string) (string, bool) {
	for _, pair := range h.pairs {
		if strcomp.EqualFold(key, pair.Key) {
			return pair.Value, true
		}
	}

	return "", false
}

// Value is Get without the presence flag.
func (h *Headers) Value(key string) string {
	value, _ := h.Get(key)
	return value
}

// ContentType returns the media type with parameters (e.g. charset) stripped off.
func (h *Headers) ContentType() (mime string, found bool) {
	value, found := h.Get(contentTypeName)
	mime, _, _ = strings.Cut(value, ";")

	return strings.TrimSpace(mime), found
}

// ContentLength parses the content-length header. A header which is present but isn't a
// plain decimal number results in ErrBadContentLength.
func (h *Headers) ContentLength() (length uint, found bool, err error) {
	value, found := h.Get(contentLengthName)
	if !found {
		return 0, false, nil
	}

	length, err = uintconv.Parse(uf.S2B(strings.TrimSpace(value)))
	if err != nil {
		return 0, true, ErrBadContentLength
	}

	return length, true, nil
}

func (h *Headers) Len() int {
	return len(h.pairs)
}

// Iter walks the pairs in arrival order.
func (h *Headers) Iter() iter.Iterator[Pair] {
	return iter.Slice(h.pairs)
}

// Unwrap exposes the underlying pairs. They must not be modified.
func (h *Headers) Unwrap() []Pair {
	return h.pairs
}

func (h *Headers) Clear() {
	h.pairs = h.pairs[:0]
}

package client

import (
	"net/url"
	"strings"
)

// Query holds request query parameters. It is attached to the path when the request
// is sent.
type Query map[string][]string

func NewQuery() Query {
	return make(Query)
}

func (q Query) WithValue(key string, values ...string) Query {
	q[key] = append(q[key], values...)
	return q
}

// AppendTo returns the path with encoded query parameters attached. Keys are sorted,
// so the result is deterministic.
func (q Query) AppendTo(path string) string {
	if len(q) == 0 {
		return path
	}

	sep := "?"
	if strings.IndexByte(path, '?') != -1 {
		sep = "&"
	}

	return path + sep + url.Values(q).Encode()
}

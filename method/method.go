package method

import "github.com/indigo-web/utils/uf"

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	PUT
	DELETE
	HEAD
	OPTIONS
	PATCH
	HANDSHAKE

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, POST, PUT, DELETE, HEAD, OPTIONS, PATCH, HANDSHAKE}

var tokens = [...]string{
	Unknown:   "UNKNOWN",
	GET:       "GET",
	POST:      "POST",
	PUT:       "PUT",
	DELETE:    "DELETE",
	HEAD:      "HEAD",
	OPTIONS:   "OPTIONS",
	PATCH:     "PATCH",
	HANDSHAKE: "HANDSHAKE",
}

// String returns the wire token of the method. Values out of the enumeration are rendered
// as UNKNOWN.
func (m Method) String() string {
	if int(m) >= len(tokens) {
		return tokens[Unknown]
	}

	return tokens[m]
}

// HasBody reports whether requests of the method conventionally carry a body. This is
// not enforced by the encoder.
func (m Method) HasBody() bool {
	switch m {
	case POST, PUT, PATCH:
		return true
	default:
		return false
	}
}

// Parse returns a method matching the token exactly. Unknown is returned otherwise, it's
// up to the caller to decide what to do with it.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "OPTIONS" {
			return OPTIONS
		}
	case 9:
		if str == "HANDSHAKE" {
			return HANDSHAKE
		}
	}

	return Unknown
}

// FromBytes is Parse for raw bytes without copying them.
func FromBytes(b []byte) Method {
	return Parse(uf.B2S(b))
}

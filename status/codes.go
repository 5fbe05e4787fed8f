package status

// Code is one of the status codes recognized by the protocol. Numbers outside the
// set aren't representable: the wire format couples every code with its reason.
type Code uint16

const (
	SwitchingProtocols Code = 101

	OK        Code = 200
	Created   Code = 201
	Accepted  Code = 202
	NoContent Code = 204

	BadRequest           Code = 400
	Unauthorized         Code = 401
	Forbidden            Code = 403
	NotFound             Code = 404
	MethodNotAllowed     Code = 405
	Timeout              Code = 408
	TooLarge             Code = 413
	UnsupportedMediaType Code = 415

	InternalServerError Code = 500
	NotImplemented      Code = 501
	BadGateway          Code = 502
	ServiceUnavailable  Code = 503
	GatewayTimeout      Code = 504
)

// KnownCodes lists every recognized code in ascending order.
var KnownCodes = []Code{
	SwitchingProtocols,
	OK, Created, Accepted, NoContent,
	BadRequest, Unauthorized, Forbidden, NotFound, MethodNotAllowed, Timeout, TooLarge,
	UnsupportedMediaType,
	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable, GatewayTimeout,
}

// Text returns the canonical reason phrase for the code. It returns the empty
// string if the code is unknown.
func Text(code Code) string {
	switch code {
	case SwitchingProtocols:
		return "SWITCHING_PROTOCOLS"
	case OK:
		return "OK"
	case Created:
		return "CREATED"
	case Accepted:
		return "ACCEPTED"
	case NoContent:
		return "NO_CONTENT"
	case BadRequest:
		return "BAD_REQUEST"
	case Unauthorized:
		return "UNAUTHORIZED"
	case Forbidden:
		return "FORBIDDEN"
	case NotFound:
		return "NOT_FOUND"
	case MethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case Timeout:
		return "TIMEOUT"
	case TooLarge:
		return "TOO_LARGE"
	case UnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE"
	case InternalServerError:
		return "INTERNAL_SERVER_ERROR"
	case NotImplemented:
		return "NOT_IMPLEMENTED"
	case BadGateway:
		return "BAD_GATEWAY"
	case ServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	case GatewayTimeout:
		return "GATEWAY_TIMEOUT"
	}

	return ""
}

// Reason is a shorthand for Text.
func (c Code) Reason() string {
	return Text(c)
}

// FromCode maps a numeric value onto a known code. False is returned for every
// number out of the recognized set, those are never passed through.
func FromCode(code uint16) (Code, bool) {
	if Text(Code(code)) == "" {
		return 0, false
	}

	return Code(code), true
}

// StringCode returns the decimal representation of a known code without allocating.
// Unknown codes result in an empty string.
func StringCode(code Code) string {
	if Text(code) == "" {
		return ""
	}

	return stringCodes[code/100][code%100]
}

var stringCodes = func() (lut [6][100]string) {
	for _, code := range KnownCodes {
		c := uint16(code)
		lut[c/100][c%100] = string([]byte{
			byte('0' + c/100), byte('0' + c/10%10), byte('0' + c%10),
		})
	}

	return lut
}()

package respio

import "strings"

// Constructor builds a Response for one fixed status code. Body and
// headers behave exactly as they do on the named constructors.
type Constructor func(body string, headers ...Header) Response

// builders maps the snake-cased reason phrase of every cataloged status to
// its constructor ("ok", "not_found", "im_a_teapot"). Filled from the
// status catalog at package initialization.
var builders = make(map[string]Constructor, 64)

// Lookup returns the constructor registered under a snake-cased reason
// phrase. The boolean reports whether the name is known.
func Lookup(name string) (Constructor, bool) {
	ctor, ok := builders[name]
	return ctor, ok
}

// snakeName converts a reason phrase to its registry key: lower-cased,
// apostrophes dropped, any other run of non-alphanumeric characters turned
// into a single underscore. "Not Found" becomes "not_found" and
// "I'm a teapot" becomes "im_a_teapot".
func snakeName(phrase string) string {
	var b strings.Builder
	b.Grow(len(phrase))

	pending := false
	for _, r := range strings.ToLower(phrase) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
		case r == '\'':
		default:
			pending = true
		}
	}

	return b.String()
}

func build(code int, body string, headers []Header) Response {
	h := make(Headers, len(headers))
	for _, header := range headers {
		h.Add(header.Name, header.Value)
	}

	return Response{
		Status:  code,
		Headers: h,
		Body:    []byte(body),
	}
}

// OK builds a 200 OK response carrying the given body and headers. It is
// the usual entry point of the package:
//
//	res := respio.OK("hello", respio.Header{Name: "Content-Type", Value: "text/plain"})
//
// Headers are added in argument order; repeating a name adds a second
// value instead of replacing the first. Every other status constructor
// behaves the same way for its own code.
func OK(body string, headers ...Header) Response {
	return build(StatusOK, body, headers)
}

// Continue builds a 100 Continue response.
func Continue(body string, headers ...Header) Response {
	return build(StatusContinue, body, headers)
}

// SwitchingProtocols builds a 101 Switching Protocols response.
func SwitchingProtocols(body string, headers ...Header) Response {
	return build(StatusSwitchingProtocols, body, headers)
}

// Processing builds a 102 Processing response.
func Processing(body string, headers ...Header) Response {
	return build(StatusProcessing, body, headers)
}

// EarlyHints builds a 103 Early Hints response.
func EarlyHints(body string, headers ...Header) Response {
	return build(StatusEarlyHints, body, headers)
}

// Created builds a 201 Created response.
func Created(body string, headers ...Header) Response {
	return build(StatusCreated, body, headers)
}

// Accepted builds a 202 Accepted response.
func Accepted(body string, headers ...Header) Response {
	return build(StatusAccepted, body, headers)
}

// NonAuthoritativeInformation builds a 203 Non-Authoritative Information response.
func NonAuthoritativeInformation(body string, headers ...Header) Response {
	return build(StatusNonAuthoritativeInformation, body, headers)
}

// NoContent builds a 204 No Content response.
func NoContent(body string, headers ...Header) Response {
	return build(StatusNoContent, body, headers)
}

// ResetContent builds a 205 Reset Content response.
func ResetContent(body string, headers ...Header) Response {
	return build(StatusResetContent, body, headers)
}

// PartialContent builds a 206 Partial Content response.
func PartialContent(body string, headers ...Header) Response {
	return build(StatusPartialContent, body, headers)
}

// MultiStatus builds a 207 Multi-Status response.
func MultiStatus(body string, headers ...Header) Response {
	return build(StatusMultiStatus, body, headers)
}

// AlreadyReported builds a 208 Already Reported response.
func AlreadyReported(body string, headers ...Header) Response {
	return build(StatusAlreadyReported, body, headers)
}

// IMUsed builds a 226 IM Used response.
func IMUsed(body string, headers ...Header) Response {
	return build(StatusIMUsed, body, headers)
}

// MultipleChoices builds a 300 Multiple Choices response.
func MultipleChoices(body string, headers ...Header) Response {
	return build(StatusMultipleChoices, body, headers)
}

// MovedPermanently builds a 301 Moved Permanently response.
func MovedPermanently(body string, headers ...Header) Response {
	return build(StatusMovedPermanently, body, headers)
}

// Found builds a 302 Found response.
func Found(body string, headers ...Header) Response {
	return build(StatusFound, body, headers)
}

// SeeOther builds a 303 See Other response.
func SeeOther(body string, headers ...Header) Response {
	return build(StatusSeeOther, body, headers)
}

// NotModified builds a 304 Not Modified response.
func NotModified(body string, headers ...Header) Response {
	return build(StatusNotModified, body, headers)
}

// UseProxy builds a 305 Use Proxy response.
func UseProxy(body string, headers ...Header) Response {
	return build(StatusUseProxy, body, headers)
}

// TemporaryRedirect builds a 307 Temporary Redirect response.
func TemporaryRedirect(body string, headers ...Header) Response {
	return build(StatusTemporaryRedirect, body, headers)
}

// PermanentRedirect builds a 308 Permanent Redirect response.
func PermanentRedirect(body string, headers ...Header) Response {
	return build(StatusPermanentRedirect, body, headers)
}

// BadRequest builds a 400 Bad Request response.
func BadRequest(body string, headers ...Header) Response {
	return build(StatusBadRequest, body, headers)
}

// Unauthorized builds a 401 Unauthorized response.
func Unauthorized(body string, headers ...Header) Response {
	return build(StatusUnauthorized, body, headers)
}

// PaymentRequired builds a 402 Payment Required response.
func PaymentRequired(body string, headers ...Header) Response {
	return build(StatusPaymentRequired, body, headers)
}

// Forbidden builds a 403 Forbidden response.
func Forbidden(body string, headers ...Header) Response {
	return build(StatusForbidden, body, headers)
}

// NotFound builds a 404 Not Found response.
func NotFound(body string, headers ...Header) Response {
	return build(StatusNotFound, body, headers)
}

// MethodNotAllowed builds a 405 Method Not Allowed response.
func MethodNotAllowed(body string, headers ...Header) Response {
	return build(StatusMethodNotAllowed, body, headers)
}

// NotAcceptable builds a 406 Not Acceptable response.
func NotAcceptable(body string, headers ...Header) Response {
	return build(StatusNotAcceptable, body, headers)
}

// ProxyAuthenticationRequired builds a 407 Proxy Authentication Required response.
func ProxyAuthenticationRequired(body string, headers ...Header) Response {
	return build(StatusProxyAuthenticationRequired, body, headers)
}

// RequestTimeout builds a 408 Request Timeout response.
func RequestTimeout(body string, headers ...Header) Response {
	return build(StatusRequestTimeout, body, headers)
}

// Conflict builds a 409 Conflict response.
func Conflict(body string, headers ...Header) Response {
	return build(StatusConflict, body, headers)
}

// Gone builds a 410 Gone response.
func Gone(body string, headers ...Header) Response {
	return build(StatusGone, body, headers)
}

// LengthRequired builds a 411 Length Required response.
func LengthRequired(body string, headers ...Header) Response {
	return build(StatusLengthRequired, body, headers)
}

// PreconditionFailed builds a 412 Precondition Failed response.
func PreconditionFailed(body string, headers ...Header) Response {
	return build(StatusPreconditionFailed, body, headers)
}

// RequestEntityTooLarge builds a 413 Request Entity Too Large response.
func RequestEntityTooLarge(body string, headers ...Header) Response {
	return build(StatusRequestEntityTooLarge, body, headers)
}

// RequestURITooLong builds a 414 Request URI Too Long response.
func RequestURITooLong(body string, headers ...Header) Response {
	return build(StatusRequestURITooLong, body, headers)
}

// UnsupportedMediaType builds a 415 Unsupported Media Type response.
func UnsupportedMediaType(body string, headers ...Header) Response {
	return build(StatusUnsupportedMediaType, body, headers)
}

// RequestedRangeNotSatisfiable builds a 416 Requested Range Not Satisfiable response.
func RequestedRangeNotSatisfiable(body string, headers ...Header) Response {
	return build(StatusRequestedRangeNotSatisfiable, body, headers)
}

// ExpectationFailed builds a 417 Expectation Failed response.
func ExpectationFailed(body string, headers ...Header) Response {
	return build(StatusExpectationFailed, body, headers)
}

// ImATeapot builds a 418 I'm a teapot response.
func ImATeapot(body string, headers ...Header) Response {
	return build(StatusImATeapot, body, headers)
}

// MisdirectedRequest builds a 421 Misdirected Request response.
func MisdirectedRequest(body string, headers ...Header) Response {
	return build(StatusMisdirectedRequest, body, headers)
}

// UnprocessableEntity builds a 422 Unprocessable Entity response.
func UnprocessableEntity(body string, headers ...Header) Response {
	return build(StatusUnprocessableEntity, body, headers)
}

// Locked builds a 423 Locked response.
func Locked(body string, headers ...Header) Response {
	return build(StatusLocked, body, headers)
}

// FailedDependency builds a 424 Failed Dependency response.
func FailedDependency(body string, headers ...Header) Response {
	return build(StatusFailedDependency, body, headers)
}

// TooEarly builds a 425 Too Early response.
func TooEarly(body string, headers ...Header) Response {
	return build(StatusTooEarly, body, headers)
}

// UpgradeRequired builds a 426 Upgrade Required response.
func UpgradeRequired(body string, headers ...Header) Response {
	return build(StatusUpgradeRequired, body, headers)
}

// PreconditionRequired builds a 428 Precondition Required response.
func PreconditionRequired(body string, headers ...Header) Response {
	return build(StatusPreconditionRequired, body, headers)
}

// TooManyRequests builds a 429 Too Many Requests response.
func TooManyRequests(body string, headers ...Header) Response {
	return build(StatusTooManyRequests, body, headers)
}

// RequestHeaderFieldsTooLarge builds a 431 Request Header Fields Too Large response.
func RequestHeaderFieldsTooLarge(body string, headers ...Header) Response {
	return build(StatusRequestHeaderFieldsTooLarge, body, headers)
}

// UnavailableForLegalReasons builds a 451 Unavailable For Legal Reasons response.
func UnavailableForLegalReasons(body string, headers ...Header) Response {
	return build(StatusUnavailableForLegalReasons, body, headers)
}

// InternalServerError builds a 500 Internal Server Error response.
func InternalServerError(body string, headers ...Header) Response {
	return build(StatusInternalServerError, body, headers)
}

// NotImplemented builds a 501 Not Implemented response.
func NotImplemented(body string, headers ...Header) Response {
	return build(StatusNotImplemented, body, headers)
}

// BadGateway builds a 502 Bad Gateway response.
func BadGateway(body string, headers ...Header) Response {
	return build(StatusBadGateway, body, headers)
}

// ServiceUnavailable builds a 503 Service Unavailable response.
func ServiceUnavailable(body string, headers ...Header) Response {
	return build(StatusServiceUnavailable, body, headers)
}

// GatewayTimeout builds a 504 Gateway Timeout response.
func GatewayTimeout(body string, headers ...Header) Response {
	return build(StatusGatewayTimeout, body, headers)
}

// HTTPVersionNotSupported builds a 505 HTTP Version Not Supported response.
func HTTPVersionNotSupported(body string, headers ...Header) Response {
	return build(StatusHTTPVersionNotSupported, body, headers)
}

// VariantAlsoNegotiates builds a 506 Variant Also Negotiates response.
func VariantAlsoNegotiates(body string, headers ...Header) Response {
	return build(StatusVariantAlsoNegotiates, body, headers)
}

// InsufficientStorage builds a 507 Insufficient Storage response.
func InsufficientStorage(body string, headers ...Header) Response {
	return build(StatusInsufficientStorage, body, headers)
}

// LoopDetected builds a 508 Loop Detected response.
func LoopDetected(body string, headers ...Header) Response {
	return build(StatusLoopDetected, body, headers)
}

// NotExtended builds a 510 Not Extended response.
func NotExtended(body string, headers ...Header) Response {
	return build(StatusNotExtended, body, headers)
}

// NetworkAuthenticationRequired builds a 511 Network Authentication Required response.
func NetworkAuthenticationRequired(body string, headers ...Header) Response {
	return build(StatusNetworkAuthenticationRequired, body, headers)
}

package respio

// HTTP status codes as registered with IANA.
const (
	// 1xx: informational
	StatusContinue           = 100
	StatusSwitchingProtocols = 101
	StatusProcessing         = 102
	StatusEarlyHints         = 103

	// 2xx: success
	StatusOK                          = 200
	StatusCreated                     = 201
	StatusAccepted                    = 202
	StatusNonAuthoritativeInformation = 203
	StatusNoContent                   = 204
	StatusResetContent                = 205
	StatusPartialContent              = 206
	StatusMultiStatus                 = 207
	StatusAlreadyReported             = 208
	StatusIMUsed                      = 226

	// 3xx: redirection
	StatusMultipleChoices   = 300
	StatusMovedPermanently  = 301
	StatusFound             = 302
	StatusSeeOther          = 303
	StatusNotModified       = 304
	StatusUseProxy          = 305
	StatusTemporaryRedirect = 307
	StatusPermanentRedirect = 308

	// 4xx: client error
	StatusBadRequest                   = 400
	StatusUnauthorized                 = 401
	StatusPaymentRequired              = 402
	StatusForbidden                    = 403
	StatusNotFound                     = 404
	StatusMethodNotAllowed             = 405
	StatusNotAcceptable                = 406
	StatusProxyAuthenticationRequired  = 407
	StatusRequestTimeout               = 408
	StatusConflict                     = 409
	StatusGone                         = 410
	StatusLengthRequired               = 411
	StatusPreconditionFailed           = 412
	StatusRequestEntityTooLarge        = 413
	StatusRequestURITooLong            = 414
	StatusUnsupportedMediaType         = 415
	StatusRequestedRangeNotSatisfiable = 416
	StatusExpectationFailed            = 417
	StatusImATeapot                    = 418
	StatusMisdirectedRequest           = 421
	StatusUnprocessableEntity          = 422
	StatusLocked                       = 423
	StatusFailedDependency             = 424
	StatusTooEarly                     = 425
	StatusUpgradeRequired              = 426
	StatusPreconditionRequired         = 428
	StatusTooManyRequests              = 429
	StatusRequestHeaderFieldsTooLarge  = 431
	StatusUnavailableForLegalReasons   = 451

	// 5xx: server error
	StatusInternalServerError           = 500
	StatusNotImplemented                = 501
	StatusBadGateway                    = 502
	StatusServiceUnavailable            = 503
	StatusGatewayTimeout                = 504
	StatusHTTPVersionNotSupported       = 505
	StatusVariantAlsoNegotiates         = 506
	StatusInsufficientStorage           = 507
	StatusLoopDetected                  = 508
	StatusNotExtended                   = 510
	StatusNetworkAuthenticationRequired = 511
)

type statusEntry struct {
	code   int
	phrase string
	ctor   Constructor
}

// statuses is the catalog every other status structure derives from: one
// row per known code with its reason phrase and its named constructor.
var statuses = []statusEntry{
	{StatusContinue, "Continue", Continue},
	{StatusSwitchingProtocols, "Switching Protocols", SwitchingProtocols},
	{StatusProcessing, "Processing", Processing},
	{StatusEarlyHints, "Early Hints", EarlyHints},
	{StatusOK, "OK", OK},
	{StatusCreated, "Created", Created},
	{StatusAccepted, "Accepted", Accepted},
	{StatusNonAuthoritativeInformation, "Non-Authoritative Information", NonAuthoritativeInformation},
	{StatusNoContent, "No Content", NoContent},
	{StatusResetContent, "Reset Content", ResetContent},
	{StatusPartialContent, "Partial Content", PartialContent},
	{StatusMultiStatus, "Multi-Status", MultiStatus},
	{StatusAlreadyReported, "Already Reported", AlreadyReported},
	{StatusIMUsed, "IM Used", IMUsed},
	{StatusMultipleChoices, "Multiple Choices", MultipleChoices},
	{StatusMovedPermanently, "Moved Permanently", MovedPermanently},
	{StatusFound, "Found", Found},
	{StatusSeeOther, "See Other", SeeOther},
	{StatusNotModified, "Not Modified", NotModified},
	{StatusUseProxy, "Use Proxy", UseProxy},
	{StatusTemporaryRedirect, "Temporary Redirect", TemporaryRedirect},
	{StatusPermanentRedirect, "Permanent Redirect", PermanentRedirect},
	{StatusBadRequest, "Bad Request", BadRequest},
	{StatusUnauthorized, "Unauthorized", Unauthorized},
	{StatusPaymentRequired, "Payment Required", PaymentRequired},
	{StatusForbidden, "Forbidden", Forbidden},
	{StatusNotFound, "Not Found", NotFound},
	{StatusMethodNotAllowed, "Method Not Allowed", MethodNotAllowed},
	{StatusNotAcceptable, "Not Acceptable", NotAcceptable},
	{StatusProxyAuthenticationRequired, "Proxy Authentication Required", ProxyAuthenticationRequired},
	{StatusRequestTimeout, "Request Timeout", RequestTimeout},
	{StatusConflict, "Conflict", Conflict},
	{StatusGone, "Gone", Gone},
	{StatusLengthRequired, "Length Required", LengthRequired},
	{StatusPreconditionFailed, "Precondition Failed", PreconditionFailed},
	{StatusRequestEntityTooLarge, "Request Entity Too Large", RequestEntityTooLarge},
	{StatusRequestURITooLong, "Request URI Too Long", RequestURITooLong},
	{StatusUnsupportedMediaType, "Unsupported Media Type", UnsupportedMediaType},
	{StatusRequestedRangeNotSatisfiable, "Requested Range Not Satisfiable", RequestedRangeNotSatisfiable},
	{StatusExpectationFailed, "Expectation Failed", ExpectationFailed},
	{StatusImATeapot, "I'm a teapot", ImATeapot},
	{StatusMisdirectedRequest, "Misdirected Request", MisdirectedRequest},
	{StatusUnprocessableEntity, "Unprocessable Entity", UnprocessableEntity},
	{StatusLocked, "Locked", Locked},
	{StatusFailedDependency, "Failed Dependency", FailedDependency},
	{StatusTooEarly, "Too Early", TooEarly},
	{StatusUpgradeRequired, "Upgrade Required", UpgradeRequired},
	{StatusPreconditionRequired, "Precondition Required", PreconditionRequired},
	{StatusTooManyRequests, "Too Many Requests", TooManyRequests},
	{StatusRequestHeaderFieldsTooLarge, "Request Header Fields Too Large", RequestHeaderFieldsTooLarge},
	{StatusUnavailableForLegalReasons, "Unavailable For Legal Reasons", UnavailableForLegalReasons},
	{StatusInternalServerError, "Internal Server Error", InternalServerError},
	{StatusNotImplemented, "Not Implemented", NotImplemented},
	{StatusBadGateway, "Bad Gateway", BadGateway},
	{StatusServiceUnavailable, "Service Unavailable", ServiceUnavailable},
	{StatusGatewayTimeout, "Gateway Timeout", GatewayTimeout},
	{StatusHTTPVersionNotSupported, "HTTP Version Not Supported", HTTPVersionNotSupported},
	{StatusVariantAlsoNegotiates, "Variant Also Negotiates", VariantAlsoNegotiates},
	{StatusInsufficientStorage, "Insufficient Storage", InsufficientStorage},
	{StatusLoopDetected, "Loop Detected", LoopDetected},
	{StatusNotExtended, "Not Extended", NotExtended},
	{StatusNetworkAuthenticationRequired, "Network Authentication Required", NetworkAuthenticationRequired},
}

var statusText = make(map[int]string, len(statuses))

func init() {
	for _, s := range statuses {
		statusText[s.code] = s.phrase
		builders[snakeName(s.phrase)] = s.ctor
	}
}

// StatusText returns the reason phrase for the given status code, or the
// empty string if the code is not in the catalog.
func StatusText(code int) string {
	return statusText[code]
}

package respio

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// expiredCookieSuffix is the legacy expiry form, already in the past, that
// every client understands as "drop this cookie".
const expiredCookieSuffix = "=; expires=Thu, 01 Jan 1970 00:00:00 GMT; path=/"

// CookieOptions configures the attributes serialized after the name=value
// pair of a cookie. Zero-valued fields are omitted from the output.
type CookieOptions struct {
	// Path scopes the cookie to a request path.
	Path string

	// Domain scopes the cookie to a host and its subdomains.
	Domain string

	// Expires sets an absolute expiry instant, serialized as an HTTP date
	// in GMT.
	Expires time.Time

	// MaxAge sets a relative expiry. A positive value is the lifetime in
	// seconds, a negative value serializes as Max-Age=0 telling the client
	// to drop the cookie now, and 0 omits the attribute.
	MaxAge int

	// Secure restricts the cookie to TLS transports.
	Secure bool

	// HTTPOnly hides the cookie from client-side scripts.
	HTTPOnly bool

	// SameSite controls cross-site sending, usually "Strict", "Lax" or
	// "None".
	SameSite string
}

// SetCookie returns a copy of the response with one more set-cookie value,
// appended after any already present. Nothing is deduplicated: setting the
// same name twice yields two set-cookie entries and the client keeps the
// later one. Every other header is preserved.
func (r Response) SetCookie(name, value string, opts ...CookieOptions) Response {
	var options CookieOptions
	if len(opts) > 0 {
		options = opts[0]
	}

	return r.AddHeader("set-cookie", serializeCookie(name, value, options))
}

// ExpireCookie returns a copy of the response instructing the client to
// drop the named cookie, via a set-cookie value whose expiry is already in
// the past. Existing set-cookie values and every other header are
// preserved, so expiring one cookie never discards the rest of the
// response.
func (r Response) ExpireCookie(name string) Response {
	return r.AddHeader("set-cookie", name+expiredCookieSuffix)
}

func serializeCookie(name, value string, options CookieOptions) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)

	if options.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(options.Path)
	}

	if options.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(options.Domain)
	}

	if !options.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(options.Expires.UTC().Format(http.TimeFormat))
	}

	if options.MaxAge > 0 {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(options.MaxAge))
	} else if options.MaxAge < 0 {
		b.WriteString("; Max-Age=0")
	}

	if options.Secure {
		b.WriteString("; Secure")
	}

	if options.HTTPOnly {
		b.WriteString("; HttpOnly")
	}

	if options.SameSite != "" {
		b.WriteString("; SameSite=")
		b.WriteString(options.SameSite)
	}

	return b.String()
}

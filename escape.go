package respio

import "strings"

// htmlEscaper rewrites the five characters that carry markup meaning.
var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML returns s with <, >, &, " and ' replaced by their HTML
// entities, making untrusted text safe to interpolate into a response
// body. Every other character passes through unchanged.
//
// EscapeHTML is not idempotent: escaping already escaped text encodes the
// ampersands of the existing entities again, so "&lt;" becomes "&amp;lt;".
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

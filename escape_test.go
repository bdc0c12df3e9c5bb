package respio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	t.Run("Neutralizes script tags", func(t *testing.T) {
		assert.Equal(t,
			"&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;",
			EscapeHTML(`<script>alert("x")</script>`),
		)
	})

	t.Run("Escapes all five markup characters", func(t *testing.T) {
		assert.Equal(t,
			"&lt;a href=&quot;x&quot;&gt;&amp;&#39;&lt;/a&gt;",
			EscapeHTML(`<a href="x">&'</a>`),
		)
	})

	t.Run("Leaves plain text alone", func(t *testing.T) {
		assert.Equal(t, "plain text 123", EscapeHTML("plain text 123"))
		assert.Equal(t, "", EscapeHTML(""))
	})

	t.Run("Is not idempotent", func(t *testing.T) {
		once := EscapeHTML("<b>")
		assert.Equal(t, "&lt;b&gt;", once)
		assert.Equal(t, "&amp;lt;b&amp;gt;", EscapeHTML(once))
	})
}

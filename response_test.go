package respio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusClassPredicates(t *testing.T) {
	cases := []struct {
		name   string
		status int
		class  string
	}{
		{"informational lower bound", 100, "informational"},
		{"informational upper bound", 199, "informational"},
		{"success lower bound", 200, "success"},
		{"success upper bound", 299, "success"},
		{"redirect lower bound", 300, "redirect"},
		{"redirect upper bound", 399, "redirect"},
		{"client error lower bound", 400, "client error"},
		{"client error upper bound", 499, "client error"},
		{"server error lower bound", 500, "server error"},
		{"server error upper bound", 599, "server error"},
		{"unset status", 0, "none"},
		{"below the informational class", 99, "none"},
		{"above the server error class", 600, "none"},
		{"negative status", -1, "none"},
		{"far out of range", 1000, "none"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Response{Status: tc.status}
			got := map[string]bool{
				"informational": res.IsInformational(),
				"success":       res.IsSuccess(),
				"redirect":      res.IsRedirect(),
				"client error":  res.IsClientError(),
				"server error":  res.IsServerError(),
			}

			for class, active := range got {
				assert.Equal(t, tc.class == class, active, class)
			}
		})
	}
}

func TestResponseImmutability(t *testing.T) {
	base := OK("hello", Header{Name: "X-Tag", Value: "a"})

	t.Run("SetHeader leaves the receiver untouched", func(t *testing.T) {
		derived := base.SetHeader("X-Tag", "b")

		assert.Equal(t, []string{"a"}, base.Headers.Values("X-Tag"))
		assert.Equal(t, []string{"b"}, derived.Headers.Values("X-Tag"))
	})

	t.Run("AddHeader leaves the receiver untouched", func(t *testing.T) {
		derived := base.AddHeader("X-Tag", "b")

		assert.Equal(t, []string{"a"}, base.Headers.Values("X-Tag"))
		assert.Equal(t, []string{"a", "b"}, derived.Headers.Values("X-Tag"))
	})

	t.Run("SetHeader on a zero value", func(t *testing.T) {
		var res Response
		derived := res.SetHeader("X-Tag", "a")

		assert.Nil(t, res.Headers)
		assert.Equal(t, []string{"a"}, derived.Headers.Values("X-Tag"))
	})

	t.Run("WithBody replaces the payload on the copy only", func(t *testing.T) {
		derived := base.WithBody([]byte("bye"))

		assert.Equal(t, "hello", string(base.Body))
		assert.Equal(t, "bye", string(derived.Body))
	})

	t.Run("WithStream drops the buffered payload on the copy only", func(t *testing.T) {
		derived := base.WithStream(strings.NewReader("streamed"))

		assert.Nil(t, derived.Body)
		assert.NotNil(t, derived.Stream)
		assert.Equal(t, "hello", string(base.Body))
		assert.Nil(t, base.Stream)
	})

	t.Run("SetCookie leaves the receiver untouched", func(t *testing.T) {
		derived := base.SetCookie("session", "abc")

		assert.Nil(t, base.Headers.Values("set-cookie"))
		assert.Equal(t, []string{"session=abc"}, derived.Headers.Values("set-cookie"))
	})
}

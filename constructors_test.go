package respio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	res := OK("hello", Header{Name: "Content-Type", Value: "text/plain"})

	assert.Equal(t, StatusOK, res.Status)
	assert.True(t, res.IsSuccess())
	assert.Equal(t, "hello", string(res.Body))

	value, err := res.Headers.Get("content-type")
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", value)
}

func TestConstructorDefaults(t *testing.T) {
	res := NotFound("")

	assert.Equal(t, StatusNotFound, res.Status)
	assert.Empty(t, res.Body)
	assert.Empty(t, res.Headers)
}

func TestConstructorHeaderOrder(t *testing.T) {
	res := BadRequest("",
		Header{Name: "X-Tag", Value: "a"},
		Header{Name: "x-tag", Value: "b"},
	)

	assert.Equal(t, []string{"a", "b"}, res.Headers.Values("X-Tag"))
}

func TestLookup(t *testing.T) {
	t.Run("Every cataloged phrase resolves", func(t *testing.T) {
		for _, s := range statuses {
			ctor, ok := Lookup(snakeName(s.phrase))
			require.True(t, ok, s.phrase)
			assert.Equal(t, s.code, ctor("").Status, s.phrase)
		}
	})

	t.Run("Spot checks", func(t *testing.T) {
		ctor, ok := Lookup("ok")
		require.True(t, ok)
		assert.Equal(t, StatusOK, ctor("").Status)

		ctor, ok = Lookup("not_found")
		require.True(t, ok)
		assert.Equal(t, StatusNotFound, ctor("missing").Status)

		ctor, ok = Lookup("im_a_teapot")
		require.True(t, ok)
		assert.Equal(t, StatusImATeapot, ctor("").Status)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, ok := Lookup("no_such_status")
		assert.False(t, ok)
	})
}

func TestSnakeName(t *testing.T) {
	cases := map[string]string{
		"OK":                            "ok",
		"Not Found":                     "not_found",
		"I'm a teapot":                  "im_a_teapot",
		"Multi-Status":                  "multi_status",
		"Non-Authoritative Information": "non_authoritative_information",
		"HTTP Version Not Supported":    "http_version_not_supported",
	}

	for phrase, want := range cases {
		assert.Equal(t, want, snakeName(phrase), phrase)
	}
}

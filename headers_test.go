package respio

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestHeaders(t *testing.T) {
	t.Run("Add normalizes keys and keeps value order", func(t *testing.T) {
		h := make(Headers)
		h.Add("Content-Type", "text/plain")
		h.Add("X-Tag", "a")
		h.Add("x-tag", "b")

		value, err := h.Get("content-type")
		assert.NoError(t, err)
		assert.Equal(t, "text/plain", value)
		assert.Equal(t, []string{"a", "b"}, h.Values("X-TAG"))
	})

	t.Run("Set replaces every stored value", func(t *testing.T) {
		h := make(Headers)
		h.Add("X-Tag", "a")
		h.Add("X-Tag", "b")
		h.Set("x-tag", "c")

		assert.Equal(t, []string{"c"}, h.Values("X-Tag"))
	})

	t.Run("Get returns the first value", func(t *testing.T) {
		h := make(Headers)
		h.Add("X-Tag", "a")
		h.Add("X-Tag", "b")

		value, err := h.Get("x-tag")
		assert.NoError(t, err)
		assert.Equal(t, "a", value)
	})

	t.Run("Get on a missing header", func(t *testing.T) {
		h := make(Headers)
		_, err := h.Get("accept")
		assert.ErrorIs(t, err, ErrNotExist)
	})

	t.Run("Values on a missing header", func(t *testing.T) {
		h := make(Headers)
		assert.Nil(t, h.Values("accept"))
	})

	t.Run("Del removes the header and all its values", func(t *testing.T) {
		h := make(Headers)
		h.Add("X-Tag", "a")
		h.Add("X-Tag", "b")

		assert.NoError(t, h.Del("X-TAG"))
		assert.ErrorIs(t, h.Del("X-Tag"), ErrNotExist)
	})

	t.Run("Clone shares nothing with the original", func(t *testing.T) {
		h := make(Headers)
		h.Add("X-Tag", "a")

		clone := h.Clone()
		clone.Add("X-Tag", "b")
		clone.Add("X-Other", "c")

		want := Headers{"x-tag": {"a"}}
		if diff := cmp.Diff(want, h); diff != "" {
			t.Errorf("original headers changed (-want +got):\n%s", diff)
		}
	})

	t.Run("Clone of a nil map is usable", func(t *testing.T) {
		var h Headers
		clone := h.Clone()
		clone.Add("X-Tag", "a")

		assert.Equal(t, []string{"a"}, clone.Values("X-Tag"))
	})
}

package respio

import (
	"errors"
	"strings"
)

// Headers represents a collection of HTTP headers with case-insensitive keys.
//
// Keys are stored lower-cased. A key may hold any number of values, and the
// values of a key keep the order in which they were added. Iteration order
// over keys is unspecified, as with any Go map; serializers that need a
// stable header block order the keys themselves.
type Headers map[string][]string

// Predefined errors for header handling.
var (
	// ErrNotExist is returned when a requested value does not exist.
	ErrNotExist = errors.New("value does not exist")
)

// Header is a single name/value pair. Constructors take headers as pairs so
// the caller controls the order in which values are added.
type Header struct {
	// Name is the header name, matched case-insensitively.
	Name string

	// Value is the header value, stored as given.
	Value string
}

// Add appends a value to the given header, keeping any values already
// stored for it.
func (h Headers) Add(key, value string) {
	key = strings.ToLower(key)
	h[key] = append(h[key], value)
}

// Set replaces every value stored for the given header with value.
func (h Headers) Set(key, value string) {
	key = strings.ToLower(key)
	h[key] = []string{value}
}

// Get retrieves the first value stored for the given header.
//
// If the header does not exist, an error is returned.
func (h Headers) Get(key string) (string, error) {
	values := h[strings.ToLower(key)]
	if len(values) == 0 {
		return "", ErrNotExist
	}

	return values[0], nil
}

// Values retrieves every value stored for the given header, in the order
// they were added. It returns nil when the header does not exist.
func (h Headers) Values(key string) []string {
	return h[strings.ToLower(key)]
}

// Del removes a header and all of its values.
//
// If the header does not exist, an error is returned.
func (h Headers) Del(key string) error {
	key = strings.ToLower(key)
	if len(h[key]) == 0 {
		return ErrNotExist
	}

	delete(h, key)
	return nil
}

// Clone returns a deep copy of the headers. The copy shares nothing with
// the original, so mutating one never shows through the other. Cloning a
// nil map yields an empty, usable map.
func (h Headers) Clone() Headers {
	clone := make(Headers, len(h))
	for key, values := range h {
		clone[key] = append([]string(nil), values...)
	}

	return clone
}

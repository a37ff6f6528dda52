package httpio

import (
	"iter"
	"slices"
)

// Headers is an ordered set of HTTP headers holding one value per name.
//
// Names are case-sensitive as stored. Setting a name that already exists
// replaces its value in place, so iteration order is the order in which
// names were first set. The zero value is an empty set ready to use.
type Headers struct {
	keys   []string
	values map[string]string
}

// NewHeaders returns a Headers set filled with the given name/value pairs,
// in argument order. A trailing name without a value is ignored.
func NewHeaders(pairs ...string) *Headers {
	h := &Headers{}
	for i := 0; i+1 < len(pairs); i += 2 {
		h.Set(pairs[i], pairs[i+1])
	}

	return h
}

// Lookup returns the value stored under key and whether it was present.
func (h *Headers) Lookup(key string) (string, bool) {
	if h == nil || h.values == nil {
		return "", false
	}

	value, ok := h.values[key]
	return value, ok
}

// Get returns the value stored under key, or "" when absent.
func (h *Headers) Get(key string) string {
	value, _ := h.Lookup(key)
	return value
}

// Set stores value under key.
func (h *Headers) Set(key, value string) {
	if h.values == nil {
		h.values = make(map[string]string)
	}

	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}

	h.values[key] = value
}

// Del removes key. Removing a missing key is a no-op.
func (h *Headers) Del(key string) {
	if _, ok := h.Lookup(key); !ok {
		return
	}

	delete(h.values, key)
	h.keys = slices.DeleteFunc(h.keys, func(k string) bool { return k == key })
}

func (h *Headers) Len() int {
	if h == nil {
		return 0
	}

	return len(h.keys)
}

// Keys returns the header names in insertion order.
func (h *Headers) Keys() []string {
	if h == nil {
		return nil
	}

	return slices.Clone(h.keys)
}

// All iterates over name/value pairs in insertion order.
func (h *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if h == nil {
			return
		}

		for _, k := range h.keys {
			if !yield(k, h.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the set.
func (h *Headers) Map() map[string]string {
	m := make(map[string]string, h.Len())
	for k, v := range h.All() {
		m[k] = v
	}

	return m
}

// Clone returns an independent copy that keeps the same order.
func (h *Headers) Clone() *Headers {
	c := &Headers{}
	for k, v := range h.All() {
		c.Set(k, v)
	}

	return c
}

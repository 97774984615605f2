package types

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// Tags is a case-insensitive multi-map of APE item keys to text values.
//
// APE keys are ASCII and compared without regard to case, so Tags folds
// every key to lower case on the way in. Values keep the order in which
// items appeared in the tag.
//
// Example:
//
//	for key, values := range tag.Tags.All() {
//		fmt.Printf("%s: %v\n", key, values)
//	}
type Tags struct {
	raw   map[string][]string
	order []string
}

// Add appends a value to key.
func (t *Tags) Add(key, value string) {
	if t.raw == nil {
		t.raw = make(map[string][]string)
	}
	k := strings.ToLower(key)
	if _, ok := t.raw[k]; !ok {
		t.order = append(t.order, k)
	}
	t.raw[k] = append(t.raw[k], value)
}

// Set replaces all values for key.
//
// If values is empty, the key is removed.
func (t *Tags) Set(key string, values ...string) {
	k := strings.ToLower(key)
	if len(values) == 0 {
		if _, ok := t.raw[k]; ok {
			delete(t.raw, k)
			t.order = slices.DeleteFunc(t.order, func(s string) bool { return s == k })
		}
		return
	}
	if t.raw == nil {
		t.raw = make(map[string][]string)
	}
	if _, ok := t.raw[k]; !ok {
		t.order = append(t.order, k)
	}
	t.raw[k] = slices.Clone(values)
}

// Get retrieves all values for a key, matched case-insensitively.
//
// Returns nil if the key doesn't exist.
func (t *Tags) Get(key string) []string {
	if t.raw == nil {
		return nil
	}
	values := t.raw[strings.ToLower(key)]
	if values == nil {
		return nil
	}
	return slices.Clone(values) // Return a copy to prevent modification
}

// GetFirst retrieves the first value for a key.
//
// Returns empty string if the key doesn't exist or has no values.
//
//	artist := tag.Tags.GetFirst("Artist")
func (t *Tags) GetFirst(key string) string {
	values := t.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// GetBest tries multiple keys and returns the first non-empty value.
//
//	disc := tags.GetBest("Disc", "DiscNumber")
func (t *Tags) GetBest(candidates ...string) string {
	for _, key := range candidates {
		if value := t.GetFirst(key); value != "" {
			return value
		}
	}
	return ""
}

// Has reports whether key is present.
func (t *Tags) Has(key string) bool {
	_, ok := t.raw[strings.ToLower(key)]
	return ok
}

// Len returns the number of distinct keys.
func (t *Tags) Len() int {
	return len(t.raw)
}

// Keys returns the folded keys in first-seen order.
func (t *Tags) Keys() []string {
	return slices.Clone(t.order)
}

// All returns an iterator over keys (in first-seen order) and their values.
//
// The returned iterator is read-only. Do not modify the returned slices.
func (t *Tags) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, key := range t.order {
			if !yield(key, t.raw[key]) {
				return
			}
		}
	}
}

// Clone creates a deep copy of the Tags.
func (t *Tags) Clone() *Tags {
	if t == nil {
		return nil
	}

	clone := &Tags{order: slices.Clone(t.order)}
	if t.raw != nil {
		clone.raw = make(map[string][]string, len(t.raw))
		for key, values := range t.raw {
			clone.raw[key] = slices.Clone(values)
		}
	}
	return clone
}

// Equal checks if two Tags hold the same keys and values.
// Key order is not compared.
func (t *Tags) Equal(other *Tags) bool {
	if t == nil && other == nil {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return maps.EqualFunc(t.raw, other.raw, slices.Equal)
}

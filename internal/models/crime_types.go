package models

import (
	"encoding/json"
	"strings"
)

// CrimeTypes is the normalized set of declared crime-type labels, kept as a
// sorted-insertion slice of lowercase strings. The wire form is tolerant: a
// JSON array, a JSON-encoded array inside a string, or a comma-separated
// string all decode to the same set.
type CrimeTypes []string

// UnmarshalJSON accepts ["a","b"], "[\"a\",\"b\"]" and "a, b".
func (c *CrimeTypes) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*c = normalizeLabels(list)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*c = ParseCrimeTypes(raw)
	return nil
}

// ParseCrimeTypes normalizes a raw string form: a JSON-encoded array when it
// parses as one, otherwise a comma-separated list.
func ParseCrimeTypes(raw string) CrimeTypes {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
			return normalizeLabels(list)
		}
	}
	return normalizeLabels(strings.Split(trimmed, ","))
}

// normalizeLabels lowercases, trims and dedupes while keeping first-seen order.
func normalizeLabels(labels []string) CrimeTypes {
	out := make(CrimeTypes, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		l := strings.ToLower(strings.TrimSpace(label))
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

// Contains reports whether any label carries the given lowercase substring.
func (c CrimeTypes) Contains(substr string) bool {
	for _, label := range c {
		if strings.Contains(label, substr) {
			return true
		}
	}
	return false
}

// Primary returns the first label, or an empty string for an empty set.
func (c CrimeTypes) Primary() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

package relata

import (
	"github.com/google/uuid"
)

// NewID mints an opaque entity identifier.
func NewID() string {
	return uuid.NewString()
}

// Dedupe drops duplicate ids, keeping the first occurrence's position.
func Dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Difference returns the elements of a that are absent from b.
func Difference(a, b []string) []string {
	in := make(map[string]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	var out []string
	for _, id := range a {
		if _, ok := in[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

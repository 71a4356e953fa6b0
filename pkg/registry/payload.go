package registry

import (
	"sort"
	"strings"
)

// Payload maps field names to trimmed, non-empty values for one submission.
// It is built once from raw form input, consumed by the request builder, and
// discarded; nothing persists across submissions.
type Payload map[string]string

// NewPayload trims every value and drops fields that end up empty, so the
// serialized request only carries what the user actually filled in.
func NewPayload(raw map[string]string) Payload {
	out := make(Payload, len(raw))
	for name, value := range raw {
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		out[name] = value
	}
	return out
}

// Get returns the value for name, or "" when absent.
func (p Payload) Get(name string) string {
	return p[name]
}

// Has reports whether name carries a value.
func (p Payload) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Fields returns the field names in sorted order, for deterministic logging.
func (p Payload) Fields() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

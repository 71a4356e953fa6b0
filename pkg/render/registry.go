package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry indexes result renderers by name so callers can pick the
// output format at runtime (term, html, json, plus any extras).
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Renderer
}

// NewRegistry returns an empty renderer registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Renderer)}
}

// Register adds a renderer under its Name. Registering a second
// renderer with the same name is an error rather than a silent
// replacement.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.entries[name]; taken {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.entries[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Used for the built-in
// renderers, where a collision is a programming error.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer registered under name. The error lists the
// registered names so a mistyped --renderer flag is self-explanatory.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("render: unknown renderer %q (available: %s)", name, strings.Join(r.namesLocked(), ", "))
	}
	return renderer, nil
}

// List returns the registered renderer names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package render

import (
	"context"

	"github.com/goliatone/go-theme"
)

// Renderer converts a View into a byte representation (terminal text,
// HTML, JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View, options Options) ([]byte, error)
}

// Options describe per-request data that renderers can use to customise
// their output without mutating the view.
type Options struct {
	// Theme carries resolved design tokens for renderers that style
	// their output. Renderers without styling ignore it.
	Theme *theme.RendererConfig
	// Verbose asks the renderer to include the debug panel even on
	// success, when the view carries one.
	Verbose bool
}

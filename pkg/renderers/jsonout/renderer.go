// Package jsonout renders outcome views as indented JSON for piping
// into other tools.
package jsonout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nelsonberm/go-srtm/pkg/render"
)

// Renderer marshals the view as-is. The view's json tags define the
// output contract.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Name() string { return "json" }

func (r *Renderer) ContentType() string { return "application/json; charset=utf-8" }

func (r *Renderer) Render(ctx context.Context, view render.View, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !options.Verbose && !view.Failed {
		view.Debug = nil
	}
	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("jsonout: marshal view: %w", err)
	}
	return out, nil
}

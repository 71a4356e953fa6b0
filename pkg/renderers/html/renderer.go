// Package html renders outcome views as a self-contained HTML result
// card, themeable through design tokens.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/nelsonberm/go-srtm/pkg/render"
)

const resultTemplate = "templates/result.tmpl"

type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// Renderer writes views as HTML. All API-supplied text passes through a
// strict sanitizer before templating; the API is not a trusted origin
// for markup.
type Renderer struct {
	templates *pongo2.TemplateSet
	sanitizer *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	set := pongo2.NewSet("srtm-html", pongo2.NewFSLoader(cfg.templateFS))
	if _, err := set.FromFile(resultTemplate); err != nil {
		return nil, fmt.Errorf("html renderer: load result template: %w", err)
	}

	return &Renderer{
		templates: set,
		sanitizer: bluemonday.StrictPolicy(),
	}, nil
}

func (r *Renderer) Name() string { return "html" }

func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *Renderer) Render(ctx context.Context, view render.View, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpl, err := r.templates.FromFile(resultTemplate)
	if err != nil {
		return nil, fmt.Errorf("html renderer: load result template: %w", err)
	}

	out, err := tpl.ExecuteBytes(pongo2.Context{
		"view":       r.sanitizeView(view),
		"show_debug": view.Debug != nil && (view.Failed || options.Verbose),
		"css_vars":   themeCSSVars(options),
		"theme":      themeName(options),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: execute result template: %w", err)
	}
	return out, nil
}

// sanitizeView strips markup from every API-controlled string. The
// caller's view must stay untouched, so every slice is copied before
// cleaning.
func (r *Renderer) sanitizeView(view render.View) render.View {
	clean := r.sanitizer.Sanitize

	view.Message = clean(view.Message)
	view.Note = clean(view.Note)
	if len(view.ValidationErrors) > 0 {
		msgs := make([]string, len(view.ValidationErrors))
		for i, msg := range view.ValidationErrors {
			msgs[i] = clean(msg)
		}
		view.ValidationErrors = msgs
	}
	if view.Payload != nil {
		p := *view.Payload
		p.Notice = clean(p.Notice)
		p.Scalar = clean(p.Scalar)
		if len(p.Items) > 0 {
			items := make([]string, len(p.Items))
			for i, item := range p.Items {
				items[i] = clean(item)
			}
			p.Items = items
		}
		if p.Table != nil {
			t := *p.Table
			cols := make([]string, len(t.Columns))
			for i, col := range t.Columns {
				cols[i] = clean(col)
			}
			t.Columns = cols
			rows := make([][]string, len(t.Rows))
			for i, row := range t.Rows {
				cells := make([]string, len(row))
				for j, cell := range row {
					cells[j] = clean(cell)
				}
				rows[i] = cells
			}
			t.Rows = rows
			p.Table = &t
		}
		view.Payload = &p
	}
	if len(view.AdditionalInfo) > 0 {
		info := make([]render.Row, len(view.AdditionalInfo))
		for i, row := range view.AdditionalInfo {
			info[i] = render.Row{Label: clean(row.Label), Value: clean(row.Value)}
		}
		view.AdditionalInfo = info
	}
	return view
}

func themeName(options render.Options) string {
	if options.Theme == nil {
		return ""
	}
	name := options.Theme.Theme
	if options.Theme.Variant != "" {
		name += "-" + options.Theme.Variant
	}
	return name
}

// themeCSSVars flattens the theme's CSS variables into a :root block,
// sorted for deterministic output.
func themeCSSVars(options render.Options) string {
	if options.Theme == nil || len(options.Theme.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(options.Theme.CSSVars))
	for key := range options.Theme.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  " + key + ": " + options.Theme.CSSVars[key] + ";\n")
	}
	b.WriteString("}")
	return b.String()
}

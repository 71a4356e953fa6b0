// Package srtm is a client for the mobile-device registry API: it
// builds request forms from the API's OpenAPI document, validates
// payloads client-side, executes operations, and renders the outcome
// through pluggable renderers.
package srtm

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/nelsonberm/go-srtm/internal/config"
	"github.com/nelsonberm/go-srtm/internal/themes"
	"github.com/nelsonberm/go-srtm/pkg/forms"
	"github.com/nelsonberm/go-srtm/pkg/openapi"
	"github.com/nelsonberm/go-srtm/pkg/outcome"
	"github.com/nelsonberm/go-srtm/pkg/registry"
	"github.com/nelsonberm/go-srtm/pkg/render"
	"github.com/nelsonberm/go-srtm/pkg/renderers/html"
	"github.com/nelsonberm/go-srtm/pkg/renderers/jsonout"
	"github.com/nelsonberm/go-srtm/pkg/renderers/term"
	"github.com/nelsonberm/go-srtm/pkg/transport"
)

// Option customizes a Client.
type Option func(*Client)

// WithLogger attaches a logger used for transaction tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient replaces the HTTP client used by the invoker.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRenderer registers an additional renderer alongside the built-in
// term, html, and json ones.
func WithRenderer(r render.Renderer) Option {
	return func(c *Client) {
		c.extraRenderers = append(c.extraRenderers, r)
	}
}

// WithClock overrides the time source used by payload validation.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// Client ties the pipeline together: operations from the API document,
// forms, validation, transport, and rendering.
type Client struct {
	cfg       config.Config
	logger    *zap.Logger
	now       func() time.Time
	invoker   *transport.Invoker
	renderers *render.Registry
	ops       map[string]openapi.Operation
	forms     map[string]forms.Form

	httpClient     *http.Client
	extraRenderers []render.Renderer
}

// New builds a Client from resolved configuration. The API document is
// the embedded one; operations and forms are prepared eagerly so later
// calls cannot fail on document problems.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Client, error) {
	c := &Client{
		cfg:    cfg,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	ops, err := openapi.LoadEmbedded(ctx)
	if err != nil {
		return nil, fmt.Errorf("srtm: load api document: %w", err)
	}
	c.ops = ops

	c.forms = make(map[string]forms.Form, len(ops))
	for id, op := range ops {
		form, err := forms.Build(op)
		if err != nil {
			return nil, fmt.Errorf("srtm: build form for %s: %w", id, err)
		}
		c.forms[id] = form
	}

	invokerOpts := []transport.Option{
		transport.WithTimeout(cfg.Timeout()),
		transport.WithLogger(c.logger),
	}
	if c.httpClient != nil {
		invokerOpts = append(invokerOpts, transport.WithHTTPClient(c.httpClient))
	}
	c.invoker = transport.NewInvoker(cfg.BaseURL, invokerOpts...)

	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("srtm: build html renderer: %w", err)
	}
	c.renderers = render.NewRegistry()
	c.renderers.MustRegister(term.New())
	c.renderers.MustRegister(htmlRenderer)
	c.renderers.MustRegister(jsonout.New())
	for _, r := range c.extraRenderers {
		if err := c.renderers.Register(r); err != nil {
			return nil, fmt.Errorf("srtm: register renderer: %w", err)
		}
	}

	return c, nil
}

// Operations lists the available operation IDs, sorted.
func (c *Client) Operations() []string {
	ids := make([]string, 0, len(c.ops))
	for id := range c.ops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Form returns the request form for an operation.
func (c *Client) Form(operationID string) (forms.Form, error) {
	form, ok := c.forms[operationID]
	if !ok {
		return forms.Form{}, fmt.Errorf("srtm: unknown operation %q", operationID)
	}
	return form, nil
}

// Renderers lists the registered renderer names.
func (c *Client) Renderers() []string {
	return c.renderers.List()
}

// Execute validates the payload against the operation's form and, when
// it passes, sends the request. Validation failures resolve to an
// outcome with code VALIDATION_ERROR without touching the network.
func (c *Client) Execute(ctx context.Context, operationID string, raw map[string]string) (outcome.Outcome, error) {
	form, err := c.Form(operationID)
	if err != nil {
		return outcome.Outcome{}, err
	}
	spec, ok := registry.Lookup(operationID)
	if !ok {
		return outcome.Outcome{}, fmt.Errorf("srtm: operation %q has no endpoint", operationID)
	}

	payload := registry.NewPayload(raw)
	if errs := forms.Validate(form, payload, c.now()); len(errs) > 0 {
		return outcome.Outcome{
			Kind:             outcome.KindValidation,
			Success:          false,
			Code:             outcome.CodeValidation,
			Message:          "Error de validación en los datos enviados",
			ValidationErrors: errs,
		}, nil
	}

	return c.invoker.Invoke(ctx, spec, payload)
}

// Render turns an outcome into bytes using the named renderer. An empty
// name uses the configured default.
func (c *Client) Render(ctx context.Context, o outcome.Outcome, rendererName string) ([]byte, error) {
	if rendererName == "" {
		rendererName = c.cfg.Renderer
	}
	renderer, err := c.renderers.Get(rendererName)
	if err != nil {
		return nil, err
	}

	opts := render.Options{}
	if c.cfg.Theme.Name != "" || renderer.Name() == "html" {
		themeCfg, err := themes.Resolve(c.cfg.Theme.Name, c.cfg.Theme.Variant)
		if err != nil {
			return nil, fmt.Errorf("srtm: resolve theme: %w", err)
		}
		opts.Theme = themeCfg
	}

	return renderer.Render(ctx, render.BuildView(o), opts)
}

// Package transport executes registry requests over HTTP and resolves
// every attempt, successful or not, into an outcome.Outcome. Transport
// failures are classified rather than returned: the only errors that
// escape Invoke are programmer mistakes such as an unserializable
// payload.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nelsonberm/go-srtm/pkg/outcome"
	"github.com/nelsonberm/go-srtm/pkg/registry"
	"github.com/nelsonberm/go-srtm/pkg/reportstamp"
)

// DefaultTimeout bounds a single registry request.
const DefaultTimeout = 30 * time.Second

type config struct {
	client  *http.Client
	timeout time.Duration
	logger  *zap.Logger
	origin  string
}

// Option customizes an Invoker.
type Option func(*config)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.client = c
		}
	}
}

// WithTimeout overrides the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithLogger attaches a logger for transaction tracing.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithOrigin records the origin reported in CORS guidance and debug output.
func WithOrigin(origin string) Option {
	return func(cfg *config) {
		cfg.origin = origin
	}
}

// Invoker sends built requests to a registry API base URL.
type Invoker struct {
	baseURL string
	cfg     config
}

// NewInvoker builds an Invoker for the given base URL.
func NewInvoker(baseURL string, opts ...Option) *Invoker {
	cfg := config{
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Invoker{baseURL: baseURL, cfg: cfg}
}

// envelope mirrors the wrapper the API wraps every response in. Fields
// absent from a given response simply stay zero.
type envelope struct {
	Success              *bool           `json:"success"`
	HTTPStatus           int             `json:"http_status"`
	Message              string          `json:"message"`
	Detail               string          `json:"detail"`
	ErrorCode            string          `json:"error_code"`
	RawResponse          json.RawMessage `json:"raw_response"`
	AdditionalInfo       map[string]any  `json:"additional_info"`
	Errors               []string        `json:"errors"`
	TransactionTimestamp string          `json:"transaction_timestamp"`
}

// Invoke executes one registry operation. The returned outcome is
// always renderable; err is non-nil only when the request could not be
// constructed at all.
func (inv *Invoker) Invoke(ctx context.Context, spec registry.EndpointSpec, payload registry.Payload) (outcome.Outcome, error) {
	desc, err := registry.BuildDescriptor(spec, payload)
	if err != nil {
		return outcome.Outcome{}, fmt.Errorf("transport: build request for %s: %w", spec.Name, err)
	}
	url := registry.BuildURL(inv.baseURL, spec, payload)

	txID := uuid.NewString()
	stamp := reportstamp.Now()
	logger := inv.cfg.logger.With(
		zap.String("transaction_id", txID),
		zap.String("operation", spec.Name),
	)
	debug := &outcome.Debug{
		Origin:        inv.cfg.origin,
		URL:           url,
		Method:        desc.Method,
		Endpoint:      spec.Path,
		Timestamp:     stamp,
		TransactionID: txID,
	}

	ctx, cancel := context.WithTimeout(ctx, inv.cfg.timeout)
	defer cancel()

	var body io.Reader
	if desc.Body != nil {
		body = bytes.NewReader(desc.Body)
	}
	req, err := http.NewRequestWithContext(ctx, desc.Method, url, body)
	if err != nil {
		return outcome.Outcome{}, fmt.Errorf("transport: new request for %s: %w", spec.Name, err)
	}
	req.Header = desc.Headers.Clone()

	logger.Info("[REQUEST] dispatching",
		zap.String("method", desc.Method),
		zap.String("url", url),
	)

	resp, err := inv.cfg.client.Do(req)
	if err != nil {
		logger.Warn("[REQUEST] transport failure", zap.Error(err))
		o := ClassifyNetworkError(err, inv.cfg.origin)
		o.Timestamp = stamp
		o.Debug = debug
		return o, nil
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("[RESPONSE] body read failure", zap.Error(err))
		o := ClassifyNetworkError(err, inv.cfg.origin)
		o.Timestamp = stamp
		o.Debug = debug
		return o, nil
	}

	o := inv.resolve(resp.StatusCode, raw)
	o.Timestamp = firstNonEmpty(o.Timestamp, stamp)
	if o.Failed() {
		o.Debug = debug
	}
	logger.Info("[RESPONSE] resolved",
		zap.Int("status", resp.StatusCode),
		zap.String("kind", string(o.Kind)),
	)
	return o, nil
}

// resolve interprets the HTTP status plus body into an outcome,
// applying the 200/201-always-success rule.
func (inv *Invoker) resolve(status int, raw []byte) outcome.Outcome {
	var env envelope
	parseErr := json.Unmarshal(raw, &env)

	bodySuccess := env.Success != nil && *env.Success
	kind, success := outcome.Classify(status, bodySuccess)

	o := outcome.Outcome{
		Kind:           kind,
		Status:         status,
		Success:        success,
		AdditionalInfo: env.AdditionalInfo,
		Timestamp:      env.TransactionTimestamp,
	}

	if parseErr != nil {
		// An unparseable body on a successful status still counts as
		// success; the message just degrades to a generic one.
		if success {
			o.Message = "Operación completada exitosamente."
		} else {
			o.Message = fmt.Sprintf("HTTP %d", status)
			o.Code = outcome.CodeHTTPError
		}
		return o
	}

	fallback := fmt.Sprintf("HTTP %d", status)
	if success {
		fallback = "Operación completada exitosamente."
	}
	o.Message = firstNonEmpty(env.Message, env.Detail, fallback)
	o.Payload = outcome.ParsePayload(env.RawResponse)

	if success {
		return o
	}

	switch {
	case status == 422:
		o.Code = firstNonEmpty(env.ErrorCode, outcome.CodeValidation)
		o.ValidationErrors = env.Errors
	default:
		o.Code = firstNonEmpty(env.ErrorCode, outcome.CodeHTTPError)
	}
	return o
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

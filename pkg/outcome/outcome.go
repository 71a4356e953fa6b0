// Package outcome models the result of a registry operation after the
// transport layer has finished with it: a classified kind, the normalized
// API fields, and any user guidance that should accompany a failure.
package outcome

// Kind partitions outcomes by how the request ended.
type Kind string

const (
	KindSuccess      Kind = "success"
	KindHTTPError    Kind = "http_error"
	KindNetworkError Kind = "network_error"
	KindTimeout      Kind = "timeout"

	// KindValidation marks submissions rejected client-side, before any
	// request was sent.
	KindValidation Kind = "validation_error"
)

// Error codes surfaced to the user alongside failed outcomes.
const (
	CodeHTTPError  = "HTTP_ERROR"
	CodeCORS       = "CORS_ERROR"
	CodeConnection = "CONNECTION_ERROR"
	CodeTimeout    = "TIMEOUT_ERROR"
	CodeValidation = "VALIDATION_ERROR"
)

// Outcome is the single value every operation resolves to. Transport
// failures never escape as Go errors from the invoker; they arrive here
// with Kind and Code set so renderers treat every result uniformly.
type Outcome struct {
	Kind    Kind   `json:"kind"`
	Status  int    `json:"http_status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"error_code,omitempty"`

	// Payload holds the API response body tagged by shape, when one
	// was present and parseable.
	Payload *Payload `json:"payload,omitempty"`

	// ValidationErrors carries the per-field messages of a 422 body.
	ValidationErrors []string `json:"validation_errors,omitempty"`

	// Note is a short secondary line, e.g. when a query matched nothing.
	Note string `json:"note,omitempty"`

	Guidance       *Guidance      `json:"guidance,omitempty"`
	AdditionalInfo map[string]any `json:"additional_info,omitempty"`

	// Timestamp is the transaction timestamp echoed by the API
	// ("2006-01-02 15:04:05.000") or, when the response carried none,
	// the local 14-digit report stamp taken at dispatch.
	Timestamp string `json:"transaction_timestamp,omitempty"`

	Debug *Debug `json:"debug,omitempty"`
}

// Failed reports whether the outcome should render as an error.
func (o Outcome) Failed() bool {
	return o.Kind != KindSuccess
}

// Guidance is a titled list of remediation hints attached to network
// and CORS failures.
type Guidance struct {
	Kind  string   `json:"kind"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Debug captures the request context shown only when an operation fails.
type Debug struct {
	Origin        string `json:"origin,omitempty"`
	URL           string `json:"url"`
	Method        string `json:"method"`
	Endpoint      string `json:"endpoint"`
	Timestamp     string `json:"timestamp"`
	TransactionID string `json:"transaction_id"`
}

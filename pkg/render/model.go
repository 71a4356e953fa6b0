// Package render turns classified outcomes into presentable views and
// hands them to pluggable renderers. Building the view is pure; only
// the renderers touch terminals, templates, or encoders.
package render

// View is the renderer-agnostic projection of an outcome. Every field
// is already formatted; renderers only decide layout and styling.
type View struct {
	Badge   string `json:"badge"`
	Failed  bool   `json:"failed"`
	Status  string `json:"http_status"`
	Message string `json:"message"`
	Note    string `json:"note,omitempty"`
	Code    string `json:"error_code,omitempty"`

	// Timestamp is the transaction timestamp in long Spanish form.
	Timestamp string `json:"transaction_timestamp,omitempty"`

	ValidationErrors []string `json:"validation_errors,omitempty"`

	Payload  *PayloadView `json:"payload,omitempty"`
	Guidance *Guidance    `json:"guidance,omitempty"`
	Debug    *DebugPanel  `json:"debug,omitempty"`

	AdditionalInfo []Row `json:"additional_info,omitempty"`
}

// Row is a rendered key/value pair.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table is a list of records sharing a column set.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// PayloadView presents the response payload in exactly one of three
// forms: a table of records, a flat list, or a single scalar.
type PayloadView struct {
	Table  *Table   `json:"table,omitempty"`
	Items  []string `json:"items,omitempty"`
	Scalar string   `json:"scalar,omitempty"`
	Notice string   `json:"notice,omitempty"`
}

// Guidance mirrors outcome.Guidance for rendering.
type Guidance struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// DebugPanel lists request context rows shown on failures.
type DebugPanel struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

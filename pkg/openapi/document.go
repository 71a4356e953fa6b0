// Package openapi loads and parses the registry API's OpenAPI document
// into operation wrappers the form builder consumes. The public types
// stay decoupled from kin-openapi structs.
package openapi

import "errors"

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source tells the loader where a document lives: a file path, an entry
// inside an fs.FS, or the API's own /openapi.json URL.
type Source interface {
	Kind() SourceKind
	Location() string
}

// Document pairs the raw OpenAPI bytes with their origin. The bytes are
// copied on the way in and out so callers cannot mutate a shared slice.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument wraps raw document bytes. Both the source and a non-empty
// payload are required.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics instead of returning an error. Test helper.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the document bytes.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location is shorthand for the source's location string.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Operation is the slice of an OpenAPI operation the form builder needs:
// identity, route, request schema, and any path/query parameters.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
	RequestBody Schema
	Parameters  []Parameter
	Extensions  map[string]any
}

// Parameter models a path or query parameter.
type Parameter struct {
	Name        string
	In          string
	Required    bool
	Description string
	Schema      Schema
}

// NewOperation builds an Operation, rejecting blank identity fields.
func NewOperation(id, method, path string, request Schema) (Operation, error) {
	switch {
	case id == "":
		return Operation{}, errors.New("openapi: operation id is required")
	case method == "":
		return Operation{}, errors.New("openapi: operation method is required")
	case path == "":
		return Operation{}, errors.New("openapi: operation path is required")
	}
	return Operation{ID: id, Method: method, Path: path, RequestBody: request}, nil
}

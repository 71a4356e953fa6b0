package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FieldOrderExtension carries the declaration order of request fields so
// forms render deterministically. JSON object keys carry no order, so
// the document states it explicitly.
const FieldOrderExtension = "x-field-order"

// Parser normalises OpenAPI documents into Operation wrappers using
// kin-openapi.
type Parser struct {
	validate bool
}

// ParserOption mutates parser configuration.
type ParserOption func(*Parser)

// WithValidation toggles document validation during parsing. Enabled by
// default.
func WithValidation(enabled bool) ParserOption {
	return func(p *Parser) {
		p.validate = enabled
	}
}

// NewParser constructs a Parser.
func NewParser(options ...ParserOption) *Parser {
	p := &Parser{validate: true}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Operations converts a Document into a map keyed by operationId.
func (p *Parser) Operations(ctx context.Context, doc Document) (map[string]Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi parser: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi parser: load document: %w", err)
	}

	if p.validate {
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi parser: validate: %w", err)
		}
	}

	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi parser: document does not contain any paths")
	}

	operations := make(map[string]Operation)
	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		p.collectOperation(operations, "GET", path, item.Get)
		p.collectOperation(operations, "POST", path, item.Post)
		p.collectOperation(operations, "PUT", path, item.Put)
		p.collectOperation(operations, "DELETE", path, item.Delete)
		p.collectOperation(operations, "PATCH", path, item.Patch)
	}

	if len(operations) == 0 {
		return nil, errors.New("openapi parser: no operations extracted")
	}
	return operations, nil
}

func (p *Parser) collectOperation(target map[string]Operation, method, path string, operation *openapi3.Operation) {
	if operation == nil {
		return
	}
	opID := operation.OperationID
	if opID == "" {
		opID = strings.ToLower(method) + ":" + path
	}

	op, err := NewOperation(opID, method, path, extractRequestSchema(operation.RequestBody))
	if err != nil {
		return
	}
	op.Summary = operation.Summary
	op.Description = operation.Description
	op.Parameters = extractParameters(operation.Parameters)
	op.Extensions = cloneExtensions(operation.Extensions)
	target[opID] = op
}

func extractRequestSchema(requestBody *openapi3.RequestBodyRef) Schema {
	if requestBody == nil {
		return Schema{}
	}
	if requestBody.Value == nil {
		return Schema{Ref: requestBody.Ref}
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded"} {
		if mt, ok := content[mediaType]; ok {
			return convertSchema(mt.Schema)
		}
	}
	for _, mt := range content {
		return convertSchema(mt.Schema)
	}
	return Schema{}
}

func extractParameters(params openapi3.Parameters) []Parameter {
	if len(params) == 0 {
		return nil
	}
	out := make([]Parameter, 0, len(params))
	for _, ref := range params {
		if ref == nil || ref.Value == nil {
			continue
		}
		src := ref.Value
		out = append(out, Parameter{
			Name:        src.Name,
			In:          src.In,
			Required:    src.Required,
			Description: src.Description,
			Schema:      convertSchema(src.Schema),
		})
	}
	return out
}

func convertSchema(ref *openapi3.SchemaRef) Schema {
	if ref == nil {
		return Schema{}
	}
	if ref.Value == nil {
		return Schema{Ref: ref.Ref}
	}
	src := ref.Value
	schema := Schema{
		Ref:         ref.Ref,
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Description: src.Description,
		Default:     src.Default,
	}

	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}
	if len(src.Enum) > 0 {
		schema.Enum = append([]any(nil), src.Enum...)
	}
	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchema(property)
		}
	}
	if src.Items != nil {
		items := convertSchema(src.Items)
		schema.Items = &items
	}
	schema.Extensions = cloneExtensions(src.Extensions)
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}

func cloneExtensions(raw map[string]any) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}
	return out
}

// FieldOrder extracts the x-field-order extension from a schema, when
// present.
func FieldOrder(s Schema) []string {
	raw, ok := s.Extensions[FieldOrderExtension]
	if !ok {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if name, ok := item.(string); ok {
			out = append(out, name)
		}
	}
	return out
}

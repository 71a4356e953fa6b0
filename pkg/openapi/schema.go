package openapi

// Schema is a plain-data view of a request body or field schema. It
// carries just what the form builder reads: typing, required lists,
// enums, and vendor extensions such as the field-order hint.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Required    []string
	Properties  map[string]Schema
	Items       *Schema
	Enum        []any
	Description string
	Default     any
	Extensions  map[string]any
}

// Clone deep-copies the schema tree so callers can rearrange a form
// without touching the parsed document.
func (s Schema) Clone() Schema {
	out := s
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}
	if len(s.Enum) > 0 {
		out.Enum = append([]any(nil), s.Enum...)
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.Clone()
		}
	}
	if s.Items != nil {
		items := s.Items.Clone()
		out.Items = &items
	}
	if len(s.Extensions) > 0 {
		out.Extensions = make(map[string]any, len(s.Extensions))
		for key, value := range s.Extensions {
			out.Extensions[key] = value
		}
	}
	return out
}

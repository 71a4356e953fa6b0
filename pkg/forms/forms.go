// Package forms builds request forms from parsed API operations and
// validates submissions before they reach the transport layer.
package forms

import "strings"

// FieldKind hints at the control a renderer or prompt session should
// use for a field.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindSelect   FieldKind = "select"
	KindTextArea FieldKind = "textarea"
	KindEmail    FieldKind = "email"
)

// Field describes one input of a request form.
type Field struct {
	Name        string
	Label       string
	Description string
	Kind        FieldKind
	Required    bool
	Options     []string
}

// Form is the ordered field set for one operation.
type Form struct {
	OperationID string
	Method      string
	Path        string
	Title       string
	Description string
	Fields      []Field
}

// Field returns the named field, if present.
func (f Form) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames returns the field names in declaration order.
func (f Form) FieldNames() []string {
	names := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		names = append(names, field.Name)
	}
	return names
}

// labelFromName turns a snake_case field name into a display label.
func labelFromName(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

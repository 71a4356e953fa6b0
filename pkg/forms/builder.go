package forms

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nelsonberm/go-srtm/pkg/openapi"
)

// Build converts a parsed operation into a Form. POST operations take
// their fields from the request body schema, GET operations from path
// parameters.
func Build(op openapi.Operation) (Form, error) {
	form := Form{
		OperationID: op.ID,
		Method:      op.Method,
		Path:        op.Path,
		Title:       op.Summary,
		Description: op.Description,
	}

	if strings.EqualFold(op.Method, "GET") {
		for _, param := range op.Parameters {
			form.Fields = append(form.Fields, Field{
				Name:        param.Name,
				Label:       labelFromName(param.Name),
				Description: param.Description,
				Kind:        KindText,
				Required:    param.Required,
			})
		}
		return form, nil
	}

	body := op.RequestBody
	if len(body.Properties) == 0 {
		return Form{}, fmt.Errorf("forms: operation %s has no request fields", op.ID)
	}

	required := make(map[string]bool, len(body.Required))
	for _, name := range body.Required {
		required[name] = true
	}

	for _, name := range fieldOrder(body) {
		prop, ok := body.Properties[name]
		if !ok {
			continue
		}
		form.Fields = append(form.Fields, Field{
			Name:        name,
			Label:       labelFromName(name),
			Description: prop.Description,
			Kind:        fieldKind(name, prop),
			Required:    required[name],
			Options:     enumOptions(prop),
		})
	}
	return form, nil
}

// fieldOrder prefers the document's declared order and falls back to
// sorted names for documents that omit it.
func fieldOrder(body openapi.Schema) []string {
	if order := openapi.FieldOrder(body); len(order) > 0 {
		return order
	}
	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fieldKind(name string, prop openapi.Schema) FieldKind {
	switch {
	case len(prop.Enum) > 0:
		return KindSelect
	case prop.Format == "email":
		return KindEmail
	case name == "observaciones":
		return KindTextArea
	default:
		return KindText
	}
}

func enumOptions(prop openapi.Schema) []string {
	if len(prop.Enum) == 0 {
		return nil
	}
	options := make([]string, 0, len(prop.Enum))
	for _, value := range prop.Enum {
		options = append(options, fmt.Sprintf("%v", value))
	}
	return options
}

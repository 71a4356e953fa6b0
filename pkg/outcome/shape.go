package outcome

import "encoding/json"

// Shape tags what the API put in raw_response so renderers can pick a
// presentation without re-inspecting the value.
type Shape string

const (
	ShapeEmpty        Shape = "empty"
	ShapeObjectList   Shape = "object_list"
	ShapeScalarList   Shape = "scalar_list"
	ShapeSingleObject Shape = "single_object"
	ShapeSingleScalar Shape = "single_scalar"
)

// Payload pairs a decoded raw_response value with its shape tag.
type Payload struct {
	Shape Shape `json:"shape"`
	Value any   `json:"value"`
}

// NewPayload classifies a decoded JSON value. Arrays holding at least
// one object are tagged object_list; arrays of scalars (or mixed
// content) scalar_list; empty arrays empty.
func NewPayload(value any) *Payload {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		if len(v) == 0 {
			return &Payload{Shape: ShapeEmpty, Value: v}
		}
		for _, item := range v {
			if _, ok := item.(map[string]any); ok {
				return &Payload{Shape: ShapeObjectList, Value: v}
			}
		}
		return &Payload{Shape: ShapeScalarList, Value: v}
	case map[string]any:
		return &Payload{Shape: ShapeSingleObject, Value: v}
	default:
		return &Payload{Shape: ShapeSingleScalar, Value: value}
	}
}

// ParsePayload decodes a raw JSON message and classifies it. A nil or
// literal-null message yields no payload.
func ParsePayload(raw json.RawMessage) *Payload {
	if len(raw) == 0 {
		return nil
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return NewPayload(value)
}

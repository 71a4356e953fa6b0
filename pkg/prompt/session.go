package prompt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nelsonberm/go-srtm/pkg/forms"
	"github.com/nelsonberm/go-srtm/pkg/registry"
	"github.com/nelsonberm/go-srtm/pkg/validate"
)

// Session walks a form field by field and assembles a payload. Fields
// that only apply under a conditional rule are skipped while their
// trigger values say they do not apply.
type Session struct {
	driver PromptDriver
	now    func() time.Time
}

// NewSession builds a Session on top of a driver.
func NewSession(driver PromptDriver) *Session {
	return &Session{driver: driver, now: time.Now}
}

// Run prompts for every applicable field of the form and returns the
// collected payload. Field order follows the form's declaration order,
// which places conditional fields after the fields that trigger them.
func (s *Session) Run(ctx context.Context, form forms.Form) (registry.Payload, error) {
	raw := make(map[string]string, len(form.Fields))
	conditional := conditionalFields(form.OperationID)

	for _, field := range form.Fields {
		if rules, isConditional := conditional[field.Name]; isConditional {
			if !anyApplies(rules, registry.NewPayload(raw)) {
				continue
			}
		}

		value, err := s.ask(ctx, field)
		if err != nil {
			return nil, err
		}
		raw[field.Name] = value
	}

	return registry.NewPayload(raw), nil
}

func (s *Session) ask(ctx context.Context, field forms.Field) (string, error) {
	message := field.Label
	if field.Required {
		message += " *"
	}

	switch field.Kind {
	case forms.KindSelect:
		options := field.Options
		if !field.Required {
			options = append([]string{""}, options...)
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message: message,
			Options: options,
			Help:    field.Description,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(options) {
			return "", fmt.Errorf("prompt: selection out of range for %s", field.Name)
		}
		return options[idx], nil
	case forms.KindTextArea:
		return s.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Help:    field.Description,
		})
	default:
		return s.driver.Input(ctx, InputConfig{
			Message:   message,
			Help:      field.Description,
			Validator: s.fieldValidator(field),
		})
	}
}

// fieldValidator returns the per-field check applied while the user
// types, so format mistakes surface before submission.
func (s *Session) fieldValidator(field forms.Field) func(string) error {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			if field.Required {
				return fmt.Errorf("El campo '%s' es obligatorio.", field.Name)
			}
			return nil
		}
		switch {
		case field.Name == "imei":
			if !validate.IMEI(value) {
				return fmt.Errorf("El campo 'imei' debe tener 15 dígitos y un dígito de verificación válido.")
			}
		case field.Kind == forms.KindEmail:
			if !validate.Email(value) {
				return fmt.Errorf("El campo '%s' no tiene un formato de correo válido.", field.Name)
			}
		case field.Name == "fecha_reporte":
			if err := validate.CheckReportTimestamp(value, s.now()); err != nil {
				return fmt.Errorf("El campo 'fecha_reporte' debe ser una fecha YYYYMMDDHHMMSS válida, no futura y de menos de 10 años.")
			}
		}
		return nil
	}
}

// conditionalFields indexes the operation's rules by the fields they
// require.
func conditionalFields(operationID string) map[string][]forms.Rule {
	out := make(map[string][]forms.Rule)
	for _, rule := range forms.Rules(operationID) {
		for _, name := range rule.Require {
			out[name] = append(out[name], rule)
		}
	}
	return out
}

func anyApplies(rules []forms.Rule, payload registry.Payload) bool {
	for _, rule := range rules {
		if rule.Applies(payload) {
			return true
		}
	}
	return false
}

package forms

import (
	"fmt"
	"time"

	"github.com/nelsonberm/go-srtm/pkg/registry"
	"github.com/nelsonberm/go-srtm/pkg/validate"
)

// Condition is a predicate over one submitted field. Equals matches any
// of the listed values; NotEquals matches any present value except the
// one given, so an absent field never triggers a NotEquals rule.
type Condition struct {
	Field     string
	Equals    []string
	NotEquals string
}

func (c Condition) holds(payload registry.Payload) bool {
	value := payload.Get(c.Field)
	if c.NotEquals != "" || len(c.Equals) == 0 {
		return value != "" && value != c.NotEquals
	}
	for _, want := range c.Equals {
		if value == want {
			return true
		}
	}
	return false
}

// Rule marks fields as required when every condition holds. Reason is
// appended to the error message to explain the dependency.
type Rule struct {
	Conditions []Condition
	Require    []string
	Reason     string
}

// Applies reports whether all the rule's conditions hold for a payload.
func (r Rule) Applies(payload registry.Payload) bool {
	for _, cond := range r.Conditions {
		if !cond.holds(payload) {
			return false
		}
	}
	return true
}

// conditionalRules lists each operation's dependent requirements,
// mirroring the server's own model validators.
var conditionalRules = map[string][]Rule{
	"registroNegativo": {
		{
			Conditions: []Condition{{Field: "tipo_reporte", Equals: []string{"1"}}},
			Require:    []string{"empleo_violencia"},
			Reason:     "cuando 'tipo_reporte' es '1' (Robo)",
		},
		{
			Conditions: []Condition{
				{Field: "tipo_reporte", Equals: []string{"1"}},
				{Field: "empleo_violencia", Equals: []string{"1"}},
			},
			Require: []string{"utilizacion_armas", "victima_menor_edad"},
			Reason:  "cuando 'empleo_violencia' es '1'",
		},
	},
	"modificacionPositivo": {
		{
			Conditions: []Condition{{Field: "tipo_modificacion", Equals: []string{"2", "3"}}},
			Require:    []string{"tipo_identificacion_propietario_anterior", "identificacion_propietario_anterior"},
			Reason:     "cuando 'tipo_modificacion' es '2' o '3'",
		},
		{
			Conditions: []Condition{{Field: "tipo_usuario_autorizado", NotEquals: "0"}},
			Require: []string{
				"tipo_identificacion_autorizado", "identificacion_autorizado",
				"nombre_razon_social_autorizado", "direccion_autorizado",
				"telefono_contacto_autorizado",
			},
			Reason: "cuando 'tipo_usuario_autorizado' no es '0'",
		},
	},
}

// Rules returns the conditional requirements for an operation.
func Rules(operationID string) []Rule {
	return conditionalRules[operationID]
}

// Validate checks a payload against the form's required fields, the
// operation's conditional rules, and the well-known field formats. It
// returns all messages rather than stopping at the first.
func Validate(form Form, payload registry.Payload, now time.Time) []string {
	var errs []string

	for _, field := range form.Fields {
		if field.Required && !payload.Has(field.Name) {
			errs = append(errs, fmt.Sprintf("El campo '%s' es obligatorio.", field.Name))
		}
	}

	for _, rule := range Rules(form.OperationID) {
		if !rule.Applies(payload) {
			continue
		}
		for _, name := range rule.Require {
			if !payload.Has(name) {
				errs = append(errs, fmt.Sprintf("El campo '%s' es obligatorio %s.", name, rule.Reason))
			}
		}
	}

	errs = append(errs, checkFormats(payload, now)...)
	return errs
}

// checkFormats validates the fields with structural formats: IMEI
// checksum, email shape, and the 14-digit report timestamp.
func checkFormats(payload registry.Payload, now time.Time) []string {
	var errs []string

	if imei := payload.Get("imei"); imei != "" && !validate.IMEI(imei) {
		errs = append(errs, "El campo 'imei' debe tener 15 dígitos y un dígito de verificación válido.")
	}
	if email := payload.Get("correo_electronico"); email != "" && !validate.Email(email) {
		errs = append(errs, "El campo 'correo_electronico' no tiene un formato de correo válido.")
	}
	if stamp := payload.Get("fecha_reporte"); stamp != "" {
		switch validate.CheckReportTimestamp(stamp, now) {
		case nil:
		case validate.ErrStampInFuture:
			errs = append(errs, "El campo 'fecha_reporte' no puede ser una fecha futura.")
		case validate.ErrStampTooOld:
			errs = append(errs, "El campo 'fecha_reporte' no puede tener más de 10 años de antigüedad.")
		default:
			errs = append(errs, "El campo 'fecha_reporte' debe tener el formato YYYYMMDDHHMMSS (14 dígitos).")
		}
	}
	return errs
}

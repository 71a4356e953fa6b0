// Package registry defines the fixed set of SRTM wrapper operations and
// builds the URL plus request descriptor the transport layer executes.
package registry

import "net/http"

// EndpointSpec is the static record for one registry operation. The table is
// assembled once at init and never mutated.
type EndpointSpec struct {
	// Name is the logical operation id, matching the wrapper API's
	// operationId values.
	Name string
	// Path is appended to the configured base URL.
	Path string
	// Method is the HTTP verb; queries against the negative list are the
	// only GET operations and carry the IMEI as a path segment.
	Method string
}

var endpoints = []EndpointSpec{
	{Name: "registroPositivo", Path: "/registro-positivo", Method: http.MethodPost},
	{Name: "registroNegativo", Path: "/registro-negativo", Method: http.MethodPost},
	{Name: "cancelacionNegativo", Path: "/cancelacion-negativo", Method: http.MethodPost},
	{Name: "modificacionPositivo", Path: "/modificacion-positivo", Method: http.MethodPost},
	{Name: "cancelacionPositivo", Path: "/cancelacion-positivo", Method: http.MethodPost},
	{Name: "consultaPositiva", Path: "/consulta/positiva", Method: http.MethodPost},
	{Name: "consultaNegativa", Path: "/consulta/negativa", Method: http.MethodGet},
	{Name: "consultaNegativaTipoReporte", Path: "/consulta/negativa/tipo-reporte", Method: http.MethodGet},
}

// Endpoints returns a copy of the operation table in declaration order.
func Endpoints() []EndpointSpec {
	out := make([]EndpointSpec, len(endpoints))
	copy(out, endpoints)
	return out
}

// Lookup resolves an operation by name.
func Lookup(name string) (EndpointSpec, bool) {
	for _, spec := range endpoints {
		if spec.Name == name {
			return spec, true
		}
	}
	return EndpointSpec{}, false
}

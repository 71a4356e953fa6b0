package transport

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/nelsonberm/go-srtm/pkg/outcome"
)

// corsMarkers are the substrings browsers and proxies put in the error
// text when a request is blocked by a cross-origin policy. The check is
// a heuristic on the message, kept separate so it can evolve without
// touching the invoker.
var corsMarkers = []string{
	"CORS",
	"Access-Control-Allow-Origin",
	"blocked by CORS policy",
}

// looksLikeCORS reports whether an error message carries a cross-origin
// rejection marker.
func looksLikeCORS(msg string) bool {
	for _, marker := range corsMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// ClassifyNetworkError turns a transport-level failure into a rendered
// outcome. The caller fills in debug context afterwards.
func ClassifyNetworkError(err error, origin string) outcome.Outcome {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return outcome.Outcome{
			Kind:    outcome.KindTimeout,
			Code:    outcome.CodeTimeout,
			Message: "La solicitud tardó demasiado en completarse. El servidor no respondió a tiempo.",
			Guidance: &outcome.Guidance{
				Kind:  "timeout",
				Title: "Qué puede hacer:",
				Items: []string{
					"Verifique que el servidor de la API esté activo y respondiendo.",
					"Intente nuevamente en unos momentos.",
					"Si el problema persiste, contacte al administrador del sistema.",
				},
			},
		}
	case looksLikeCORS(err.Error()):
		return outcome.Outcome{
			Kind:    outcome.KindNetworkError,
			Code:    outcome.CodeCORS,
			Message: "La solicitud fue bloqueada por la política de CORS del navegador.",
			Guidance: &outcome.Guidance{
				Kind:  "cors",
				Title: "Posibles soluciones:",
				Items: []string{
					"Verifique que la API permita solicitudes desde el origen " + origin + ".",
					"Confirme la configuración de CORS del servidor (encabezado Access-Control-Allow-Origin).",
					"Si desarrolla localmente, sirva la aplicación y la API desde el mismo origen.",
				},
			},
		}
	default:
		return outcome.Outcome{
			Kind:    outcome.KindNetworkError,
			Code:    outcome.CodeConnection,
			Message: "No se pudo establecer conexión con el servidor de la API.",
			Guidance: &outcome.Guidance{
				Kind:  "connection",
				Title: "Verifique lo siguiente:",
				Items: []string{
					"Que el servidor de la API esté en ejecución.",
					"Que la URL base configurada sea correcta.",
					"Que no exista un firewall o proxy bloqueando la conexión.",
				},
			},
		}
	}
}

package outcome

import "fmt"

// Classify normalizes the success flag of an HTTP-reachable response.
// Statuses 200 and 201 are always treated as success regardless of what
// the body claimed; statuses 400 and above always as failure. Anything
// in between defers to the body's own flag.
func Classify(status int, bodySuccess bool) (Kind, bool) {
	switch {
	case status == 200 || status == 201:
		return KindSuccess, true
	case status >= 400:
		return KindHTTPError, false
	case bodySuccess:
		return KindSuccess, true
	default:
		return KindHTTPError, false
	}
}

// Badge returns the short status label for a rendered outcome.
func Badge(o Outcome) string {
	if o.Failed() {
		return "ERROR"
	}
	return "ÉXITO"
}

// StatusLine formats the HTTP status for display. A zero status means
// the request never reached the server.
func StatusLine(o Outcome) string {
	if o.Status == 0 {
		return "—"
	}
	return fmt.Sprintf("%d", o.Status)
}

package registry

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Descriptor is everything the transport needs to issue one request. No
// credentials are ever attached: the wrapper API is called anonymously and
// redirects are left to the HTTP client's default follow behaviour.
type Descriptor struct {
	Method  string
	Headers http.Header
	Body    []byte
}

// BuildURL joins the base URL with the operation path. For GET operations the
// payload's imei travels as a trailing path segment instead of a body; every
// other method leaves the path untouched.
func BuildURL(base string, spec EndpointSpec, payload Payload) string {
	url := strings.TrimRight(base, "/") + spec.Path
	if spec.Method == http.MethodGet {
		if imei := payload.Get("imei"); imei != "" {
			url += "/" + imei
		}
	}
	return url
}

// BuildDescriptor produces the headers and body for one submission. GET
// requests carry no body; everything else serializes the payload as JSON.
func BuildDescriptor(spec EndpointSpec, payload Payload) (Descriptor, error) {
	headers := http.Header{}
	headers.Set("Accept", "application/json")
	headers.Set("Cache-Control", "no-cache")

	desc := Descriptor{Method: spec.Method, Headers: headers}
	if spec.Method == http.MethodGet {
		return desc, nil
	}

	headers.Set("Content-Type", "application/json")
	body, err := json.Marshal(payload)
	if err != nil {
		return Descriptor{}, fmt.Errorf("registry: serialize payload for %s: %w", spec.Name, err)
	}
	desc.Body = body
	return desc, nil
}

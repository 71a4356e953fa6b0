package srtm_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	srtm "github.com/nelsonberm/go-srtm"
	"github.com/nelsonberm/go-srtm/internal/config"
	"github.com/nelsonberm/go-srtm/pkg/outcome"
)

func testClock() time.Time {
	return time.Date(2024, time.October, 25, 14, 30, 0, 0, time.Local)
}

func newClient(t *testing.T, baseURL string) *srtm.Client {
	t.Helper()
	cfg := config.Default()
	cfg.BaseURL = baseURL
	client, err := srtm.New(context.Background(), cfg, srtm.WithClock(testClock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestClientExposesOperationsAndForms(t *testing.T) {
	client := newClient(t, "http://localhost:8000")

	ops := client.Operations()
	if len(ops) != 8 {
		t.Fatalf("operations = %v", ops)
	}
	form, err := client.Form("registroPositivo")
	if err != nil {
		t.Fatalf("Form: %v", err)
	}
	if len(form.Fields) != 10 {
		t.Fatalf("registroPositivo has %d fields, want 10", len(form.Fields))
	}
	if _, err := client.Form("desconocida"); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}

func TestExecuteRejectsInvalidPayloadWithoutRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := newClient(t, srv.URL)
	o, err := client.Execute(context.Background(), "cancelacionNegativo", map[string]string{
		"imei": "not-an-imei",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if o.Kind != outcome.KindValidation || o.Code != outcome.CodeValidation {
		t.Fatalf("outcome = %+v, want validation failure", o)
	}
	if len(o.ValidationErrors) == 0 {
		t.Fatal("validation errors missing")
	}
	if requests != 0 {
		t.Fatalf("server hit %d times for an invalid payload", requests)
	}
}

func TestExecuteRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/consulta/negativa/490154203237518" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"http_status":200,"message":"Consulta realizada exitosamente.","raw_response":[],"transaction_timestamp":"20241025143000"}`))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL)
	o, err := client.Execute(context.Background(), "consultaNegativa", map[string]string{
		"imei": "490154203237518",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if o.Kind != outcome.KindSuccess {
		t.Fatalf("outcome = %+v", o)
	}

	out, err := client.Render(context.Background(), o, "term")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "No se encontraron registros.") {
		t.Fatalf("empty result notice missing:\n%s", out)
	}
}

func TestRenderUnknownRenderer(t *testing.T) {
	client := newClient(t, "http://localhost:8000")
	if _, err := client.Render(context.Background(), outcome.Outcome{}, "yaml"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

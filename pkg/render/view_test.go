package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nelsonberm/go-srtm/pkg/outcome"
	"github.com/nelsonberm/go-srtm/pkg/render"
)

func TestBuildViewSuccessWithTable(t *testing.T) {
	o := outcome.Outcome{
		Kind:    outcome.KindSuccess,
		Status:  200,
		Success: true,
		Message: "Consulta realizada exitosamente.",
		Payload: outcome.NewPayload([]any{
			map[string]any{"imei": "490154203237518", "tipo_reporte": 1.0},
			map[string]any{"imei": "356938035643809", "marca": "ACME"},
		}),
		Timestamp: "20241025143000",
	}

	v := render.BuildView(o)
	if v.Failed {
		t.Fatal("success outcome rendered as failed")
	}
	if v.Badge != "ÉXITO" {
		t.Fatalf("badge = %q", v.Badge)
	}
	if v.Status != "200" {
		t.Fatalf("status = %q", v.Status)
	}
	if v.Timestamp != "25 de octubre de 2024, 14:30:00" {
		t.Fatalf("timestamp = %q", v.Timestamp)
	}
	if v.Payload == nil || v.Payload.Table == nil {
		t.Fatalf("payload = %+v, want table", v.Payload)
	}

	wantColumns := []string{"imei", "marca", "tipo_reporte"}
	if diff := cmp.Diff(wantColumns, v.Payload.Table.Columns); diff != "" {
		t.Fatalf("columns mismatch (-want +got):\n%s", diff)
	}
	wantRows := [][]string{
		{"490154203237518", "", "1"},
		{"356938035643809", "ACME", ""},
	}
	if diff := cmp.Diff(wantRows, v.Payload.Table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildViewAcceptsServerTimestamp(t *testing.T) {
	o := outcome.Outcome{
		Kind:      outcome.KindSuccess,
		Status:    201,
		Success:   true,
		Message:   "Registro positivo creado exitosamente.",
		Timestamp: "2024-10-25 14:30:00.123",
	}
	v := render.BuildView(o)
	if v.Timestamp != "25 de octubre de 2024, 14:30:00" {
		t.Fatalf("timestamp = %q, want long form of the API timestamp", v.Timestamp)
	}
}

func TestBuildViewEmptyArrayNotice(t *testing.T) {
	o := outcome.Outcome{
		Kind:    outcome.KindSuccess,
		Status:  200,
		Success: true,
		Message: "Consulta realizada exitosamente.",
		Payload: outcome.NewPayload([]any{}),
	}
	v := render.BuildView(o)
	if v.Payload == nil || v.Payload.Notice != "No se encontraron registros." {
		t.Fatalf("payload = %+v, want empty-result notice", v.Payload)
	}
}

func TestBuildViewSuccessWithoutPayload(t *testing.T) {
	o := outcome.Outcome{
		Kind:    outcome.KindSuccess,
		Status:  201,
		Success: true,
		Message: "Registro positivo creado exitosamente.",
	}
	v := render.BuildView(o)
	if v.Note != "La operación se completó sin datos adicionales." {
		t.Fatalf("note = %q", v.Note)
	}
	if v.Payload != nil {
		t.Fatalf("payload = %+v, want nil", v.Payload)
	}
}

func TestBuildViewSingleObjectBecomesFieldTable(t *testing.T) {
	o := outcome.Outcome{
		Kind:    outcome.KindSuccess,
		Status:  200,
		Success: true,
		Payload: outcome.NewPayload(map[string]any{
			"imei":   "490154203237518",
			"activo": true,
			"meta":   map[string]any{"fuente": "srtm"},
		}),
	}
	v := render.BuildView(o)
	if v.Payload == nil || v.Payload.Table == nil {
		t.Fatalf("payload = %+v, want field table", v.Payload)
	}
	wantRows := [][]string{
		{"activo", "Sí"},
		{"imei", "490154203237518"},
		{"meta", `{"fuente":"srtm"}`},
	}
	if diff := cmp.Diff(wantRows, v.Payload.Table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildViewFailureCarriesDebugAndGuidance(t *testing.T) {
	o := outcome.Outcome{
		Kind:    outcome.KindNetworkError,
		Code:    outcome.CodeConnection,
		Message: "No se pudo establecer conexión con el servidor de la API.",
		Guidance: &outcome.Guidance{
			Kind:  "connection",
			Title: "Verifique lo siguiente:",
			Items: []string{"Que el servidor de la API esté en ejecución."},
		},
		Debug: &outcome.Debug{
			URL:           "http://localhost:8000/consulta/positiva",
			Method:        "POST",
			Endpoint:      "/consulta/positiva",
			Timestamp:     "20241025143000",
			TransactionID: "abc-123",
		},
	}
	v := render.BuildView(o)
	if !v.Failed || v.Badge != "ERROR" {
		t.Fatalf("view = %+v, want failed", v)
	}
	if v.Status != "—" {
		t.Fatalf("status = %q, want em dash for unreachable server", v.Status)
	}
	if v.Guidance == nil || v.Guidance.Title != "Verifique lo siguiente:" {
		t.Fatalf("guidance = %+v", v.Guidance)
	}
	if v.Debug == nil || len(v.Debug.Rows) == 0 {
		t.Fatal("debug panel missing")
	}
}

func TestBuildViewScalarListAndScalar(t *testing.T) {
	list := outcome.Outcome{
		Kind: outcome.KindSuccess, Status: 200, Success: true,
		Payload: outcome.NewPayload([]any{"1", "2", "7"}),
	}
	v := render.BuildView(list)
	if v.Payload == nil || len(v.Payload.Items) != 3 {
		t.Fatalf("payload = %+v, want 3 items", v.Payload)
	}

	scalar := outcome.Outcome{
		Kind: outcome.KindSuccess, Status: 200, Success: true,
		Payload: outcome.NewPayload(42.0),
	}
	v = render.BuildView(scalar)
	if v.Payload == nil || v.Payload.Scalar != "42" {
		t.Fatalf("payload = %+v, want scalar 42", v.Payload)
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nelsonberm/go-srtm/pkg/registry"
)

func TestCommandNames(t *testing.T) {
	cases := map[string]string{
		"consultaNegativa":            "consulta-negativa",
		"consultaNegativaTipoReporte": "consulta-negativa-tipo-reporte",
		"registroPositivo":            "registro-positivo",
	}
	for op, want := range cases {
		spec, ok := registry.Lookup(op)
		if !ok {
			t.Fatalf("operation %s missing", op)
		}
		if got := commandName(spec); got != want {
			t.Errorf("commandName(%s) = %q, want %q", op, got, want)
		}
	}
}

func TestRootCommandHasAllOperations(t *testing.T) {
	root := newRootCommand()
	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[strings.Fields(cmd.Use)[0]] = true
	}
	for _, spec := range registry.Endpoints() {
		if !names[commandName(spec)] {
			t.Errorf("subcommand %s missing", commandName(spec))
		}
	}
	if !names["ops"] {
		t.Error("ops subcommand missing")
	}
}

func TestOpsCommandListsOperations(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"ops"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	text := out.String()
	for _, want := range []string{"registroPositivo", "consultaNegativa", "GET /consulta/negativa"} {
		if !strings.Contains(text, want) {
			t.Errorf("ops output missing %q:\n%s", want, text)
		}
	}
}

func TestJSONPayloadDecoding(t *testing.T) {
	target := make(map[string]string)
	raw := `{"imei":"490154203237518","tipo_reporte":1,"activo":true,"vacio":null}`
	if err := json.Unmarshal([]byte(raw), &jsonPayload{target}); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if target["imei"] != "490154203237518" || target["tipo_reporte"] != "1" || target["activo"] != "true" {
		t.Fatalf("payload = %v", target)
	}
	if _, ok := target["vacio"]; ok {
		t.Fatal("null value should be dropped")
	}

	if err := json.Unmarshal([]byte(`{"lista":[1,2]}`), &jsonPayload{target}); err == nil {
		t.Fatal("expected error for non-scalar field")
	}
}

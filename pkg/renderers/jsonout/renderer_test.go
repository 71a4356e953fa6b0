package jsonout_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nelsonberm/go-srtm/pkg/outcome"
	"github.com/nelsonberm/go-srtm/pkg/render"
	"github.com/nelsonberm/go-srtm/pkg/renderers/jsonout"
)

func TestRenderRoundTrips(t *testing.T) {
	o := outcome.Outcome{
		Kind:    outcome.KindSuccess,
		Status:  200,
		Success: true,
		Message: "Consulta realizada exitosamente.",
		Payload: outcome.NewPayload([]any{"2024-01-01"}),
	}
	view := render.BuildView(o)

	out, err := jsonout.New().Render(context.Background(), view, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["badge"] != "ÉXITO" {
		t.Fatalf("badge = %v", decoded["badge"])
	}
	if decoded["message"] != "Consulta realizada exitosamente." {
		t.Fatalf("message = %v", decoded["message"])
	}
}

func TestRenderDropsDebugOnSuccess(t *testing.T) {
	view := render.View{Badge: "ÉXITO", Status: "200", Debug: &render.DebugPanel{Title: "dbg"}}

	out, err := jsonout.New().Render(context.Background(), view, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := decoded["debug"]; present {
		t.Fatal("debug present on non-verbose success output")
	}

	out, err = jsonout.New().Render(context.Background(), view, render.Options{Verbose: true})
	if err != nil {
		t.Fatalf("Render verbose: %v", err)
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := decoded["debug"]; !present {
		t.Fatal("debug missing from verbose output")
	}
}

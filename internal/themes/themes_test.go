package themes_test

import (
	"testing"

	"github.com/nelsonberm/go-srtm/internal/themes"
)

func TestResolveDefault(t *testing.T) {
	cfg, err := themes.Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Theme != themes.DefaultName {
		t.Fatalf("theme = %q", cfg.Theme)
	}
	if cfg.CSSVars["--srtm-accent"] != "#8BC34A" {
		t.Fatalf("css vars = %v", cfg.CSSVars)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/srtm/srtm.css" {
		t.Fatalf("asset url = %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("asset url for missing key = %q", got)
	}
}

func TestResolveVariantOverridesTokens(t *testing.T) {
	cfg, err := themes.Resolve("srtm", "dark")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Tokens["srtm-surface"] != "#141d2b" {
		t.Fatalf("variant token not applied: %v", cfg.Tokens)
	}
	if cfg.Tokens["srtm-accent"] != "#8BC34A" {
		t.Fatalf("base token lost: %v", cfg.Tokens)
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := themes.Resolve("nope", ""); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if _, err := themes.Resolve("srtm", "sepia"); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestProviderRegistersBuiltins(t *testing.T) {
	if _, err := themes.Provider(); err != nil {
		t.Fatalf("Provider: %v", err)
	}
}

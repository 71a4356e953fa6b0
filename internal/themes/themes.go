// Package themes holds the built-in design tokens for styled renderers
// and resolves theme selections into renderer configuration.
package themes

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// DefaultName is the theme applied when configuration names none.
const DefaultName = "srtm"

// builtin is the bundled manifest. Variants override base tokens.
var builtin = map[string]*theme.Manifest{
	DefaultName: {
		Name:    DefaultName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"srtm-accent":  "#8BC34A",
			"srtm-danger":  "#e53935",
			"srtm-warning": "#FFC107",
			"srtm-info":    "#2196F3",
			"srtm-surface": "#ffffff",
			"srtm-ink":     "#101F38",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/srtm",
			Files: map[string]string{
				"stylesheet": "srtm.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"srtm-surface": "#141d2b",
					"srtm-ink":     "#f2f2f2",
				},
			},
		},
	},
}

// Provider returns a go-theme registry with the bundled manifests
// registered, for callers that plug in their own selection layer.
func Provider() (theme.ThemeProvider, error) {
	registry := theme.NewRegistry()
	for _, manifest := range builtin {
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("themes: register %s: %w", manifest.Name, err)
		}
	}
	return registry, nil
}

// Resolve merges a bundled manifest with the requested variant and
// returns the renderer configuration. An empty name selects the
// default theme; an unknown name or variant is an error.
func Resolve(name, variant string) (*theme.RendererConfig, error) {
	if name == "" {
		name = DefaultName
	}
	manifest, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("themes: unknown theme %q", name)
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if variant != "" {
		v, ok := manifest.Variants[variant]
		if !ok {
			return nil, fmt.Errorf("themes: theme %q has no variant %q", name, variant)
		}
		for key, value := range v.Tokens {
			tokens[key] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &theme.RendererConfig{
		Theme:   name,
		Variant: variant,
		Tokens:  tokens,
		CSSVars: cssVars,
		AssetURL: func(key string) string {
			file, ok := manifest.Assets.Files[key]
			if !ok || file == "" {
				return ""
			}
			return manifest.Assets.Prefix + "/" + file
		},
	}, nil
}

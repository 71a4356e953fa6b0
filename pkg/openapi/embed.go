package openapi

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
)

//go:embed spec/srtm_wrapper.json
var embeddedSpec embed.FS

// EmbeddedSpecName is the path of the bundled API document.
const EmbeddedSpecName = "spec/srtm_wrapper.json"

// EmbeddedFS exposes the bundled API document for consumers that want
// to load it through their own pipeline.
func EmbeddedFS() fs.FS {
	return embeddedSpec
}

// LoadEmbedded parses the bundled API document into operations. This is
// the offline default; callers can point the loader at a live
// /openapi.json instead.
func LoadEmbedded(ctx context.Context) (map[string]Operation, error) {
	loader := NewLoader(WithFileSystem(embeddedSpec))
	doc, err := loader.Load(ctx, SourceFromFS(EmbeddedSpecName))
	if err != nil {
		return nil, fmt.Errorf("openapi: load embedded document: %w", err)
	}
	return NewParser().Operations(ctx, doc)
}

package openapi

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// SourceFromFile points at an OpenAPI document on disk.
func SourceFromFile(path string) Source {
	return fileSource(filepath.Clean(path))
}

// SourceFromFS points at a document inside a loader-provided fs.FS,
// which is how the embedded registry description is addressed.
func SourceFromFS(name string) Source {
	return fsSource(name)
}

// SourceFromURL points at a live server's document, typically its
// /openapi.json. Invalid URLs panic so configuration mistakes surface
// at wiring time rather than on first use.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("openapi: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("openapi: invalid URL %q: %v", raw, err))
	}
	return urlSource(raw)
}

type fileSource string

func (s fileSource) Kind() SourceKind { return SourceKindFile }
func (s fileSource) Location() string { return string(s) }

type fsSource string

func (s fsSource) Kind() SourceKind { return SourceKindFS }
func (s fsSource) Location() string { return string(s) }

type urlSource string

func (s urlSource) Kind() SourceKind { return SourceKindURL }
func (s urlSource) Location() string { return string(s) }

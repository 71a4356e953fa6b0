package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"
)

// Loader fetches OpenAPI documents from files, fs.FS entries, or HTTP.
// Offline-first: HTTP sources stay disabled unless explicitly enabled.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// LoaderOption mutates loader configuration prior to construction.
type LoaderOption func(*Loader)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		if client != nil {
			l.http = client
			l.allowHTTP = true
		}
	}
}

// WithHTTPFallback enables HTTP loading using a default client with the
// given timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(l *Loader) {
		l.allowHTTP = true
		l.timeout = timeout
	}
}

// NewLoader constructs a Loader applying the provided options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}
	if l.allowHTTP && l.http == nil {
		l.http = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Load fetches a document from the provided source and wraps it.
func (l *Loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case SourceKindURL:
		if !l.allowHTTP {
			return Document{}, errors.New("openapi loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location())
	default:
		err = fmt.Errorf("openapi loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return Document{}, err
	}

	return NewDocument(src, data)
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("openapi loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", path, err)
	}
	return data, nil
}

func loadFromFS(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("openapi loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("openapi loader: fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(filesystem, name)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", name, err)
	}
	return data, nil
}

func loadHTTP(ctx context.Context, client *http.Client, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: build request for %s: %w", location, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openapi loader: fetch %s: unexpected status %d", location, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi loader: read %s: %w", location, err)
	}
	return data, nil
}

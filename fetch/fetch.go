// Package fetch loads the JSON documents that are projected into tables
// from remote URLs or local files.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-jsontable"
)

const (
	// DefaultMaxDocumentSize limits the size of fetched documents.
	DefaultMaxDocumentSize = 32 << 20

	// DefaultTimeout of a remote fetch if the Fetcher has no Client.
	DefaultTimeout = 30 * time.Second
)

var (
	// ErrFetchStatus is returned for HTTP responses
	// with a status code other than 2xx.
	ErrFetchStatus = errors.New("unexpected HTTP status")

	// ErrDocumentTooLarge is returned for documents
	// larger than the MaxDocumentSize of a Fetcher.
	ErrDocumentTooLarge = errors.New("document too large")

	// ErrFileNotFound is returned for local files that don't exist.
	ErrFileNotFound = errors.New("file not found")
)

// Fetcher loads documents.
// The zero value is ready to use.
//
// Every call is an independent single fetch of a full document,
// concurrent calls are not coordinated with each other.
type Fetcher struct {
	// Client is used for http and https URLs.
	// If nil, a client with DefaultTimeout is used.
	Client *http.Client

	// UserAgent header of HTTP requests if not empty.
	UserAgent string

	// MaxDocumentSize in bytes, DefaultMaxDocumentSize if zero.
	MaxDocumentSize int64
}

// Default is the Fetcher used by the package level functions.
var Default = &Fetcher{}

// IsRemote reports if location is an http or https URL.
func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Bytes returns the document bytes at location
// using the Default Fetcher.
func Bytes(ctx context.Context, location string) ([]byte, error) {
	return Default.Bytes(ctx, location)
}

// Load fetches and decodes the document at location
// using the Default Fetcher.
func Load(ctx context.Context, location string) (any, error) {
	return Default.Load(ctx, location)
}

// Load fetches the document at location
// and decodes it with jsontable.DecodeDocument.
func (f *Fetcher) Load(ctx context.Context, location string) (any, error) {
	data, err := f.Bytes(ctx, location)
	if err != nil {
		return nil, err
	}
	document, err := jsontable.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return document, nil
}

// Bytes returns the raw document at location which is
// either an http or https URL or a local file path or file:// URI.
func (f *Fetcher) Bytes(ctx context.Context, location string) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if IsRemote(location) {
		return f.remoteBytes(ctx, location)
	}
	return f.fileBytes(location)
}

func (f *Fetcher) remoteBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("%w %s from %s", ErrFetchStatus, response.Status, url)
	}

	maxSize := f.maxDocumentSize()
	data, err := io.ReadAll(io.LimitReader(response.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", url, err)
	}
	if int64(len(data)) > maxSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrDocumentTooLarge, url, maxSize)
	}
	return data, nil
}

func (f *Fetcher) fileBytes(location string) ([]byte, error) {
	file := fs.File(location)
	if !file.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, location)
	}
	if maxSize := f.maxDocumentSize(); file.Size() > maxSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrDocumentTooLarge, location, maxSize)
	}
	return file.ReadAll()
}

func (f *Fetcher) maxDocumentSize() int64 {
	if f.MaxDocumentSize > 0 {
		return f.MaxDocumentSize
	}
	return DefaultMaxDocumentSize
}

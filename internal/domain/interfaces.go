package domain

import "context"

// DocumentFetcher downloads a remote PDF into a request-scoped temporary
// file. Callers must invoke Cleanup on the returned document on every path.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (*FetchedDocument, error)
}

// FetchedDocument is a downloaded PDF materialized on disk.
type FetchedDocument struct {
	Path    string
	Size    int64
	cleanup func()
}

// NewFetchedDocument wraps a temp file path with its cleanup function.
func NewFetchedDocument(path string, size int64, cleanup func()) *FetchedDocument {
	return &FetchedDocument{Path: path, Size: size, cleanup: cleanup}
}

// Cleanup removes the backing temporary file. Safe to call more than once.
func (f *FetchedDocument) Cleanup() {
	if f != nil && f.cleanup != nil {
		f.cleanup()
		f.cleanup = nil
	}
}

// TextExtractor turns a PDF file on disk into extracted text. An empty
// document (no pages, or pages with no text) is an empty result, not an
// error; hard parse failures are errors.
type TextExtractor interface {
	ExtractText(path string) (*ExtractedDocument, error)
}

// ModelClient is the adapter over the generative model. A single
// synchronous completion; every provider-level failure surfaces as a
// provider-classified error.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Available() bool
}

// ReportAnalyzer produces the clinical analysis for extracted text. It
// never fails outward: when the model is unreachable it resolves to a
// deterministic fallback message.
type ReportAnalyzer interface {
	Analyze(ctx context.Context, doc *ExtractedDocument) string
}

// AnalysisCache stores completed analyses keyed by a content hash of the
// prompt version plus the extracted text. Entries are write-once and are
// never evicted within the process lifetime.
type AnalysisCache interface {
	Get(key string) (string, bool)
	Put(key string, analysis string)
	Enabled() bool
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetGCPProjectID() string
	GetGCPLocation() string
	GetModelName() string
}

package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"medical-report-analyzer/internal/domain"
	apperrors "medical-report-analyzer/pkg/errors"
)

// HTTPDocumentFetcher downloads PDFs over HTTP(S) into request-scoped
// temporary files.
type HTTPDocumentFetcher struct {
	client *http.Client
	logger domain.Logger
}

// NewDocumentFetcher creates a fetcher with the given download timeout
func NewDocumentFetcher(timeout time.Duration, logger domain.Logger) domain.DocumentFetcher {
	return &HTTPDocumentFetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Fetch retrieves the PDF at url and streams it to a temporary file. The
// body is copied in chunks so large documents are never held in memory.
// The returned document's Cleanup must run on every path.
func (f *HTTPDocumentFetcher) Fetch(ctx context.Context, url string) (*domain.FetchedDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewFetchError(url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetchError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewFetchError(url, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	tmpFile, err := os.CreateTemp("", "report-*.pdf")
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create temporary file", err)
	}

	size, err := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if err != nil {
		f.removeTemp(tmpFile.Name())
		return nil, apperrors.NewFetchError(url, err)
	}
	if closeErr != nil {
		f.removeTemp(tmpFile.Name())
		return nil, apperrors.NewInternalError("failed to finalize temporary file", closeErr)
	}

	f.logger.Debug("PDF downloaded", "url", url, "bytes", size)

	path := tmpFile.Name()
	return domain.NewFetchedDocument(path, size, func() {
		f.removeTemp(path)
	}), nil
}

func (f *HTTPDocumentFetcher) removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		f.logger.Warn("Failed to remove temporary file", "path", path, "error", err)
	}
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"medical-report-analyzer/internal/domain"
	apperrors "medical-report-analyzer/pkg/errors"
)

// Mock implementations for testing

type MockFetcher struct {
	text      string
	failFetch bool
	cleaned   bool
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) (*domain.FetchedDocument, error) {
	if m.failFetch {
		return nil, apperrors.NewFetchError(url, nil)
	}
	return domain.NewFetchedDocument("/tmp/mock.pdf", int64(len(m.text)), func() { m.cleaned = true }), nil
}

type MockExtractor struct {
	text string
	err  error
}

func (m *MockExtractor) ExtractText(path string) (*domain.ExtractedDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ExtractedDocument{Text: m.text}, nil
}

type MockAnalyzer struct {
	analysis string
	panicMsg string
	calls    int
}

func (m *MockAnalyzer) Analyze(ctx context.Context, doc *domain.ExtractedDocument) string {
	m.calls++
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	return m.analysis
}

func newTestHandler(fetcher *MockFetcher, extractor *MockExtractor, analyzer *MockAnalyzer) *AnalysisHandler {
	return NewAnalysisHandler(fetcher, extractor, analyzer, NewMockHandlerLogger())
}

func postAnalyze(t *testing.T, h *AnalysisHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze-pdf", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.AnalyzePDF(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var envelope map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return envelope
}

func TestAnalyzePDF_InvalidBody(t *testing.T) {
	h := newTestHandler(&MockFetcher{}, &MockExtractor{}, &MockAnalyzer{})

	rr := postAnalyze(t, h, "{not json")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestAnalyzePDF_InvalidURL(t *testing.T) {
	h := newTestHandler(&MockFetcher{}, &MockExtractor{}, &MockAnalyzer{})

	for _, body := range []string{
		`{"pdf_url":""}`,
		`{"pdf_url":"not a url"}`,
		`{"pdf_url":"ftp://example.com/report.pdf"}`,
	} {
		rr := postAnalyze(t, h, body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d for body %s, got %d", http.StatusBadRequest, body, rr.Code)
		}
	}
}

func TestAnalyzePDF_FetchFailure(t *testing.T) {
	h := newTestHandler(&MockFetcher{failFetch: true}, &MockExtractor{}, &MockAnalyzer{})

	rr := postAnalyze(t, h, `{"pdf_url":"http://example.com/missing.pdf"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected handled error to keep HTTP 200, got %d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr)
	if envelope["status"] != "error" {
		t.Fatalf("expected status error, got %s", envelope["status"])
	}
	if envelope["error"] != "Failed to download the PDF from URL: http://example.com/missing.pdf" {
		t.Fatalf("unexpected error message: %s", envelope["error"])
	}
	if _, present := envelope["analysis"]; present {
		t.Fatal("error envelope must not carry an analysis field")
	}
}

func TestAnalyzePDF_EmptyExtraction(t *testing.T) {
	fetcher := &MockFetcher{}
	h := newTestHandler(fetcher, &MockExtractor{text: "   \n"}, &MockAnalyzer{})

	rr := postAnalyze(t, h, `{"pdf_url":"http://example.com/blank.pdf"}`)

	envelope := decodeEnvelope(t, rr)
	if envelope["status"] != "error" {
		t.Fatalf("expected status error, got %s", envelope["status"])
	}
	if envelope["error"] != emptyExtractionMessage {
		t.Fatalf("expected exact empty-extraction message, got %q", envelope["error"])
	}
	if !fetcher.cleaned {
		t.Fatal("expected temp file cleanup after extraction")
	}
}

func TestAnalyzePDF_ExtractionFailure(t *testing.T) {
	fetcher := &MockFetcher{}
	extractor := &MockExtractor{err: apperrors.NewExtractionError("failed to open PDF document", nil)}
	h := newTestHandler(fetcher, extractor, &MockAnalyzer{})

	rr := postAnalyze(t, h, `{"pdf_url":"http://example.com/corrupt.pdf"}`)

	envelope := decodeEnvelope(t, rr)
	if envelope["status"] != "error" {
		t.Fatalf("expected status error, got %s", envelope["status"])
	}
	if envelope["error"] != "failed to open PDF document" {
		t.Fatalf("unexpected error message: %s", envelope["error"])
	}
	if !fetcher.cleaned {
		t.Fatal("expected temp file cleanup after failed extraction")
	}
}

func TestAnalyzePDF_PanicConvertedToErrorEnvelope(t *testing.T) {
	fetcher := &MockFetcher{}
	h := newTestHandler(fetcher, &MockExtractor{text: "Hemoglobin 13.5 g/dL"}, &MockAnalyzer{panicMsg: "model exploded"})

	rr := postAnalyze(t, h, `{"pdf_url":"http://example.com/report.pdf"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected last-resort boundary to keep HTTP 200, got %d", rr.Code)
	}

	envelope := decodeEnvelope(t, rr)
	if envelope["status"] != "error" {
		t.Fatalf("expected status error, got %s", envelope["status"])
	}
	if envelope["error"] != "Error processing request: model exploded" {
		t.Fatalf("unexpected error message: %s", envelope["error"])
	}
	if _, present := envelope["analysis"]; present {
		t.Fatal("error envelope must not carry an analysis field")
	}
	if !fetcher.cleaned {
		t.Fatal("expected temp file cleanup despite the panic")
	}
}

func TestValidatePDFURL_Classification(t *testing.T) {
	if err := validatePDFURL("http://example.com/report.pdf"); err != nil {
		t.Fatalf("unexpected error for valid URL: %v", err)
	}

	for _, raw := range []string{"", "not a url", "ftp://example.com/report.pdf"} {
		err := validatePDFURL(raw)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
		if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
			t.Fatalf("expected validation-classified error for %q, got %v", raw, err)
		}
	}
}

func TestAnalyzePDF_Success(t *testing.T) {
	fetcher := &MockFetcher{}
	analyzer := &MockAnalyzer{analysis: "### Executive Summary\nStable labs."}
	h := newTestHandler(fetcher, &MockExtractor{text: "Hemoglobin 13.5 g/dL"}, analyzer)

	rr := postAnalyze(t, h, `{"pdf_url":"http://example.com/report.pdf"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	envelope := decodeEnvelope(t, rr)
	if envelope["status"] != "success" {
		t.Fatalf("expected status success, got %s", envelope["status"])
	}
	if envelope["analysis"] != "### Executive Summary\nStable labs." {
		t.Fatalf("unexpected analysis: %s", envelope["analysis"])
	}
	if _, present := envelope["error"]; present {
		t.Fatal("success envelope must not carry an error field")
	}
	if analyzer.calls != 1 {
		t.Fatalf("expected exactly one analyze call, got %d", analyzer.calls)
	}
	if !fetcher.cleaned {
		t.Fatal("expected temp file cleanup on the success path")
	}
}

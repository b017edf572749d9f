package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"medical-report-analyzer/internal/domain"
	apperrors "medical-report-analyzer/pkg/errors"
)

const emptyExtractionMessage = "Failed to extract text from PDF or PDF was empty"

// AnalysisHandler sequences the analysis pipeline: fetch the PDF, extract
// its text, run the analysis, and map every outcome onto the uniform
// status/analysis/error envelope. Business-logic failures resolve to
// HTTP 200 with status "error"; only malformed requests get a 4xx.
type AnalysisHandler struct {
	fetcher   domain.DocumentFetcher
	extractor domain.TextExtractor
	analyzer  domain.ReportAnalyzer
	logger    domain.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(
	fetcher domain.DocumentFetcher,
	extractor domain.TextExtractor,
	analyzer domain.ReportAnalyzer,
	logger domain.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		fetcher:   fetcher,
		extractor: extractor,
		analyzer:  analyzer,
		logger:    logger,
	}
}

// AnalyzePDF handles POST /analyze-pdf
func (h *AnalysisHandler) AnalyzePDF(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.PDFURL = strings.TrimSpace(req.PDFURL)
	if err := validatePDFURL(req.PDFURL); err != nil {
		writeError(w, http.StatusBadRequest, apperrors.Message(err))
		return
	}

	requestID, _ := GetRequestIDFromContext(r)

	// Last-resort boundary. The classified paths below should make this
	// unreachable for any expected failure.
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("Panic while processing analysis request", fmt.Errorf("%v", rec), "request_id", requestID, "url", req.PDFURL)
			writeJSON(w, http.StatusOK, domain.AnalysisResponse{
				Status: domain.StatusError,
				Error:  fmt.Sprintf("Error processing request: %v", rec),
			})
		}
	}()

	pdf, err := h.fetcher.Fetch(r.Context(), req.PDFURL)
	if err != nil {
		h.logger.Warn("PDF download failed", "request_id", requestID, "url", req.PDFURL, "error", err)
		writeJSON(w, http.StatusOK, domain.AnalysisResponse{
			Status: domain.StatusError,
			Error:  apperrors.Message(err),
		})
		return
	}
	defer pdf.Cleanup()

	doc, err := h.extractor.ExtractText(pdf.Path)
	// The temp file has served its purpose once the text is in memory.
	pdf.Cleanup()
	if err != nil {
		h.logger.Warn("PDF extraction failed", "request_id", requestID, "url", req.PDFURL, "error", err)
		writeJSON(w, http.StatusOK, domain.AnalysisResponse{
			Status: domain.StatusError,
			Error:  apperrors.Message(err),
		})
		return
	}
	if doc.IsEmpty() {
		writeJSON(w, http.StatusOK, domain.AnalysisResponse{
			Status: domain.StatusError,
			Error:  emptyExtractionMessage,
		})
		return
	}

	// Analyze never fails: the fallback guarantees a result.
	analysis := h.analyzer.Analyze(r.Context(), doc)

	h.logger.Info("Analysis completed", "request_id", requestID, "url", req.PDFURL, "words", doc.WordCount())
	writeJSON(w, http.StatusOK, domain.AnalysisResponse{
		Status:   domain.StatusSuccess,
		Analysis: analysis,
	})
}

// validatePDFURL rejects syntactically invalid or non-http(s) URLs before
// the pipeline starts. Reachability is not checked here.
func validatePDFURL(raw string) error {
	if raw == "" {
		return apperrors.NewValidationError("pdf_url is required")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperrors.NewValidationError("pdf_url must be a valid http(s) URL", raw)
	}
	return nil
}

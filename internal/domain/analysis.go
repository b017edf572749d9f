package domain

import "strings"

// AnalysisRequest is the inbound payload for the analyze endpoint.
type AnalysisRequest struct {
	PDFURL string `json:"pdf_url"`
}

// AnalysisResponse is the uniform response envelope. Exactly one of
// Analysis/Error is populated, matching Status.
type AnalysisResponse struct {
	Status   string `json:"status"`
	Analysis string `json:"analysis,omitempty"`
	Error    string `json:"error,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ExtractedDocument holds the text pulled out of one PDF. It lives only for
// the duration of a single request and is never persisted.
type ExtractedDocument struct {
	Text string `json:"text"`
}

// WordCount returns the number of whitespace-separated words in the
// extracted text.
func (d *ExtractedDocument) WordCount() int {
	return len(strings.Fields(d.Text))
}

// IsEmpty reports whether extraction produced no usable text.
func (d *ExtractedDocument) IsEmpty() bool {
	return d == nil || strings.TrimSpace(d.Text) == ""
}

// ServiceInfo is the liveness payload served at the root path.
type ServiceInfo struct {
	Status   string   `json:"status"`
	Service  string   `json:"service"`
	Version  string   `json:"version"`
	Features []string `json:"features"`
}

// HealthStatus is the readiness payload served at /health.
type HealthStatus struct {
	Status       string `json:"status"`
	APIAvailable bool   `json:"api_available"`
	CacheEnabled bool   `json:"cache_enabled"`
	Version      string `json:"version"`
}

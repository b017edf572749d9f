package service

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "medical-report-analyzer/pkg/errors"
)

func TestExtractText_InvalidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	extractor := NewTextExtractor(&MockServiceLogger{})

	_, err := extractor.ExtractText(path)
	if err == nil {
		t.Fatal("expected error for invalid PDF bytes")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeExtraction) {
		t.Fatalf("expected extraction-classified error, got %v", err)
	}
}

func TestExtractText_MissingFile(t *testing.T) {
	extractor := NewTextExtractor(&MockServiceLogger{})

	_, err := extractor.ExtractText(filepath.Join(t.TempDir(), "absent.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeExtraction) {
		t.Fatalf("expected extraction-classified error, got %v", err)
	}
}

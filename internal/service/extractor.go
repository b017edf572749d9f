package service

import (
	"strings"

	"medical-report-analyzer/internal/domain"
	apperrors "medical-report-analyzer/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// FitzTextExtractor extracts text from PDF files using MuPDF.
type FitzTextExtractor struct {
	logger domain.Logger
}

// NewTextExtractor creates a new PDF text extractor
func NewTextExtractor(logger domain.Logger) domain.TextExtractor {
	return &FitzTextExtractor{logger: logger}
}

// ExtractText reads every page of the PDF at path, in page order, and
// joins the page texts with a newline separator. A document whose pages
// carry no text yields an empty result, not an error; only a PDF that
// cannot be opened at all is an extraction error. Whether the content is
// actually medical is not judged here; the model decides that.
func (e *FitzTextExtractor) ExtractText(path string) (*domain.ExtractedDocument, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, apperrors.NewExtractionError("failed to open PDF document", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)

	for pageNum := 0; pageNum < numPages; pageNum++ {
		text, err := doc.Text(pageNum)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", "page", pageNum+1, "total", numPages, "error", err)
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	e.logger.Debug("PDF text extracted", "pages", numPages, "pages_with_text", len(pages))

	return &domain.ExtractedDocument{Text: strings.Join(pages, "\n")}, nil
}

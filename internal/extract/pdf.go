package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextExtractor turns a document on disk into plain text.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// PDFExtractor reads PDFs with ledongthuc/pdf. Structure is not
// preserved: tables and columns collapse to linear text, only the page
// order is kept.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor { return &PDFExtractor{} }

func (e *PDFExtractor) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// skip pages that fail to extract
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

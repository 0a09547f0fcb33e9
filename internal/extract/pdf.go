package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts plain text from PDF documents.
type PDFExtractor struct{}

// NewPDFExtractor creates a PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText returns the document's text, or an empty string when the
// file is missing or unreadable. The pdf reader panics on some malformed
// inputs, so those are swallowed into the empty-text result as well.
func (e *PDFExtractor) ExtractText(path string) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}

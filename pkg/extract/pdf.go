package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/readstash/readstash/models"
)

// FromPDF extracts text from PDF bytes. Pages are walked in order, each
// page's plain text is taken whole, and pages are space-joined into one
// plaintext body. The content HTML is that body wrapped in a single
// paragraph with newlines rendered as <br>.
func (e *Extractor) FromPDF(data []byte) (*models.ExtractedContent, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Source: "pdf", Err: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, &ExtractionError{Source: "pdf", Err: err}
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	plaintext := joinPages(pages)
	if plaintext == "" {
		return nil, &ExtractionError{Source: "pdf", Err: ErrNoContent}
	}

	return e.build("", paragraphHTML(plaintext), plaintext, true), nil
}

// joinPages concatenates per-page text in page order, space-joined and
// trimmed.
func joinPages(pages []string) string {
	return strings.TrimSpace(strings.Join(pages, " "))
}

// paragraphHTML wraps plaintext in a single paragraph, newlines as <br>.
func paragraphHTML(plaintext string) string {
	return "<p>" + strings.ReplaceAll(plaintext, "\n", "<br>") + "</p>"
}

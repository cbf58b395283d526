package out

import (
	"context"
	"fmt"
	"strings"

	"rsc.io/pdf"

	"examtrack/internal/modules/library/domain"
	libraryout "examtrack/internal/modules/library/port/out"
)

type LocalPDFInspector struct{}

func NewLocalPDFInspector() libraryout.PDFInspector {
	return &LocalPDFInspector{}
}

func (r *LocalPDFInspector) PageCount(_ context.Context, path string) (int, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return doc.NumPage(), nil
}

// ReadPage extracts the text runs of one page. Pages past the end clamp to
// the last page.
func (r *LocalPDFInspector) ReadPage(_ context.Context, path string, page int) (domain.Page, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return domain.Page{}, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	if total == 0 {
		return domain.Page{Number: 1}, nil
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	p := doc.Page(page)
	if p.V.IsNull() {
		return domain.Page{}, fmt.Errorf("pdf page %d is null", page)
	}
	content := p.Content()
	parts := make([]string, 0, len(content.Text))
	for _, text := range content.Text {
		if strings.TrimSpace(text.S) == "" {
			continue
		}
		parts = append(parts, text.S)
	}
	return domain.Page{Number: page, Total: total, Text: strings.Join(parts, " ")}, nil
}

package out

import (
	"context"

	"examtrack/internal/modules/library/domain"
)

type FileStore interface {
	Load(ctx context.Context) ([]domain.PdfFile, error)
	Save(ctx context.Context, files []domain.PdfFile) error
}

// PDFInspector reads metadata and text from a PDF on disk.
type PDFInspector interface {
	PageCount(ctx context.Context, path string) (int, error)
	ReadPage(ctx context.Context, path string, page int) (domain.Page, error)
}

type ExternalLauncher interface {
	Open(ctx context.Context, target string) error
}

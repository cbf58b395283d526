package out

import (
	"context"
	"io"

	"examtrack/internal/modules/syllabus/domain"
)

type Store interface {
	Load(ctx context.Context) ([]domain.Syllabus, error)
	Save(ctx context.Context, tree []domain.Syllabus) error
}

// SeedParser decodes a syllabus tree from a seed document.
type SeedParser interface {
	Parse(r io.Reader) ([]domain.Syllabus, error)
}

package out

import (
	"context"

	"examtrack/internal/modules/scores/domain"
)

type EntryStore interface {
	Load(ctx context.Context) ([]domain.TestEntry, error)
	Save(ctx context.Context, entries []domain.TestEntry) error
}

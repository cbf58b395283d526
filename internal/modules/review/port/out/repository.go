package out

import (
	"context"

	"examtrack/internal/modules/review/domain"
)

type Repository interface {
	LoadEvents(ctx context.Context) ([]domain.StudyEvent, error)
	LoadTasks(ctx context.Context) ([]domain.ReviewTask, error)
	SaveTasks(ctx context.Context, tasks []domain.ReviewTask) error
	// SaveAll writes both collections or neither.
	SaveAll(ctx context.Context, events []domain.StudyEvent, tasks []domain.ReviewTask) error
}

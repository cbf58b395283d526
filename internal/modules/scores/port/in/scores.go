package in

import (
	"context"

	"examtrack/internal/modules/scores/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.EntryOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.EntryOutput, error)
	Remove(ctx context.Context, entryID string) error
	List(ctx context.Context) ([]dto.EntryOutput, error)
	Recent(ctx context.Context, days int) ([]dto.EntryOutput, error)
	Stats(ctx context.Context, days int) (dto.StatsOutput, error)
}

package in

import (
	"context"

	"examtrack/internal/modules/scores/dto"
	scoresin "examtrack/internal/modules/scores/port/in"
)

type CLIHandler struct {
	usecase scoresin.Usecase
}

func NewCLIHandler(usecase scoresin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddInput) (dto.EntryOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateInput) (dto.EntryOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Remove(ctx context.Context, entryID string) error {
	return h.usecase.Remove(ctx, entryID)
}

func (h CLIHandler) List(ctx context.Context, days int) ([]dto.EntryOutput, error) {
	if days > 0 {
		return h.usecase.Recent(ctx, days)
	}
	return h.usecase.List(ctx)
}

func (h CLIHandler) Stats(ctx context.Context, days int) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx, days)
}

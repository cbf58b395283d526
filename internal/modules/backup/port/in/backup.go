package in

import (
	"context"

	"examtrack/internal/modules/backup/dto"
)

type Usecase interface {
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error)
	Clear(ctx context.Context, input dto.ClearInput) error
	DefaultFileName() string
}

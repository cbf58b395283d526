package in

import (
	"context"

	"examtrack/internal/modules/backup/dto"
	backupin "examtrack/internal/modules/backup/port/in"
)

type CLIHandler struct {
	usecase backupin.Usecase
}

func NewCLIHandler(usecase backupin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, path string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{Path: path})
}

func (h CLIHandler) Import(ctx context.Context, path string) (dto.ImportOutput, error) {
	return h.usecase.Import(ctx, dto.ImportInput{Path: path})
}

func (h CLIHandler) Clear(ctx context.Context, confirm bool) error {
	return h.usecase.Clear(ctx, dto.ClearInput{Confirm: confirm})
}

func (h CLIHandler) DefaultFileName() string {
	return h.usecase.DefaultFileName()
}

package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"examtrack/internal/modules/backup/dto"
	backupin "examtrack/internal/modules/backup/port/in"
	"examtrack/internal/modules/backup/service"
	"examtrack/internal/platform/validate"
)

type Interactor struct {
	svc *service.BackupService
}

func NewInteractor(svc *service.BackupService) backupin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	doc, err := i.svc.Export(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	if input.Path == "" {
		return dto.ExportOutput{Document: doc}, nil
	}
	if err := os.MkdirAll(filepath.Dir(input.Path), 0o755); err != nil {
		return dto.ExportOutput{}, fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(input.Path, append(doc, '\n'), 0o644); err != nil {
		return dto.ExportOutput{}, fmt.Errorf("write export: %w", err)
	}
	return dto.ExportOutput{Path: input.Path, Document: doc}, nil
}

func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.ImportOutput{}, err
	}
	payload, err := os.ReadFile(input.Path)
	if err != nil {
		return dto.ImportOutput{}, fmt.Errorf("read import: %w", err)
	}
	keys, err := i.svc.Import(ctx, payload)
	if err != nil {
		return dto.ImportOutput{Keys: keys}, err
	}
	return dto.ImportOutput{Keys: keys}, nil
}

func (i *Interactor) Clear(ctx context.Context, input dto.ClearInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.svc.Clear(ctx)
}

func (i *Interactor) DefaultFileName() string {
	return i.svc.DefaultFileName()
}

package usecase

import (
	"context"
	"fmt"

	"examtrack/internal/modules/library/domain"
	"examtrack/internal/modules/library/dto"
	libraryin "examtrack/internal/modules/library/port/in"
	"examtrack/internal/modules/library/service"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/exam"
	"examtrack/internal/platform/validate"
)

type Interactor struct {
	svc *service.LibraryService
}

func NewInteractor(svc *service.LibraryService) libraryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AddFile(ctx context.Context, input dto.AddFileInput) (dto.FileOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.FileOutput{}, err
	}
	file, err := i.svc.AddFile(ctx, input.Path, exam.Subject(input.Subject), input.Folder, input.Tags)
	if err != nil {
		return dto.FileOutput{}, err
	}
	return toOutput(file), nil
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.FileOutput, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	files, err := i.svc.List(ctx, exam.Subject(input.Subject), input.Search, input.Tags)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FileOutput, 0, len(files))
	for _, f := range files {
		out = append(out, toOutput(f))
	}
	return out, nil
}

func (i *Interactor) Remove(ctx context.Context, fileID string) error {
	if fileID == "" {
		return fmt.Errorf("%w: file id is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Remove(ctx, fileID)
}

func (i *Interactor) UpdateTags(ctx context.Context, input dto.UpdateTagsInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.svc.UpdateTags(ctx, input.FileID, input.Tags)
}

func (i *Interactor) Tags(ctx context.Context) ([]string, error) {
	return i.svc.Tags(ctx)
}

func (i *Interactor) ReadPage(ctx context.Context, input dto.ReadPageInput) (dto.PageOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.PageOutput{}, err
	}
	file, page, err := i.svc.ReadPage(ctx, input.FileID, input.Page)
	if err != nil {
		return dto.PageOutput{}, err
	}
	return dto.PageOutput{FileID: file.ID, Name: file.Name, Page: page.Number, Total: page.Total, Text: page.Text}, nil
}

func (i *Interactor) Open(ctx context.Context, fileID string) (dto.OpenOutput, error) {
	if fileID == "" {
		return dto.OpenOutput{}, fmt.Errorf("%w: file id is required", apperrors.ErrInvalidInput)
	}
	target, err := i.svc.Open(ctx, fileID)
	if err != nil {
		return dto.OpenOutput{}, err
	}
	return dto.OpenOutput{FileID: fileID, Target: target}, nil
}

func toOutput(f domain.PdfFile) dto.FileOutput {
	return dto.FileOutput{
		ID:      f.ID,
		Subject: string(f.Subject),
		Folder:  f.Folder,
		Name:    f.Name,
		Path:    f.Path,
		Size:    f.Size,
		Pages:   f.Pages,
		Tags:    append([]string{}, f.Tags...),
		AddedAt: f.AddedAt,
	}
}

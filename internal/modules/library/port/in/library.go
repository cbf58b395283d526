package in

import (
	"context"

	"examtrack/internal/modules/library/dto"
)

type Usecase interface {
	AddFile(ctx context.Context, input dto.AddFileInput) (dto.FileOutput, error)
	List(ctx context.Context, input dto.ListInput) ([]dto.FileOutput, error)
	Remove(ctx context.Context, fileID string) error
	UpdateTags(ctx context.Context, input dto.UpdateTagsInput) error
	Tags(ctx context.Context) ([]string, error)
	ReadPage(ctx context.Context, input dto.ReadPageInput) (dto.PageOutput, error)
	Open(ctx context.Context, fileID string) (dto.OpenOutput, error)
}

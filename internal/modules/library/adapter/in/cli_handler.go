package in

import (
	"context"

	"examtrack/internal/modules/library/dto"
	libraryin "examtrack/internal/modules/library/port/in"
)

type CLIHandler struct {
	usecase libraryin.Usecase
}

func NewCLIHandler(usecase libraryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, path, subject, folder string, tags []string) (dto.FileOutput, error) {
	return h.usecase.AddFile(ctx, dto.AddFileInput{Path: path, Subject: subject, Folder: folder, Tags: tags})
}

func (h CLIHandler) List(ctx context.Context, subject, search string, tags []string) ([]dto.FileOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Subject: subject, Search: search, Tags: tags})
}

func (h CLIHandler) Remove(ctx context.Context, fileID string) error {
	return h.usecase.Remove(ctx, fileID)
}

func (h CLIHandler) Tag(ctx context.Context, fileID string, tags []string) error {
	return h.usecase.UpdateTags(ctx, dto.UpdateTagsInput{FileID: fileID, Tags: tags})
}

func (h CLIHandler) Tags(ctx context.Context) ([]string, error) {
	return h.usecase.Tags(ctx)
}

func (h CLIHandler) Read(ctx context.Context, fileID string, page int) (dto.PageOutput, error) {
	return h.usecase.ReadPage(ctx, dto.ReadPageInput{FileID: fileID, Page: page})
}

func (h CLIHandler) Open(ctx context.Context, fileID string) (dto.OpenOutput, error) {
	return h.usecase.Open(ctx, fileID)
}

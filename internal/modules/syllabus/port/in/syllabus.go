package in

import (
	"context"

	"examtrack/internal/modules/syllabus/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.FilterInput) ([]dto.SubjectOutput, error)
	AddChapter(ctx context.Context, input dto.AddChapterInput) (dto.ChapterOutput, error)
	AddTopic(ctx context.Context, input dto.AddTopicInput) (dto.TopicOutput, error)
	RemoveChapter(ctx context.Context, input dto.RemoveChapterInput) error
	RemoveTopic(ctx context.Context, input dto.TopicKeyInput) error
	SetStatus(ctx context.Context, input dto.SetStatusInput) error
	Import(ctx context.Context, input dto.ImportInput) ([]dto.SubjectOutput, error)
	ResolveTopic(ctx context.Context, input dto.TopicKeyInput) (dto.TopicOutput, error)
	Progress(ctx context.Context) ([]dto.ProgressOutput, error)
}

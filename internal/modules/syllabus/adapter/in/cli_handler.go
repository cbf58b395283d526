package in

import (
	"context"

	"examtrack/internal/modules/syllabus/dto"
	syllabusin "examtrack/internal/modules/syllabus/port/in"
)

type CLIHandler struct {
	usecase syllabusin.Usecase
}

func NewCLIHandler(usecase syllabusin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, search, subject, difficulty string) ([]dto.SubjectOutput, error) {
	return h.usecase.List(ctx, dto.FilterInput{Search: search, Subject: subject, Difficulty: difficulty})
}

func (h CLIHandler) AddChapter(ctx context.Context, subject, name, difficulty string) (dto.ChapterOutput, error) {
	return h.usecase.AddChapter(ctx, dto.AddChapterInput{Subject: subject, Name: name, Difficulty: difficulty})
}

func (h CLIHandler) AddTopic(ctx context.Context, subject, chapterID, name, difficulty string) (dto.TopicOutput, error) {
	return h.usecase.AddTopic(ctx, dto.AddTopicInput{Subject: subject, ChapterID: chapterID, Name: name, Difficulty: difficulty})
}

func (h CLIHandler) RemoveChapter(ctx context.Context, subject, chapterID string) error {
	return h.usecase.RemoveChapter(ctx, dto.RemoveChapterInput{Subject: subject, ChapterID: chapterID})
}

func (h CLIHandler) RemoveTopic(ctx context.Context, subject, chapterID, topicID string) error {
	return h.usecase.RemoveTopic(ctx, dto.TopicKeyInput{Subject: subject, ChapterID: chapterID, TopicID: topicID})
}

func (h CLIHandler) SetStatus(ctx context.Context, subject, chapterID, topicID, status string) error {
	return h.usecase.SetStatus(ctx, dto.SetStatusInput{
		TopicKeyInput: dto.TopicKeyInput{Subject: subject, ChapterID: chapterID, TopicID: topicID},
		Status:        status,
	})
}

func (h CLIHandler) Import(ctx context.Context, path string) ([]dto.SubjectOutput, error) {
	return h.usecase.Import(ctx, dto.ImportInput{Path: path})
}

func (h CLIHandler) Progress(ctx context.Context) ([]dto.ProgressOutput, error) {
	return h.usecase.Progress(ctx)
}

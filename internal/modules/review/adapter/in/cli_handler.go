package in

import (
	"context"

	"examtrack/internal/modules/review/dto"
	reviewin "examtrack/internal/modules/review/port/in"
)

type CLIHandler struct {
	usecase reviewin.Usecase
}

func NewCLIHandler(usecase reviewin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) AddStudy(ctx context.Context, subject, chapterID, topicID, difficulty, notes string) (dto.AddStudyOutput, error) {
	return h.usecase.AddStudy(ctx, dto.AddStudyInput{
		Subject:    subject,
		ChapterID:  chapterID,
		TopicID:    topicID,
		Difficulty: difficulty,
		Notes:      notes,
	})
}

func (h CLIHandler) Today(ctx context.Context) ([]dto.TaskOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Overdue(ctx context.Context) ([]dto.TaskOutput, error) {
	return h.usecase.Overdue(ctx)
}

func (h CLIHandler) Upcoming(ctx context.Context, days int) ([]dto.TaskOutput, error) {
	return h.usecase.Upcoming(ctx, dto.UpcomingInput{Days: days})
}

func (h CLIHandler) ForTopic(ctx context.Context, topicID string) ([]dto.TaskOutput, error) {
	return h.usecase.ForTopic(ctx, topicID)
}

func (h CLIHandler) Complete(ctx context.Context, taskID string) (dto.ChangeOutput, error) {
	return h.usecase.Complete(ctx, taskID)
}

func (h CLIHandler) Snooze(ctx context.Context, taskID string, days int) (dto.ChangeOutput, error) {
	return h.usecase.Snooze(ctx, dto.SnoozeInput{TaskID: taskID, Days: days})
}

func (h CLIHandler) Remove(ctx context.Context, taskID string) (dto.ChangeOutput, error) {
	return h.usecase.Remove(ctx, taskID)
}

func (h CLIHandler) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Forecast(ctx context.Context, days int) ([]dto.DayLoadOutput, error) {
	return h.usecase.Forecast(ctx, dto.ForecastInput{Days: days})
}

func (h CLIHandler) Reload(ctx context.Context) error {
	return h.usecase.Load(ctx)
}

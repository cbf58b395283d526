package in

import (
	"context"

	"examtrack/internal/modules/review/dto"
)

type Usecase interface {
	// Load re-reads persisted state. It can return an error; the current
	// snapshot is then kept and the failure logged.
	Load(ctx context.Context) error
	AddStudy(ctx context.Context, input dto.AddStudyInput) (dto.AddStudyOutput, error)
	Complete(ctx context.Context, taskID string) (dto.ChangeOutput, error)
	Snooze(ctx context.Context, input dto.SnoozeInput) (dto.ChangeOutput, error)
	Remove(ctx context.Context, taskID string) (dto.ChangeOutput, error)
	Today(ctx context.Context) ([]dto.TaskOutput, error)
	Overdue(ctx context.Context) ([]dto.TaskOutput, error)
	Upcoming(ctx context.Context, input dto.UpcomingInput) ([]dto.TaskOutput, error)
	ForTopic(ctx context.Context, topicID string) ([]dto.TaskOutput, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	Forecast(ctx context.Context, input dto.ForecastInput) ([]dto.DayLoadOutput, error)
}

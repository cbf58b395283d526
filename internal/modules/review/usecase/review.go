package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"examtrack/internal/modules/review/domain"
	"examtrack/internal/modules/review/dto"
	reviewin "examtrack/internal/modules/review/port/in"
	"examtrack/internal/modules/review/service"
	syllabusdto "examtrack/internal/modules/syllabus/dto"
	syllabusin "examtrack/internal/modules/syllabus/port/in"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/exam"
	"examtrack/internal/platform/validate"
)

type Interactor struct {
	svc          *service.ReviewService
	syllabus     syllabusin.Usecase
	upcomingDays int
}

// NewInteractor wires the review usecase. syllabus may be nil, in which case
// study events must carry their own difficulty.
func NewInteractor(svc *service.ReviewService, syllabus syllabusin.Usecase, upcomingDays int) reviewin.Usecase {
	if upcomingDays <= 0 {
		upcomingDays = 7
	}
	return &Interactor{svc: svc, syllabus: syllabus, upcomingDays: upcomingDays}
}

func (i *Interactor) Load(ctx context.Context) error {
	return i.svc.Load(ctx)
}

func (i *Interactor) AddStudy(ctx context.Context, input dto.AddStudyInput) (dto.AddStudyOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.AddStudyOutput{}, err
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		if i.syllabus == nil {
			return dto.AddStudyOutput{}, fmt.Errorf("%w: difficulty is required", apperrors.ErrInvalidInput)
		}
		topic, err := i.syllabus.ResolveTopic(ctx, syllabusdto.TopicKeyInput{Subject: input.Subject, ChapterID: input.ChapterID, TopicID: input.TopicID})
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return dto.AddStudyOutput{}, fmt.Errorf("%w: difficulty is required for topics outside the syllabus", apperrors.ErrInvalidInput)
			}
			return dto.AddStudyOutput{}, err
		}
		difficulty = topic.Difficulty
	}

	event, tasks, err := i.svc.AddStudyEvent(ctx, domain.TopicRef{
		Subject:    exam.Subject(input.Subject),
		ChapterID:  input.ChapterID,
		TopicID:    input.TopicID,
		Difficulty: exam.Difficulty(difficulty),
	}, input.Notes)
	if err != nil {
		return dto.AddStudyOutput{}, err
	}
	now := i.svc.Now()
	out := dto.AddStudyOutput{
		EventID:   event.ID,
		TopicID:   event.Topic.ID,
		CreatedAt: event.CreatedAt,
		Tasks:     make([]dto.TaskOutput, 0, len(tasks)),
	}
	for _, task := range tasks {
		out.Tasks = append(out.Tasks, i.toOutput(task, event, now))
	}
	return out, nil
}

func (i *Interactor) Complete(ctx context.Context, taskID string) (dto.ChangeOutput, error) {
	if taskID == "" {
		return dto.ChangeOutput{}, fmt.Errorf("%w: task id is required", apperrors.ErrInvalidInput)
	}
	changed, err := i.svc.MarkComplete(ctx, taskID)
	if err != nil {
		return dto.ChangeOutput{}, err
	}
	return dto.ChangeOutput{TaskID: taskID, Changed: changed}, nil
}

func (i *Interactor) Snooze(ctx context.Context, input dto.SnoozeInput) (dto.ChangeOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.ChangeOutput{}, err
	}
	changed, err := i.svc.Snooze(ctx, input.TaskID, input.Days)
	if err != nil {
		return dto.ChangeOutput{}, err
	}
	return dto.ChangeOutput{TaskID: input.TaskID, Changed: changed}, nil
}

func (i *Interactor) Remove(ctx context.Context, taskID string) (dto.ChangeOutput, error) {
	if taskID == "" {
		return dto.ChangeOutput{}, fmt.Errorf("%w: task id is required", apperrors.ErrInvalidInput)
	}
	changed, err := i.svc.RemoveTask(ctx, taskID)
	if err != nil {
		return dto.ChangeOutput{}, err
	}
	return dto.ChangeOutput{TaskID: taskID, Changed: changed}, nil
}

func (i *Interactor) Today(context.Context) ([]dto.TaskOutput, error) {
	return i.outputs(i.svc.TodaysQueue()), nil
}

func (i *Interactor) Overdue(context.Context) ([]dto.TaskOutput, error) {
	return i.outputs(i.svc.Overdue()), nil
}

func (i *Interactor) Upcoming(_ context.Context, input dto.UpcomingInput) ([]dto.TaskOutput, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	days := input.Days
	if days == 0 {
		days = i.upcomingDays
	}
	return i.outputs(i.svc.Upcoming(days)), nil
}

func (i *Interactor) ForTopic(_ context.Context, topicID string) ([]dto.TaskOutput, error) {
	if topicID == "" {
		return nil, fmt.Errorf("%w: topic id is required", apperrors.ErrInvalidInput)
	}
	return i.outputs(i.svc.TasksForTopic(topicID)), nil
}

func (i *Interactor) Summary(context.Context) (dto.SummaryOutput, error) {
	s := i.svc.Summary(i.upcomingDays)
	return dto.SummaryOutput{
		DueToday:     s.DueToday,
		Overdue:      s.Overdue,
		Upcoming:     s.Upcoming,
		UpcomingDays: i.upcomingDays,
		Completed:    s.Completed,
		Total:        s.Total,
		Events:       s.Events,
	}, nil
}

func (i *Interactor) Forecast(_ context.Context, input dto.ForecastInput) ([]dto.DayLoadOutput, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	loads := i.svc.Forecast(input.Days)
	out := make([]dto.DayLoadOutput, 0, len(loads))
	for _, l := range loads {
		out = append(out, dto.DayLoadOutput{Day: l.Day, Count: l.Count})
	}
	return out, nil
}

func (i *Interactor) outputs(tasks []domain.ReviewTask) []dto.TaskOutput {
	events := map[string]domain.StudyEvent{}
	for _, e := range i.svc.Events() {
		events[e.ID] = e
	}
	now := i.svc.Now()
	out := make([]dto.TaskOutput, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, i.toOutput(task, events[task.SessionID], now))
	}
	return out
}

func (i *Interactor) toOutput(task domain.ReviewTask, event domain.StudyEvent, now time.Time) dto.TaskOutput {
	loc := i.svc.Location()
	return dto.TaskOutput{
		ID:          task.ID,
		SessionID:   task.SessionID,
		TopicID:     event.Topic.ID,
		Subject:     string(event.Topic.Subject),
		ChapterID:   event.Topic.ChapterID,
		Topic:       event.Topic.TopicID,
		Difficulty:  string(event.Topic.Difficulty),
		DueAt:       task.DueAt,
		DoneAt:      task.DoneAt,
		SnoozeCount: task.SnoozeCount,
		Overdue:     domain.IsOverdue(task, now),
		DueToday:    domain.IsDueToday(task, now, loc),
		DaysOverdue: domain.DaysOverdue(task, now, loc),
	}
}

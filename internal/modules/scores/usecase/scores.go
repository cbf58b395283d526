package usecase

import (
	"context"
	"fmt"
	"time"

	"examtrack/internal/modules/scores/domain"
	"examtrack/internal/modules/scores/dto"
	scoresin "examtrack/internal/modules/scores/port/in"
	"examtrack/internal/modules/scores/service"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/validate"
)

type Interactor struct {
	svc *service.ScoresService
}

func NewInteractor(svc *service.ScoresService) scoresin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.EntryOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.EntryOutput{}, err
	}
	date, err := i.parseDate(input.Date)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	entry, err := i.svc.Add(ctx, domain.TestEntry{
		Date:           date,
		Source:         input.Source,
		DurationMin:    input.DurationMin,
		ScoreOverall:   input.ScoreOverall,
		MaxOverall:     input.MaxOverall,
		ScorePhysics:   input.ScorePhysics,
		ScoreChemistry: input.ScoreChemistry,
		ScoreBiology:   input.ScoreBiology,
	})
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.EntryOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.EntryOutput{}, err
	}
	entry, err := i.svc.Get(ctx, input.ID)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	if input.Date != "" {
		if entry.Date, err = i.parseDate(input.Date); err != nil {
			return dto.EntryOutput{}, err
		}
	}
	if input.Source != nil {
		entry.Source = *input.Source
	}
	if input.DurationMin != nil {
		entry.DurationMin = *input.DurationMin
	}
	if input.ScoreOverall != nil {
		entry.ScoreOverall = *input.ScoreOverall
	}
	if input.MaxOverall != nil {
		entry.MaxOverall = *input.MaxOverall
	}
	if input.ScorePhysics != nil {
		entry.ScorePhysics = input.ScorePhysics
	}
	if input.ScoreChemistry != nil {
		entry.ScoreChemistry = input.ScoreChemistry
	}
	if input.ScoreBiology != nil {
		entry.ScoreBiology = input.ScoreBiology
	}
	updated, err := i.svc.Update(ctx, entry)
	if err != nil {
		return dto.EntryOutput{}, err
	}
	return toOutput(updated), nil
}

func (i *Interactor) Remove(ctx context.Context, entryID string) error {
	if entryID == "" {
		return fmt.Errorf("%w: entry id is required", apperrors.ErrInvalidInput)
	}
	return i.svc.Remove(ctx, entryID)
}

func (i *Interactor) List(ctx context.Context) ([]dto.EntryOutput, error) {
	entries, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOutputs(entries), nil
}

func (i *Interactor) Recent(ctx context.Context, days int) ([]dto.EntryOutput, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be non-negative", apperrors.ErrInvalidInput)
	}
	entries, err := i.svc.Recent(ctx, days)
	if err != nil {
		return nil, err
	}
	return toOutputs(entries), nil
}

func (i *Interactor) Stats(ctx context.Context, days int) (dto.StatsOutput, error) {
	recent, err := i.Recent(ctx, days)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	average, err := i.svc.AverageScore(ctx, days)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	perf, err := i.svc.SubjectPerformance(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	out := dto.StatsOutput{Days: days, Recent: len(recent), Average: average, Subjects: make([]dto.SubjectOutput, 0, len(perf))}
	for _, p := range perf {
		out.Subjects = append(out.Subjects, dto.SubjectOutput{Subject: string(p.Subject), Average: p.Average, Count: p.Count})
	}
	return out, nil
}

func (i *Interactor) parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	date, err := time.ParseInLocation(dto.DateLayout, value, i.svc.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", apperrors.ErrInvalidInput, value)
	}
	return date, nil
}

func toOutputs(entries []domain.TestEntry) []dto.EntryOutput {
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, toOutput(e))
	}
	return out
}

func toOutput(e domain.TestEntry) dto.EntryOutput {
	return dto.EntryOutput{
		ID:             e.ID,
		Date:           e.Date,
		Source:         e.Source,
		DurationMin:    e.DurationMin,
		ScoreOverall:   e.ScoreOverall,
		MaxOverall:     e.MaxOverall,
		Percent:        e.Percent(),
		ScorePhysics:   e.ScorePhysics,
		ScoreChemistry: e.ScoreChemistry,
		ScoreBiology:   e.ScoreBiology,
	}
}

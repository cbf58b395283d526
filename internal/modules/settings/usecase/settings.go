package usecase

import (
	"context"
	"fmt"
	"time"

	"examtrack/internal/modules/settings/domain"
	"examtrack/internal/modules/settings/dto"
	settingsin "examtrack/internal/modules/settings/port/in"
	"examtrack/internal/modules/settings/service"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/validate"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.svc.Get(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.SettingsOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.SettingsOutput{}, err
	}
	var patch service.Patch
	if input.TargetDate != "" {
		target, err := time.Parse(time.RFC3339, input.TargetDate)
		if err != nil {
			return dto.SettingsOutput{}, fmt.Errorf("%w: target date %q", apperrors.ErrInvalidInput, input.TargetDate)
		}
		patch.TargetDate = &target
	}
	if input.Theme != nil {
		theme := domain.Theme(*input.Theme)
		patch.Theme = &theme
	}
	patch.Compact = input.Compact
	settings, err := i.svc.Update(ctx, patch)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Countdown(ctx context.Context) (dto.CountdownOutput, error) {
	settings, countdown, err := i.svc.Countdown(ctx)
	if err != nil {
		return dto.CountdownOutput{}, err
	}
	return dto.CountdownOutput{
		TargetDate: settings.TargetDate,
		Days:       countdown.Days,
		Hours:      countdown.Hours,
		Minutes:    countdown.Minutes,
		Passed:     countdown.Passed,
	}, nil
}

func toOutput(s domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{TargetDate: s.TargetDate, Theme: string(s.Theme), Compact: s.Compact}
}

package in

import (
	"context"

	"examtrack/internal/modules/settings/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SettingsOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.SettingsOutput, error)
	Countdown(ctx context.Context) (dto.CountdownOutput, error)
}

package in

import (
	"context"

	"examtrack/internal/modules/settings/dto"
	settingsin "examtrack/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateInput) (dto.SettingsOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Countdown(ctx context.Context) (dto.CountdownOutput, error) {
	return h.usecase.Countdown(ctx)
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"examtrack/internal/modules/settings/domain"
	settingsout "examtrack/internal/modules/settings/port/out"
	"examtrack/internal/platform/clock"
	apperrors "examtrack/internal/platform/errors"
)

type SettingsService struct {
	clock clock.Clock
	store settingsout.Store
	log   *slog.Logger

	mu sync.Mutex
}

func NewSettingsService(clock clock.Clock, store settingsout.Store, log *slog.Logger) *SettingsService {
	if log == nil {
		log = slog.Default()
	}
	return &SettingsService{clock: clock, store: store, log: log.With("module", "settings")}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.store.Load(ctx)
}

// Patch lists the fields an update touches; nil fields are kept.
type Patch struct {
	TargetDate *time.Time
	Theme      *domain.Theme
	Compact    *bool
}

func (s *SettingsService) Update(ctx context.Context, patch Patch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings, err := s.store.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	if patch.TargetDate != nil {
		settings.TargetDate = *patch.TargetDate
	}
	if patch.Theme != nil {
		settings.Theme = *patch.Theme
	}
	if patch.Compact != nil {
		settings.Compact = *patch.Compact
	}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Save(ctx, settings); err != nil {
		return domain.Settings{}, err
	}
	s.log.Info("settings updated", "target", settings.TargetDate, "theme", settings.Theme, "compact", settings.Compact)
	return settings, nil
}

func (s *SettingsService) Countdown(ctx context.Context) (domain.Settings, domain.Countdown, error) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return domain.Settings{}, domain.Countdown{}, err
	}
	return settings, domain.CountdownTo(settings.TargetDate, s.clock.Now()), nil
}

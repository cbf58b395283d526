package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"examtrack/internal/modules/scores/domain"
	scoresout "examtrack/internal/modules/scores/port/out"
	"examtrack/internal/platform/clock"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/id"
)

type ScoresService struct {
	clock clock.Clock
	idGen id.Generator
	store scoresout.EntryStore
	loc   *time.Location
	log   *slog.Logger

	mu sync.Mutex
}

func NewScoresService(clock clock.Clock, idGen id.Generator, store scoresout.EntryStore, loc *time.Location, log *slog.Logger) *ScoresService {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = slog.Default()
	}
	return &ScoresService{clock: clock, idGen: idGen, store: store, loc: loc, log: log.With("module", "scores")}
}

// Add assigns an id and puts the entry in front of the log. A zero date
// means today.
func (s *ScoresService) Add(ctx context.Context, entry domain.TestEntry) (domain.TestEntry, error) {
	if entry.Date.IsZero() {
		entry.Date = s.clock.Now()
	}
	if err := entry.Validate(); err != nil {
		return domain.TestEntry{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	entry.ID = s.idGen.New()

	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.store.Load(ctx)
	if err != nil {
		return domain.TestEntry{}, err
	}
	next := append([]domain.TestEntry{entry}, entries...)
	if err := s.store.Save(ctx, next); err != nil {
		return domain.TestEntry{}, err
	}
	s.log.Info("test entry added", "entry_id", entry.ID, "percent", entry.Percent())
	return entry, nil
}

// Update replaces the entry with the same id.
func (s *ScoresService) Update(ctx context.Context, entry domain.TestEntry) (domain.TestEntry, error) {
	if err := entry.Validate(); err != nil {
		return domain.TestEntry{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.store.Load(ctx)
	if err != nil {
		return domain.TestEntry{}, err
	}
	idx := indexOf(entries, entry.ID)
	if idx < 0 {
		return domain.TestEntry{}, fmt.Errorf("%w: test entry %s", apperrors.ErrNotFound, entry.ID)
	}
	entries[idx] = entry
	if err := s.store.Save(ctx, entries); err != nil {
		return domain.TestEntry{}, err
	}
	return entry, nil
}

func (s *ScoresService) Remove(ctx context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	idx := indexOf(entries, entryID)
	if idx < 0 {
		return fmt.Errorf("%w: test entry %s", apperrors.ErrNotFound, entryID)
	}
	entries = append(entries[:idx], entries[idx+1:]...)
	if err := s.store.Save(ctx, entries); err != nil {
		return err
	}
	s.log.Info("test entry removed", "entry_id", entryID)
	return nil
}

func (s *ScoresService) Get(ctx context.Context, entryID string) (domain.TestEntry, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return domain.TestEntry{}, err
	}
	idx := indexOf(entries, entryID)
	if idx < 0 {
		return domain.TestEntry{}, fmt.Errorf("%w: test entry %s", apperrors.ErrNotFound, entryID)
	}
	return entries[idx], nil
}

// List returns every entry, newest date first.
func (s *ScoresService) List(ctx context.Context) ([]domain.TestEntry, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.SortNewestFirst(entries), nil
}

// Recent returns entries dated within the last days calendar days.
func (s *ScoresService) Recent(ctx context.Context, days int) ([]domain.TestEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := clock.AddDays(s.clock.Now(), -days, s.loc)
	return domain.Recent(entries, cutoff), nil
}

func (s *ScoresService) AverageScore(ctx context.Context, days int) (float64, error) {
	recent, err := s.Recent(ctx, days)
	if err != nil {
		return 0, err
	}
	return domain.AveragePercent(recent), nil
}

func (s *ScoresService) SubjectPerformance(ctx context.Context) ([]domain.SubjectPerformance, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Performance(entries), nil
}

func indexOf(entries []domain.TestEntry, entryID string) int {
	for i, e := range entries {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

func (s *ScoresService) Location() *time.Location {
	return s.loc
}

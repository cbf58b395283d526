package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"examtrack/internal/modules/review/domain"
	reviewout "examtrack/internal/modules/review/port/out"
	"examtrack/internal/platform/clock"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/id"
)

// ReviewService owns the in-memory snapshot of study events and review
// tasks. Mutations hold the write lock across persist and publish, so a
// failed write never changes what readers see.
type ReviewService struct {
	clock clock.Clock
	idGen id.Generator
	repo  reviewout.Repository
	loc   *time.Location
	log   *slog.Logger

	mu     sync.RWMutex
	events []domain.StudyEvent
	tasks  []domain.ReviewTask
}

func NewReviewService(clock clock.Clock, idGen id.Generator, repo reviewout.Repository, loc *time.Location, log *slog.Logger) *ReviewService {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = slog.Default()
	}
	return &ReviewService{
		clock:  clock,
		idGen:  idGen,
		repo:   repo,
		loc:    loc,
		log:    log.With("module", "review"),
		events: []domain.StudyEvent{},
		tasks:  []domain.ReviewTask{},
	}
}

func (s *ReviewService) Now() time.Time {
	return s.clock.Now()
}

func (s *ReviewService) Location() *time.Location {
	return s.loc
}

// Load replaces the snapshot with the persisted collections. When either
// collection cannot be read the failure is logged, the current snapshot is
// kept and the error is returned.
func (s *ReviewService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	events, err := s.repo.LoadEvents(ctx)
	if err != nil {
		s.log.Error("load study events", "error", err)
		return fmt.Errorf("load study events: %w", err)
	}
	tasks, err := s.repo.LoadTasks(ctx)
	if err != nil {
		s.log.Error("load review tasks", "error", err)
		return fmt.Errorf("load review tasks: %w", err)
	}
	s.events = events
	s.tasks = tasks
	s.log.Debug("review state loaded", "events", len(events), "tasks", len(tasks))
	return nil
}

func (s *ReviewService) AddStudyEvent(ctx context.Context, topic domain.TopicRef, notes string) (domain.StudyEvent, []domain.ReviewTask, error) {
	if err := topic.Validate(); err != nil {
		return domain.StudyEvent{}, nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if topic.ID == "" {
		topic.ID = domain.TopicKey(topic.Subject, topic.ChapterID, topic.TopicID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	event := domain.StudyEvent{
		ID:        s.idGen.New(),
		Topic:     topic,
		CreatedAt: s.clock.Now(),
		Notes:     notes,
	}
	generated := domain.GenerateTasks(event, s.loc, s.idGen)

	events := make([]domain.StudyEvent, 0, len(s.events)+1)
	events = append(events, s.events...)
	events = append(events, event)
	tasks := make([]domain.ReviewTask, 0, len(s.tasks)+len(generated))
	tasks = append(tasks, cloneTasks(s.tasks)...)
	tasks = append(tasks, generated...)

	if err := s.repo.SaveAll(ctx, events, tasks); err != nil {
		s.log.Error("persist study event", "event_id", event.ID, "error", err)
		return domain.StudyEvent{}, nil, err
	}
	s.events = events
	s.tasks = tasks
	s.log.Info("study event added", "event_id", event.ID, "topic", topic.ID, "tasks", len(generated))
	return event, cloneTasks(generated), nil
}

// MarkComplete stamps the task as done. Unknown ids and tasks that are
// already done are left alone and report false.
func (s *ReviewService) MarkComplete(ctx context.Context, taskID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(taskID)
	if idx < 0 || s.tasks[idx].Done() {
		return false, nil
	}
	next := cloneTasks(s.tasks)
	now := s.clock.Now()
	next[idx].DoneAt = &now
	if err := s.persistTasks(ctx, next, "complete", taskID); err != nil {
		return false, err
	}
	return true, nil
}

// Snooze pushes the due instant forward by exactly days*24h.
func (s *ReviewService) Snooze(ctx context.Context, taskID string, days int) (bool, error) {
	if days < 1 {
		return false, fmt.Errorf("%w: snooze days must be at least 1, got %d", apperrors.ErrInvalidInput, days)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(taskID)
	if idx < 0 {
		return false, nil
	}
	next := cloneTasks(s.tasks)
	next[idx].DueAt = next[idx].DueAt.Add(time.Duration(days) * 24 * time.Hour)
	next[idx].SnoozeCount++
	if err := s.persistTasks(ctx, next, "snooze", taskID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ReviewService) RemoveTask(ctx context.Context, taskID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(taskID)
	if idx < 0 {
		return false, nil
	}
	next := make([]domain.ReviewTask, 0, len(s.tasks)-1)
	next = append(next, cloneTasks(s.tasks[:idx])...)
	next = append(next, cloneTasks(s.tasks[idx+1:])...)
	if err := s.persistTasks(ctx, next, "remove", taskID); err != nil {
		return false, err
	}
	return true, nil
}

// TodaysQueue lists incomplete tasks due today or already overdue.
func (s *ReviewService) TodaysQueue() []domain.ReviewTask {
	now := s.clock.Now()
	return s.selectSorted(now, func(t domain.ReviewTask) bool {
		return domain.IsDueToday(t, now, s.loc) || domain.IsOverdue(t, now)
	})
}

func (s *ReviewService) Overdue() []domain.ReviewTask {
	now := s.clock.Now()
	return s.selectSorted(now, func(t domain.ReviewTask) bool {
		return domain.IsOverdue(t, now)
	})
}

// Upcoming lists incomplete tasks due after now and within windowDays*24h.
func (s *ReviewService) Upcoming(windowDays int) []domain.ReviewTask {
	now := s.clock.Now()
	limit := now.Add(time.Duration(windowDays) * 24 * time.Hour)
	return s.selectSorted(now, func(t domain.ReviewTask) bool {
		return !t.Done() && t.DueAt.After(now) && !t.DueAt.After(limit)
	})
}

// TasksForTopic lists every task, done or not, generated for the topic.
func (s *ReviewService) TasksForTopic(topicID string) []domain.ReviewTask {
	s.mu.RLock()
	sessions := map[string]struct{}{}
	for _, e := range s.events {
		if e.Topic.ID == topicID {
			sessions[e.ID] = struct{}{}
		}
	}
	s.mu.RUnlock()
	return s.selectSorted(s.clock.Now(), func(t domain.ReviewTask) bool {
		_, ok := sessions[t.SessionID]
		return ok
	})
}

func (s *ReviewService) Summary(windowDays int) domain.Summary {
	now := s.clock.Now()
	limit := now.Add(time.Duration(windowDays) * 24 * time.Hour)
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary := domain.Summary{Total: len(s.tasks), Events: len(s.events)}
	for _, t := range s.tasks {
		switch {
		case t.Done():
			summary.Completed++
		case domain.IsOverdue(t, now):
			summary.Overdue++
		case domain.IsDueToday(t, now, s.loc):
			summary.DueToday++
		case !t.DueAt.After(limit):
			summary.Upcoming++
		}
	}
	return summary
}

// Forecast counts incomplete reviews per calendar day for the next days.
func (s *ReviewService) Forecast(days int) []domain.DayLoad {
	now := s.clock.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Forecast(s.tasks, now, s.loc, days)
}

func (s *ReviewService) Events() []domain.StudyEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.StudyEvent, len(s.events))
	copy(out, s.events)
	return out
}

func (s *ReviewService) Tasks() []domain.ReviewTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.tasks)
}

func (s *ReviewService) persistTasks(ctx context.Context, next []domain.ReviewTask, op, taskID string) error {
	if err := s.repo.SaveTasks(ctx, next); err != nil {
		s.log.Error("persist review tasks", "op", op, "task_id", taskID, "error", err)
		return fmt.Errorf("%s review task: %w", op, err)
	}
	s.tasks = next
	s.log.Debug("review task updated", "op", op, "task_id", taskID)
	return nil
}

func (s *ReviewService) selectSorted(now time.Time, keep func(domain.ReviewTask) bool) []domain.ReviewTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ReviewTask, 0)
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return domain.SortTasks(out, now)
}

func (s *ReviewService) indexOf(taskID string) int {
	for i, t := range s.tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

func cloneTasks(tasks []domain.ReviewTask) []domain.ReviewTask {
	out := make([]domain.ReviewTask, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

package service_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	reviewout "examtrack/internal/modules/review/adapter/out"
	"examtrack/internal/modules/review/domain"
	"examtrack/internal/modules/review/service"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/exam"
	"examtrack/internal/platform/kv"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

type seqID struct {
	mu sync.Mutex
	n  int
}

func (s *seqID) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return "id-" + strconv.Itoa(s.n)
}

// flakyRepo wraps a real repository and fails writes or loads on demand.
type flakyRepo struct {
	inner interface {
		LoadEvents(context.Context) ([]domain.StudyEvent, error)
		LoadTasks(context.Context) ([]domain.ReviewTask, error)
		SaveTasks(context.Context, []domain.ReviewTask) error
		SaveAll(context.Context, []domain.StudyEvent, []domain.ReviewTask) error
	}
	failWrite bool
	failLoad  bool
}

var errDiskFull = errors.New("disk full")

func (f *flakyRepo) LoadEvents(ctx context.Context) ([]domain.StudyEvent, error) {
	if f.failLoad {
		return nil, errDiskFull
	}
	return f.inner.LoadEvents(ctx)
}

func (f *flakyRepo) LoadTasks(ctx context.Context) ([]domain.ReviewTask, error) {
	if f.failLoad {
		return nil, errDiskFull
	}
	return f.inner.LoadTasks(ctx)
}

func (f *flakyRepo) SaveTasks(ctx context.Context, tasks []domain.ReviewTask) error {
	if f.failWrite {
		return errDiskFull
	}
	return f.inner.SaveTasks(ctx, tasks)
}

func (f *flakyRepo) SaveAll(ctx context.Context, events []domain.StudyEvent, tasks []domain.ReviewTask) error {
	if f.failWrite {
		return errDiskFull
	}
	return f.inner.SaveAll(ctx, events, tasks)
}

var physics = domain.TopicRef{Subject: exam.Physics, ChapterID: "kinematics", TopicID: "projectile", Difficulty: exam.Medium}

func newService(t *testing.T, now time.Time) (*service.ReviewService, *manualClock, *flakyRepo, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	repo := &flakyRepo{inner: reviewout.NewCollectionRepository(store)}
	clk := &manualClock{now: now}
	return service.NewReviewService(clk, &seqID{}, repo, time.UTC, nil), clk, repo, store
}

func day(d, hh, mm int) time.Time {
	return time.Date(2025, time.January, d, hh, mm, 0, 0, time.UTC)
}

func TestAddStudyEventPersistsEventAndFiveTasks(t *testing.T) {
	t.Parallel()
	svc, _, repo, _ := newService(t, day(10, 15, 30))
	ctx := context.Background()

	event, tasks, err := svc.AddStudyEvent(ctx, physics, "range formula")
	if err != nil {
		t.Fatalf("add study event: %v", err)
	}
	if event.Topic.ID != "physics/kinematics/projectile" {
		t.Fatalf("expected derived topic id, got %q", event.Topic.ID)
	}
	if len(tasks) != 5 || len(svc.Tasks()) != 5 || len(svc.Events()) != 1 {
		t.Fatalf("expected 1 event and 5 tasks, got %d/%d", len(svc.Events()), len(svc.Tasks()))
	}
	for i, offset := range domain.Offsets {
		want := day(10+offset, 0, 0)
		if !tasks[i].DueAt.Equal(want) {
			t.Fatalf("task %d: expected %s, got %s", i, want, tasks[i].DueAt)
		}
	}
	persisted, err := repo.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if len(persisted) != 5 {
		t.Fatalf("expected 5 persisted tasks, got %d", len(persisted))
	}
}

func TestAddStudyEventRejectsInvalidTopic(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newService(t, day(10, 9, 0))
	_, _, err := svc.AddStudyEvent(context.Background(), domain.TopicRef{Subject: "Maths", ChapterID: "c", TopicID: "t", Difficulty: exam.Easy}, "")
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if len(svc.Events()) != 0 {
		t.Fatalf("expected no event after rejection")
	}
}

func TestDailyQueueScenario(t *testing.T) {
	t.Parallel()
	svc, clk, _, _ := newService(t, day(10, 15, 30))
	ctx := context.Background()
	if _, _, err := svc.AddStudyEvent(ctx, physics, ""); err != nil {
		t.Fatalf("add study event: %v", err)
	}

	clk.Set(day(14, 8, 0))
	queue := svc.TodaysQueue()
	if len(queue) != 1 || !queue[0].DueAt.Equal(day(14, 0, 0)) {
		t.Fatalf("expected the day-4 review in today's queue, got %+v", queue)
	}
	if got := domain.DaysOverdue(queue[0], clk.Now(), time.UTC); got != 0 {
		t.Fatalf("expected 0 days overdue on the due day, got %d", got)
	}

	clk.Set(day(16, 8, 0))
	queue = svc.TodaysQueue()
	if len(queue) != 1 {
		t.Fatalf("expected overdue task still queued, got %d", len(queue))
	}
	if got := domain.DaysOverdue(queue[0], clk.Now(), time.UTC); got != 2 {
		t.Fatalf("expected 2 days overdue, got %d", got)
	}
	if len(svc.Overdue()) != 1 {
		t.Fatalf("expected one overdue task")
	}
}

func TestMarkCompleteIsOneDirectional(t *testing.T) {
	t.Parallel()
	svc, clk, _, _ := newService(t, day(10, 15, 30))
	ctx := context.Background()
	_, tasks, err := svc.AddStudyEvent(ctx, physics, "")
	if err != nil {
		t.Fatalf("add study event: %v", err)
	}
	clk.Set(day(14, 9, 0))
	changed, err := svc.MarkComplete(ctx, tasks[0].ID)
	if err != nil || !changed {
		t.Fatalf("mark complete: changed=%v err=%v", changed, err)
	}
	if len(svc.TodaysQueue()) != 0 {
		t.Fatalf("expected empty queue after completion")
	}

	clk.Set(day(15, 9, 0))
	changed, err = svc.MarkComplete(ctx, tasks[0].ID)
	if err != nil || changed {
		t.Fatalf("expected second completion to be a no-op, changed=%v err=%v", changed, err)
	}
	for _, task := range svc.Tasks() {
		if task.ID == tasks[0].ID && !task.DoneAt.Equal(day(14, 9, 0)) {
			t.Fatalf("expected original completion instant kept, got %s", task.DoneAt)
		}
	}

	changed, err = svc.MarkComplete(ctx, "missing")
	if err != nil || changed {
		t.Fatalf("expected unknown id no-op, changed=%v err=%v", changed, err)
	}
}

func TestSnoozeMovesDueByExactDays(t *testing.T) {
	t.Parallel()
	svc, clk, _, _ := newService(t, day(10, 15, 30))
	ctx := context.Background()
	_, tasks, err := svc.AddStudyEvent(ctx, physics, "")
	if err != nil {
		t.Fatalf("add study event: %v", err)
	}
	clk.Set(day(14, 9, 0))
	for i := 0; i < 2; i++ {
		if changed, err := svc.Snooze(ctx, tasks[0].ID, 2); err != nil || !changed {
			t.Fatalf("snooze %d: changed=%v err=%v", i, changed, err)
		}
	}
	var snoozed domain.ReviewTask
	for _, task := range svc.Tasks() {
		if task.ID == tasks[0].ID {
			snoozed = task
		}
	}
	if !snoozed.DueAt.Equal(day(18, 0, 0)) || snoozed.SnoozeCount != 2 {
		t.Fatalf("expected due jan 18 after two snoozes, got %s count=%d", snoozed.DueAt, snoozed.SnoozeCount)
	}
	if len(svc.TodaysQueue()) != 0 {
		t.Fatalf("expected snoozed task out of today's queue")
	}
	upcoming := svc.Upcoming(7)
	if len(upcoming) != 2 || upcoming[0].ID != tasks[1].ID || upcoming[1].ID != tasks[0].ID {
		t.Fatalf("expected day-7 task then snoozed task, got %+v", upcoming)
	}

	if _, err := svc.Snooze(ctx, tasks[0].ID, 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero days, got %v", err)
	}
	if changed, err := svc.Snooze(ctx, "missing", 1); err != nil || changed {
		t.Fatalf("expected unknown id no-op, changed=%v err=%v", changed, err)
	}
}

func TestRemoveTaskDeletesOnlyThatTask(t *testing.T) {
	t.Parallel()
	svc, _, repo, _ := newService(t, day(10, 15, 30))
	ctx := context.Background()
	event, tasks, err := svc.AddStudyEvent(ctx, physics, "")
	if err != nil {
		t.Fatalf("add study event: %v", err)
	}
	changed, err := svc.RemoveTask(ctx, tasks[2].ID)
	if err != nil || !changed {
		t.Fatalf("remove: changed=%v err=%v", changed, err)
	}
	remaining := svc.Tasks()
	if len(remaining) != 4 {
		t.Fatalf("expected 4 remaining tasks, got %d", len(remaining))
	}
	for _, task := range remaining {
		if task.ID == tasks[2].ID {
			t.Fatalf("expected removed task gone")
		}
	}
	if len(svc.Events()) != 1 || svc.Events()[0].ID != event.ID {
		t.Fatalf("expected event untouched")
	}
	persisted, err := repo.LoadTasks(ctx)
	if err != nil || len(persisted) != 4 {
		t.Fatalf("expected 4 persisted tasks, got %d err=%v", len(persisted), err)
	}
	if changed, err := svc.RemoveTask(ctx, tasks[2].ID); err != nil || changed {
		t.Fatalf("expected second remove no-op")
	}
}

func TestFailedWriteLeavesStateUnchanged(t *testing.T) {
	t.Parallel()
	svc, _, repo, _ := newService(t, day(10, 15, 30))
	ctx := context.Background()
	_, tasks, err := svc.AddStudyEvent(ctx, physics, "")
	if err != nil {
		t.Fatalf("add study event: %v", err)
	}
	repo.failWrite = true

	if _, err := svc.MarkComplete(ctx, tasks[0].ID); !errors.Is(err, errDiskFull) {
		t.Fatalf("expected disk full from complete, got %v", err)
	}
	if _, err := svc.Snooze(ctx, tasks[0].ID, 1); !errors.Is(err, errDiskFull) {
		t.Fatalf("expected disk full from snooze, got %v", err)
	}
	if _, err := svc.RemoveTask(ctx, tasks[0].ID); !errors.Is(err, errDiskFull) {
		t.Fatalf("expected disk full from remove, got %v", err)
	}
	if _, _, err := svc.AddStudyEvent(ctx, physics, ""); !errors.Is(err, errDiskFull) {
		t.Fatalf("expected disk full from add, got %v", err)
	}
	current := svc.Tasks()
	if len(current) != 5 || len(svc.Events()) != 1 {
		t.Fatalf("expected unchanged snapshot, got %d tasks", len(current))
	}
	if current[0].Done() || current[0].SnoozeCount != 0 || !current[0].DueAt.Equal(tasks[0].DueAt) {
		t.Fatalf("expected first task untouched, got %+v", current[0])
	}
}

func TestLoadFailureKeepsSnapshot(t *testing.T) {
	t.Parallel()
	svc, _, repo, _ := newService(t, day(10, 15, 30))
	ctx := context.Background()
	if _, _, err := svc.AddStudyEvent(ctx, physics, ""); err != nil {
		t.Fatalf("add study event: %v", err)
	}
	repo.failLoad = true
	if err := svc.Load(ctx); !errors.Is(err, errDiskFull) {
		t.Fatalf("expected load error, got %v", err)
	}
	if len(svc.Tasks()) != 5 {
		t.Fatalf("expected snapshot kept after failed load")
	}
}

func TestLoadPicksUpPersistedState(t *testing.T) {
	t.Parallel()
	svc, _, _, store := newService(t, day(10, 15, 30))
	ctx := context.Background()
	if _, _, err := svc.AddStudyEvent(ctx, physics, ""); err != nil {
		t.Fatalf("add study event: %v", err)
	}
	fresh := service.NewReviewService(&manualClock{now: day(10, 16, 0)}, &seqID{}, reviewout.NewCollectionRepository(store), time.UTC, nil)
	if len(fresh.Tasks()) != 0 {
		t.Fatalf("expected empty snapshot before load")
	}
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if len(fresh.Tasks()) != 5 || len(fresh.Events()) != 1 {
		t.Fatalf("expected persisted state after load")
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(fresh.Tasks()) != 0 {
		t.Fatalf("expected empty snapshot after clear and load")
	}
}

func TestTasksForTopicAndSummary(t *testing.T) {
	t.Parallel()
	svc, clk, _, _ := newService(t, day(10, 15, 30))
	ctx := context.Background()
	if _, _, err := svc.AddStudyEvent(ctx, physics, ""); err != nil {
		t.Fatalf("add physics: %v", err)
	}
	bio := domain.TopicRef{Subject: exam.Biology, ChapterID: "cell", TopicID: "mitosis", Difficulty: exam.Easy}
	clk.Set(day(12, 10, 0))
	if _, _, err := svc.AddStudyEvent(ctx, bio, ""); err != nil {
		t.Fatalf("add biology: %v", err)
	}
	forTopic := svc.TasksForTopic("biology/cell/mitosis")
	if len(forTopic) != 5 || !forTopic[0].DueAt.Equal(day(16, 0, 0)) {
		t.Fatalf("expected 5 biology tasks starting jan 16, got %+v", forTopic)
	}

	clk.Set(day(15, 9, 0))
	summary := svc.Summary(7)
	// physics day-4 (jan 14) is overdue; physics day-7 (jan 17), biology day-4
	// (jan 16) and biology day-7 (jan 19) fall inside the window.
	want := domain.Summary{Overdue: 1, Upcoming: 3, Total: 10, Events: 2}
	if summary != want {
		t.Fatalf("expected %+v, got %+v", want, summary)
	}
}

func TestConcurrentMutationsAreNotLost(t *testing.T) {
	t.Parallel()
	svc, _, repo, _ := newService(t, day(10, 15, 30))
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			topic := physics
			topic.TopicID = fmt.Sprintf("topic-%d", i)
			if _, _, err := svc.AddStudyEvent(ctx, topic, ""); err != nil {
				t.Errorf("add %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()
	tasks := svc.Tasks()
	if len(tasks) != 40 {
		t.Fatalf("expected 40 tasks, got %d", len(tasks))
	}

	for _, task := range tasks[:10] {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := svc.MarkComplete(ctx, id); err != nil {
				t.Errorf("complete %s: %v", id, err)
			}
		}(task.ID)
	}
	wg.Wait()
	persisted, err := repo.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	done := 0
	for _, task := range persisted {
		if task.Done() {
			done++
		}
	}
	if done != 10 {
		t.Fatalf("expected 10 completed tasks persisted, got %d", done)
	}
}

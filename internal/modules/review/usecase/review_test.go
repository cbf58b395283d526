package usecase_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	reviewout "examtrack/internal/modules/review/adapter/out"
	"examtrack/internal/modules/review/dto"
	reviewin "examtrack/internal/modules/review/port/in"
	"examtrack/internal/modules/review/service"
	"examtrack/internal/modules/review/usecase"
	syllabusdto "examtrack/internal/modules/syllabus/dto"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/kv"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "id-" + strconv.Itoa(s.n)
}

type fakeSyllabus struct {
	topics   map[string]syllabusdto.TopicOutput
	resolved int
}

func (f *fakeSyllabus) List(context.Context, syllabusdto.FilterInput) ([]syllabusdto.SubjectOutput, error) {
	return nil, nil
}
func (f *fakeSyllabus) AddChapter(context.Context, syllabusdto.AddChapterInput) (syllabusdto.ChapterOutput, error) {
	return syllabusdto.ChapterOutput{}, nil
}
func (f *fakeSyllabus) AddTopic(context.Context, syllabusdto.AddTopicInput) (syllabusdto.TopicOutput, error) {
	return syllabusdto.TopicOutput{}, nil
}
func (f *fakeSyllabus) RemoveChapter(context.Context, syllabusdto.RemoveChapterInput) error {
	return nil
}
func (f *fakeSyllabus) RemoveTopic(context.Context, syllabusdto.TopicKeyInput) error { return nil }
func (f *fakeSyllabus) SetStatus(context.Context, syllabusdto.SetStatusInput) error  { return nil }
func (f *fakeSyllabus) Import(context.Context, syllabusdto.ImportInput) ([]syllabusdto.SubjectOutput, error) {
	return nil, nil
}
func (f *fakeSyllabus) ResolveTopic(_ context.Context, input syllabusdto.TopicKeyInput) (syllabusdto.TopicOutput, error) {
	f.resolved++
	topic, ok := f.topics[input.Subject+"/"+input.ChapterID+"/"+input.TopicID]
	if !ok {
		return syllabusdto.TopicOutput{}, apperrors.ErrNotFound
	}
	return topic, nil
}
func (f *fakeSyllabus) Progress(context.Context) ([]syllabusdto.ProgressOutput, error) {
	return nil, nil
}

func newInteractor(clk *fakeClock, syllabus *fakeSyllabus) reviewin.Usecase {
	svc := service.NewReviewService(clk, &seqID{}, reviewout.NewCollectionRepository(kv.NewMemoryStore()), time.UTC, nil)
	if syllabus == nil {
		return usecase.NewInteractor(svc, nil, 7)
	}
	return usecase.NewInteractor(svc, syllabus, 7)
}

func TestAddStudyResolvesDifficultyFromSyllabus(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2025, time.January, 10, 15, 30, 0, 0, time.UTC)}
	syllabus := &fakeSyllabus{topics: map[string]syllabusdto.TopicOutput{
		"Chemistry/organic/isomerism": {ID: "isomerism", Difficulty: "Hard"},
	}}
	uc := newInteractor(clk, syllabus)
	ctx := context.Background()

	out, err := uc.AddStudy(ctx, dto.AddStudyInput{Subject: "Chemistry", ChapterID: "organic", TopicID: "isomerism"})
	if err != nil {
		t.Fatalf("add study: %v", err)
	}
	if syllabus.resolved != 1 || len(out.Tasks) != 5 || out.Tasks[0].Difficulty != "Hard" {
		t.Fatalf("unexpected output %+v", out)
	}
	if out.TopicID != "chemistry/organic/isomerism" || out.Tasks[0].Subject != "Chemistry" {
		t.Fatalf("unexpected topic fields %+v", out)
	}

	if _, err := uc.AddStudy(ctx, dto.AddStudyInput{Subject: "Chemistry", ChapterID: "organic", TopicID: "isomerism", Difficulty: "Easy"}); err != nil {
		t.Fatalf("add study with explicit difficulty: %v", err)
	}
	if syllabus.resolved != 1 {
		t.Fatalf("expected explicit difficulty to skip the syllabus lookup")
	}

	_, err = uc.AddStudy(ctx, dto.AddStudyInput{Subject: "Chemistry", ChapterID: "organic", TopicID: "unknown"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown topic without difficulty, got %v", err)
	}
}

func TestAddStudyValidation(t *testing.T) {
	t.Parallel()
	uc := newInteractor(&fakeClock{now: time.Now()}, nil)
	ctx := context.Background()
	cases := []dto.AddStudyInput{
		{Subject: "Maths", ChapterID: "c", TopicID: "t", Difficulty: "Easy"},
		{Subject: "Physics", ChapterID: "", TopicID: "t", Difficulty: "Easy"},
		{Subject: "Physics", ChapterID: "c", TopicID: "t", Difficulty: "Brutal"},
		{Subject: "Physics", ChapterID: "c", TopicID: "t"},
	}
	for i, c := range cases {
		if _, err := uc.AddStudy(ctx, c); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("case %d: expected invalid input, got %v", i, err)
		}
	}
}

func TestQueueOutputsCarryClassification(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{now: time.Date(2025, time.January, 10, 15, 30, 0, 0, time.UTC)}
	uc := newInteractor(clk, nil)
	ctx := context.Background()
	added, err := uc.AddStudy(ctx, dto.AddStudyInput{Subject: "Physics", ChapterID: "kinematics", TopicID: "projectile", Difficulty: "Medium"})
	if err != nil {
		t.Fatalf("add study: %v", err)
	}

	clk.now = time.Date(2025, time.January, 17, 9, 0, 0, 0, time.UTC)
	today, err := uc.Today(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(today) != 2 {
		t.Fatalf("expected day-4 and day-7 reviews queued, got %d", len(today))
	}
	if today[0].ID != added.Tasks[0].ID || today[0].DaysOverdue != 3 || !today[0].Overdue {
		t.Fatalf("expected oldest overdue first, got %+v", today[0])
	}
	if !today[1].DueToday || today[1].DaysOverdue != 0 || today[1].Topic != "projectile" {
		t.Fatalf("expected today's review second, got %+v", today[1])
	}

	changed, err := uc.Complete(ctx, today[0].ID)
	if err != nil || !changed.Changed {
		t.Fatalf("complete: %+v %v", changed, err)
	}
	again, err := uc.Complete(ctx, today[0].ID)
	if err != nil || again.Changed {
		t.Fatalf("expected repeat completion unchanged: %+v %v", again, err)
	}
	if _, err := uc.Snooze(ctx, dto.SnoozeInput{TaskID: today[1].ID, Days: 0}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid snooze days, got %v", err)
	}
	if out, err := uc.Snooze(ctx, dto.SnoozeInput{TaskID: today[1].ID, Days: 3}); err != nil || !out.Changed {
		t.Fatalf("snooze: %+v %v", out, err)
	}

	upcoming, err := uc.Upcoming(ctx, dto.UpcomingInput{})
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 2 || upcoming[0].SnoozeCount != 1 {
		t.Fatalf("expected snoozed task then day-14 task within 7 days, got %+v", upcoming)
	}
	summary, err := uc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Completed != 1 || summary.Upcoming != 2 || summary.Total != 5 || summary.UpcomingDays != 7 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	forTopic, err := uc.ForTopic(ctx, added.TopicID)
	if err != nil {
		t.Fatalf("for topic: %v", err)
	}
	if len(forTopic) != 5 || forTopic[4].DoneAt == nil {
		t.Fatalf("expected completed task last, got %+v", forTopic)
	}

	forecast, err := uc.Forecast(ctx, dto.ForecastInput{Days: 14})
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(forecast) != 14 || forecast[2].Count != 1 || forecast[6].Count != 1 {
		t.Fatalf("expected loads on jan 20 and jan 24, got %+v", forecast)
	}
	if _, err := uc.Forecast(ctx, dto.ForecastInput{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid forecast window, got %v", err)
	}

	removed, err := uc.Remove(ctx, added.Tasks[4].ID)
	if err != nil || !removed.Changed {
		t.Fatalf("remove: %+v %v", removed, err)
	}
	if out, err := uc.Remove(ctx, "missing"); err != nil || out.Changed {
		t.Fatalf("expected missing remove unchanged: %+v %v", out, err)
	}
}

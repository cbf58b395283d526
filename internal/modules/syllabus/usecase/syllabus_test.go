package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	syllabusout "examtrack/internal/modules/syllabus/adapter/out"
	"examtrack/internal/modules/syllabus/dto"
	syllabusin "examtrack/internal/modules/syllabus/port/in"
	"examtrack/internal/modules/syllabus/service"
	"examtrack/internal/modules/syllabus/usecase"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/kv"
)

func newUsecase() syllabusin.Usecase {
	store := kv.NewMemoryStore()
	svc := service.NewSyllabusService(syllabusout.NewCollectionStore(store), syllabusout.NewYAMLSeedParser(), nil)
	return usecase.NewInteractor(svc)
}

func TestAddChapterAndTopicAssignSlugIDs(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()

	first, err := uc.AddChapter(ctx, dto.AddChapterInput{Subject: "Physics", Name: "Laws of Motion", Difficulty: "Medium"})
	if err != nil {
		t.Fatalf("add chapter: %v", err)
	}
	if first.ID != "laws-of-motion" {
		t.Fatalf("expected slug id, got %q", first.ID)
	}
	second, err := uc.AddChapter(ctx, dto.AddChapterInput{Subject: "Chemistry", Name: "Laws of Motion", Difficulty: "Easy"})
	if err != nil {
		t.Fatalf("add second chapter: %v", err)
	}
	if second.ID != "laws-of-motion-2" {
		t.Fatalf("expected suffixed id across subjects, got %q", second.ID)
	}

	topic, err := uc.AddTopic(ctx, dto.AddTopicInput{Subject: "Physics", ChapterID: first.ID, Name: "Friction", Difficulty: "Hard"})
	if err != nil {
		t.Fatalf("add topic: %v", err)
	}
	if topic.ID != "friction" || topic.Status != "not-started" {
		t.Fatalf("unexpected topic %+v", topic)
	}

	resolved, err := uc.ResolveTopic(ctx, dto.TopicKeyInput{Subject: "Physics", ChapterID: first.ID, TopicID: "friction"})
	if err != nil {
		t.Fatalf("resolve topic: %v", err)
	}
	if resolved.Difficulty != "Hard" || resolved.ChapterName != "Laws of Motion" {
		t.Fatalf("unexpected resolved topic %+v", resolved)
	}
}

func TestAddTopicToUnknownChapter(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	_, err := uc.AddTopic(context.Background(), dto.AddTopicInput{Subject: "Physics", ChapterID: "nope", Name: "Friction", Difficulty: "Hard"})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInputValidation(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()
	if _, err := uc.AddChapter(ctx, dto.AddChapterInput{Subject: "Maths", Name: "Algebra", Difficulty: "Easy"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid subject, got %v", err)
	}
	if _, err := uc.List(ctx, dto.FilterInput{Difficulty: "Trivial"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid difficulty, got %v", err)
	}
	err := uc.SetStatus(ctx, dto.SetStatusInput{TopicKeyInput: dto.TopicKeyInput{Subject: "Physics", ChapterID: "c", TopicID: "t"}, Status: "done"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestStatusProgressAndRemoval(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()
	chapter, err := uc.AddChapter(ctx, dto.AddChapterInput{Subject: "Biology", Name: "Cell", Difficulty: "Easy"})
	if err != nil {
		t.Fatalf("add chapter: %v", err)
	}
	for _, name := range []string{"Mitosis", "Meiosis"} {
		if _, err := uc.AddTopic(ctx, dto.AddTopicInput{Subject: "Biology", ChapterID: chapter.ID, Name: name, Difficulty: "Easy"}); err != nil {
			t.Fatalf("add topic %s: %v", name, err)
		}
	}
	for _, id := range []string{"mitosis", "meiosis"} {
		if err := uc.SetStatus(ctx, dto.SetStatusInput{TopicKeyInput: dto.TopicKeyInput{Subject: "Biology", ChapterID: chapter.ID, TopicID: id}, Status: "completed"}); err != nil {
			t.Fatalf("set status %s: %v", id, err)
		}
	}
	progress, err := uc.Progress(ctx)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(progress) != 1 || progress[0].CompletedChapters != 1 || progress[0].CompletedTopics != 2 {
		t.Fatalf("unexpected progress %+v", progress)
	}

	if err := uc.RemoveTopic(ctx, dto.TopicKeyInput{Subject: "Biology", ChapterID: chapter.ID, TopicID: "meiosis"}); err != nil {
		t.Fatalf("remove topic: %v", err)
	}
	listed, err := uc.List(ctx, dto.FilterInput{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed[0].Chapters[0].Topics) != 1 {
		t.Fatalf("expected one topic left, got %+v", listed[0].Chapters[0].Topics)
	}
	if err := uc.RemoveChapter(ctx, dto.RemoveChapterInput{Subject: "Biology", ChapterID: chapter.ID}); err != nil {
		t.Fatalf("remove chapter: %v", err)
	}
	listed, err = uc.List(ctx, dto.FilterInput{})
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected empty filtered tree, got %+v", listed)
	}
	if err := uc.RemoveChapter(ctx, dto.RemoveChapterInput{Subject: "Biology", ChapterID: chapter.ID}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found on second remove, got %v", err)
	}
}

func TestImportReplacesTree(t *testing.T) {
	t.Parallel()
	uc := newUsecase()
	ctx := context.Background()
	if _, err := uc.AddChapter(ctx, dto.AddChapterInput{Subject: "Physics", Name: "Old", Difficulty: "Easy"}); err != nil {
		t.Fatalf("add chapter: %v", err)
	}
	path := filepath.Join(t.TempDir(), "seed.yaml")
	seed := "- subject: Chemistry\n  chapters:\n    - name: Organic Basics\n      difficulty: Hard\n      topics:\n        - name: Isomerism\n          difficulty: Medium\n        - name: Isomerism\n          difficulty: Hard\n"
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	imported, err := uc.Import(ctx, dto.ImportInput{Path: path})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(imported) != 1 || imported[0].Subject != "Chemistry" {
		t.Fatalf("unexpected import result %+v", imported)
	}
	topics := imported[0].Chapters[0].Topics
	if imported[0].Chapters[0].ID != "organic-basics" || topics[0].ID != "isomerism" || topics[1].ID != "isomerism-2" {
		t.Fatalf("unexpected ids %+v", imported[0].Chapters[0])
	}
	listed, err := uc.List(ctx, dto.FilterInput{Subject: "Physics"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected physics replaced by import, got %+v", listed)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("- subject: Astronomy\n  chapters: []\n"), 0o644); err != nil {
		t.Fatalf("write bad seed: %v", err)
	}
	if _, err := uc.Import(ctx, dto.ImportInput{Path: bad}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown subject, got %v", err)
	}
}

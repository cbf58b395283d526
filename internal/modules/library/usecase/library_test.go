package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	libraryout "examtrack/internal/modules/library/adapter/out"
	"examtrack/internal/modules/library/domain"
	"examtrack/internal/modules/library/dto"
	libraryin "examtrack/internal/modules/library/port/in"
	"examtrack/internal/modules/library/service"
	"examtrack/internal/modules/library/usecase"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/kv"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC) }

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return []string{"", "pdf-1", "pdf-2", "pdf-3"}[s.n]
}

type fakeInspector struct {
	pages int
	err   error
}

func (f fakeInspector) PageCount(context.Context, string) (int, error) { return f.pages, f.err }

func (f fakeInspector) ReadPage(_ context.Context, _ string, page int) (domain.Page, error) {
	if f.err != nil {
		return domain.Page{}, f.err
	}
	if page > f.pages {
		page = f.pages
	}
	return domain.Page{Number: page, Total: f.pages, Text: "page text"}, nil
}

type recordingLauncher struct{ opened []string }

func (l *recordingLauncher) Open(_ context.Context, target string) error {
	l.opened = append(l.opened, target)
	return nil
}

func writeFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newUsecase(inspector fakeInspector, launcher *recordingLauncher) libraryin.Usecase {
	svc := service.NewLibraryService(fixedClock{}, &seqID{}, libraryout.NewCollectionStore(kv.NewMemoryStore()), inspector, launcher, nil)
	return usecase.NewInteractor(svc)
}

func TestAddFileRecordsMetadata(t *testing.T) {
	t.Parallel()
	launcher := &recordingLauncher{}
	uc := newUsecase(fakeInspector{pages: 12}, launcher)
	ctx := context.Background()
	path := writeFile(t, "ncert-bio.pdf")

	out, err := uc.AddFile(ctx, dto.AddFileInput{Path: path, Subject: "Biology", Tags: []string{"ncert", " ncert ", "theory"}})
	if err != nil {
		t.Fatalf("add file: %v", err)
	}
	if out.ID != "pdf-1" || out.Name != "ncert-bio.pdf" || out.Folder != "Biology" || out.Pages != 12 || out.Size != int64(len("%PDF-1.4 stub")) {
		t.Fatalf("unexpected output %+v", out)
	}
	if len(out.Tags) != 2 {
		t.Fatalf("expected deduplicated tags, got %v", out.Tags)
	}

	page, err := uc.ReadPage(ctx, dto.ReadPageInput{FileID: out.ID, Page: 40})
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if page.Page != 12 || page.Total != 12 || page.Name != "ncert-bio.pdf" {
		t.Fatalf("unexpected page %+v", page)
	}

	opened, err := uc.Open(ctx, out.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if opened.Target != path || len(launcher.opened) != 1 {
		t.Fatalf("expected launcher to receive %s, got %v", path, launcher.opened)
	}
}

func TestAddFileKeepsUnreadablePDFWithZeroPages(t *testing.T) {
	t.Parallel()
	uc := newUsecase(fakeInspector{err: errors.New("malformed xref")}, &recordingLauncher{})
	out, err := uc.AddFile(context.Background(), dto.AddFileInput{Path: writeFile(t, "scan.pdf"), Subject: "Physics", Folder: "Mocks"})
	if err != nil {
		t.Fatalf("add file: %v", err)
	}
	if out.Pages != 0 || out.Folder != "Mocks" {
		t.Fatalf("unexpected output %+v", out)
	}
}

func TestAddFileErrors(t *testing.T) {
	t.Parallel()
	uc := newUsecase(fakeInspector{pages: 1}, &recordingLauncher{})
	ctx := context.Background()
	if _, err := uc.AddFile(ctx, dto.AddFileInput{Path: writeFile(t, "a.pdf"), Subject: "Maths"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid subject, got %v", err)
	}
	if _, err := uc.AddFile(ctx, dto.AddFileInput{Path: filepath.Join(t.TempDir(), "missing.pdf"), Subject: "Physics"}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected missing file error, got %v", err)
	}
	if _, err := uc.AddFile(ctx, dto.AddFileInput{Path: t.TempDir(), Subject: "Physics"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected directory rejected, got %v", err)
	}
}

func TestListFilterTagAndRemove(t *testing.T) {
	t.Parallel()
	uc := newUsecase(fakeInspector{pages: 2}, &recordingLauncher{})
	ctx := context.Background()
	phys, err := uc.AddFile(ctx, dto.AddFileInput{Path: writeFile(t, "hc-verma.pdf"), Subject: "Physics", Tags: []string{"mechanics"}})
	if err != nil {
		t.Fatalf("add physics: %v", err)
	}
	if _, err := uc.AddFile(ctx, dto.AddFileInput{Path: writeFile(t, "ms-chouhan.pdf"), Subject: "Chemistry", Tags: []string{"organic"}}); err != nil {
		t.Fatalf("add chemistry: %v", err)
	}

	listed, err := uc.List(ctx, dto.ListInput{Subject: "Physics"})
	if err != nil || len(listed) != 1 || listed[0].ID != phys.ID {
		t.Fatalf("expected physics file only, got %+v %v", listed, err)
	}
	listed, err = uc.List(ctx, dto.ListInput{Search: "ORGAN"})
	if err != nil || len(listed) != 1 || listed[0].Subject != "Chemistry" {
		t.Fatalf("expected tag search hit, got %+v %v", listed, err)
	}

	if err := uc.UpdateTags(ctx, dto.UpdateTagsInput{FileID: phys.ID, Tags: []string{"pyq", "mechanics"}}); err != nil {
		t.Fatalf("update tags: %v", err)
	}
	tags, err := uc.Tags(ctx)
	if err != nil || len(tags) != 3 || tags[0] != "mechanics" {
		t.Fatalf("unexpected tags %v %v", tags, err)
	}
	listed, err = uc.List(ctx, dto.ListInput{Tags: []string{"pyq", "mechanics"}})
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one file with both tags, got %+v %v", listed, err)
	}

	if err := uc.Remove(ctx, phys.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := uc.Remove(ctx, phys.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.Open(ctx, phys.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found on open, got %v", err)
	}
	listed, err = uc.List(ctx, dto.ListInput{})
	if err != nil || len(listed) != 1 {
		t.Fatalf("expected one file left, got %+v %v", listed, err)
	}
}

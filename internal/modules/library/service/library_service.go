package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"examtrack/internal/modules/library/domain"
	libraryout "examtrack/internal/modules/library/port/out"
	"examtrack/internal/platform/clock"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/exam"
	"examtrack/internal/platform/id"
)

type LibraryService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     libraryout.FileStore
	inspector libraryout.PDFInspector
	launcher  libraryout.ExternalLauncher
	log       *slog.Logger

	mu sync.Mutex
}

func NewLibraryService(clock clock.Clock, idGen id.Generator, store libraryout.FileStore, inspector libraryout.PDFInspector, launcher libraryout.ExternalLauncher, log *slog.Logger) *LibraryService {
	if log == nil {
		log = slog.Default()
	}
	return &LibraryService{clock: clock, idGen: idGen, store: store, inspector: inspector, launcher: launcher, log: log.With("module", "library")}
}

// AddFile records a reference to a PDF on disk. The folder defaults to the
// subject name. A page count that cannot be read is logged and left at 0.
func (s *LibraryService) AddFile(ctx context.Context, path string, subject exam.Subject, folder string, tags []string) (domain.PdfFile, error) {
	if strings.TrimSpace(path) == "" {
		return domain.PdfFile{}, fmt.Errorf("%w: file path is required", apperrors.ErrInvalidInput)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.PdfFile{}, fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return domain.PdfFile{}, fmt.Errorf("stat pdf: %w", err)
	}
	if info.IsDir() {
		return domain.PdfFile{}, fmt.Errorf("%w: %s is a directory", apperrors.ErrInvalidInput, abs)
	}
	if strings.TrimSpace(folder) == "" {
		folder = string(subject)
	}
	file := domain.PdfFile{
		ID:      s.idGen.New(),
		Subject: subject,
		Folder:  strings.TrimSpace(folder),
		Name:    filepath.Base(abs),
		Path:    abs,
		Size:    info.Size(),
		Tags:    domain.NormalizeTags(tags),
		AddedAt: s.clock.Now(),
	}
	if err := file.Validate(); err != nil {
		return domain.PdfFile{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if s.inspector != nil {
		pages, err := s.inspector.PageCount(ctx, abs)
		if err != nil {
			s.log.Warn("read pdf page count", "path", abs, "error", err)
		}
		file.Pages = pages
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	files, err := s.store.Load(ctx)
	if err != nil {
		return domain.PdfFile{}, err
	}
	if err := s.store.Save(ctx, append(files, file)); err != nil {
		return domain.PdfFile{}, err
	}
	s.log.Info("pdf added", "file_id", file.ID, "name", file.Name, "pages", file.Pages)
	return file, nil
}

func (s *LibraryService) List(ctx context.Context, subject exam.Subject, search string, tags []string) ([]domain.PdfFile, error) {
	files, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := []domain.PdfFile{}
	for _, f := range files {
		if f.Matches(subject, search, tags) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *LibraryService) Get(ctx context.Context, fileID string) (domain.PdfFile, error) {
	files, err := s.store.Load(ctx)
	if err != nil {
		return domain.PdfFile{}, err
	}
	for _, f := range files {
		if f.ID == fileID {
			return f, nil
		}
	}
	return domain.PdfFile{}, fmt.Errorf("%w: pdf %s", apperrors.ErrNotFound, fileID)
}

// Remove forgets the reference; the file on disk is left alone.
func (s *LibraryService) Remove(ctx context.Context, fileID string) error {
	return s.mutate(ctx, fileID, func(files []domain.PdfFile, idx int) []domain.PdfFile {
		return append(files[:idx], files[idx+1:]...)
	})
}

func (s *LibraryService) UpdateTags(ctx context.Context, fileID string, tags []string) error {
	return s.mutate(ctx, fileID, func(files []domain.PdfFile, idx int) []domain.PdfFile {
		files[idx].Tags = domain.NormalizeTags(tags)
		return files
	})
}

func (s *LibraryService) Tags(ctx context.Context) ([]string, error) {
	files, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.AllTags(files), nil
}

func (s *LibraryService) ReadPage(ctx context.Context, fileID string, page int) (domain.PdfFile, domain.Page, error) {
	file, err := s.Get(ctx, fileID)
	if err != nil {
		return domain.PdfFile{}, domain.Page{}, err
	}
	if file.Path == "" {
		return domain.PdfFile{}, domain.Page{}, fmt.Errorf("%w: pdf %s has no local path", apperrors.ErrInvalidInput, fileID)
	}
	if s.inspector == nil {
		return domain.PdfFile{}, domain.Page{}, fmt.Errorf("pdf inspector is not configured")
	}
	p, err := s.inspector.ReadPage(ctx, file.Path, page)
	if err != nil {
		return domain.PdfFile{}, domain.Page{}, err
	}
	return file, p, nil
}

// Open hands the file, or its URL when no local path is known, to the
// system viewer.
func (s *LibraryService) Open(ctx context.Context, fileID string) (string, error) {
	file, err := s.Get(ctx, fileID)
	if err != nil {
		return "", err
	}
	target := file.Path
	if target == "" {
		target = file.URL
	}
	if target == "" {
		return "", fmt.Errorf("%w: pdf %s has no path or url", apperrors.ErrInvalidInput, fileID)
	}
	if s.launcher == nil {
		return "", fmt.Errorf("external launcher is not configured")
	}
	if err := s.launcher.Open(ctx, target); err != nil {
		return "", err
	}
	return target, nil
}

func (s *LibraryService) mutate(ctx context.Context, fileID string, fn func([]domain.PdfFile, int) []domain.PdfFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	files, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	for i, f := range files {
		if f.ID == fileID {
			return s.store.Save(ctx, fn(files, i))
		}
	}
	return fmt.Errorf("%w: pdf %s", apperrors.ErrNotFound, fileID)
}

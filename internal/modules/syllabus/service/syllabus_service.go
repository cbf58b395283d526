package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"examtrack/internal/modules/syllabus/domain"
	syllabusout "examtrack/internal/modules/syllabus/port/out"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/exam"
	"examtrack/internal/platform/slug"
)

type SyllabusService struct {
	store  syllabusout.Store
	parser syllabusout.SeedParser
	log    *slog.Logger

	mu sync.Mutex
}

func NewSyllabusService(store syllabusout.Store, parser syllabusout.SeedParser, log *slog.Logger) *SyllabusService {
	if log == nil {
		log = slog.Default()
	}
	return &SyllabusService{store: store, parser: parser, log: log.With("module", "syllabus")}
}

func (s *SyllabusService) List(ctx context.Context) ([]domain.Syllabus, error) {
	return s.store.Load(ctx)
}

func (s *SyllabusService) Filter(ctx context.Context, search string, subject exam.Subject, difficulty exam.Difficulty) ([]domain.Syllabus, error) {
	tree, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Filter(tree, search, subject, difficulty), nil
}

// AddChapter appends a chapter to the subject, creating the subject entry
// when missing. Chapter ids are unique across the whole tree.
func (s *SyllabusService) AddChapter(ctx context.Context, subject exam.Subject, name string, difficulty exam.Difficulty) (domain.Chapter, error) {
	var added domain.Chapter
	err := s.mutate(ctx, func(tree []domain.Syllabus) ([]domain.Syllabus, error) {
		idx := subjectIndex(tree, subject)
		if idx < 0 {
			tree = append(tree, domain.Syllabus{Subject: subject, Chapters: []domain.Chapter{}})
			idx = len(tree) - 1
		}
		added = domain.Chapter{
			ID:         slug.Unique(name, func(id string) bool { return chapterTaken(tree, id) }),
			Name:       strings.TrimSpace(name),
			Difficulty: difficulty,
			Topics:     []domain.Topic{},
		}
		tree[idx].Chapters = append(tree[idx].Chapters, added)
		return tree, nil
	})
	if err != nil {
		return domain.Chapter{}, err
	}
	s.log.Info("chapter added", "subject", subject, "chapter_id", added.ID)
	return added, nil
}

func (s *SyllabusService) AddTopic(ctx context.Context, subject exam.Subject, chapterID, name string, difficulty exam.Difficulty) (domain.Topic, error) {
	var added domain.Topic
	err := s.mutate(ctx, func(tree []domain.Syllabus) ([]domain.Syllabus, error) {
		chapter := findChapter(tree, subject, chapterID)
		if chapter == nil {
			return nil, fmt.Errorf("%w: chapter %s/%s", apperrors.ErrNotFound, subject, chapterID)
		}
		added = domain.Topic{
			ID:         slug.Unique(name, func(id string) bool { return topicTaken(chapter.Topics, id) }),
			Name:       strings.TrimSpace(name),
			Difficulty: difficulty,
			Status:     domain.NotStarted,
		}
		chapter.Topics = append(chapter.Topics, added)
		return tree, nil
	})
	if err != nil {
		return domain.Topic{}, err
	}
	s.log.Info("topic added", "subject", subject, "chapter_id", chapterID, "topic_id", added.ID)
	return added, nil
}

func (s *SyllabusService) RemoveChapter(ctx context.Context, subject exam.Subject, chapterID string) error {
	return s.mutate(ctx, func(tree []domain.Syllabus) ([]domain.Syllabus, error) {
		idx := subjectIndex(tree, subject)
		if idx >= 0 {
			for i, c := range tree[idx].Chapters {
				if c.ID == chapterID {
					tree[idx].Chapters = append(tree[idx].Chapters[:i], tree[idx].Chapters[i+1:]...)
					return tree, nil
				}
			}
		}
		return nil, fmt.Errorf("%w: chapter %s/%s", apperrors.ErrNotFound, subject, chapterID)
	})
}

func (s *SyllabusService) RemoveTopic(ctx context.Context, subject exam.Subject, chapterID, topicID string) error {
	return s.mutate(ctx, func(tree []domain.Syllabus) ([]domain.Syllabus, error) {
		chapter := findChapter(tree, subject, chapterID)
		if chapter != nil {
			for i, t := range chapter.Topics {
				if t.ID == topicID {
					chapter.Topics = append(chapter.Topics[:i], chapter.Topics[i+1:]...)
					return tree, nil
				}
			}
		}
		return nil, fmt.Errorf("%w: topic %s/%s/%s", apperrors.ErrNotFound, subject, chapterID, topicID)
	})
}

func (s *SyllabusService) SetTopicStatus(ctx context.Context, subject exam.Subject, chapterID, topicID string, status domain.Status) error {
	if err := status.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return s.mutate(ctx, func(tree []domain.Syllabus) ([]domain.Syllabus, error) {
		chapter := findChapter(tree, subject, chapterID)
		if chapter != nil {
			for i := range chapter.Topics {
				if chapter.Topics[i].ID == topicID {
					chapter.Topics[i].Status = status
					return tree, nil
				}
			}
		}
		return nil, fmt.Errorf("%w: topic %s/%s/%s", apperrors.ErrNotFound, subject, chapterID, topicID)
	})
}

// Import replaces the whole tree with a parsed seed. Missing ids are
// derived from names; missing statuses default to not-started.
func (s *SyllabusService) Import(ctx context.Context, r io.Reader) ([]domain.Syllabus, error) {
	tree, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	for i := range tree {
		if err := tree[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
		}
		for j := range tree[i].Chapters {
			chapter := &tree[i].Chapters[j]
			if chapter.ID == "" {
				chapter.ID = slug.Unique(chapter.Name, func(id string) bool { return chapterTaken(tree, id) })
			}
			if chapter.Topics == nil {
				chapter.Topics = []domain.Topic{}
			}
			for k := range chapter.Topics {
				topic := &chapter.Topics[k]
				if topic.ID == "" {
					topic.ID = slug.Unique(topic.Name, func(id string) bool { return topicTaken(chapter.Topics, id) })
				}
				if topic.Status == "" {
					topic.Status = domain.NotStarted
				}
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(ctx, tree); err != nil {
		return nil, err
	}
	s.log.Info("syllabus imported", "subjects", len(tree))
	return tree, nil
}

func (s *SyllabusService) ResolveTopic(ctx context.Context, subject exam.Subject, chapterID, topicID string) (domain.Chapter, domain.Topic, error) {
	tree, err := s.store.Load(ctx)
	if err != nil {
		return domain.Chapter{}, domain.Topic{}, err
	}
	chapter, topic, ok := domain.FindTopic(tree, subject, chapterID, topicID)
	if !ok {
		return domain.Chapter{}, domain.Topic{}, fmt.Errorf("%w: topic %s/%s/%s", apperrors.ErrNotFound, subject, chapterID, topicID)
	}
	return chapter, topic, nil
}

func (s *SyllabusService) Progress(ctx context.Context) ([]domain.Progress, error) {
	tree, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Progress, 0, len(tree))
	for _, subject := range tree {
		out = append(out, domain.SubjectProgress(subject))
	}
	return out, nil
}

func (s *SyllabusService) mutate(ctx context.Context, fn func([]domain.Syllabus) ([]domain.Syllabus, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tree, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(domain.Clone(tree))
	if err != nil {
		return err
	}
	return s.store.Save(ctx, next)
}

func subjectIndex(tree []domain.Syllabus, subject exam.Subject) int {
	for i, s := range tree {
		if s.Subject == subject {
			return i
		}
	}
	return -1
}

func findChapter(tree []domain.Syllabus, subject exam.Subject, chapterID string) *domain.Chapter {
	idx := subjectIndex(tree, subject)
	if idx < 0 {
		return nil
	}
	for i := range tree[idx].Chapters {
		if tree[idx].Chapters[i].ID == chapterID {
			return &tree[idx].Chapters[i]
		}
	}
	return nil
}

func chapterTaken(tree []domain.Syllabus, id string) bool {
	for _, s := range tree {
		for _, c := range s.Chapters {
			if c.ID == id {
				return true
			}
		}
	}
	return false
}

func topicTaken(topics []domain.Topic, id string) bool {
	for _, t := range topics {
		if t.ID == id {
			return true
		}
	}
	return false
}

package usecase

import (
	"context"
	"fmt"
	"os"

	"examtrack/internal/modules/syllabus/domain"
	"examtrack/internal/modules/syllabus/dto"
	syllabusin "examtrack/internal/modules/syllabus/port/in"
	"examtrack/internal/modules/syllabus/service"
	"examtrack/internal/platform/exam"
	"examtrack/internal/platform/validate"
)

type Interactor struct {
	svc *service.SyllabusService
}

func NewInteractor(svc *service.SyllabusService) syllabusin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, input dto.FilterInput) ([]dto.SubjectOutput, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	tree, err := i.svc.Filter(ctx, input.Search, exam.Subject(input.Subject), exam.Difficulty(input.Difficulty))
	if err != nil {
		return nil, err
	}
	return toSubjects(tree), nil
}

func (i *Interactor) AddChapter(ctx context.Context, input dto.AddChapterInput) (dto.ChapterOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.ChapterOutput{}, err
	}
	chapter, err := i.svc.AddChapter(ctx, exam.Subject(input.Subject), input.Name, exam.Difficulty(input.Difficulty))
	if err != nil {
		return dto.ChapterOutput{}, err
	}
	return toChapter(input.Subject, chapter), nil
}

func (i *Interactor) AddTopic(ctx context.Context, input dto.AddTopicInput) (dto.TopicOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.TopicOutput{}, err
	}
	topic, err := i.svc.AddTopic(ctx, exam.Subject(input.Subject), input.ChapterID, input.Name, exam.Difficulty(input.Difficulty))
	if err != nil {
		return dto.TopicOutput{}, err
	}
	return toTopic(input.Subject, domain.Chapter{ID: input.ChapterID}, topic), nil
}

func (i *Interactor) RemoveChapter(ctx context.Context, input dto.RemoveChapterInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.svc.RemoveChapter(ctx, exam.Subject(input.Subject), input.ChapterID)
}

func (i *Interactor) RemoveTopic(ctx context.Context, input dto.TopicKeyInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.svc.RemoveTopic(ctx, exam.Subject(input.Subject), input.ChapterID, input.TopicID)
}

func (i *Interactor) SetStatus(ctx context.Context, input dto.SetStatusInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.svc.SetTopicStatus(ctx, exam.Subject(input.Subject), input.ChapterID, input.TopicID, domain.Status(input.Status))
}

func (i *Interactor) Import(ctx context.Context, input dto.ImportInput) ([]dto.SubjectOutput, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	f, err := os.Open(input.Path)
	if err != nil {
		return nil, fmt.Errorf("open syllabus seed: %w", err)
	}
	defer f.Close()
	tree, err := i.svc.Import(ctx, f)
	if err != nil {
		return nil, err
	}
	return toSubjects(tree), nil
}

func (i *Interactor) ResolveTopic(ctx context.Context, input dto.TopicKeyInput) (dto.TopicOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.TopicOutput{}, err
	}
	chapter, topic, err := i.svc.ResolveTopic(ctx, exam.Subject(input.Subject), input.ChapterID, input.TopicID)
	if err != nil {
		return dto.TopicOutput{}, err
	}
	return toTopic(input.Subject, chapter, topic), nil
}

func (i *Interactor) Progress(ctx context.Context) ([]dto.ProgressOutput, error) {
	progress, err := i.svc.Progress(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProgressOutput, 0, len(progress))
	for _, p := range progress {
		out = append(out, dto.ProgressOutput{
			Subject:           string(p.Subject),
			Chapters:          p.Chapters,
			CompletedChapters: p.CompletedChapters,
			Topics:            p.Topics,
			CompletedTopics:   p.CompletedTopics,
		})
	}
	return out, nil
}

func toSubjects(tree []domain.Syllabus) []dto.SubjectOutput {
	out := make([]dto.SubjectOutput, 0, len(tree))
	for _, s := range tree {
		subject := dto.SubjectOutput{Subject: string(s.Subject), Chapters: make([]dto.ChapterOutput, 0, len(s.Chapters))}
		for _, c := range s.Chapters {
			subject.Chapters = append(subject.Chapters, toChapter(string(s.Subject), c))
		}
		out = append(out, subject)
	}
	return out
}

func toChapter(subject string, c domain.Chapter) dto.ChapterOutput {
	out := dto.ChapterOutput{
		ID:         c.ID,
		Name:       c.Name,
		Difficulty: string(c.Difficulty),
		Complete:   c.Complete(),
		Topics:     make([]dto.TopicOutput, 0, len(c.Topics)),
	}
	for _, t := range c.Topics {
		out.Topics = append(out.Topics, toTopic(subject, c, t))
	}
	return out
}

func toTopic(subject string, c domain.Chapter, t domain.Topic) dto.TopicOutput {
	status := t.Status
	if status == "" {
		status = domain.NotStarted
	}
	return dto.TopicOutput{
		Subject:     subject,
		ChapterID:   c.ID,
		ChapterName: c.Name,
		ID:          t.ID,
		Name:        t.Name,
		Difficulty:  string(t.Difficulty),
		Status:      string(status),
	}
}

package out

import (
	"context"
	"fmt"

	"examtrack/internal/modules/review/domain"
	reviewout "examtrack/internal/modules/review/port/out"
	"examtrack/internal/platform/kv"
)

type CollectionRepository struct {
	store kv.Store
}

func NewCollectionRepository(store kv.Store) reviewout.Repository {
	return &CollectionRepository{store: store}
}

func (r *CollectionRepository) LoadEvents(ctx context.Context) ([]domain.StudyEvent, error) {
	return kv.ReadCollection[domain.StudyEvent](ctx, r.store, kv.KeyStudySessions)
}

func (r *CollectionRepository) LoadTasks(ctx context.Context) ([]domain.ReviewTask, error) {
	return kv.ReadCollection[domain.ReviewTask](ctx, r.store, kv.KeyReviewTasks)
}

func (r *CollectionRepository) SaveTasks(ctx context.Context, tasks []domain.ReviewTask) error {
	if err := kv.WriteCollection(ctx, r.store, kv.KeyReviewTasks, tasks); err != nil {
		return fmt.Errorf("save review tasks: %w", err)
	}
	return nil
}

func (r *CollectionRepository) SaveAll(ctx context.Context, events []domain.StudyEvent, tasks []domain.ReviewTask) error {
	if events == nil {
		events = []domain.StudyEvent{}
	}
	if tasks == nil {
		tasks = []domain.ReviewTask{}
	}
	eventsEntry, err := kv.Encode(kv.KeyStudySessions, events)
	if err != nil {
		return err
	}
	tasksEntry, err := kv.Encode(kv.KeyReviewTasks, tasks)
	if err != nil {
		return err
	}
	if err := r.store.Write(ctx, eventsEntry, tasksEntry); err != nil {
		return fmt.Errorf("save study events: %w", err)
	}
	return nil
}

package out

import (
	"context"
	"fmt"

	"examtrack/internal/modules/syllabus/domain"
	syllabusout "examtrack/internal/modules/syllabus/port/out"
	"examtrack/internal/platform/kv"
)

type CollectionStore struct {
	store kv.Store
}

func NewCollectionStore(store kv.Store) syllabusout.Store {
	return &CollectionStore{store: store}
}

func (s *CollectionStore) Load(ctx context.Context) ([]domain.Syllabus, error) {
	tree, err := kv.ReadCollection[domain.Syllabus](ctx, s.store, kv.KeySyllabus)
	if err != nil {
		return nil, fmt.Errorf("load syllabus: %w", err)
	}
	return tree, nil
}

func (s *CollectionStore) Save(ctx context.Context, tree []domain.Syllabus) error {
	if err := kv.WriteCollection(ctx, s.store, kv.KeySyllabus, tree); err != nil {
		return fmt.Errorf("save syllabus: %w", err)
	}
	return nil
}

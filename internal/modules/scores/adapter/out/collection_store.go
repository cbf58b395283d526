package out

import (
	"context"
	"fmt"

	"examtrack/internal/modules/scores/domain"
	scoresout "examtrack/internal/modules/scores/port/out"
	"examtrack/internal/platform/kv"
)

type CollectionStore struct {
	store kv.Store
}

func NewCollectionStore(store kv.Store) scoresout.EntryStore {
	return &CollectionStore{store: store}
}

func (s *CollectionStore) Load(ctx context.Context) ([]domain.TestEntry, error) {
	entries, err := kv.ReadCollection[domain.TestEntry](ctx, s.store, kv.KeyTestEntries)
	if err != nil {
		return nil, fmt.Errorf("load test entries: %w", err)
	}
	return entries, nil
}

func (s *CollectionStore) Save(ctx context.Context, entries []domain.TestEntry) error {
	if err := kv.WriteCollection(ctx, s.store, kv.KeyTestEntries, entries); err != nil {
		return fmt.Errorf("save test entries: %w", err)
	}
	return nil
}

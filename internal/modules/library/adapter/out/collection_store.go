package out

import (
	"context"
	"fmt"

	"examtrack/internal/modules/library/domain"
	libraryout "examtrack/internal/modules/library/port/out"
	"examtrack/internal/platform/kv"
)

type CollectionStore struct {
	store kv.Store
}

func NewCollectionStore(store kv.Store) libraryout.FileStore {
	return &CollectionStore{store: store}
}

func (s *CollectionStore) Load(ctx context.Context) ([]domain.PdfFile, error) {
	files, err := kv.ReadCollection[domain.PdfFile](ctx, s.store, kv.KeyPdfFiles)
	if err != nil {
		return nil, fmt.Errorf("load pdf files: %w", err)
	}
	return files, nil
}

func (s *CollectionStore) Save(ctx context.Context, files []domain.PdfFile) error {
	if err := kv.WriteCollection(ctx, s.store, kv.KeyPdfFiles, files); err != nil {
		return fmt.Errorf("save pdf files: %w", err)
	}
	return nil
}

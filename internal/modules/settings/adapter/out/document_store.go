package out

import (
	"context"
	"encoding/json"
	"fmt"

	"examtrack/internal/modules/settings/domain"
	settingsout "examtrack/internal/modules/settings/port/out"
	"examtrack/internal/platform/kv"
)

type DocumentStore struct {
	store kv.Store
}

func NewDocumentStore(store kv.Store) settingsout.Store {
	return &DocumentStore{store: store}
}

func (s *DocumentStore) Load(ctx context.Context) (domain.Settings, error) {
	settings := domain.Default()
	raw, err := s.store.Read(ctx, kv.KeySettings)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	if len(raw) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return settings, nil
}

func (s *DocumentStore) Save(ctx context.Context, settings domain.Settings) error {
	entry, err := kv.Encode(kv.KeySettings, settings)
	if err != nil {
		return err
	}
	if err := s.store.Write(ctx, entry); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

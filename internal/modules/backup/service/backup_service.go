package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"examtrack/internal/modules/backup/domain"
	backupout "examtrack/internal/modules/backup/port/out"
	"examtrack/internal/platform/clock"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/kv"
)

type BackupService struct {
	clock     clock.Clock
	store     kv.Store
	reloaders []backupout.Reloader
	defaults  map[string]json.RawMessage
	decoders  map[string]backupout.Decoder
	log       *slog.Logger
}

// NewBackupService builds the service. defaults supplies documents to export
// for keys that were never written; decoders check imported values per key
// before anything is stored.
func NewBackupService(clock clock.Clock, store kv.Store, defaults map[string]json.RawMessage, decoders map[string]backupout.Decoder, log *slog.Logger, reloaders ...backupout.Reloader) *BackupService {
	if log == nil {
		log = slog.Default()
	}
	return &BackupService{clock: clock, store: store, reloaders: reloaders, defaults: defaults, decoders: decoders, log: log.With("module", "backup")}
}

func (s *BackupService) Export(ctx context.Context) ([]byte, error) {
	var doc domain.Document
	for _, key := range kv.Keys {
		raw, err := s.store.Read(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", key, err)
		}
		if len(raw) == 0 {
			raw = s.defaults[key]
		}
		doc.Set(key, raw)
	}
	return doc.Encode()
}

// Import writes every collection present in payload in one transaction and
// then reloads the cached modules. A payload that fails to parse, or holds a
// value its owning module could not decode, writes nothing.
func (s *BackupService) Import(ctx context.Context, payload []byte) ([]string, error) {
	entries, err := domain.ParseImport(payload)
	if err != nil {
		s.log.Warn("reject import", "error", err)
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if decode, ok := s.decoders[e.Key]; ok {
			if err := decode(e.Value); err != nil {
				err = fmt.Errorf("%w: field %s: %v", apperrors.ErrInvalidData, e.Key, err)
				s.log.Warn("reject import", "error", err)
				return nil, err
			}
		}
		keys = append(keys, e.Key)
	}
	if len(entries) > 0 {
		if err := s.store.Write(ctx, entries...); err != nil {
			return nil, fmt.Errorf("import: %w", err)
		}
	}
	s.log.Info("data imported", "keys", keys)
	return keys, s.reload(ctx)
}

// Clear removes every collection and reloads the cached modules.
func (s *BackupService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	s.log.Info("data cleared")
	return s.reload(ctx)
}

func (s *BackupService) DefaultFileName() string {
	return domain.FileName(s.clock.Now())
}

func (s *BackupService) reload(ctx context.Context) error {
	var errs []error
	for _, r := range s.reloaders {
		if err := r.Load(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return nil
}

// Package kv is the persistence collaborator shared by every module: a
// mapping from fixed collection keys to JSON documents.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	KeyStudySessions = "studySessions"
	KeyReviewTasks   = "reviewTasks"
	KeyPdfFiles      = "pdfFiles"
	KeyTestEntries   = "testEntries"
	KeySettings      = "settings"
	KeySyllabus      = "syllabus"
)

// Keys lists every collection in export order.
var Keys = []string{KeyStudySessions, KeyReviewTasks, KeyPdfFiles, KeyTestEntries, KeySettings, KeySyllabus}

type Entry struct {
	Key   string
	Value json.RawMessage
}

type Store interface {
	// Read returns nil without error when the key was never written.
	Read(ctx context.Context, key string) (json.RawMessage, error)
	// Write stores all entries or none of them.
	Write(ctx context.Context, entries ...Entry) error
	Clear(ctx context.Context) error
}

// ReadCollection decodes the collection stored under key. An absent key
// yields an empty, non-nil slice.
func ReadCollection[T any](ctx context.Context, store Store, key string) ([]T, error) {
	raw, err := store.Read(ctx, key)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// ReadDocument decodes a single document; found is false for an absent key.
func ReadDocument[T any](ctx context.Context, store Store, key string) (doc T, found bool, err error) {
	raw, err := store.Read(ctx, key)
	if err != nil {
		return doc, false, err
	}
	if len(raw) == 0 {
		return doc, false, nil
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return doc, true, nil
}

// DecodesAs reports whether raw decodes into a collection of T.
func DecodesAs[T any](raw json.RawMessage) error {
	var out []T
	return json.Unmarshal(raw, &out)
}

// DecodesAsDocument reports whether raw decodes into a single T.
func DecodesAsDocument[T any](raw json.RawMessage) error {
	var doc T
	return json.Unmarshal(raw, &doc)
}

func Encode(key string, value any) (Entry, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return Entry{}, fmt.Errorf("encode %s: %w", key, err)
	}
	return Entry{Key: key, Value: raw}, nil
}

// WriteCollection encodes records and stores them under key. A nil slice is
// stored as an empty array.
func WriteCollection[T any](ctx context.Context, store Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	entry, err := Encode(key, records)
	if err != nil {
		return err
	}
	return store.Write(ctx, entry)
}

package domain_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"examtrack/internal/modules/backup/domain"
	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/kv"
)

func TestEncodeFillsEmptyCollections(t *testing.T) {
	t.Parallel()
	var doc domain.Document
	for _, key := range kv.Keys {
		doc.Set(key, nil)
	}
	doc.Set(kv.KeyReviewTasks, json.RawMessage(`[{"id":"t1"}]`))
	raw, err := doc.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := strings.Join([]string{
		`{`,
		`  "studySessions": [],`,
		`  "reviewTasks": [`,
		`    {`,
		`      "id": "t1"`,
		`    }`,
		`  ],`,
		`  "pdfFiles": [],`,
		`  "testEntries": [],`,
		`  "syllabus": []`,
		`}`,
	}, "\n")
	if string(raw) != want {
		t.Fatalf("unexpected export:\n%s", raw)
	}
}

func TestParseImport(t *testing.T) {
	t.Parallel()
	entries, err := domain.ParseImport([]byte(`{
		"reviewTasks": [ {"id": "t1"} ],
		"settings": {"theme": "dark"},
		"pdfFiles": null,
		"somethingElse": 42
	}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %+v", entries)
	}
	if entries[0].Key != kv.KeyReviewTasks || string(entries[0].Value) != `[{"id":"t1"}]` {
		t.Fatalf("unexpected first entry %s=%s", entries[0].Key, entries[0].Value)
	}
	if entries[1].Key != kv.KeySettings {
		t.Fatalf("unexpected second entry %s", entries[1].Key)
	}
}

func TestParseImportRejectsBadPayloads(t *testing.T) {
	t.Parallel()
	for _, payload := range []string{
		`not json`,
		`[1, 2]`,
		`{"reviewTasks": {"id": "t1"}}`,
		`{"settings": []}`,
		`{"studySessions": "x"}`,
	} {
		_, err := domain.ParseImport([]byte(payload))
		if !errors.Is(err, apperrors.ErrInvalidData) {
			t.Fatalf("%s: expected invalid data, got %v", payload, err)
		}
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()
	got := domain.FileName(time.Date(2026, time.January, 2, 23, 0, 0, 0, time.UTC))
	if got != "examtrack-backup-2026-01-02.json" {
		t.Fatalf("unexpected file name %s", got)
	}
}

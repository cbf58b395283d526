package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	apperrors "examtrack/internal/platform/errors"
	"examtrack/internal/platform/kv"
)

// Document is the export format: every collection under its storage key,
// in a fixed field order.
type Document struct {
	StudySessions json.RawMessage `json:"studySessions"`
	ReviewTasks   json.RawMessage `json:"reviewTasks"`
	PdfFiles      json.RawMessage `json:"pdfFiles"`
	TestEntries   json.RawMessage `json:"testEntries"`
	Settings      json.RawMessage `json:"settings,omitempty"`
	Syllabus      json.RawMessage `json:"syllabus"`
}

func (d *Document) field(key string) *json.RawMessage {
	switch key {
	case kv.KeyStudySessions:
		return &d.StudySessions
	case kv.KeyReviewTasks:
		return &d.ReviewTasks
	case kv.KeyPdfFiles:
		return &d.PdfFiles
	case kv.KeyTestEntries:
		return &d.TestEntries
	case kv.KeySettings:
		return &d.Settings
	case kv.KeySyllabus:
		return &d.Syllabus
	}
	return nil
}

// Set stores raw under key. Absent collections become empty arrays; an
// absent settings document stays absent.
func (d *Document) Set(key string, raw json.RawMessage) {
	f := d.field(key)
	if f == nil {
		return
	}
	if len(raw) == 0 && key != kv.KeySettings {
		raw = json.RawMessage("[]")
	}
	*f = raw
}

// Encode renders the document with two-space indentation.
func (d Document) Encode() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return out, nil
}

// ParseImport checks an import payload and returns the entries to write.
// Missing or null fields are skipped and unknown fields ignored. Collections
// must be JSON arrays and settings a JSON object; anything else rejects the
// whole payload.
func ParseImport(payload []byte) ([]kv.Entry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidData, err)
	}
	entries := make([]kv.Entry, 0, len(kv.Keys))
	for _, key := range kv.Keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		if bytes.Equal(raw, []byte("null")) {
			continue
		}
		want := byte('[')
		if key == kv.KeySettings {
			want = '{'
		}
		if len(raw) == 0 || raw[0] != want {
			return nil, fmt.Errorf("%w: field %s has the wrong shape", apperrors.ErrInvalidData, key)
		}
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return nil, fmt.Errorf("%w: field %s: %v", apperrors.ErrInvalidData, key, err)
		}
		entries = append(entries, kv.Entry{Key: key, Value: compact.Bytes()})
	}
	return entries, nil
}

// FileName is the default export file name for the given day.
func FileName(now time.Time) string {
	return "examtrack-backup-" + now.Format("2006-01-02") + ".json"
}

package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"examtrack/internal/platform/exam"
)

// PdfFile references a PDF on local disk. The contents are never copied.
type PdfFile struct {
	ID      string       `json:"id"`
	Subject exam.Subject `json:"subject"`
	Folder  string       `json:"folder"`
	Name    string       `json:"name"`
	Path    string       `json:"path,omitempty"`
	Size    int64        `json:"size"`
	Pages   int          `json:"pages,omitempty"`
	Tags    []string     `json:"tags"`
	URL     string       `json:"url,omitempty"`
	AddedAt time.Time    `json:"addedAt"`
}

func (f PdfFile) Validate() error {
	if err := f.Subject.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(f.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// Matches applies the library filters: an empty subject matches all, search
// looks at the name and tags case-insensitively, and every wanted tag must
// be present.
func (f PdfFile) Matches(subject exam.Subject, search string, tags []string) bool {
	if subject != "" && f.Subject != subject {
		return false
	}
	if needle := strings.ToLower(strings.TrimSpace(search)); needle != "" {
		hit := strings.Contains(strings.ToLower(f.Name), needle)
		for _, tag := range f.Tags {
			hit = hit || strings.Contains(strings.ToLower(tag), needle)
		}
		if !hit {
			return false
		}
	}
	for _, want := range tags {
		if !slices.Contains(f.Tags, want) {
			return false
		}
	}
	return true
}

// NormalizeTags trims, drops empties and removes duplicates, keeping order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// AllTags lists the distinct tags across files, sorted.
func AllTags(files []PdfFile) []string {
	out := []string{}
	for _, f := range files {
		for _, tag := range f.Tags {
			if !slices.Contains(out, tag) {
				out = append(out, tag)
			}
		}
	}
	slices.Sort(out)
	return out
}

type Page struct {
	Number int
	Total  int
	Text   string
}

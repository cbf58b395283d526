package domain_test

import (
	"slices"
	"testing"

	"examtrack/internal/modules/library/domain"
	"examtrack/internal/platform/exam"
)

func TestMatches(t *testing.T) {
	t.Parallel()
	f := domain.PdfFile{ID: "1", Subject: exam.Physics, Name: "HC Verma Vol 1.pdf", Tags: []string{"mechanics", "theory"}}
	cases := []struct {
		name    string
		subject exam.Subject
		search  string
		tags    []string
		want    bool
	}{
		{"all", "", "", nil, true},
		{"subject", exam.Physics, "", nil, true},
		{"other subject", exam.Biology, "", nil, false},
		{"name search", "", "verma", nil, true},
		{"tag search", "", "MECH", nil, true},
		{"search miss", "", "ncert", nil, false},
		{"all tags", "", "", []string{"mechanics", "theory"}, true},
		{"missing tag", "", "", []string{"mechanics", "pyq"}, false},
	}
	for _, c := range cases {
		if got := f.Matches(c.subject, c.search, c.tags); got != c.want {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestTagHelpers(t *testing.T) {
	t.Parallel()
	if got := domain.NormalizeTags([]string{" pyq ", "", "pyq", "notes"}); !slices.Equal(got, []string{"pyq", "notes"}) {
		t.Fatalf("unexpected normalized tags %v", got)
	}
	files := []domain.PdfFile{{Tags: []string{"b", "a"}}, {Tags: []string{"a", "c"}}}
	if got := domain.AllTags(files); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected tags %v", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.PdfFile{ID: "1", Subject: exam.Chemistry, Name: "a.pdf"}).Validate(); err != nil {
		t.Fatalf("expected valid: %v", err)
	}
	if err := (domain.PdfFile{ID: "1", Subject: "Maths", Name: "a.pdf"}).Validate(); err == nil {
		t.Fatalf("expected subject error")
	}
	if err := (domain.PdfFile{ID: "1", Subject: exam.Chemistry}).Validate(); err == nil {
		t.Fatalf("expected name error")
	}
}

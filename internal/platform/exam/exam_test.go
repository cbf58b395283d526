package exam_test

import (
	"testing"

	"examtrack/internal/platform/exam"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	for _, s := range exam.Subjects {
		if err := s.Validate(); err != nil {
			t.Fatalf("%s should be valid: %v", s, err)
		}
	}
	if err := exam.Subject("Maths").Validate(); err == nil {
		t.Fatalf("unknown subject should fail")
	}
	if err := exam.Hard.Validate(); err != nil {
		t.Fatalf("hard should be valid: %v", err)
	}
	if err := exam.Difficulty("hard").Validate(); err == nil {
		t.Fatalf("difficulty is case sensitive")
	}
}

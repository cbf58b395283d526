package out

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"examtrack/internal/modules/syllabus/domain"
	syllabusout "examtrack/internal/modules/syllabus/port/out"
	apperrors "examtrack/internal/platform/errors"
)

// YAMLSeedParser reads a seed document shaped as a list of subjects:
//
//	- subject: Physics
//	  chapters:
//	    - name: Kinematics
//	      difficulty: Medium
//	      topics:
//	        - name: Projectile Motion
//	          difficulty: Hard
type YAMLSeedParser struct{}

func NewYAMLSeedParser() syllabusout.SeedParser {
	return YAMLSeedParser{}
}

func (YAMLSeedParser) Parse(r io.Reader) ([]domain.Syllabus, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var tree []domain.Syllabus
	if err := dec.Decode(&tree); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Syllabus{}, nil
		}
		return nil, fmt.Errorf("%w: parse syllabus seed: %v", apperrors.ErrInvalidData, err)
	}
	return tree, nil
}

// Package exam holds the vocabulary shared by every module: the three exam
// subjects and the difficulty tiers used by the syllabus and study events.
package exam

import "fmt"

type Subject string

const (
	Physics   Subject = "Physics"
	Chemistry Subject = "Chemistry"
	Biology   Subject = "Biology"
)

var Subjects = []Subject{Physics, Chemistry, Biology}

func (s Subject) Validate() error {
	switch s {
	case Physics, Chemistry, Biology:
		return nil
	default:
		return fmt.Errorf("unsupported subject %q", string(s))
	}
}

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

func (d Difficulty) Validate() error {
	switch d {
	case Easy, Medium, Hard:
		return nil
	default:
		return fmt.Errorf("unsupported difficulty %q", string(d))
	}
}

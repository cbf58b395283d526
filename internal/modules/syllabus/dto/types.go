package dto

type TopicOutput struct {
	Subject     string
	ChapterID   string
	ChapterName string
	ID          string
	Name        string
	Difficulty  string
	Status      string
}

type ChapterOutput struct {
	ID         string
	Name       string
	Difficulty string
	Complete   bool
	Topics     []TopicOutput
}

type SubjectOutput struct {
	Subject  string
	Chapters []ChapterOutput
}

type FilterInput struct {
	Search     string
	Subject    string `validate:"omitempty,oneof=Physics Chemistry Biology"`
	Difficulty string `validate:"omitempty,oneof=Easy Medium Hard"`
}

type AddChapterInput struct {
	Subject    string `validate:"required,oneof=Physics Chemistry Biology"`
	Name       string `validate:"required,max=200"`
	Difficulty string `validate:"required,oneof=Easy Medium Hard"`
}

type AddTopicInput struct {
	Subject    string `validate:"required,oneof=Physics Chemistry Biology"`
	ChapterID  string `validate:"required"`
	Name       string `validate:"required,max=200"`
	Difficulty string `validate:"required,oneof=Easy Medium Hard"`
}

type TopicKeyInput struct {
	Subject   string `validate:"required,oneof=Physics Chemistry Biology"`
	ChapterID string `validate:"required"`
	TopicID   string `validate:"required"`
}

type RemoveChapterInput struct {
	Subject   string `validate:"required,oneof=Physics Chemistry Biology"`
	ChapterID string `validate:"required"`
}

type SetStatusInput struct {
	TopicKeyInput
	Status string `validate:"required,oneof=not-started in-progress completed"`
}

type ImportInput struct {
	Path string `validate:"required"`
}

type ProgressOutput struct {
	Subject           string
	Chapters          int
	CompletedChapters int
	Topics            int
	CompletedTopics   int
}

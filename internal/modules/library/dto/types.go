package dto

import "time"

type AddFileInput struct {
	Path    string `validate:"required"`
	Subject string `validate:"required,oneof=Physics Chemistry Biology"`
	Folder  string `validate:"max=200"`
	Tags    []string
}

type ListInput struct {
	Subject string `validate:"omitempty,oneof=Physics Chemistry Biology"`
	Search  string
	Tags    []string
}

type UpdateTagsInput struct {
	FileID string `validate:"required"`
	Tags   []string
}

type ReadPageInput struct {
	FileID string `validate:"required"`
	Page   int    `validate:"min=1"`
}

type FileOutput struct {
	ID      string
	Subject string
	Folder  string
	Name    string
	Path    string
	Size    int64
	Pages   int
	Tags    []string
	AddedAt time.Time
}

type PageOutput struct {
	FileID string
	Name   string
	Page   int
	Total  int
	Text   string
}

type OpenOutput struct {
	FileID string
	Target string
}

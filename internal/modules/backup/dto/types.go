package dto

type ExportInput struct {
	// Path of the file to write; empty means return the document only.
	Path string
}

type ExportOutput struct {
	Path     string
	Document []byte
}

type ImportInput struct {
	Path string `validate:"required"`
}

type ImportOutput struct {
	Keys []string
}

type ClearInput struct {
	Confirm bool `validate:"eq=true"`
}

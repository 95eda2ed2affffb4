// Package assets embeds the default word lists so the binaries work
// without any files configured.
package assets

import (
	"embed"
	"io"
)

const (
	AnswersFile = "answers.txt"
	AllowedFile = "allowed.txt"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Answers opens the embedded answer list.
func Answers() (io.ReadCloser, error) { return FS.Open(AnswersFile) }

// Allowed opens the embedded allowed-guess list.
func Allowed() (io.ReadCloser, error) { return FS.Open(AllowedFile) }

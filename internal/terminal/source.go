package terminal

import (
	"bufio"
	"context"
	"io"
)

// LineSource reads one guess per line from r.
// Reads block; ctx is only checked between lines.
type LineSource struct {
	sc *bufio.Scanner
}

// NewLineSource wraps r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{sc: bufio.NewScanner(r)}
}

// NextGuess returns the next line, or io.EOF once input is exhausted.
func (s *LineSource) NextGuess(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

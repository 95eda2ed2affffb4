// internal/words/words.go
//
// Word list management for the round engine.
//
// Responsibilities:
//   - Build immutable lists from slices, readers, files, or the embedded defaults.
//   - Maintain sets for quick lookups (answers only, answers∪allowed).
//   - Draw a uniformly random answer and test guess membership.
//
// Word Lists:
//   - "answers": words a round may pick as its target.
//   - "allowed": valid guesses (always includes answers).
//
// Load precedence:
//   1. answers and allowed paths both set → load each from its file.
//   2. only the allowed path set          → that file serves both roles.
//   3. only the answers path set          → answers are the only valid guesses.
//   4. neither set                        → embedded defaults from the assets package.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are dropped.
//   • Lists are normalized to lowercase.
//   • A List is never mutated after construction and may be shared across rounds.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-wordle/assets"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/random"
)

var ErrEmpty = errors.New("words: answers list is empty")

// List is an immutable answers/allowed pair.
type List struct {
	answers    []string
	answersSet map[string]struct{}
	allowedSet map[string]struct{}
}

var _ game.Dictionary = (*List)(nil)

// New builds a List. Invalid entries are dropped and duplicates collapsed.
// allowed may be nil, in which case only answers are accepted as guesses.
func New(answers, allowed []string) (*List, error) {
	l := &List{
		answersSet: make(map[string]struct{}),
		allowedSet: make(map[string]struct{}),
	}
	for _, w := range normalize(answers) {
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answersSet[w] = struct{}{}
		l.allowedSet[w] = struct{}{}
		l.answers = append(l.answers, w)
	}
	for _, w := range normalize(allowed) {
		l.allowedSet[w] = struct{}{}
	}
	if len(l.answers) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

// Parse reads one word per line. Blank lines and lines starting with '#'
// are skipped.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Load builds a List from files following the package precedence rules.
func Load(answersPath, allowedPath string) (*List, error) {
	switch {
	case answersPath != "" && allowedPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(ans, all)

	case allowedPath != "":
		all, err := readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		return New(all, all)

	case answersPath != "":
		ans, err := readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		return New(ans, nil)

	default:
		return Default()
	}
}

// Default builds a List from the embedded word lists.
func Default() (*List, error) {
	ans, err := readEmbedded(assets.Answers)
	if err != nil {
		return nil, err
	}
	all, err := readEmbedded(assets.Allowed)
	if err != nil {
		return nil, err
	}
	return New(ans, all)
}

func readEmbedded(open func() (io.ReadCloser, error)) ([]string, error) {
	f, err := open()
	if err != nil {
		return nil, fmt.Errorf("open embedded list: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: %w", err)
	}
	defer f.Close()
	out, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

// normalize lowercases and trims, keeping only valid 5-letter alphabetic words.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = game.Normalize(w)
		if len(w) == game.WordLength && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Draw returns a uniformly random answer.
func (l *List) Draw(rnd random.Random) (string, error) {
	if len(l.answers) == 0 {
		return "", game.ErrEmptyWordList
	}
	return l.answers[rnd.Intn(len(l.answers))], nil
}

// Contains reports whether w is a valid guess (answers ∪ allowed).
func (l *List) Contains(w string) bool {
	_, ok := l.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (l *List) IsAnswer(w string) bool {
	_, ok := l.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *List) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}

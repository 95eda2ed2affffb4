// internal/game/types.go
//
// Core type definitions for the Wordle round engine.
// Defines:
//   - Verdict: per-letter result of a guess (correct/present/absent).
//   - Outcome: lifecycle of a round (in progress → won / quit / exhausted).
//   - ReportKind + Report: structured outcome handed to the presentation layer.
//   - Dictionary: the word list contract a round consumes.

package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/random"
)

const (
	// WordLength is the fixed number of letters in every word.
	WordLength = 5
	// MaxAttempts is the number of non-winning valid guesses a round allows.
	MaxAttempts = 6
	// DefaultQuitToken ends a round without consuming an attempt.
	DefaultQuitToken = "no"
)

var (
	ErrRoundOver     = errors.New("round finished")
	ErrEmptyWordList = errors.New("word list is empty")
)

// Verdict represents the evaluation result for a single letter in a guess.
// Values are ordered so that a better verdict compares greater.
type Verdict int

const (
	Absent Verdict = iota
	Present
	CorrectPosition
)

func (v Verdict) String() string {
	switch v {
	case CorrectPosition:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// MarshalText encodes a verdict as its lowercase name.
func (v Verdict) MarshalText() ([]byte, error) {
	switch v {
	case Absent, Present, CorrectPosition:
		return []byte(v.String()), nil
	}
	return nil, fmt.Errorf("game: unknown verdict %d", int(v))
}

// UnmarshalText decodes a verdict name.
func (v *Verdict) UnmarshalText(b []byte) error {
	switch string(b) {
	case "correct":
		*v = CorrectPosition
	case "present":
		*v = Present
	case "absent":
		*v = Absent
	default:
		return fmt.Errorf("game: unknown verdict %q", string(b))
	}
	return nil
}

// Outcome is the state of a round.
// Transitions only go InProgress → {Won, LostQuit, LostExhausted}.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	LostQuit
	LostExhausted
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "playing"
	case Won:
		return "won"
	case LostQuit:
		return "quit"
	case LostExhausted:
		return "lost"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool { return o != InProgress }

// ReportKind tags what happened to a single submission.
type ReportKind int

const (
	ReportScored    ReportKind = iota // valid, non-winning guess; round continues
	ReportInvalid                     // rejected by validation; nothing changed
	ReportWon                         // guess matched the target
	ReportQuit                        // quit token or explicit quit
	ReportExhausted                   // last attempt used without a win
)

func (k ReportKind) String() string {
	switch k {
	case ReportScored:
		return "scored"
	case ReportInvalid:
		return "invalid"
	case ReportWon:
		return "won"
	case ReportQuit:
		return "quit"
	case ReportExhausted:
		return "exhausted"
	}
	return fmt.Sprintf("ReportKind(%d)", int(k))
}

// Report is what a round tells its caller after each submission.
// Target is only populated for ReportWon and ReportExhausted.
type Report struct {
	Kind         ReportKind
	Guess        string
	Verdicts     []Verdict
	Validation   Validation
	Attempts     int
	AttemptsLeft int
	Outcome      Outcome
	Target       string
}

// Dictionary is the word list a round validates against and draws from.
type Dictionary interface {
	Contains(word string) bool
	Draw(rnd random.Random) (string, error)
}

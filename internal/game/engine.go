// internal/game/engine.go
//
// Round controller for a single Wordle round.
// Responsibilities:
//   - Draw the secret target from a Dictionary when the round starts.
//   - Handle the quit token (ends the round, costs no attempt).
//   - Validate guesses (length, alphabetic, word list); invalid input changes nothing.
//   - Classify valid guesses and track the keyboard summary.
//   - Track state transitions: playing → won / quit / lost.
//
// The win check runs before the attempt counter is bumped, so a correct
// sixth guess still wins. A Round is owned by one caller and is not safe
// for concurrent use.
package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/random"
)

var ErrInvalidTarget = errors.New("target is not a valid word")

// Round holds the state of a single round.
type Round struct {
	id        string
	dict      Dictionary
	target    string
	quitToken string
	attempts  int
	outcome   Outcome
	guesses   []string
	keyboard  Keyboard
}

// Option customizes a new Round.
type Option func(*roundOptions)

type roundOptions struct {
	id        string
	target    string
	quitToken string
}

// WithTarget fixes the secret word instead of drawing one.
func WithTarget(word string) Option {
	return func(o *roundOptions) { o.target = word }
}

// WithQuitToken overrides DefaultQuitToken. Empty tokens are ignored.
func WithQuitToken(tok string) Option {
	return func(o *roundOptions) {
		if t := Normalize(tok); t != "" {
			o.quitToken = t
		}
	}
}

// WithID sets the round identifier instead of generating one.
func WithID(id string) Option {
	return func(o *roundOptions) { o.id = id }
}

// NewRound starts a round in InProgress with zero attempts.
// Unless WithTarget is given, the target is drawn from dict using rnd.
func NewRound(dict Dictionary, rnd random.Random, opts ...Option) (*Round, error) {
	o := roundOptions{quitToken: DefaultQuitToken}
	for _, opt := range opts {
		opt(&o)
	}
	if dict == nil {
		return nil, ErrEmptyWordList
	}

	target := Normalize(o.target)
	if target == "" {
		if rnd == nil {
			rnd = random.New()
		}
		w, err := dict.Draw(rnd)
		if err != nil {
			return nil, err
		}
		target = Normalize(w)
	}
	if !Validate(target, dict).Valid() {
		return nil, ErrInvalidTarget
	}

	id := o.id
	if id == "" {
		id = uuid.NewString()
	}
	return &Round{
		id:        id,
		dict:      dict,
		target:    target,
		quitToken: o.quitToken,
		keyboard:  Keyboard{},
	}, nil
}

// Submit applies one raw guess and reports what happened.
// Once the round is terminal it returns ErrRoundOver and changes nothing.
func (r *Round) Submit(raw string) (Report, error) {
	if r.outcome.Terminal() {
		return r.report(ReportInvalid, ""), ErrRoundOver
	}
	guess := Normalize(raw)
	if guess == r.quitToken {
		return r.Quit()
	}

	v := Validate(guess, r.dict)
	if !v.Valid() {
		rep := r.report(ReportInvalid, guess)
		rep.Validation = v
		return rep, nil
	}

	verdicts := Compare(guess, r.target)
	r.keyboard.Record(guess, verdicts)
	r.guesses = append(r.guesses, guess)

	kind := ReportScored
	switch {
	case guess == r.target:
		r.outcome = Won
		kind = ReportWon
	default:
		r.attempts++
		if r.attempts >= MaxAttempts {
			r.outcome = LostExhausted
			kind = ReportExhausted
		}
	}
	rep := r.report(kind, guess)
	rep.Validation = v
	rep.Verdicts = verdicts
	return rep, nil
}

// Quit ends the round as LostQuit without consuming an attempt.
func (r *Round) Quit() (Report, error) {
	if r.outcome.Terminal() {
		return r.report(ReportInvalid, ""), ErrRoundOver
	}
	r.outcome = LostQuit
	return r.report(ReportQuit, ""), nil
}

func (r *Round) report(kind ReportKind, guess string) Report {
	rep := Report{
		Kind:         kind,
		Guess:        guess,
		Attempts:     r.attempts,
		AttemptsLeft: r.AttemptsLeft(),
		Outcome:      r.outcome,
	}
	if r.outcome == Won || r.outcome == LostExhausted {
		rep.Target = r.target
	}
	return rep
}

// ID returns the round identifier.
func (r *Round) ID() string { return r.id }

// Attempts is the number of valid non-winning guesses so far.
func (r *Round) Attempts() int { return r.attempts }

// AttemptsLeft is MaxAttempts minus Attempts.
func (r *Round) AttemptsLeft() int { return MaxAttempts - r.attempts }

// Outcome returns the current state.
func (r *Round) Outcome() Outcome { return r.outcome }

// QuitToken returns the normalized quit token.
func (r *Round) QuitToken() string { return r.quitToken }

// Guesses returns the accepted guesses in order.
func (r *Round) Guesses() []string { return append([]string(nil), r.guesses...) }

// Keyboard returns a copy of the per-letter summary.
func (r *Round) Keyboard() Keyboard { return r.keyboard.clone() }

// Target reveals the secret word. Callers decide when showing it is appropriate.
func (r *Round) Target() string { return r.target }

// String is a short debug form that never leaks the target.
func (r *Round) String() string {
	return r.id + " " + r.outcome.String()
}

// internal/session/session.go
//
// Drives one round from an external guess source to an external
// presentation sink:
//
//   source → Round.Submit → sink → loop until the round is terminal
//
// The source is a simple pull ("give me the next guess"); the sink only ever
// receives structured game.Report values. Neither side does any game logic.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// GuessSource supplies one raw guess per call. io.EOF means no more input.
type GuessSource interface {
	NextGuess(ctx context.Context) (string, error)
}

// Sink receives every report produced by the round.
type Sink interface {
	Report(rep game.Report) error
}

// SourceFunc adapts a function to GuessSource.
type SourceFunc func(ctx context.Context) (string, error)

func (f SourceFunc) NextGuess(ctx context.Context) (string, error) { return f(ctx) }

// SinkFunc adapts a function to Sink.
type SinkFunc func(rep game.Report) error

func (f SinkFunc) Report(rep game.Report) error { return f(rep) }

// Run plays round to completion and returns its terminal outcome.
//
// When the source reports io.EOF the round is quit, which costs no attempt.
// Context cancellation and any other source or sink error stop the loop
// early; the round is then left as it was.
func Run(ctx context.Context, round *game.Round, src GuessSource, sink Sink) (game.Outcome, error) {
	logger := log.With().Str("round", round.ID()).Logger()

	for !round.Outcome().Terminal() {
		if err := ctx.Err(); err != nil {
			return round.Outcome(), err
		}

		raw, err := src.NextGuess(ctx)
		var rep game.Report
		switch {
		case errors.Is(err, io.EOF):
			rep, err = round.Quit()
		case err != nil:
			return round.Outcome(), fmt.Errorf("next guess: %w", err)
		default:
			rep, err = round.Submit(raw)
		}
		if err != nil {
			return round.Outcome(), err
		}

		logger.Debug().
			Str("kind", rep.Kind.String()).
			Str("guess", rep.Guess).
			Int("attempts", rep.Attempts).
			Msg("guess handled")

		if err := sink.Report(rep); err != nil {
			return round.Outcome(), fmt.Errorf("report: %w", err)
		}
	}

	logger.Info().
		Str("outcome", round.Outcome().String()).
		Int("attempts", round.Attempts()).
		Msg("round finished")
	return round.Outcome(), nil
}

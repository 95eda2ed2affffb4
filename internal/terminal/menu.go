package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/session"
)

// Menu is the interactive start/replay loop around rounds.
type Menu struct {
	In       *LineSource
	Out      io.Writer
	Renderer *Renderer
	// NewRound starts a fresh round each time the player says yes.
	NewRound func() (*game.Round, error)
}

// Run prompts until the player answers "no" or input ends, and returns how
// many rounds were won.
func (m *Menu) Run(ctx context.Context) (int, error) {
	wins := 0
	for {
		fmt.Fprintln(m.Out, "Start the game? (yes/no)")
		line, err := m.In.NextGuess(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return wins, err
		}

		switch game.Normalize(line) {
		case "no":
			fmt.Fprintln(m.Out, "Thanks for playing!")
			return wins, nil
		case "yes":
			round, err := m.NewRound()
			if err != nil {
				return wins, fmt.Errorf("new round: %w", err)
			}
			m.Renderer.Reset()
			fmt.Fprintf(m.Out, "Enter your word (%q to give up): \n", round.QuitToken())
			out, err := session.Run(ctx, round, m.In, m.Renderer)
			if err != nil {
				return wins, err
			}
			if out == game.Won {
				wins++
			}
		default:
			log.Debug().Str("input", line).Msg("unrecognised menu answer")
			fmt.Fprintln(m.Out, "Please enter yes or no")
		}
	}
	fmt.Fprintln(m.Out, "Thanks for playing!")
	return wins, nil
}

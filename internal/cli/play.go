package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/random"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/terminal"
)

func newPlayCmd(a *app) *cobra.Command {
	var answers, allowed, quitToken string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Logs go to stderr so they never interleave with the board.
			setupLogging(a.cfg.LogLevel, cmd.ErrOrStderr(), true)

			list, err := a.loadWords(answers, allowed)
			if err != nil {
				return fmt.Errorf("load words: %w", err)
			}
			if quitToken == "" {
				quitToken = a.cfg.QuitToken
			}
			rnd := random.New()

			out := cmd.OutOrStdout()
			menu := &terminal.Menu{
				In:       terminal.NewLineSource(cmd.InOrStdin()),
				Out:      out,
				Renderer: terminal.NewRenderer(out),
				NewRound: func() (*game.Round, error) {
					return game.NewRound(list, rnd, game.WithQuitToken(quitToken))
				},
			}
			_, err = menu.Run(cmd.Context())
			return err
		},
	}

	cmd.Flags().StringVar(&answers, "answers", "", "answer list file (env: WORDS_ANSWERS_FILE)")
	cmd.Flags().StringVar(&allowed, "allowed", "", "allowed guess list file (env: WORDS_ALLOWED_FILE)")
	cmd.Flags().StringVar(&quitToken, "quit-token", "", "guess that abandons a round (env: QUIT_TOKEN)")
	return cmd
}

package terminal

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/random"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

func testList(t *testing.T) *words.List {
	t.Helper()
	l, err := words.New([]string{"tango", "mango"}, []string{"cargo", "radar"})
	require.NoError(t, err)
	return l
}

func TestLineSource(t *testing.T) {
	src := NewLineSource(strings.NewReader("tango\n MANGO \n"))
	ctx := context.Background()

	g, err := src.NextGuess(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tango", g)

	g, err = src.NextGuess(ctx)
	require.NoError(t, err)
	assert.Equal(t, " MANGO ", g)

	_, err = src.NextGuess(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestRendererPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Report(game.Report{
		Kind:         game.ReportScored,
		Guess:        "mango",
		Verdicts:     game.Compare("mango", "tango"),
		AttemptsLeft: 5,
	}))
	out := buf.String()
	assert.Contains(t, out, " M  A  N  G  O ")
	assert.Contains(t, out, "Try again. Attempts left: 5")
	assert.Contains(t, out, " Q  W  E  R  T ")

	buf.Reset()
	require.NoError(t, r.Report(game.Report{
		Kind:       game.ReportInvalid,
		Guess:      "tan",
		Validation: game.Validation{Word: "tan", Problem: game.ProblemLength},
	}))
	assert.Equal(t, "Please enter a 5 letter valid word\n", buf.String())
}

func TestRendererKeyboardTracksReports(t *testing.T) {
	r := NewRenderer(io.Discard)
	require.NoError(t, r.Report(game.Report{
		Kind:     game.ReportScored,
		Guess:    "mango",
		Verdicts: game.Compare("mango", "tango"),
	}))
	assert.Equal(t, game.CorrectPosition, r.keyboard['a'])
	assert.Equal(t, game.Absent, r.keyboard['m'])

	r.Reset()
	assert.Empty(t, r.keyboard)
}

func TestMenuPlaysRounds(t *testing.T) {
	in := strings.Join([]string{"maybe", "yes", "tan", "mango", "tango", "yes", "no", "no"}, "\n")
	var out bytes.Buffer
	list := testList(t)

	m := &Menu{
		In:       NewLineSource(strings.NewReader(in)),
		Out:      &out,
		Renderer: NewRenderer(&out),
		NewRound: func() (*game.Round, error) {
			return game.NewRound(list, random.NewMockRandom(0))
		},
	}
	wins, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, wins)

	text := out.String()
	assert.Contains(t, text, "Please enter yes or no")
	assert.Contains(t, text, "Please enter a 5 letter valid word")
	assert.Contains(t, text, "Try again. Attempts left: 5")
	assert.Contains(t, text, "Congrats! the word was: tango")
	assert.Contains(t, text, "Round abandoned.")
	assert.True(t, strings.HasSuffix(text, "Thanks for playing!\n"))
}

func TestMenuEndsOnEOF(t *testing.T) {
	var out bytes.Buffer
	m := &Menu{
		In:       NewLineSource(strings.NewReader("yes\nmango\n")),
		Out:      &out,
		Renderer: NewRenderer(&out),
		NewRound: func() (*game.Round, error) {
			return game.NewRound(testList(t), random.NewMockRandom(0))
		},
	}
	wins, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, wins)
	assert.Contains(t, out.String(), "Round abandoned.")
	assert.Contains(t, out.String(), "Thanks for playing!")
}

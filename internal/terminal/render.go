// internal/terminal/render.go
//
// Terminal presentation for round reports.
// Verdicts become coloured tiles (green = correct spot, yellow = elsewhere in
// the word, grey = not in the word) followed by the status line and a
// keyboard summary. Colours degrade to plain text when the writer is not a TTY.

package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

const (
	colorCorrect = lipgloss.Color("#538d4e")
	colorPresent = lipgloss.Color("#b59f3b")
	colorAbsent  = lipgloss.Color("#3a3a3c")
	colorText    = lipgloss.Color("#ffffff")
)

var keyboardRows = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// Renderer writes reports to out. It keeps its own keyboard summary,
// rebuilt from the reports it sees; call Reset between rounds.
type Renderer struct {
	out      io.Writer
	styles   map[game.Verdict]lipgloss.Style
	plain    lipgloss.Style
	keyboard game.Keyboard
}

// NewRenderer creates a Renderer whose colour profile is detected from out.
func NewRenderer(out io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(out)
	tile := lr.NewStyle().Bold(true).Padding(0, 1).Foreground(colorText)
	return &Renderer{
		out: out,
		styles: map[game.Verdict]lipgloss.Style{
			game.CorrectPosition: tile.Background(colorCorrect),
			game.Present:         tile.Background(colorPresent),
			game.Absent:          tile.Background(colorAbsent),
		},
		plain:    lr.NewStyle().Padding(0, 1),
		keyboard: game.Keyboard{},
	}
}

// Reset clears the keyboard summary.
func (r *Renderer) Reset() { r.keyboard = game.Keyboard{} }

// Report renders one round report.
func (r *Renderer) Report(rep game.Report) error {
	var b strings.Builder
	switch rep.Kind {
	case game.ReportInvalid:
		b.WriteString(rep.Validation.Message())
		b.WriteString("\n")
	case game.ReportScored:
		r.keyboard.Record(rep.Guess, rep.Verdicts)
		b.WriteString(r.Tiles(rep.Guess, rep.Verdicts))
		fmt.Fprintf(&b, "\nTry again. Attempts left: %d\n", rep.AttemptsLeft)
		b.WriteString(r.Keyboard())
	case game.ReportWon:
		r.keyboard.Record(rep.Guess, rep.Verdicts)
		b.WriteString(r.Tiles(rep.Guess, rep.Verdicts))
		fmt.Fprintf(&b, "\nCongrats! the word was: %s\n", rep.Target)
	case game.ReportExhausted:
		r.keyboard.Record(rep.Guess, rep.Verdicts)
		b.WriteString(r.Tiles(rep.Guess, rep.Verdicts))
		fmt.Fprintf(&b, "\nYou reached max attempts. The word was: %s\n", rep.Target)
	case game.ReportQuit:
		b.WriteString("Round abandoned.\n")
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Tiles renders a guess as one coloured tile per letter.
func (r *Renderer) Tiles(guess string, verdicts []game.Verdict) string {
	letters := []rune(strings.ToUpper(guess))
	var b strings.Builder
	for i, l := range letters {
		style := r.plain
		if i < len(verdicts) {
			style = r.styles[verdicts[i]]
		}
		b.WriteString(style.Render(string(l)))
	}
	return b.String()
}

// Keyboard renders the letter summary, one keyboard row per line.
func (r *Renderer) Keyboard() string {
	var b strings.Builder
	for _, row := range keyboardRows {
		for _, k := range row {
			style := r.plain
			if v, ok := r.keyboard[k]; ok {
				style = r.styles[v]
			}
			b.WriteString(style.Render(strings.ToUpper(string(k))))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// internal/game/score.go
//
// Letter classification for a single guess against the target.
//
// Pass 1:
//   - Mark exact matches CorrectPosition and remove that target letter from the pool.
//
// Pass 2:
//   - For each unresolved guess letter: if the letter is still in the pool,
//     mark Present and consume its first remaining occurrence; otherwise Absent.
//
// A target letter is credited at most once, so for any letter the number of
// non-Absent verdicts never exceeds its count in the target.

package game

import (
	"fmt"
	"strings"
)

// Compare classifies every letter of guess against target.
// Both words are lower-cased first. guess and target must have the same
// number of letters; a mismatch means the caller skipped validation and panics.
func Compare(guess, target string) []Verdict {
	g := []rune(strings.ToLower(guess))
	pool := []rune(strings.ToLower(target))
	if len(g) != len(pool) {
		panic(fmt.Sprintf("game: compare %q against %q: length mismatch", guess, target))
	}

	out := make([]Verdict, len(g))
	resolved := make([]bool, len(g))

	for i := range g {
		if g[i] == pool[i] {
			out[i] = CorrectPosition
			resolved[i] = true
			pool[i] = 0
		}
	}

	for i := range g {
		if resolved[i] {
			continue
		}
		out[i] = Absent
		for j, r := range pool {
			if r != 0 && r == g[i] {
				out[i] = Present
				pool[j] = 0
				break
			}
		}
	}
	return out
}

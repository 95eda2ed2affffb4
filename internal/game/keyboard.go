package game

// Keyboard tracks the best verdict seen for each letter during a round,
// the way an on-screen keyboard colours its keys. Letters never downgrade.
type Keyboard map[rune]Verdict

// Record folds one classified guess into the keyboard.
func (k Keyboard) Record(guess string, verdicts []Verdict) {
	for i, r := range []rune(guess) {
		if i >= len(verdicts) {
			return
		}
		if prev, ok := k[r]; !ok || verdicts[i] > prev {
			k[r] = verdicts[i]
		}
	}
}

// Letters returns the keyboard keyed by single-letter strings, for JSON.
func (k Keyboard) Letters() map[string]Verdict {
	out := make(map[string]Verdict, len(k))
	for r, v := range k {
		out[string(r)] = v
	}
	return out
}

func (k Keyboard) clone() Keyboard {
	out := make(Keyboard, len(k))
	for r, v := range k {
		out[r] = v
	}
	return out
}

package game

import "errors"

var ErrBadSnapshot = errors.New("snapshot is inconsistent")

// Snapshot is the serializable state of an in-progress round.
// Stores persist snapshots between requests; terminal rounds are discarded
// rather than saved.
type Snapshot struct {
	ID        string   `json:"id"`
	Target    string   `json:"target"`
	QuitToken string   `json:"quitToken"`
	Attempts  int      `json:"attempts"`
	Outcome   Outcome  `json:"outcome"`
	Guesses   []string `json:"guesses"`
}

// Snapshot captures the round's state.
func (r *Round) Snapshot() Snapshot {
	return Snapshot{
		ID:        r.id,
		Target:    r.target,
		QuitToken: r.quitToken,
		Attempts:  r.attempts,
		Outcome:   r.outcome,
		Guesses:   r.Guesses(),
	}
}

// Restore rebuilds a round from a snapshot against dict.
// The keyboard is recomputed from the stored guesses. Terminal snapshots
// return ErrRoundOver; a target the dictionary rejects returns ErrInvalidTarget.
func Restore(s Snapshot, dict Dictionary) (*Round, error) {
	if s.Outcome.Terminal() {
		return nil, ErrRoundOver
	}
	if dict == nil {
		return nil, ErrEmptyWordList
	}
	if !Validate(s.Target, dict).Valid() {
		return nil, ErrInvalidTarget
	}
	if s.Attempts < 0 || s.Attempts >= MaxAttempts {
		return nil, ErrBadSnapshot
	}
	r := &Round{
		id:        s.ID,
		dict:      dict,
		target:    s.Target,
		quitToken: s.QuitToken,
		attempts:  s.Attempts,
		keyboard:  Keyboard{},
	}
	if r.quitToken == "" {
		r.quitToken = DefaultQuitToken
	}
	for _, g := range s.Guesses {
		if len([]rune(g)) != len([]rune(r.target)) {
			return nil, ErrBadSnapshot
		}
		r.keyboard.Record(g, Compare(g, r.target))
		r.guesses = append(r.guesses, g)
	}
	return r, nil
}

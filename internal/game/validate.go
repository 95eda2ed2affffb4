package game

import "strings"

// Problem identifies why a guess was rejected.
type Problem int

const (
	ProblemNone Problem = iota
	ProblemLength
	ProblemNotAlpha
	ProblemUnknownWord
)

func (p Problem) String() string {
	switch p {
	case ProblemNone:
		return ""
	case ProblemLength:
		return "wrong_length"
	case ProblemNotAlpha:
		return "not_alphabetic"
	case ProblemUnknownWord:
		return "not_in_word_list"
	}
	return "unknown"
}

// Validation is the result of checking one guess.
type Validation struct {
	Word    string
	Problem Problem
}

// Valid reports whether the guess passed every check.
func (v Validation) Valid() bool { return v.Problem == ProblemNone }

// Message is a human readable explanation of the problem, empty when valid.
func (v Validation) Message() string {
	switch v.Problem {
	case ProblemNone:
		return ""
	case ProblemUnknownWord:
		return "Not in word list"
	}
	return "Please enter a 5 letter valid word"
}

// Normalize trims surrounding whitespace and lower-cases a raw guess.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks a normalized guess: length first, then a–z only, then
// word list membership. The first failing check is reported.
func Validate(guess string, dict Dictionary) Validation {
	v := Validation{Word: guess}
	switch {
	case len([]rune(guess)) != WordLength:
		v.Problem = ProblemLength
	case !isAlpha(guess):
		v.Problem = ProblemNotAlpha
	case dict == nil || !dict.Contains(guess):
		v.Problem = ProblemUnknownWord
	}
	return v
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

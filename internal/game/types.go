// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Word:     a validated five-letter lowercase word.
//   - Mark:     per-letter result of a guess (green/yellow/gray).
//   - Feedback: the five marks produced for one guess.
//   - Status:   coarse session state (in_progress/won/lost).
//   - State, Info: snapshots handed to callers of a Session.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// WordLength is the number of letters in every word.
const WordLength = 5

// DefaultMaxAttempts is the number of guesses a session allows unless
// overridden with WithMaxAttempts.
const DefaultMaxAttempts = 6

var (
	ErrInvalidGuess    = errors.New("invalid guess")
	ErrInvalidTarget   = errors.New("invalid target word")
	ErrNoGame          = errors.New("no game in progress")
	ErrGameOver        = errors.New("game finished")
	ErrEmptyDictionary = errors.New("dictionary is empty")
	ErrInvalidFeedback = errors.New("invalid feedback pattern")
)

// Word is a five-letter, lowercase a–z word. Build one with ParseWord.
type Word string

// ParseWord trims and lowercases s and checks it is WordLength letters a–z.
func ParseWord(s string) (Word, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) != WordLength {
		return "", fmt.Errorf("%q: want %d letters, got %d", s, WordLength, len(w))
	}
	if !isAlpha(w) {
		return "", fmt.Errorf("%q: letters a-z only", s)
	}
	return Word(w), nil
}

// Valid reports whether w has the shape ParseWord guarantees.
func (w Word) Valid() bool {
	return len(w) == WordLength && isAlpha(string(w))
}

func (w Word) String() string { return string(w) }

// Mark represents the evaluation result for a single letter in a guess.
//   - "green":  letter is correct and in the correct position.
//   - "yellow": letter exists in the target but in a different position.
//   - "gray":   letter has no remaining occurrence in the target.
type Mark string

const (
	Green  Mark = "green"
	Yellow Mark = "yellow"
	Gray   Mark = "gray"
)

// Code returns the single-letter code used in feedback patterns (g/y/b).
func (m Mark) Code() byte {
	switch m {
	case Green:
		return 'g'
	case Yellow:
		return 'y'
	default:
		return 'b'
	}
}

// Feedback is the ordered list of marks for one guess, aligned by position.
type Feedback [WordLength]Mark

// Solved reports whether every mark is Green.
func (f Feedback) Solved() bool {
	for _, m := range f {
		if m != Green {
			return false
		}
	}
	return true
}

// String renders the feedback as a g/y/b pattern, e.g. "bggbg".
func (f Feedback) String() string {
	var b [WordLength]byte
	for i, m := range f {
		b[i] = m.Code()
	}
	return string(b[:])
}

// Emoji renders the feedback with the usual square glyphs.
func (f Feedback) Emoji() string {
	var sb strings.Builder
	for _, m := range f {
		switch m {
		case Green:
			sb.WriteString("🟩")
		case Yellow:
			sb.WriteString("🟨")
		default:
			sb.WriteString("⬜")
		}
	}
	return sb.String()
}

// ParseFeedback reads a pattern of WordLength letters. Accepted codes:
// g/+ green, y/~ yellow, b/x/-/. gray (case-insensitive).
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	p := strings.ToLower(strings.TrimSpace(s))
	if len(p) != WordLength {
		return fb, fmt.Errorf("%w: %q must have %d marks", ErrInvalidFeedback, s, WordLength)
	}
	for i := 0; i < WordLength; i++ {
		switch p[i] {
		case 'g', '+':
			fb[i] = Green
		case 'y', '~':
			fb[i] = Yellow
		case 'b', 'x', '-', '.':
			fb[i] = Gray
		default:
			return fb, fmt.Errorf("%w: %q has unknown mark %q", ErrInvalidFeedback, s, p[i])
		}
	}
	return fb, nil
}

// Status is the coarse state of a session.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// State is a read-only snapshot of a session. Slices are copies owned by
// the caller.
type State struct {
	ID                string     `json:"id" yaml:"id"`
	Status            Status     `json:"status" yaml:"status"`
	Guesses           []Word     `json:"guesses" yaml:"guesses"`
	Feedback          []Feedback `json:"feedback" yaml:"feedback"`
	AttemptsUsed      int        `json:"attemptsUsed" yaml:"attempts_used"`
	AttemptsRemaining int        `json:"attemptsRemaining" yaml:"attempts_remaining"`
	Candidates        []Word     `json:"candidates" yaml:"candidates"`
	Target            Word       `json:"target,omitempty" yaml:"target,omitempty"` // empty until terminal
}

// Info accompanies every Step.
type Info struct {
	Solved              bool `json:"solved"`
	AttemptsUsed        int  `json:"attemptsUsed"`
	Target              Word `json:"target,omitempty"` // empty until terminal
	ValidGuess          bool `json:"validGuess"`
	CandidatesRemaining int  `json:"candidatesRemaining"`
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// idx maps a lowercase ASCII letter to 0..25, or -1.
func idx(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}

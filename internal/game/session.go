// internal/game/session.go
//
// Game session for a single Wordle game at a time.
// Responsibilities:
//   - Start games with a fixed or random target (Reset).
//   - Validate and apply guesses (length, alphabetic, dictionary membership).
//   - Score guesses with Score and narrow the candidate set with Filter.
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - A Session is owned by one goroutine. Run one Session per worker for
//     concurrent games; the Dictionary may be shared between them.
//   - The target is withheld from State and Info until the game ends.
package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand/v2"

	"github.com/google/uuid"
)

// Option configures a Session.
type Option func(*Session)

// WithMaxAttempts sets the number of guesses per game. Values below 1 are
// ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithRand makes random target selection use r instead of crypto/rand,
// which gives reproducible games for a fixed seed.
func WithRand(r *mrand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// Session holds the state of one game against a shared Dictionary.
type Session struct {
	dict        *Dictionary
	maxAttempts int
	rng         *mrand.Rand

	id         string
	started    bool
	target     Word
	guesses    []Word
	feedback   []Feedback
	candidates CandidateSet
	status     Status
}

// NewSession constructs a session over dict. Call Reset to start a game.
func NewSession(dict *Dictionary, opts ...Option) *Session {
	s := &Session{dict: dict, maxAttempts: DefaultMaxAttempts}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Dictionary returns the word list the session plays with.
func (s *Session) Dictionary() *Dictionary { return s.dict }

// MaxAttempts is the number of guesses allowed per game.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Reset starts a new game and discards the previous one.
// If target is empty, one is chosen uniformly at random from the dictionary.
// A target outside the dictionary is accepted as long as it is a valid word,
// but it can never be guessed.
func (s *Session) Reset(target string) (State, error) {
	var t Word
	if target == "" {
		if s.dict.Len() == 0 {
			return State{}, ErrEmptyDictionary
		}
		t = s.dict.At(s.randomIndex(s.dict.Len()))
	} else {
		w, err := ParseWord(target)
		if err != nil {
			return State{}, fmt.Errorf("%w: %v", ErrInvalidTarget, err)
		}
		t = w
	}

	s.id = uuid.NewString()
	s.started = true
	s.target = t
	s.guesses = nil
	s.feedback = nil
	s.candidates = NewCandidateSet(s.dict)
	s.status = StatusInProgress
	return s.State(), nil
}

// Step validates and scores a guess, then updates the session.
// Returns the new state, whether the game is over, and the step info.
//
// Validation rules:
//   - A game must have been started with Reset (ErrNoGame).
//   - The game must not be finished (ErrGameOver, done is true).
//   - The guess must be WordLength letters a–z and in the dictionary
//     (ErrInvalidGuess).
//
// A rejected guess leaves the state untouched and consumes no attempt;
// Info.ValidGuess is false.
//
// State transitions:
//   - guess == target → won.
//   - else attempts used reaches the maximum → lost.
func (s *Session) Step(guess string) (State, bool, Info, error) {
	if !s.started {
		return State{}, false, Info{}, ErrNoGame
	}
	if s.status.Terminal() {
		return s.State(), true, s.info(false), ErrGameOver
	}

	w, err := ParseWord(guess)
	if err != nil {
		return s.State(), false, s.info(false), fmt.Errorf("%w: %v", ErrInvalidGuess, err)
	}
	if !s.dict.Contains(w) {
		return s.State(), false, s.info(false), fmt.Errorf("%w: %q not in word list", ErrInvalidGuess, w)
	}

	fb := Score(s.target, w)
	s.guesses = append(s.guesses, w)
	s.feedback = append(s.feedback, fb)
	s.candidates = s.candidates.Filter(w, fb)

	switch {
	case w == s.target:
		s.status = StatusWon
	case len(s.guesses) >= s.maxAttempts:
		s.status = StatusLost
	}
	return s.State(), s.status.Terminal(), s.info(true), nil
}

// State returns a snapshot of the current game. All slices are copies.
func (s *Session) State() State {
	st := State{
		ID:                s.id,
		Status:            s.status,
		Guesses:           append([]Word{}, s.guesses...),
		Feedback:          append([]Feedback{}, s.feedback...),
		AttemptsUsed:      len(s.guesses),
		AttemptsRemaining: s.maxAttempts - len(s.guesses),
		Candidates:        s.candidates.Words(),
	}
	if s.status.Terminal() {
		st.Target = s.target
	}
	return st
}

// Candidates returns a copy of the words still consistent with every guess.
func (s *Session) Candidates() []Word { return s.candidates.Words() }

// Status reports the coarse game state.
func (s *Session) Status() Status { return s.status }

func (s *Session) info(valid bool) Info {
	in := Info{
		Solved:              s.status == StatusWon,
		AttemptsUsed:        len(s.guesses),
		ValidGuess:          valid,
		CandidatesRemaining: s.candidates.Len(),
	}
	if s.status.Terminal() {
		in.Target = s.target
	}
	return in
}

// randomIndex returns a uniform index in [0, n).
func (s *Session) randomIndex(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

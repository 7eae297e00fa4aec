// internal/agent/agent.go
//
// Baseline guessing policies used as benchmarks by the evaluator and as the
// "let the computer play" option of the play command.
//
//   - Random:    uniform choice among the remaining candidates.
//   - Frequency: the most frequent remaining candidate.
//
// Both fall back to the full dictionary when the candidate set is empty,
// which can only happen if the target is not a dictionary word.

package agent

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/robalobadob/wordler/internal/game"
)

// Agent picks the next guess from a session snapshot.
type Agent interface {
	Name() string
	ChooseWord(st game.State) string
}

// ErrUnknown is returned by New for an unrecognised agent name.
var ErrUnknown = errors.New("unknown agent")

// Names lists the agents New can build.
func Names() []string { return []string{"random", "frequency"} }

// New builds an agent by name. rng may be nil; it is only used by Random.
func New(name string, dict *game.Dictionary, rng *rand.Rand) (Agent, error) {
	switch name {
	case "random":
		return NewRandom(dict, rng), nil
	case "frequency":
		return NewFrequency(dict), nil
	}
	return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknown, name, Names())
}

// Random guesses uniformly among the candidates. Not safe for concurrent
// use when built with a non-nil rng.
type Random struct {
	dict *game.Dictionary
	rng  *rand.Rand
}

// NewRandom returns a Random agent. A nil rng uses the package-level source.
func NewRandom(dict *game.Dictionary, rng *rand.Rand) *Random {
	return &Random{dict: dict, rng: rng}
}

func (a *Random) Name() string { return "random" }

func (a *Random) ChooseWord(st game.State) string {
	pool := st.Candidates
	if len(pool) == 0 {
		pool = a.dict.Words()
	}
	if len(pool) == 0 {
		return ""
	}
	return string(pool[a.intN(len(pool))])
}

func (a *Random) intN(n int) int {
	if a.rng != nil {
		return a.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Frequency always guesses the most frequent candidate; ties go to the word
// that comes first in dictionary order.
type Frequency struct {
	dict     *game.Dictionary
	fallback game.Word
}

// NewFrequency returns a Frequency agent over dict.
func NewFrequency(dict *game.Dictionary) *Frequency {
	a := &Frequency{dict: dict}
	a.fallback = a.best(dict.Words())
	return a
}

func (a *Frequency) Name() string { return "frequency" }

func (a *Frequency) ChooseWord(st game.State) string {
	if len(st.Candidates) == 0 {
		return string(a.fallback)
	}
	return string(a.best(st.Candidates))
}

func (a *Frequency) best(words []game.Word) game.Word {
	var best game.Word
	bestFreq := -1
	for _, w := range words {
		if f := a.dict.Frequency(w); f > bestFreq {
			best, bestFreq = w, f
		}
	}
	return best
}

// Ranked returns words ordered by descending frequency, keeping the input
// order for ties. The input is not modified.
func Ranked(dict *game.Dictionary, words []game.Word) []game.Word {
	out := append([]game.Word(nil), words...)
	sort.SliceStable(out, func(i, j int) bool {
		return dict.Frequency(out[i]) > dict.Frequency(out[j])
	})
	return out
}

// internal/game/filter.go
//
// Candidate filter: turns one (guess, feedback) pair into per-letter
// constraints and tests words against them.
//
// Notes:
//   - Constraints are derived from the guess and its feedback only; the word
//     under test is looked at in Match.
//   - A gray letter caps its count at the number of green/yellow copies of
//     the same letter in the guess. It only means "absent" when no copy of
//     the letter is green or yellow.

package game

// unbounded is larger than any possible letter count in a word.
const unbounded = WordLength + 1

// Constraints is what a single scored guess proves about the target.
type Constraints struct {
	greens   [WordLength]byte // 0 when the position is not green
	minCount [26]int
	maxCount [26]int
	excluded [26]uint8 // bit i set: the letter is not at position i
	seen     [26]bool  // letter appears in the guess
}

// NewConstraints aggregates the feedback for guess letter by letter.
// Letters may mix statuses within one guess (e.g. one green and one gray
// 'e'); all copies contribute to the same counters.
func NewConstraints(guess Word, fb Feedback) Constraints {
	var c Constraints
	for i := range c.maxCount {
		c.maxCount[i] = unbounded
	}

	var gray [26]bool
	n := min(len(guess), WordLength)
	for i := 0; i < n; i++ {
		j := idx(guess[i])
		if j < 0 {
			continue
		}
		c.seen[j] = true
		switch fb[i] {
		case Green:
			c.greens[i] = guess[i]
			c.minCount[j]++
		case Yellow:
			c.minCount[j]++
			c.excluded[j] |= 1 << i
		default:
			// A gray tile is never the target letter at that position.
			gray[j] = true
			c.excluded[j] |= 1 << i
		}
	}
	for j, g := range gray {
		if g {
			c.maxCount[j] = c.minCount[j]
		}
	}
	return c
}

// Match reports whether word satisfies every constraint.
func (c Constraints) Match(word Word) bool {
	if len(word) != WordLength {
		return false
	}
	var counts [26]int
	for i := 0; i < WordLength; i++ {
		j := idx(word[i])
		if j < 0 {
			return false
		}
		if g := c.greens[i]; g != 0 && word[i] != g {
			return false
		}
		if c.excluded[j]&(1<<i) != 0 {
			return false
		}
		counts[j]++
	}
	for j, ok := range c.seen {
		if !ok {
			continue
		}
		if counts[j] < c.minCount[j] || counts[j] > c.maxCount[j] {
			return false
		}
	}
	return true
}

// IsConsistent reports whether word could be the target given that guess
// was scored as fb.
func IsConsistent(word, guess Word, fb Feedback) bool {
	return NewConstraints(guess, fb).Match(word)
}

// FilterWords returns the words consistent with (guess, fb), preserving
// order. The input slice is not modified; the result may be empty.
func FilterWords(words []Word, guess Word, fb Feedback) []Word {
	cons := NewConstraints(guess, fb)
	out := make([]Word, 0, len(words))
	for _, w := range words {
		if cons.Match(w) {
			out = append(out, w)
		}
	}
	return out
}

// internal/game/feedback.go
//
// Feedback oracle: scores a guess against a target using the classic
// two-pass Wordle algorithm.

package game

// Score compares guess against target and returns the per-letter marks.
//
// Pass 1:
//   - Mark exact matches as Green.
//   - Count the remaining (non-green) target letters.
//
// Pass 2:
//   - For each non-green guess letter: if the target still has an unused
//     occurrence of that letter, mark Yellow and consume it; otherwise Gray.
//
// With m copies of a letter in the guess and n < m in the target, exactly n
// copies are coloured (greens first, then yellows left to right).
//
// Score is pure. Positions outside the shorter input, or holding anything but
// a–z, are Gray.
func Score(target, guess Word) Feedback {
	var fb Feedback
	var counts [26]int

	n := min(len(target), len(guess), WordLength)

	// First pass: hits, and counts for the target letters they did not use.
	for i := 0; i < n; i++ {
		if guess[i] == target[i] && idx(guess[i]) >= 0 {
			fb[i] = Green
		} else if j := idx(target[i]); j >= 0 {
			counts[j]++
		}
	}

	// Second pass: presents/misses for the remaining tiles.
	for i := 0; i < WordLength; i++ {
		if fb[i] == Green {
			continue
		}
		fb[i] = Gray
		if i >= len(guess) {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			fb[i] = Yellow
			counts[j]--
		}
	}
	return fb
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsConsistentMatrix(t *testing.T) {
	tests := []struct {
		name  string
		guess Word
		fb    string
		word  Word
		want  bool
	}{
		// No repeated letters.
		{"all gray rejects shared letter", "about", "bbbbb", "crane", false},
		{"all gray accepts disjoint word", "about", "bbbbb", "creed", true},
		{"green must match", "crane", "gbbbb", "chomp", true},
		{"green mismatch", "crane", "gbbbb", "shlep", false},
		{"yellow must be present", "crane", "ybbbb", "dicks", true},
		{"yellow missing", "crane", "ybbbb", "disks", false},
		{"yellow not at its own position", "crane", "ybbbb", "cisks", false},

		// One repeated letter in the guess.
		{"green+gray caps count at one", "erase", "bggbg", "crane", true},
		{"green+gray rejects second copy", "erase", "bggbg", "erane", false},
		{"gray copy excludes its position", "erase", "bggbg", "eraze", false},
		{"yellow+gray means exactly one", "eerie", "ybybb", "alert", true},
		{"yellow+gray rejects two copies", "eerie", "ybybb", "egret", false},
		{"yellow+gray rejects zero copies", "eerie", "ybybb", "tardy", false},
		{"yellow+yellow needs two copies", "eagle", "ybbyy", "level", true},
		{"yellow+yellow rejects one copy", "eagle", "ybbyy", "lemur", false},
		{"green+green needs both", "speed", "bbggb", "queen", true},
		{"green+green rejects one", "speed", "bbggb", "there", false},
		{"green+yellow", "geese", "ygbbg", "eerie", false},

		// Two repeated letters / triple copies.
		{"green+yellow+gray for one letter", "tepee", "yybgb", "eaten", true},
		{"green+yellow+gray rejects excluded slot", "tepee", "yybgb", "elite", false},
		{"two greens and a gray", "geese", "bggbb", "needy", true},
		{"two greens and a gray rejects third copy", "geese", "bggbb", "teeme", false},
		{"double pair yellows", "babes", "yyggb", "abbey", true},
		{"double pair yellows rejects single b", "babes", "yyggb", "abled", false},

		// Edge cases.
		{"malformed word never matches", "crane", "bbbbb", "zz", false},
		{"non-alpha word never matches", "crane", "bbbbb", "zzz1z", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb, err := ParseFeedback(tc.fb)
			require.NoError(t, err)
			assert.Equal(t, tc.want, IsConsistent(tc.word, tc.guess, fb))
		})
	}
}

// IsConsistent must agree with re-scoring: w is consistent with the guess
// exactly when scoring the guess against w reproduces the observed marks.
func TestIsConsistentAgreesWithScore(t *testing.T) {
	for _, target := range testWords {
		for _, guess := range testWords {
			fb := Score(target, guess)
			for _, w := range testWords {
				want := Score(w, guess) == fb
				if !assert.Equal(t, want, IsConsistent(w, guess, fb), "target=%s guess=%s word=%s fb=%s", target, guess, w, fb) {
					return
				}
			}
		}
	}
}

func TestFilterSoundness(t *testing.T) {
	for _, target := range testWords {
		for _, guess := range testWords {
			got := FilterWords(testWords, guess, Score(target, guess))
			assert.Contains(t, got, target, "guess=%s", guess)
		}
	}
}

func TestFilterMonotonic(t *testing.T) {
	dict := newTestDictionary()
	for _, target := range testWords {
		set := NewCandidateSet(dict)
		for _, guess := range []Word{"slate", "crane", "eerie", "motto"} {
			next := set.Filter(guess, Score(target, guess))
			assert.LessOrEqual(t, next.Len(), set.Len())
			assert.True(t, next.Contains(target))
			set = next
		}
	}
}

func TestFilterWordsLeavesInputAlone(t *testing.T) {
	in := []Word{"crane", "creed", "about"}
	out := FilterWords(in, "about", Feedback{Gray, Gray, Gray, Gray, Gray})
	assert.Equal(t, []Word{"creed"}, out)
	assert.Equal(t, []Word{"crane", "creed", "about"}, in)
}

func TestFilterNoSurvivorsGivesEmptySet(t *testing.T) {
	set := NewCandidateSet(newTestDictionary()).Filter("zzzzz", Score("zzzzz", "zzzzz"))
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Words())
	assert.Empty(t, FilterWords(testWords, "zzzzz", Score("zzzzz", "zzzzz")))
}

func TestCandidateSetFilterDoesNotMutate(t *testing.T) {
	full := NewCandidateSet(newTestDictionary())
	before := full.Len()
	_ = full.Filter("about", Score("creed", "about"))
	assert.Equal(t, before, full.Len())
	assert.Equal(t, len(testWords), before)
}

func TestZeroCandidateSet(t *testing.T) {
	var c CandidateSet
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Contains("crane"))
	assert.Empty(t, c.Filter("crane", Score("crane", "crane")).Words())
}

func newTestDictionary() *Dictionary {
	entries := make([]Entry, 0, len(testWords))
	for i, w := range testWords {
		entries = append(entries, Entry{Word: w, Frequency: len(testWords) - i})
	}
	return NewDictionary(entries)
}

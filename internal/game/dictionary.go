// internal/game/dictionary.go
//
// Dictionary: the immutable word list a session validates guesses against
// and draws targets from. Built once by a loader (see internal/words) and
// shared read-only by any number of sessions.

package game

// Entry is one dictionary word with its corpus frequency.
type Entry struct {
	Word      Word `yaml:"word"`
	Frequency int  `yaml:"count"`
}

// Dictionary is an ordered, duplicate-free list of valid words plus a
// frequency per word. It is never mutated after NewDictionary returns.
type Dictionary struct {
	words []Word
	freq  []int
	index map[Word]int
}

// NewDictionary builds a Dictionary from entries, keeping their order.
// Entries that are not valid words are skipped; for duplicates the first
// entry wins. Negative frequencies are clamped to zero.
func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{
		words: make([]Word, 0, len(entries)),
		freq:  make([]int, 0, len(entries)),
		index: make(map[Word]int, len(entries)),
	}
	for _, e := range entries {
		if !e.Word.Valid() {
			continue
		}
		if _, dup := d.index[e.Word]; dup {
			continue
		}
		d.index[e.Word] = len(d.words)
		d.words = append(d.words, e.Word)
		d.freq = append(d.freq, max(e.Frequency, 0))
	}
	return d
}

// Len is the number of words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Contains reports whether w is a dictionary word.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.Index(w)
	return ok
}

// Index returns the position of w in load order.
func (d *Dictionary) Index(w Word) (int, bool) {
	if d == nil {
		return 0, false
	}
	i, ok := d.index[w]
	return i, ok
}

// At returns the i-th word in load order.
func (d *Dictionary) At(i int) Word { return d.words[i] }

// Frequency returns the corpus count for w (0 if unknown).
func (d *Dictionary) Frequency(w Word) int {
	if i, ok := d.Index(w); ok {
		return d.freq[i]
	}
	return 0
}

// Words returns a copy of all words in load order.
func (d *Dictionary) Words() []Word {
	if d == nil {
		return nil
	}
	return append([]Word(nil), d.words...)
}

// Frequencies returns a copy of the word -> frequency mapping.
func (d *Dictionary) Frequencies() map[Word]int {
	out := make(map[Word]int, d.Len())
	for i, w := range d.words {
		out[w] = d.freq[i]
	}
	return out
}

// internal/game/candidates.go
//
// CandidateSet: the dictionary words still possible in a game, stored as a
// bitset over dictionary indices. Filtering produces a new set; an existing
// set is never modified, so snapshots handed out earlier stay valid.

package game

import "github.com/bits-and-blooms/bitset"

// CandidateSet is a subset of one Dictionary.
type CandidateSet struct {
	dict *Dictionary
	bits *bitset.BitSet
}

// NewCandidateSet returns the set holding every word of d.
func NewCandidateSet(d *Dictionary) CandidateSet {
	n := uint(d.Len())
	b := bitset.New(n)
	for i := uint(0); i < n; i++ {
		b.Set(i)
	}
	return CandidateSet{dict: d, bits: b}
}

// Len is the number of candidates.
func (c CandidateSet) Len() int {
	if c.bits == nil {
		return 0
	}
	return int(c.bits.Count())
}

// Contains reports whether w is still a candidate.
func (c CandidateSet) Contains(w Word) bool {
	i, ok := c.dict.Index(w)
	return ok && c.bits != nil && c.bits.Test(uint(i))
}

// Words lists the candidates in dictionary order. The slice is a fresh copy.
func (c CandidateSet) Words() []Word {
	out := make([]Word, 0, c.Len())
	c.each(func(i uint) { out = append(out, c.dict.At(int(i))) })
	return out
}

// Filter returns the candidates consistent with guess scored as fb.
// The result is never larger than c and may be empty.
func (c CandidateSet) Filter(guess Word, fb Feedback) CandidateSet {
	out := CandidateSet{dict: c.dict, bits: bitset.New(uint(c.dict.Len()))}
	cons := NewConstraints(guess, fb)
	c.each(func(i uint) {
		if cons.Match(c.dict.At(int(i))) {
			out.bits.Set(i)
		}
	})
	return out
}

func (c CandidateSet) each(fn func(i uint)) {
	if c.bits == nil {
		return
	}
	for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
		fn(i)
	}
}

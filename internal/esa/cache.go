// internal/esa/cache.go
package esa

// The cache maps every k-mer over {A,C,G,T} to the lcp-interval reached
// after consuming it, filled by one top-down traversal of the interval
// tree. 2-bit codes cannot express N, so any subtree whose edge crosses
// an N stays at the miss sentinel, as does every k-mer absent from the
// reference.

var baseCode [256]int8

func init() {
	for i := range baseCode {
		baseCode[i] = -1
	}
	baseCode['A'] = 0
	baseCode['C'] = 1
	baseCode['G'] = 2
	baseCode['T'] = 3
}

func encodeKmer(kmer []byte) (uint32, bool) {
	var idx uint32
	for _, b := range kmer {
		c := baseCode[b]
		if c < 0 {
			return 0, false
		}
		idx = idx<<2 | uint32(c)
	}
	return idx, true
}

func (e *ESA) buildCache() {
	size := 1 << (2 * e.kmerLen)
	e.cache = make([]Interval, size)
	miss := Interval{I: -1, J: -1}
	for i := range e.cache {
		e.cache[i] = miss
	}
	e.fillCache(e.Root(), 0, 0)
}

// fillCache records iv for its k-mer once d characters have been fixed.
// Invariant: the prefix shared by iv matches the d bases encoded in idx,
// all of them in {A,C,G,T}.
func (e *ESA) fillCache(iv Interval, d int32, idx uint32) {
	k := int32(e.kmerLen)
	ext := e.depth(iv)
	if ext > k {
		ext = k
	}
	p := e.SA[iv.I]
	for ; d < ext; d++ {
		c := baseCode[e.T[p+d]]
		if c < 0 {
			return
		}
		idx = idx<<2 | uint32(c)
	}
	if d == k {
		e.cache[idx] = Interval{I: iv.I, J: iv.J, L: k}
		return
	}
	if iv.I == iv.J {
		// Suffix shorter than k; no k-mer starts here.
		return
	}
	for _, child := range e.Children(iv) {
		e.fillCache(child, d, idx)
	}
}

// internal/esa/match.go
package esa

// Match returns the longest prefix of q that occurs in the reference,
// as the lcp-interval of that prefix with L set to its length.
// I == J iff the prefix is unique in the reference. A cache miss for
// the leading k-mer means no suffix starts with it; the empty interval
// (I = -1, L = 0) is returned for that position.
func (e *ESA) Match(q []byte) Interval {
	if len(q) >= e.kmerLen {
		if idx, ok := encodeKmer(q[:e.kmerLen]); ok {
			ent := e.cache[idx]
			if ent.I < 0 {
				return Interval{I: -1, J: -1, L: 0}
			}
			return e.matchFrom(ent, ent.L, q)
		}
	}
	return e.matchFrom(e.Root(), 0, q)
}

// matchFrom walks the interval tree starting at cur with the first k
// bytes of q already matched. Per step it bulk-compares the query
// against the current interval's shared prefix, then descends through
// the child table. Singleton intervals extend by direct comparison
// against the single remaining suffix.
func (e *ESA) matchFrom(cur Interval, k int32, q []byte) Interval {
	m := int32(len(q))
	for {
		l := e.depth(cur)
		if m < l {
			l = m
		}
		p := e.SA[cur.I]
		for ; k < l; k++ {
			if !BasesMatch(e.T[p+k], q[k]) {
				cur.L = k
				return cur
			}
		}
		if k == m || cur.I == cur.J {
			cur.L = k
			return cur
		}
		child, ok := e.getInterval(cur, q[k])
		if !ok {
			cur.L = k
			return cur
		}
		cur = child
		k++
	}
}

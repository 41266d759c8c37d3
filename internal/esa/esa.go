// internal/esa/esa.go
package esa

import (
	"errors"

	"github.com/kloetzl/TUMmer/internal/sais"
)

// DefaultCacheK is the k-mer length of the top-level interval cache.
const DefaultCacheK = 10

var ErrEmptyText = errors.New("esa: empty reference text")

// Interval is an lcp-interval: SA positions I..J share a prefix of
// length L. I == J means the prefix occurs exactly once.
type Interval struct {
	I, J int32
	L    int32
}

// ESA is an enhanced suffix array over a reference text. It borrows T,
// owns SA/LCP/child/cache, and is immutable after New; concurrent
// readers may share it freely.
type ESA struct {
	T   []byte
	SA  []int32
	LCP []int32 // len(T)+1 entries, LCP[0] = LCP[n] = -1
	cld []int32

	kmerLen int
	cache   []Interval
}

// New builds the full index: suffix array, LCP array, child table and
// the k-mer interval cache. cacheK <= 0 selects DefaultCacheK.
func New(t []byte, cacheK int) (*ESA, error) {
	if len(t) == 0 {
		return nil, ErrEmptyText
	}
	if cacheK <= 0 {
		cacheK = DefaultCacheK
	}
	e := &ESA{
		T:       t,
		SA:      sais.Sort(t),
		kmerLen: cacheK,
	}
	e.LCP = buildLCP(t, e.SA)
	e.cld = buildChildTable(e.LCP)
	e.buildCache()
	return e, nil
}

// Root returns the interval covering the whole suffix array.
func (e *ESA) Root() Interval {
	return Interval{I: 0, J: int32(len(e.T)) - 1}
}

// buildLCP is Kasai's algorithm. The inverse permutation is scoped to
// this function and released afterwards.
func buildLCP(t []byte, sa []int32) []int32 {
	n := len(t)
	lcp := make([]int32, n+1)
	isa := make([]int32, n)
	for i, p := range sa {
		isa[p] = int32(i)
	}
	lcp[0] = -1
	lcp[n] = -1
	var l int32
	for i := 0; i < n; i++ {
		j := isa[i]
		if j == 0 {
			continue
		}
		k := int(sa[j-1])
		for k+int(l) < n && i+int(l) < n && t[k+int(l)] == t[i+int(l)] {
			l++
		}
		lcp[j] = l
		l--
		if l < 0 {
			l = 0
		}
	}
	return lcp
}

// buildChildTable folds the up/down/next-l-index fields of the
// lcp-interval tree into one array, one pass over LCP with a stack
// monotone in lcp value. lcp must carry the -1 sentinels at both ends.
func buildChildTable(lcp []int32) []int32 {
	n := len(lcp) - 1
	cld := make([]int32, n+1)
	cld[0] = int32(n)

	type ent struct{ idx, lcp int32 }
	stack := make([]ent, 0, 64)
	stack = append(stack, ent{0, -1})
	top := func() ent { return stack[len(stack)-1] }
	pop := func() ent {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return e
	}

	for i := int32(1); i <= int32(n); i++ {
		for lcp[i] < top().lcp {
			last := pop()
			for top().lcp == last.lcp {
				cld[top().idx] = last.idx
				last = pop()
			}
			if lcp[i] < top().lcp {
				cld[top().idx] = last.idx
			} else {
				cld[i-1] = last.idx
			}
		}
		stack = append(stack, ent{i, lcp[i]})
	}
	return cld
}

// firstLIndex returns the first l-index of a non-singleton interval,
// the one holding its lcp value.
func (e *ESA) firstLIndex(iv Interval) int32 {
	if e.LCP[iv.I] <= e.LCP[iv.J+1] {
		return e.cld[iv.J]
	}
	return e.cld[iv.I]
}

// depth is the length of the prefix shared by every suffix in iv.
func (e *ESA) depth(iv Interval) int32 {
	if iv.I == iv.J {
		return int32(len(e.T)) - e.SA[iv.I]
	}
	return e.LCP[e.firstLIndex(iv)]
}

// Children enumerates the child intervals of a non-singleton interval
// in suffix-array order.
func (e *ESA) Children(iv Interval) []Interval {
	if iv.I >= iv.J {
		return nil
	}
	m := e.firstLIndex(iv)
	l := e.LCP[m]
	var out []Interval
	k := iv.I
	for e.LCP[m] == l {
		out = append(out, Interval{I: k, J: m - 1})
		k = m
		if k == iv.J {
			break
		}
		m = e.cld[m]
	}
	out = append(out, Interval{I: k, J: iv.J})
	return out
}

// getInterval locates the child of a non-singleton interval whose edge
// starts with c. There is no text sentinel, so the character read is
// bounds-guarded: a suffix ending exactly at the split depth matches
// nothing.
func (e *ESA) getInterval(iv Interval, c byte) (Interval, bool) {
	i, j := iv.I, iv.J
	m := e.firstLIndex(iv)
	l := e.LCP[m]
	n := int32(len(e.T))
	k := i
	for e.LCP[m] == l {
		if p := e.SA[k] + l; p < n && BasesMatch(e.T[p], c) {
			return Interval{I: k, J: m - 1}, true
		}
		k = m
		if k == j {
			break
		}
		m = e.cld[m]
	}
	if p := e.SA[k] + l; p < n && BasesMatch(e.T[p], c) {
		return Interval{I: k, J: j}, true
	}
	return Interval{}, false
}

// BasesMatch is the match predicate shared with anchor extension:
// N never matches, not even N itself.
func BasesMatch(a, b byte) bool {
	return a == b && a != 'N'
}

// internal/sais/sais.go
package sais

// Sort returns the suffix array of text: a permutation of [0,len(text))
// such that the suffixes text[sa[i]:] are in strict lexicographic order
// over raw bytes. The SA-IS sentinel is internal; the result has exactly
// len(text) entries.
func Sort(text []byte) []int32 {
	n := len(text)
	if n == 0 {
		return []int32{}
	}
	// Shift the alphabet by one so 0 is free for the sentinel.
	s := make([]int32, n+1)
	for i, b := range text {
		s[i] = int32(b) + 1
	}
	s[n] = 0
	sa := build(s, 257)
	// Drop the sentinel suffix, which always sorts first.
	return sa[1:]
}

func build(s []int32, k int32) []int32 {
	n := len(s)
	sa := make([]int32, n)
	for i := range sa {
		sa[i] = -1
	}
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	// Classify suffixes: t[i] is true for S-type.
	t := make([]bool, n)
	t[n-1] = true
	for i := n - 2; i >= 0; i-- {
		if s[i] < s[i+1] {
			t[i] = true
		} else if s[i] == s[i+1] {
			t[i] = t[i+1]
		}
	}

	var lms []int32
	for i := 1; i < n; i++ {
		if t[i] && !t[i-1] {
			lms = append(lms, int32(i))
		}
	}

	induce(s, sa, t, k, lms)

	// Name the LMS substrings in their sorted order.
	var sortedLMS []int32
	for _, p := range sa {
		if p > 0 && t[p] && !t[p-1] {
			sortedLMS = append(sortedLMS, p)
		}
	}
	names := make([]int32, n)
	for i := range names {
		names[i] = -1
	}
	var name int32
	prev := int32(-1)
	for _, p := range sortedLMS {
		if prev >= 0 && !lmsEqual(s, t, prev, p) {
			name++
		}
		names[p] = name
		prev = p
	}
	numNames := name + 1

	reduced := make([]int32, len(lms))
	for i, p := range lms {
		reduced[i] = names[p]
	}

	var reducedSA []int32
	if int(numNames) < len(reduced) {
		reducedSA = build(reduced, numNames)
	} else {
		reducedSA = make([]int32, len(reduced))
		for i, nm := range reduced {
			reducedSA[nm] = int32(i)
		}
	}

	ordered := make([]int32, len(reducedSA))
	for i, idx := range reducedSA {
		ordered[i] = lms[idx]
	}
	for i := range sa {
		sa[i] = -1
	}
	induce(s, sa, t, k, ordered)
	return sa
}

// induce performs one round of induced sorting: place the given LMS
// suffixes at their bucket tails, then induce L-types left to right and
// S-types right to left.
func induce(s []int32, sa []int32, t []bool, k int32, lms []int32) {
	sizes := bucketSizes(s, k)

	tails := bucketTails(sizes)
	for i := len(lms) - 1; i >= 0; i-- {
		p := lms[i]
		c := s[p]
		sa[tails[c]] = p
		tails[c]--
	}

	heads := bucketHeads(sizes)
	for i := 0; i < len(sa); i++ {
		p := sa[i]
		if p > 0 && !t[p-1] {
			c := s[p-1]
			sa[heads[c]] = p - 1
			heads[c]++
		}
	}

	tails = bucketTails(sizes)
	for i := len(sa) - 1; i >= 0; i-- {
		p := sa[i]
		if p > 0 && t[p-1] {
			c := s[p-1]
			sa[tails[c]] = p - 1
			tails[c]--
		}
	}
}

func bucketSizes(s []int32, k int32) []int32 {
	sizes := make([]int32, k)
	for _, c := range s {
		sizes[c]++
	}
	return sizes
}

func bucketHeads(sizes []int32) []int32 {
	heads := make([]int32, len(sizes))
	var sum int32
	for i, v := range sizes {
		heads[i] = sum
		sum += v
	}
	return heads
}

func bucketTails(sizes []int32) []int32 {
	tails := make([]int32, len(sizes))
	var sum int32
	for i, v := range sizes {
		sum += v
		tails[i] = sum - 1
	}
	return tails
}

// lmsEqual compares the LMS substrings starting at i and j, ends inclusive.
func lmsEqual(s []int32, t []bool, i, j int32) bool {
	n := int32(len(s))
	isLMS := func(p int32) bool { return p > 0 && t[p] && !t[p-1] }
	for d := int32(0); i+d < n && j+d < n; d++ {
		if s[i+d] != s[j+d] {
			return false
		}
		if d > 0 {
			iEnd := isLMS(i + d)
			jEnd := isLMS(j + d)
			if iEnd && jEnd {
				return true
			}
			if iEnd != jEnd {
				return false
			}
		}
	}
	return false
}

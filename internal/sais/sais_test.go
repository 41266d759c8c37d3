// internal/sais/sais_test.go
package sais

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"
)

func naiveSA(text []byte) []int32 {
	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(a, b int) bool {
		return bytes.Compare(text[sa[a]:], text[sa[b]:]) < 0
	})
	return sa
}

func checkAgainstNaive(t *testing.T, text []byte) {
	t.Helper()
	got := Sort(text)
	want := naiveSA(text)
	if len(got) != len(want) {
		t.Fatalf("len(SA) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SA[%d] = %d, want %d (text %q)", i, got[i], want[i], text)
		}
	}
}

func TestSortSmall(t *testing.T) {
	for _, s := range []string{
		"A",
		"AA",
		"ACGT",
		"ACACACAC",
		"AAAACGTAAAA",
		"ACGTACGTACGTACGT",
		"AACCNGGTT",
		"NNNN",
		"TTTTTTTT",
		"GATTACA",
	} {
		checkAgainstNaive(t, []byte(s))
	}
}

func TestSortEmpty(t *testing.T) {
	if got := Sort(nil); len(got) != 0 {
		t.Fatalf("expected empty SA, got %v", got)
	}
}

func TestSortIsPermutation(t *testing.T) {
	text := []byte("ACGTACGTAACCGGTTNACGT")
	sa := Sort(text)
	seen := make([]bool, len(text))
	for _, p := range sa {
		if p < 0 || int(p) >= len(text) {
			t.Fatalf("SA entry %d out of range", p)
		}
		if seen[p] {
			t.Fatalf("SA entry %d duplicated", p)
		}
		seen[p] = true
	}
}

// Random DNA exercises the recursive reduction path.
func TestSortRandomDNA(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const bases = "ACGTN"
	for round := 0; round < 20; round++ {
		n := 50 + rng.Intn(500)
		text := make([]byte, n)
		for i := range text {
			text[i] = bases[rng.Intn(len(bases))]
		}
		checkAgainstNaive(t, text)
	}
}

// internal/mum/mum.go
package mum

import (
	"github.com/kloetzl/TUMmer/internal/esa"
)

// Anchor is a maximal unique match: 0-based reference and query
// positions plus its length. Output adds 1 to both positions.
type Anchor struct {
	RefPos   int
	QueryPos int
	Len      int
}

// Scan walks every query position, resolves the longest
// reference-matching prefix and collects the anchors that are unique
// in the reference and at least threshold long. Anchors come out in
// strictly increasing query position.
//
// The advance skips one past the match end, so MUMs overlapping a
// previous match in the query are deliberately dropped.
func Scan(e *esa.ESA, query []byte, threshold int) []Anchor {
	var out []Anchor
	qlen := len(query)

	pos := 0
	for pos < qlen {
		inter := e.Match(query[pos:])

		length := int(inter.L)
		if length < 0 {
			length = 0
		}
		qpos := pos

		if length > 0 {
			s := int(e.SA[inter.I])
			// Extend to the left on the reference side; the match is
			// already right-maximal. Extension stops at reference
			// position 0 rather than reading past the buffer.
			for qpos > 0 && s > 0 && esa.BasesMatch(query[qpos-1], e.T[s-1]) {
				s--
				qpos--
				length++
			}

			if inter.I == inter.J && length >= threshold {
				out = append(out, Anchor{RefPos: s, QueryPos: qpos, Len: length})
			}
		}

		pos = qpos + length + 1
	}
	return out
}

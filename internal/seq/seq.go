// internal/seq/seq.go
package seq

import (
	"errors"
	"fmt"
	"math"
)

// LengthLimit is the longest sequence the index can address.
const LengthLimit = (math.MaxInt32 - 1) / 2

var (
	ErrEmpty   = errors.New("empty sequence")
	ErrTooLong = fmt.Errorf("sequence longer than the technical limit of %d", LengthLimit)
)

// Sequence is an immutable named DNA string over {A,C,G,T,N}.
// Data is normalized at construction and must not be mutated afterwards;
// the ESA borrows it by reference.
type Sequence struct {
	Name string
	Data []byte
}

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
	complement['N'] = 'N'
}

// Normalize uppercases raw and maps every byte outside {A,C,G,T} to 'N'.
// The returned flag reports whether any substitution happened.
func Normalize(raw []byte) ([]byte, bool) {
	out := make([]byte, len(raw))
	subst := false
	for i, b := range raw {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		switch b {
		case 'A', 'C', 'G', 'T':
			out[i] = b
		default:
			out[i] = 'N'
			subst = true
		}
	}
	return out, subst
}

// New builds a normalized Sequence. The flag reports non-ACGT input.
func New(name string, raw []byte) (Sequence, bool) {
	data, subst := Normalize(raw)
	return Sequence{Name: name, Data: data}, subst
}

// Validate enforces the limits the index relies on.
func (s Sequence) Validate() error {
	if len(s.Data) == 0 {
		return fmt.Errorf("sequence %s: %w", s.Name, ErrEmpty)
	}
	if len(s.Data) > LengthLimit {
		return fmt.Errorf("sequence %s: %w", s.Name, ErrTooLong)
	}
	return nil
}

// GC returns the fraction of C and G over all non-N bases.
// An all-N sequence gets the neutral 0.5; this only feeds the
// anchor-length threshold.
func (s Sequence) GC() float64 {
	var cg, acgt int
	for _, b := range s.Data {
		switch b {
		case 'C', 'G':
			cg++
			acgt++
		case 'A', 'T':
			acgt++
		}
	}
	if acgt == 0 {
		return 0.5
	}
	return float64(cg) / float64(acgt)
}

// RevComp returns the reverse complement. Length is preserved, N maps to N.
func RevComp(data []byte) []byte {
	n := len(data)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[data[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// Join concatenates records into one sequence carrying the given name.
func Join(name string, seqs []Sequence) Sequence {
	total := 0
	for _, s := range seqs {
		total += len(s.Data)
	}
	data := make([]byte, 0, total)
	for _, s := range seqs {
		data = append(data, s.Data...)
	}
	return Sequence{Name: name, Data: data}
}

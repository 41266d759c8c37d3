// internal/seq/seq_test.go
package seq

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	got, subst := Normalize([]byte("acgtACGT"))
	if !bytes.Equal(got, []byte("ACGTACGT")) {
		t.Fatalf("Normalize = %q", got)
	}
	if subst {
		t.Error("pure acgt input should not raise the substitution flag")
	}

	got, subst = Normalize([]byte("ACGU-ryx"))
	if !bytes.Equal(got, []byte("ACGNNNNN")) {
		t.Fatalf("Normalize = %q", got)
	}
	if !subst {
		t.Error("expected substitution flag")
	}
}

func TestGC(t *testing.T) {
	s := Sequence{Data: []byte("ACGT")}
	if gc := s.GC(); gc != 0.5 {
		t.Errorf("GC(ACGT) = %v", gc)
	}
	s = Sequence{Data: []byte("GGCC")}
	if gc := s.GC(); gc != 1.0 {
		t.Errorf("GC(GGCC) = %v", gc)
	}
	// N-only sequences fall back to the neutral value.
	s = Sequence{Data: []byte("NNNN")}
	if gc := s.GC(); gc != 0.5 {
		t.Errorf("GC(NNNN) = %v", gc)
	}
	s = Sequence{Data: []byte("AANCG")}
	if gc := s.GC(); math.Abs(gc-0.5) > 1e-12 {
		t.Errorf("GC(AANCG) = %v", gc)
	}
}

func TestRevComp(t *testing.T) {
	if got := RevComp([]byte("AACGTN")); !bytes.Equal(got, []byte("NACGTT")) {
		t.Fatalf("RevComp = %q", got)
	}
}

func TestRevCompInvolution(t *testing.T) {
	for _, s := range []string{"", "A", "ACGT", "AACGTNNGT", "TTTTACGN"} {
		in := []byte(s)
		out := RevComp(RevComp(in))
		if !bytes.Equal(out, in) && len(in) > 0 {
			t.Errorf("revcomp(revcomp(%q)) = %q", in, out)
		}
	}
}

func TestValidate(t *testing.T) {
	s := Sequence{Name: "x"}
	if err := s.Validate(); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	s = Sequence{Name: "y", Data: []byte("ACGT")}
	if err := s.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestJoin(t *testing.T) {
	a, _ := New("a", []byte("ACGT"))
	b, _ := New("b", []byte("TTTT"))
	j := Join("chr1", []Sequence{a, b})
	if j.Name != "chr1" {
		t.Errorf("name = %q", j.Name)
	}
	if !bytes.Equal(j.Data, []byte("ACGTTTTT")) {
		t.Errorf("data = %q", j.Data)
	}
}

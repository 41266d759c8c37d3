// internal/pipeline/pipeline_test.go
package pipeline

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/kloetzl/TUMmer/internal/esa"
	"github.com/kloetzl/TUMmer/internal/seq"
)

func buildIndex(t *testing.T, ref string) *esa.ESA {
	t.Helper()
	e, err := esa.New([]byte(ref), 0)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestRunEmitsOneBlockPerQuery(t *testing.T) {
	index := buildIndex(t, "AAAACGTAAAA")
	queries := []seq.Sequence{
		{Name: "q1", Data: []byte("CGTGG")},
		{Name: "q2", Data: []byte("ACGTA")},
		{Name: "q3", Data: []byte("TTTTT")},
	}

	var out bytes.Buffer
	cfg := Config{Threads: 2, Forward: true, Threshold: 3}
	if err := Run(context.Background(), cfg, index, queries, &out, io.Discard); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	for _, h := range []string{"> q1\n", "> q2\n", "> q3\n"} {
		if strings.Count(got, h) != 1 {
			t.Fatalf("header %q missing or duplicated:\n%s", h, got)
		}
	}
	// Blocks are written whole: every anchor line belongs to the
	// header above it, so parsing line by line never sees an anchor
	// before the first header.
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "> ") {
		t.Fatalf("stream does not start with a header:\n%s", got)
	}
}

func TestRunBothDirections(t *testing.T) {
	index := buildIndex(t, "AAAACCCGGGTTTT")
	queries := []seq.Sequence{{Name: "q", Data: []byte("AAAA")}}

	var out bytes.Buffer
	cfg := Config{Threads: 1, Forward: true, Revcomp: true, Threshold: 4}
	if err := Run(context.Background(), cfg, index, queries, &out, io.Discard); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	fwd := strings.Index(got, "> q\n")
	rev := strings.Index(got, "> q Reverse\n")
	if fwd < 0 || rev < 0 {
		t.Fatalf("missing block:\n%s", got)
	}
	if rev < fwd {
		t.Fatalf("reverse block before forward block of the same query:\n%s", got)
	}
}

func TestRunCancelled(t *testing.T) {
	index := buildIndex(t, "AAAACGTAAAA")
	queries := []seq.Sequence{{Name: "q", Data: []byte("CGTGG")}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Config{Threads: 1, Forward: true, Threshold: 3}, index, queries, io.Discard, io.Discard)
	if err == nil {
		t.Fatal("expected context error")
	}
}

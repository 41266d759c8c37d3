// internal/fasta/reader_test.go
package fasta

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	path := write(t, "in.fa", ">s1 some description\nACGT\nacgt\n>s2\nTTxTT\n")
	seqs, subst, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(seqs) != 2 {
		t.Fatalf("got %d sequences", len(seqs))
	}
	if seqs[0].Name != "s1" {
		t.Errorf("name = %q, want first header word", seqs[0].Name)
	}
	if !bytes.Equal(seqs[0].Data, []byte("ACGTACGT")) {
		t.Errorf("seq 1 = %q", seqs[0].Data)
	}
	if !bytes.Equal(seqs[1].Data, []byte("TTNTT")) {
		t.Errorf("seq 2 = %q", seqs[1].Data)
	}
	if !subst {
		t.Error("expected substitution flag for the x residue")
	}
}

func TestReadFileJoin(t *testing.T) {
	path := write(t, "chr1.fna", ">a\nAAAA\n>b\nCCCC\n")
	joined, ok, _, err := ReadFileJoin(path)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if joined.Name != "chr1" {
		t.Errorf("name = %q, want chr1", joined.Name)
	}
	if !bytes.Equal(joined.Data, []byte("AAAACCCC")) {
		t.Errorf("data = %q", joined.Data)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"path/chr1.fna":    "chr1",
		"chr2.fa.gz":       "chr2",
		"/a/b/c/genome":    "genome",
		"-":                "-",
		"dir.v2/plain.txt": "plain",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Errorf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

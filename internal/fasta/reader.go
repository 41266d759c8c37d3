// internal/fasta/reader.go
package fasta

import (
	"io"
	"path/filepath"
	"strings"

	bioseq "github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"

	"github.com/kloetzl/TUMmer/internal/seq"
)

// ReadFile reads every record of one FASTA file as a normalized
// Sequence. path "-" reads stdin; gzip input is transparent. The flag
// reports whether any record contained non-ACGT residues. A malformed
// record aborts the remainder of the file; sequences read so far are
// returned alongside the error so the caller can warn and continue.
func ReadFile(path string) ([]seq.Sequence, bool, error) {
	reader, err := fastx.NewReader(bioseq.Unlimit, path, "")
	if err != nil {
		return nil, false, err
	}
	defer reader.Close()

	var (
		out   []seq.Sequence
		subst bool
	)
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				return out, subst, nil
			}
			return out, subst, err
		}
		s, sub := seq.New(string(record.ID), record.Seq.Seq)
		out = append(out, s)
		subst = subst || sub
	}
}

// ReadFileJoin reads one file and concatenates its records into a
// single sequence named after the file stem. A file without any
// readable record yields ok=false and is skipped by the caller.
func ReadFileJoin(path string) (seq.Sequence, bool, bool, error) {
	seqs, subst, err := ReadFile(path)
	if len(seqs) == 0 {
		return seq.Sequence{}, false, subst, err
	}
	return seq.Join(Stem(path), seqs), true, subst, err
}

// Stem derives the joined-sequence name from a file path: the part of
// the base name before its first dot. path/chr1.fna -> chr1.
func Stem(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

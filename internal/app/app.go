// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/profile"
	flag "github.com/spf13/pflag"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/kloetzl/TUMmer/internal/cli"
	"github.com/kloetzl/TUMmer/internal/cmdutil"
	"github.com/kloetzl/TUMmer/internal/config"
	"github.com/kloetzl/TUMmer/internal/esa"
	"github.com/kloetzl/TUMmer/internal/fasta"
	"github.com/kloetzl/TUMmer/internal/pipeline"
	"github.com/kloetzl/TUMmer/internal/seq"
	"github.com/kloetzl/TUMmer/internal/shustring"
	"github.com/kloetzl/TUMmer/internal/version"
	"github.com/kloetzl/TUMmer/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("tummer", outw)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "tummer %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if opts.ConfigFile != "" {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		cfg.Apply(&opts, fs.Changed)
	}

	// -p mirrors the original strtod handling: malformed or
	// out-of-range values are warned about and skipped, not fatal.
	if opts.PValueRaw != "" {
		v, err := strconv.ParseFloat(opts.PValueRaw, 64)
		switch {
		case err != nil:
			cmdutil.Warnf(stderr, "expected a floating point number for -p argument, but %q was given; skipping argument", opts.PValueRaw)
		case v < 0.0 || v > 1.0:
			cmdutil.Warnf(stderr, "a probability should be a value between 0 and 1; ignoring -p %f argument", v)
		default:
			opts.PValue = v
		}
	}

	switch opts.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "block":
		defer profile.Start(profile.BlockProfile, profile.ProfilePath(".")).Stop()
	}

	sequences, substituted := readInputs(opts, stderr)

	if len(sequences) < 2 {
		cmdutil.Warnf(stderr, "I am truly sorry, but with less than two sequences (%d given) there is nothing to compare.", len(sequences))
		return 1
	}

	if substituted {
		cmdutil.Warnf(stderr, "The input sequences contained characters other than acgtACGT. These were mapped to N to ensure correct results.")
	}

	for _, s := range sequences {
		if err := s.Validate(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 1
		}
	}

	cmdutil.Verbosef(stderr, opts.Verbose >= 1, "Comparing %d sequences", len(sequences))

	subject := sequences[0]
	queries := sequences[1:]

	index, err := esa.New(subject.Data, opts.CacheSize)
	if err != nil {
		cmdutil.Warnf(stderr, "Failed to create index for %s.", subject.Name)
		return 1
	}

	threshold := opts.MinLength
	if threshold == 0 {
		threshold = shustring.MinAnchorLength(opts.PValue, subject.GC(), len(subject.Data))
	}

	pcfg := pipeline.Config{
		Threads:      opts.Threads,
		Forward:      opts.Forward,
		Revcomp:      opts.Revcomp,
		Threshold:    threshold,
		ExtraVerbose: opts.Verbose >= 2,
	}

	// The bar goes to a real stderr only; under test harnesses and
	// redirections the periodic render would just shred the log.
	var progress *mpb.Progress
	if _, isFile := stderr.(*os.File); opts.Verbose >= 1 && isFile {
		progress = mpb.New(mpb.WithOutput(stderr), mpb.WithWidth(40))
		pcfg.Bar = progress.AddBar(int64(len(queries)),
			mpb.PrependDecorators(decor.Name("scanning")),
			mpb.AppendDecorators(decor.CountersNoUnit("%d / %d")),
		)
	}

	err = pipeline.Run(parent, pcfg, index, queries, outw, stderr)
	if progress != nil {
		// Abort is a no-op on a completed bar; on a cancelled run it
		// unblocks Wait.
		pcfg.Bar.Abort(true)
		progress.Wait()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// readInputs runs the original read loop: every named file in order,
// stdin when no files are given, and in join mode stdin as one extra
// input when only a single file was named. Unreadable files warn and
// are skipped; a malformed record warns and ends its file, keeping the
// records read before it. Too few readable sequences is diagnosed by
// the caller.
func readInputs(opts cli.Options, stderr io.Writer) ([]seq.Sequence, bool) {
	var (
		sequences   []seq.Sequence
		substituted bool
	)

	minfiles := 1
	if opts.Join {
		minfiles = 2
	}

	next := 0
	for ; ; minfiles-- {
		var name string
		if next >= len(opts.Files) {
			if minfiles <= 0 {
				break
			}
			name = "-"
		} else {
			name = opts.Files[next]
			next++
		}

		if opts.Join {
			joined, ok, subst, err := fasta.ReadFileJoin(name)
			substituted = substituted || subst
			if err != nil {
				cmdutil.Warnf(stderr, "%s: %v", name, err)
			}
			if ok {
				sequences = append(sequences, joined)
			}
		} else {
			seqs, subst, err := fasta.ReadFile(name)
			substituted = substituted || subst
			if err != nil {
				cmdutil.Warnf(stderr, "%s: %v", name, err)
			}
			sequences = append(sequences, seqs...)
		}
	}

	return sequences, substituted
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

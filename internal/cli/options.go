// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/kloetzl/TUMmer/internal/esa"
	"github.com/kloetzl/TUMmer/internal/version"
)

// Options holds all CLI flags and arguments. It is immutable once
// parsing and config-file merging are done and is threaded through the
// driver; there is no process-wide flag state.
type Options struct {
	// Scan direction
	Forward bool
	Revcomp bool

	// Input
	Join  bool
	Files []string

	// Anchors
	MinLength int
	PValue    float64
	PValueRaw string // unparsed -p argument; resolved by the app so bad values warn instead of abort

	// Performance
	Threads   int
	CacheSize int
	Profile   string

	// Misc
	ConfigFile string
	Verbose    int
	Version    bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help
// written to out.
func NewFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out,
			`Usage: %s [-bjvr] [-p FLOAT] [-l INT] FILES...

FILES... can be any sequence of FASTA files. If no files are supplied,
stdin is used instead. The first provided sequence is used as the
reference. Version: %s

Options:
%s`, name, version.Version, fs.FlagUsages())
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var both, reverse, help bool

	fs.BoolVarP(&both, "both", "b", false, "compute forward and reverse complement matches")
	fs.BoolVarP(&reverse, "reverse", "r", false, "compute only reverse complement matches")
	fs.BoolVarP(&opt.Join, "join", "j", false, "treat all sequences from one file as a single genome")
	fs.IntVarP(&opt.MinLength, "min-length", "l", 0, "minimum length of a MUM; uses p-value by default")
	fs.StringVarP(&opt.PValueRaw, "p-value", "p", "", "significance of a MUM (default 0.05)")
	fs.IntVarP(&opt.Threads, "threads", "t", 0, "number of worker threads (0 = all CPUs)")
	fs.IntVarP(&opt.CacheSize, "cache-size", "k", esa.DefaultCacheK, "k-mer length of the match cache")
	fs.StringVar(&opt.ConfigFile, "config", "", "TOML file with flag defaults")
	fs.StringVar(&opt.Profile, "profile", "", "enable profiling, one of cpu|mem|block")
	fs.CountVarP(&opt.Verbose, "verbose", "v", "print additional information; twice for per-pair progress")
	fs.BoolVar(&opt.Version, "version", false, "output version information and exit")
	fs.BoolVarP(&help, "help", "h", false, "display this help and exit")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Files = fs.Args()
	opt.PValue = 0.05

	// -r clears the forward scan; -b turns both on regardless.
	opt.Forward = !reverse
	opt.Revcomp = reverse
	if both {
		opt.Forward = true
		opt.Revcomp = true
	}

	// Validation
	if opt.MinLength < 0 {
		return opt, errors.New("--min-length must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.CacheSize < 1 || opt.CacheSize > 15 {
		return opt, errors.New("--cache-size must be between 1 and 15")
	}
	switch opt.Profile {
	case "", "cpu", "mem", "block":
	default:
		return opt, fmt.Errorf("invalid --profile %q", opt.Profile)
	}
	if opt.Join && len(opt.Files) == 0 {
		return opt, errors.New("in join mode at least one filename needs to be supplied")
	}
	return opt, nil
}

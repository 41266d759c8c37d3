// internal/config/config.go
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/kloetzl/TUMmer/internal/cli"
)

// File carries optional defaults loaded from a TOML file. Pointer
// fields distinguish "absent" from zero values; an explicit flag on
// the command line always wins over the file.
type File struct {
	MinLength *int     `toml:"min_length"`
	PValue    *float64 `toml:"p_value"`
	Threads   *int     `toml:"threads"`
	CacheSize *int     `toml:"cache_size"`
	Both      *bool    `toml:"both"`
	Reverse   *bool    `toml:"reverse"`
	Join      *bool    `toml:"join"`
}

// Load decodes path and rejects unknown keys.
func Load(path string) (File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		return f, fmt.Errorf("config %s: unknown key %q", path, undec[0].String())
	}
	return f, nil
}

// Apply copies file values into opt for every flag the user did not
// set explicitly; changed reports whether a flag was given on the
// command line.
func (f File) Apply(opt *cli.Options, changed func(name string) bool) {
	if f.MinLength != nil && !changed("min-length") {
		opt.MinLength = *f.MinLength
	}
	if f.PValue != nil && opt.PValueRaw == "" {
		opt.PValue = *f.PValue
	}
	if f.Threads != nil && !changed("threads") {
		opt.Threads = *f.Threads
	}
	if f.CacheSize != nil && !changed("cache-size") {
		opt.CacheSize = *f.CacheSize
	}
	if f.Join != nil && !changed("join") {
		opt.Join = *f.Join
	}
	if !changed("both") && !changed("reverse") {
		both := f.Both != nil && *f.Both
		reverse := f.Reverse != nil && *f.Reverse
		if reverse {
			opt.Forward = false
			opt.Revcomp = true
		}
		if both {
			opt.Forward = true
			opt.Revcomp = true
		}
	}
}

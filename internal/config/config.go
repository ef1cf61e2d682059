package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dreamware/vanity/internal/match"
	"github.com/dreamware/vanity/internal/search"
)

// ErrUsage is returned for command line mistakes: unknown flags, a missing or
// repeated target word, or values that do not parse.
var ErrUsage = errors.New("usage error")

// Options is the fully resolved invocation.
type Options struct {
	Search search.Config // Resolved search configuration
	Quiet  bool          // Suppress lifecycle logging
}

// File mirrors the YAML configuration file. Pointer fields distinguish an
// absent key from an explicit zero value.
type File struct {
	Target     *string `yaml:"target"`
	IgnoreCase *bool   `yaml:"ignore_case"`
	Exit       *bool   `yaml:"exit"`
	Threads    *int    `yaml:"threads"`
	Stat       *int    `yaml:"stat"` // Seconds between throughput reports
	Quiet      *bool   `yaml:"quiet"`
}

// ReadFile decodes the YAML file at path. Unknown keys are rejected so a typo
// does not silently fall back to a default.
func ReadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var file File
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

// flags holds the raw values bound to the flag set.
type flags struct {
	threads    int
	ignoreCase bool
	exit       bool
	stat       int
	quiet      bool
	configPath string
}

// Load resolves args (without the program name) and the environment seen
// through getenv into Options. Usage text and parse errors are written to
// stderr. flag.ErrHelp is returned unchanged when help was requested.
//
// When ignore-case is requested the returned target is already folded.
func Load(args []string, getenv func(string) string, stderr io.Writer) (Options, error) {
	fs, fl := newFlagSet(stderr)

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Options{}, err
		}
		return Options{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return Options{}, fmt.Errorf("%w: expected one target word, got %d", ErrUsage, len(positional))
	}

	opts := Options{
		Search: search.Config{Workers: runtime.NumCPU()},
	}
	var target *string

	// YAML file
	path := fl.configPath
	if path == "" {
		path = getenv("VANITY_CONFIG")
	}
	if path != "" {
		file, err := ReadFile(path)
		if err != nil {
			return Options{}, err
		}
		if err := applyFile(&opts, file); err != nil {
			return Options{}, err
		}
		target = file.Target
	}

	// Environment
	if err := applyEnv(&opts, getenv); err != nil {
		return Options{}, err
	}

	// Flags, only those given explicitly
	var stat time.Duration
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t", "threads":
			opts.Search.Workers = fl.threads
		case "i", "ignore-case":
			opts.Search.IgnoreCase = fl.ignoreCase
		case "e", "exit":
			opts.Search.StopOnMatch = fl.exit
		case "s", "stat":
			stat, flagErr = seconds(fl.stat)
			opts.Search.ReportInterval = stat
		case "quiet":
			opts.Quiet = fl.quiet
		}
	})
	if flagErr != nil {
		return Options{}, flagErr
	}
	if len(positional) == 1 {
		target = &positional[0]
	}

	if target == nil {
		return Options{}, fmt.Errorf("%w: target word is required", ErrUsage)
	}
	opts.Search.Target = *target
	if opts.Search.IgnoreCase {
		opts.Search.Target = match.Fold(opts.Search.Target)
	}

	if err := opts.Search.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *flags) {
	fl := &flags{}
	fs := flag.NewFlagSet("vanity", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&fl.threads, "threads", 0, "number of threads for lookup (default: number of CPUs)")
	fs.IntVar(&fl.threads, "t", 0, "shorthand for -threads")
	fs.BoolVar(&fl.ignoreCase, "ignore-case", false, "ignore case distinctions")
	fs.BoolVar(&fl.ignoreCase, "i", false, "shorthand for -ignore-case")
	fs.BoolVar(&fl.exit, "exit", false, "exit on first match")
	fs.BoolVar(&fl.exit, "e", false, "shorthand for -exit")
	fs.IntVar(&fl.stat, "stat", 0, "print generate stats every `seconds`")
	fs.IntVar(&fl.stat, "s", 0, "shorthand for -stat")
	fs.BoolVar(&fl.quiet, "quiet", false, "disable lifecycle logging")
	fs.StringVar(&fl.configPath, "config", "", "YAML configuration `file`")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `vanity: search for ed25519 keypairs whose base58 public key starts with a word

Usage:
  vanity [flags] <word>

Matches are printed to stdout as "<public key> <keypair>".
Stats and logs go to stderr.

Flags:
`)
		fs.PrintDefaults()
	}
	return fs, fl
}

// parseInterleaved parses flags that may appear before or after positional
// arguments and returns the positional arguments in order.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func applyFile(opts *Options, file File) error {
	if file.IgnoreCase != nil {
		opts.Search.IgnoreCase = *file.IgnoreCase
	}
	if file.Exit != nil {
		opts.Search.StopOnMatch = *file.Exit
	}
	if file.Threads != nil {
		opts.Search.Workers = *file.Threads
	}
	if file.Stat != nil {
		d, err := seconds(*file.Stat)
		if err != nil {
			return err
		}
		opts.Search.ReportInterval = d
	}
	if file.Quiet != nil {
		opts.Quiet = *file.Quiet
	}
	return nil
}

func applyEnv(opts *Options, getenv func(string) string) error {
	if v := getenv("VANITY_THREADS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: VANITY_THREADS: %v", ErrUsage, err)
		}
		opts.Search.Workers = n
	}
	if v := getenv("VANITY_STAT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: VANITY_STAT: %v", ErrUsage, err)
		}
		d, err := seconds(n)
		if err != nil {
			return err
		}
		opts.Search.ReportInterval = d
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"VANITY_IGNORE_CASE", &opts.Search.IgnoreCase},
		{"VANITY_EXIT", &opts.Search.StopOnMatch},
		{"VANITY_QUIET", &opts.Quiet},
	}
	for _, b := range bools {
		v := getenv(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrUsage, b.key, err)
		}
		*b.dst = parsed
	}
	return nil
}

// maxStatSeconds is the longest reporting period a time.Duration can hold.
const maxStatSeconds = math.MaxInt64 / int64(time.Second)

// seconds converts a reporting period in whole seconds to a duration.
// Zero disables reporting.
func seconds(n int) (time.Duration, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: stat interval must not be negative, got %d", ErrUsage, n)
	}
	if int64(n) > maxStatSeconds {
		return 0, fmt.Errorf("%w: stat interval must be at most %d seconds, got %d", ErrUsage, maxStatSeconds, n)
	}
	return time.Duration(n) * time.Second, nil
}

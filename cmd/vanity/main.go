// Package main implements the vanity command, which searches for ed25519
// keypairs whose base58 public key (a Solana address) starts with a chosen word.
//
// Output:
//   - stdout: one "<public key> <keypair>" line per match
//   - stderr: throughput lines ("generate: 1234.56 op/s") and lifecycle logs
//
// Configuration (see internal/config for precedence):
//   - -t/-threads N: worker count (default: number of CPUs, env VANITY_THREADS)
//   - -i/-ignore-case: case-insensitive match (env VANITY_IGNORE_CASE)
//   - -e/-exit: stop after the first match (env VANITY_EXIT)
//   - -s/-stat N: report throughput every N seconds (env VANITY_STAT)
//   - -quiet: no lifecycle logs (env VANITY_QUIET)
//   - -config FILE: YAML file with the same settings (env VANITY_CONFIG)
//
// Exit codes:
//   - 0: stopped cleanly (match under -exit, or interrupted)
//   - 1: the search failed
//   - 2: invalid configuration
//
// Example usage:
//
//	# Find one address starting with "Sol", any case, reporting every 5 seconds
//	vanity -i -e -s 5 Sol
//
//	# Search forever on 4 threads, appending every match to a file
//	vanity -t 4 So1 >> matches.txt
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dreamware/vanity/internal/config"
	"github.com/dreamware/vanity/internal/keygen"
	"github.com/dreamware/vanity/internal/match"
	"github.com/dreamware/vanity/internal/search"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// newGenerator is a variable so tests can substitute a deterministic generator.
var newGenerator = func() keygen.Generator { return keygen.NewSolana() }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
//
// Parameters:
//   - ctx: Canceled on SIGINT/SIGTERM, which stops the search cleanly
//   - args: Command line arguments without the program name
//   - stdout: Result stream, one line per match
//   - stderr: Telemetry, logs and errors
//   - getenv: Environment lookup, os.Getenv outside tests
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	opts, err := config.Load(args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fatalf(stderr, "%v", err)
		return exitUsage
	}

	logger := log.New(stderr, "vanity: ", log.LstdFlags)
	if missing := match.Unreachable(opts.Search.Target, keygen.Alphabet, opts.Search.IgnoreCase); len(missing) > 0 {
		logger.Printf("warning: %q never appear in a base58 public key, no match is possible", string(missing))
	}
	if opts.Quiet {
		logger.SetOutput(io.Discard)
	}

	o, err := search.New(opts.Search, newGenerator(), search.NewLineSink(stdout),
		search.WithTelemetry(stderr),
		search.WithLogger(logger),
	)
	if err != nil {
		fatalf(stderr, "%v", err)
		return exitUsage
	}

	if _, err := o.Run(ctx); err != nil {
		fatalf(stderr, "search failed: %v", err)
		return exitFailed
	}
	return exitOK
}

// fatalf reports an error that ends the invocation. It is written even when
// lifecycle logging is disabled.
func fatalf(stderr io.Writer, format string, v ...any) {
	fmt.Fprintf(stderr, "vanity: ERROR: "+format+"\n", v...)
}

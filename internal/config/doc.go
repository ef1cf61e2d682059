// Package config resolves the command line, environment and optional YAML
// file into a search.Config.
//
// # Overview
//
// Load is the single entry point. It parses flags and the positional target
// word, layers the other sources underneath, folds the target when
// ignore-case is on, and validates the result with search.Config.Validate.
// Command line mistakes wrap ErrUsage; a request for help returns
// flag.ErrHelp unchanged.
//
// # Precedence
//
// Sources are applied in increasing order of precedence:
//
//  1. Defaults (one worker per CPU, no reporting)
//  2. YAML file named by -config or VANITY_CONFIG
//  3. Environment: VANITY_THREADS, VANITY_STAT, VANITY_IGNORE_CASE,
//     VANITY_EXIT, VANITY_QUIET
//  4. Flags and the positional target word
//
// Flags may appear before or after the target word. Only flags given
// explicitly override lower layers.
//
// # Reporting Interval
//
// The stat setting is a whole number of seconds. Zero disables throughput
// reporting. Negative values and values too large for a time.Duration are
// rejected with ErrUsage from every source.
//
// # Example File
//
//	target: Sol
//	ignore_case: true
//	exit: true
//	threads: 8
//	stat: 5
//
// Unknown keys are an error.
package config

package config

import (
	"flag"
	"fmt"
	"os"
)

// ErrUsage indicates too few positional arguments. The caller prints
// the usage message and exits with the internal-error status.
var ErrUsage = fmt.Errorf("usage: TIMEOUT PROGRAM [ARGUMENTS...] required")

// ParseFlags parses command-line flags and positional arguments into
// a Config. The flag parser stops at the first positional argument,
// so the child program's own flags pass through untouched.
func ParseFlags() (*Config, error) {
	cfg := DefaultConfig()

	flag.Usage = Usage

	// Quoting
	flag.BoolVar(&cfg.ForceQuote, "force-quote", cfg.ForceQuote, "Quote every argument even when not required")

	// Observability
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose (debug) logging")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, `Log format: "text" or "json"`)

	// Diagnostics
	flag.BoolVar(&cfg.PrintCmd, "print-cmd", cfg.PrintCmd, "Print the assembled command line and exit")

	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		return nil, ErrUsage
	}

	timeoutMS, err := ParseTimeout(args[0])
	if err != nil {
		return nil, err
	}

	cfg.TimeoutMS = timeoutMS
	cfg.Command = args[1:]
	return cfg, nil
}

// Usage prints the usage message to stderr.
func Usage() {
	fmt.Fprintf(os.Stderr, `go-timelimit - run a command under a wall-clock time budget

Usage:
  go-timelimit [flags] TIMEOUT PROGRAM [ARGUMENTS...]

  TIMEOUT is a whole number of milliseconds in 0..4294967295. If the
  program does not exit within the budget it is forcibly terminated
  and go-timelimit exits 124; otherwise the program's own exit status
  is relayed unchanged.

Exit codes:
  124  program timed out and was terminated
  125  launcher error (bad arguments, wait or terminate failure)
  126  program found but could not be invoked
  127  program not found
  *    the program's own exit code

Flags:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  # Allow a build 2 minutes
  go-timelimit 120000 make all

  # Arguments with spaces and quotes are re-quoted safely
  go-timelimit 5000 grep -r "needle in haystack" .

  # Show the command line that would be executed
  go-timelimit -print-cmd 0 myprog "a b" 'c"d'
`)
}

// Package main provides the go-timelimit CLI entry point.
//
// go-timelimit runs a child program under a wall-clock time budget:
// if the child does not exit in time it is forcibly terminated and
// the launcher exits 124, otherwise the child's own exit status is
// relayed unchanged.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/randomizedcoder/go-timelimit/internal/cmdline"
	"github.com/randomizedcoder/go-timelimit/internal/config"
	"github.com/randomizedcoder/go-timelimit/internal/logging"
	"github.com/randomizedcoder/go-timelimit/internal/platform"
	"github.com/randomizedcoder/go-timelimit/internal/supervisor"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/go-timelimit
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Handle version flag early (before flag parsing)
	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-version" || arg == "--version" || arg == "version" {
			fmt.Printf("go-timelimit %s\n", version)
			return 0
		}
	}

	// Parse flags and the TIMEOUT PROGRAM [ARGUMENTS...] positionals
	cfg, err := config.ParseFlags()
	if err != nil {
		if errors.Is(err, config.ErrUsage) {
			config.Usage()
		} else {
			fmt.Fprintln(os.Stderr, color.RedString("The TIMEOUT must be a number in 0..4294967295."))
		}
		return supervisor.ExitInternal
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.LogFormat, "info", cfg.Verbose)
	logging.SetDefault(logger)

	// Re-quote the child command for safe re-exec
	cl := cmdline.New(cfg.Command, cfg.ForceQuote)

	// Handle -print-cmd mode
	if cfg.PrintCmd {
		fmt.Println(cl.String())
		return 0
	}

	sup := supervisor.New(supervisor.Config{
		Platform: platform.Host(),
		Logger:   logger,
	})

	status, err := sup.Run(cfg.TimeoutMS, cl)
	if err != nil {
		printDiagnostic(err, cl.Program())
	}
	return status
}

// printDiagnostic writes the user-facing failure message to stderr.
// Structured logs are separate; this is the line a human reads.
func printDiagnostic(err error, program string) {
	var supErr *supervisor.Error
	if !errors.As(err, &supErr) {
		fmt.Fprintln(os.Stderr, color.RedString("go-timelimit: %v", err))
		return
	}

	switch supErr.Kind {
	case supervisor.KindCommandNotFound:
		fmt.Fprintln(os.Stderr, color.RedString("Command '%s' not found.", program))
	case supervisor.KindCannotInvoke:
		fmt.Fprintln(os.Stderr, color.RedString("Cannot invoke '%s': %v", program, supErr.Err))
	default:
		fmt.Fprintln(os.Stderr, color.RedString("go-timelimit: %v", supErr))
	}
}

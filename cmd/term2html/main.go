package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseCompileFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitUsage)
	}

	if flags.showVersion {
		fmt.Printf("term2html %s\n", Version)
		os.Exit(ExitSuccess)
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := runCompile(context.Background(), args, flags, DefaultEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

// Copyright 2026 The Fatal Authors
// SPDX-License-Identifier: Apache-2.0

// fatal prints an error message to stderr and exits with status 1,
// giving shell scripts the same convention the library gives Go code:
//
//	test -f "$config" || fatal "missing config: $config"
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/go-fatal/fatal"
)

func main() {
	if err := run(os.Args[1:], fatal.Config{}); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and terminates through a Terminator built from
// config. It returns an error only for flag parsing failures and
// --help; on the normal path it does not return at all unless
// config.Exit is a substitute that returns (tests).
func run(args []string, config fatal.Config) error {
	flags := pflag.NewFlagSet("fatal", pflag.ContinueOnError)
	flags.SortFlags = false
	noColor := flags.Bool("no-color", false, "never color the prefix")
	forceColor := flags.Bool("color", false, "color the prefix even when stderr is not a terminal")
	plain := flags.Bool("plain", false, "omit the Error: prefix")
	flags.Usage = func() { printUsage(flags) }

	if err := flags.Parse(args); err != nil {
		return err
	}

	config.Color = colorMode(*noColor, *forceColor)
	terminator := fatal.New(config)

	// Arguments join into one message line; no arguments means a
	// silent exit (never a bare "Error: " prefix).
	var message []any
	if joined := strings.Join(flags.Args(), " "); joined != "" {
		message = append(message, joined)
	}
	if *plain {
		terminator.Exit(message...)
	} else {
		terminator.Fatal(message...)
	}
	return nil
}

// colorMode maps the two color flags to a ColorMode. --no-color wins
// when both are given.
func colorMode(noColor, forceColor bool) fatal.ColorMode {
	switch {
	case noColor:
		return fatal.ColorNever
	case forceColor:
		return fatal.ColorAlways
	default:
		return fatal.ColorAuto
	}
}

func printUsage(flags *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage: fatal [flags] <message>...

Prints "Error: <message>" to standard error and exits with status 1.
The message is the arguments joined by single spaces; the prefix is
red when stderr is a terminal. With no message, exits silently.

Example:

  command || fatal "command failed"

Flags:
%s`, flags.FlagUsages())
}

// Copyright 2026 The Fatal Authors
// SPDX-License-Identifier: Apache-2.0

package fatal

import (
	"fmt"
	"io"
	"os"
)

// prefix is the literal written before every prefixed message. The
// trailing space is part of the contract: "Error: failed to save".
const prefix = "Error: "

// Config selects the output stream, color behavior, and exit function
// for a Terminator. The zero value means os.Stderr, ColorAuto, and
// os.Exit — the production wiring.
type Config struct {
	// Output receives all message writes. Defaults to os.Stderr.
	// Messages never go to stdout.
	Output io.Writer

	// Color controls whether the "Error: " prefix is styled red.
	// ColorAuto styles it only when Output is a terminal.
	Color ColorMode

	// Exit is called with status code 1 on every terminating path.
	// Defaults to os.Exit. Tests substitute a recording function;
	// with a substitute that returns, the terminating methods return
	// normally after invoking it.
	Exit func(code int)
}

// Terminator writes fatal messages to its output and ends the process.
// All methods that take a message exit with status 1 after writing;
// write errors are swallowed, since the process is already on its way
// out and a broken stderr must not prevent the exit.
type Terminator struct {
	output io.Writer
	exit   func(int)

	// styled is the prefix with color applied; equal to plain when
	// color is disabled. plain is kept separately so a failed styled
	// write can fall back without re-rendering.
	styled string
	plain  string
}

// New builds a Terminator from config, filling in os.Stderr and
// os.Exit for unset fields. Color is resolved here, once: the prefix
// is rendered at construction time and reused on every fatal path.
func New(config Config) *Terminator {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	exit := config.Exit
	if exit == nil {
		exit = os.Exit
	}
	term := &Terminator{
		output: output,
		exit:   exit,
		plain:  prefix,
		styled: prefix,
	}
	if colorEnabled(config.Color, output) {
		term.styled = renderPrefix(output)
	}
	return term
}

// Default is the Terminator behind the package-level functions:
// os.Stderr, auto-detected color, os.Exit.
var Default = New(Config{})

// Exit writes its arguments to the output as a single
// space-separated line — nothing at all when no arguments are given —
// and exits with status 1. Never returns under the default exit
// function.
func (t *Terminator) Exit(args ...any) {
	if len(args) > 0 {
		fmt.Fprintln(t.output, args...)
	}
	t.exit(1)
}

// Exitf writes the formatted message as a single line and exits with
// status 1. Never returns under the default exit function.
func (t *Terminator) Exitf(format string, args ...any) {
	fmt.Fprintf(t.output, format+"\n", args...)
	t.exit(1)
}

// Fatal is Exit with the "Error: " prefix. With no arguments the
// prefix is skipped entirely — a bare "Error: " line with nothing
// after it is never printed — and the process still exits with 1.
func (t *Terminator) Fatal(args ...any) {
	if len(args) == 0 {
		t.exit(1)
		return
	}
	t.writePrefix()
	t.Exit(args...)
}

// Fatalf is Exitf with the "Error: " prefix. The prefix is always
// written since a format string constitutes a message, even when it
// expands to the empty string.
func (t *Terminator) Fatalf(format string, args ...any) {
	t.writePrefix()
	t.Exitf(format, args...)
}

// writePrefix writes the prefix in full before any message content.
// If the styled write fails, retry exactly once in plain form; the
// retry's error is ignored. In plain mode there is no retry.
func (t *Terminator) writePrefix() {
	if _, err := io.WriteString(t.output, t.styled); err != nil && t.styled != t.plain {
		io.WriteString(t.output, t.plain) //nolint:errcheck // best-effort, already terminating
	}
}

// Exit writes its arguments as a single line on stderr (nothing when
// empty) and exits the process with status 1.
func Exit(args ...any) {
	Default.Exit(args...)
}

// Exitf writes the formatted message on stderr and exits the process
// with status 1.
func Exitf(format string, args ...any) {
	Default.Exitf(format, args...)
}

// Fatal writes "Error: " followed by its arguments on stderr and
// exits the process with status 1. With no arguments it exits
// silently.
func Fatal(args ...any) {
	Default.Fatal(args...)
}

// Fatalf writes "Error: " followed by the formatted message on stderr
// and exits the process with status 1.
func Fatalf(format string, args ...any) {
	Default.Fatalf(format, args...)
}

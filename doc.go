// Copyright 2026 The Fatal Authors
// SPDX-License-Identifier: Apache-2.0

// Package fatal converts recoverable-but-fatal failures into a single
// user-facing line on stderr and immediate process exit with status 1.
//
// Command-line programs accumulate ad-hoc "print and exit" code at
// every call site that reads a file, parses a flag, or dials a server.
// This package gives those sites one convention: the message goes to
// stderr (never stdout), it is prefixed "Error: " (red when stderr is
// a terminal), and the process exits with status 1. Nothing is logged,
// classified, retried, or returned past this boundary.
//
// The package-level functions use a default [Terminator] wired to
// os.Stderr, auto-detected color, and os.Exit:
//
//	config := fatal.Unwrap(loadConfig(path))
//	data := fatal.Expect(os.ReadFile(name), "reading input")
//	if bad {
//	    fatal.Fatalf("unsupported mode %q", mode)
//	}
//
// [Wrap] adapts any (T, error) return into a [Result] so the same
// helpers read as method calls:
//
//	listener := fatal.Wrap(net.Listen("tcp", addr)).Expect("binding")
//
// # Never Returns
//
// Every terminating path ends in the Terminator's exit function. With
// the default os.Exit, Exit, Exitf, Fatal, and Fatalf do not return,
// and the unwrap helpers return only on the success path. Code after a
// terminating call is unreachable in production.
//
// # Testing
//
// Tests build their own Terminator instead of patching globals:
//
//	var buffer bytes.Buffer
//	var code int
//	term := fatal.New(fatal.Config{
//	    Output: &buffer,
//	    Color:  fatal.ColorNever,
//	    Exit:   func(c int) { code = c },
//	})
//	term.Fatalf("boom")
//
// With an injected exit function the terminating methods return after
// recording the code, and the generic helpers return the zero value.
// Both color modes are exercised the same way; no build tags are
// involved.
package fatal

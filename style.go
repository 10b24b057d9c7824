// Copyright 2026 The Fatal Authors
// SPDX-License-Identifier: Apache-2.0

package fatal

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode controls styling of the "Error: " prefix. The message
// itself is never styled; only the prefix carries color.
type ColorMode int

const (
	// ColorAuto styles the prefix when the output is a terminal and
	// the environment does not opt out (NO_COLOR). This is the
	// default.
	ColorAuto ColorMode = iota

	// ColorAlways styles the prefix unconditionally, terminal or not.
	ColorAlways

	// ColorNever writes the prefix as plain text.
	ColorNever
)

// errorColor is ANSI red, readable on both light and dark terminals.
var errorColor = lipgloss.Color("1")

// colorEnabled resolves a ColorMode against the actual output stream.
// Auto detection requires a real terminal file descriptor; anything
// that is not an *os.File (pipes wrapped in buffers, test doubles) is
// treated as non-terminal.
func colorEnabled(mode ColorMode, output io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	file, ok := output.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// renderPrefix returns the "Error: " prefix wrapped in red. The
// renderer is pinned to the basic ANSI profile rather than the
// detected one: ColorAlways must produce escape codes even when the
// output is not a terminal, and plain red needs nothing richer.
func renderPrefix(output io.Writer) string {
	// The renderer ignores the termenv profile option and re-detects
	// from the environment, which yields Ascii for non-terminal
	// writers. SetColorProfile is the explicit override.
	renderer := lipgloss.NewRenderer(output, termenv.WithProfile(termenv.ANSI))
	renderer.SetColorProfile(termenv.ANSI)
	return renderer.NewStyle().Foreground(errorColor).Render(prefix)
}

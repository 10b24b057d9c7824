// Copyright 2026 The Fatal Authors
// SPDX-License-Identifier: Apache-2.0

package fatal

import (
	"bytes"
	"strings"
	"testing"
)

func TestColorEnabledModes(t *testing.T) {
	var buffer bytes.Buffer
	tests := []struct {
		name string
		mode ColorMode
		want bool
	}{
		{"always", ColorAlways, true},
		{"never", ColorNever, false},
		// Auto against a non-file writer is never a terminal.
		{"auto non-terminal", ColorAuto, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := colorEnabled(test.mode, &buffer); got != test.want {
				t.Fatalf("colorEnabled(%v) = %v, want %v", test.mode, got, test.want)
			}
		})
	}
}

func TestRenderPrefixWrapsInEscapeCodes(t *testing.T) {
	rendered := renderPrefix(&bytes.Buffer{})
	if !strings.Contains(rendered, "Error: ") {
		t.Fatalf("rendered prefix %q does not contain the literal prefix", rendered)
	}
	if !strings.Contains(rendered, "\x1b[") {
		t.Fatalf("rendered prefix %q carries no escape codes", rendered)
	}
}

func TestRenderPrefixForcesProfileOnNonTerminal(t *testing.T) {
	// Forced color must not degrade to plain text when the writer is
	// not a terminal and the environment opts out of color; profile
	// detection has no say once the profile is pinned.
	t.Setenv("TERM", "dumb")
	t.Setenv("NO_COLOR", "1")
	rendered := renderPrefix(&bytes.Buffer{})
	if rendered == prefix {
		t.Fatalf("rendered prefix %q is unstyled", rendered)
	}
	if !strings.Contains(rendered, "\x1b[") {
		t.Fatalf("rendered prefix %q carries no escape codes", rendered)
	}
}

func TestNewResolvesColorAtConstruction(t *testing.T) {
	var buffer bytes.Buffer
	plain := New(Config{Output: &buffer, Color: ColorNever, Exit: func(int) {}})
	if plain.styled != plain.plain {
		t.Fatalf("ColorNever terminator has styled prefix %q", plain.styled)
	}
	colored := New(Config{Output: &buffer, Color: ColorAlways, Exit: func(int) {}})
	if colored.styled == colored.plain {
		t.Fatal("ColorAlways terminator has no styled prefix")
	}
}

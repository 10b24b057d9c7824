// Copyright 2026 The Fatal Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"io"
	"strings"
)

// TB is the minimal testing surface the require helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// ExitRecorder records exit codes in place of terminating the
// process. Install its Exit method as a Terminator's exit function.
type ExitRecorder struct {
	// Codes holds every recorded exit code in call order. A correct
	// fatal path records exactly one.
	Codes []int
}

// Exit records code and returns, letting the code under test resume.
func (r *ExitRecorder) Exit(code int) {
	r.Codes = append(r.Codes, code)
}

// RequireExited fails the test unless exactly one exit was recorded
// with the given code.
func (r *ExitRecorder) RequireExited(t TB, code int) {
	t.Helper()
	if len(r.Codes) != 1 {
		t.Fatalf("recorded %d exits (%v), want exactly one", len(r.Codes), r.Codes)
	}
	if r.Codes[0] != code {
		t.Fatalf("exit code = %d, want %d", r.Codes[0], code)
	}
}

// RequireNoExit fails the test if any exit was recorded.
func (r *ExitRecorder) RequireNoExit(t TB) {
	t.Helper()
	if len(r.Codes) != 0 {
		t.Fatalf("recorded exits %v, want none", r.Codes)
	}
}

// WriteRecorder is an io.Writer that records each successful Write
// call as one event, preserving order.
type WriteRecorder struct {
	// Writes holds the payload of each Write call.
	Writes []string
}

// Write records p and reports success.
func (w *WriteRecorder) Write(p []byte) (int, error) {
	w.Writes = append(w.Writes, string(p))
	return len(p), nil
}

// Output returns everything written, concatenated in order.
func (w *WriteRecorder) Output() string {
	return strings.Join(w.Writes, "")
}

// RequireWrites fails the test unless the recorded write events match
// want exactly, in order.
func (w *WriteRecorder) RequireWrites(t TB, want ...string) {
	t.Helper()
	if len(w.Writes) != len(want) {
		t.Fatalf("recorded %d writes %q, want %d writes %q", len(w.Writes), w.Writes, len(want), want)
	}
	for i := range want {
		if w.Writes[i] != want[i] {
			t.Fatalf("write %d = %q, want %q", i, w.Writes[i], want[i])
		}
	}
}

// ErrWriteFailed is returned by FlakyWriter for its failing writes.
var ErrWriteFailed = errors.New("write failed")

// FlakyWriter fails its first FailWrites Write calls with
// ErrWriteFailed, then delegates the rest to Underlying.
type FlakyWriter struct {
	// FailWrites is how many leading writes fail.
	FailWrites int

	// Underlying receives all writes after the failures. Required.
	Underlying io.Writer

	attempts int
}

// Write fails or delegates according to the call count.
func (w *FlakyWriter) Write(p []byte) (int, error) {
	w.attempts++
	if w.attempts <= w.FailWrites {
		return 0, ErrWriteFailed
	}
	return w.Underlying.Write(p)
}

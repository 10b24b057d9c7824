// Copyright 2026 The Fatal Authors
// SPDX-License-Identifier: Apache-2.0

package fatal

import (
	"fmt"
	"strings"
)

// ErrorSlot is the placeholder Failf substitutes with the error's
// display form. It is a literal substring, not a fmt verb: Go has no
// named format arguments, so caller parameters use ordinary fmt verbs
// and the error is bound to this slot by name.
const ErrorSlot = "{error}"

// Failf returns value when err is nil; no formatting work happens on
// that path. On a non-nil error it expands format with args via fmt,
// substitutes every [ErrorSlot] occurrence with the error's display
// form, and terminates through the prefixed terminator:
//
//	fatal.Failf(save(doc), "failed to save %s: {error}", doc.Name)
//
// The template must contain the slot; omitting it silently drops the
// error from the output, which is a caller contract violation this
// package does not validate.
func Failf[T any](value T, err error, format string, args ...any) T {
	return FailfVia(Default, value, err, format, args...)
}

// FailfVia is Failf against an explicit Terminator.
func FailfVia[T any](term *Terminator, value T, err error, format string, args ...any) T {
	if err != nil {
		message := fmt.Sprintf(format, args...)
		term.Fatal(strings.ReplaceAll(message, ErrorSlot, err.Error()))
	}
	return value
}

// Messagef is Failf with the template auto-suffixed " ({error})", so
// the caller never writes the slot:
//
//	fatal.Messagef(save(doc), "failed to save %s", doc.Name)
//
// yields "Error: failed to save report.txt (disk full)".
func Messagef[T any](value T, err error, format string, args ...any) T {
	return MessagefVia(Default, value, err, format, args...)
}

// MessagefVia is Messagef against an explicit Terminator.
func MessagefVia[T any](term *Terminator, value T, err error, format string, args ...any) T {
	return FailfVia(term, value, err, format+" ("+ErrorSlot+")", args...)
}

// Failf is the method form of [Failf].
func (r Result[T]) Failf(format string, args ...any) T {
	return FailfVia(Default, r.value, r.err, format, args...)
}

// FailfVia is Failf against an explicit Terminator.
func (r Result[T]) FailfVia(term *Terminator, format string, args ...any) T {
	return FailfVia(term, r.value, r.err, format, args...)
}

// Messagef is the method form of [Messagef].
func (r Result[T]) Messagef(format string, args ...any) T {
	return MessagefVia(Default, r.value, r.err, format, args...)
}

// MessagefVia is Messagef against an explicit Terminator.
func (r Result[T]) MessagefVia(term *Terminator, format string, args ...any) T {
	return MessagefVia(term, r.value, r.err, format, args...)
}

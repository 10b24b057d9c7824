// Copyright 2026 The Fatal Authors
// SPDX-License-Identifier: Apache-2.0

package fatal

// Unwrap returns value when err is nil. On a non-nil error it writes
// the error's display form through the prefixed terminator and the
// process exits with status 1. The two-argument shape wraps a (T,
// error) return directly:
//
//	file := fatal.Unwrap(os.Open(path))
func Unwrap[T any](value T, err error) T {
	return UnwrapVia(Default, value, err)
}

// UnwrapVia is Unwrap against an explicit Terminator. Tests use it
// with an injected exit function; on the fatal path it then returns
// value (the zero value of T in the usual (T{}, err) convention).
func UnwrapVia[T any](term *Terminator, value T, err error) T {
	if err != nil {
		term.Fatal(err)
	}
	return value
}

// Expect returns value when err is nil. On a non-nil error it writes
// "<message> (<error>)" through the prefixed terminator and the
// process exits with status 1. An empty error display still prints,
// as "<message> ()".
//
//	data := fatal.Expect(os.ReadFile(name), "reading input")
func Expect[T any](value T, err error, message string) T {
	return ExpectVia(Default, value, err, message)
}

// ExpectVia is Expect against an explicit Terminator.
func ExpectVia[T any](term *Terminator, value T, err error, message string) T {
	if err != nil {
		term.Fatalf("%s (%v)", message, err)
	}
	return value
}

// Result pairs a value with the error that produced it so the unwrap
// helpers read as method calls. Behavior is identical to the free
// functions; Wrap exists purely for call-site ergonomics:
//
//	listener := fatal.Wrap(net.Listen("tcp", addr)).Expect("binding")
type Result[T any] struct {
	value T
	err   error
}

// Wrap adapts a (T, error) return into a Result.
func Wrap[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// Unwrap returns the value, or terminates with the error's display
// form. See [Unwrap].
func (r Result[T]) Unwrap() T {
	return UnwrapVia(Default, r.value, r.err)
}

// UnwrapVia is Unwrap against an explicit Terminator.
func (r Result[T]) UnwrapVia(term *Terminator) T {
	return UnwrapVia(term, r.value, r.err)
}

// Expect returns the value, or terminates with "<message> (<error>)".
// See [Expect].
func (r Result[T]) Expect(message string) T {
	return ExpectVia(Default, r.value, r.err, message)
}

// ExpectVia is Expect against an explicit Terminator.
func (r Result[T]) ExpectVia(term *Terminator, message string) T {
	return ExpectVia(term, r.value, r.err, message)
}

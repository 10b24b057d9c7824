// Copyright 2026 The Fatal Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test doubles for the fatal package.
//
// [ExitRecorder] substitutes for os.Exit in a Terminator's Config so
// terminating paths can be observed instead of killing the test
// process. [WriteRecorder] records each successful Write call as a
// distinct event, which is how tests assert write ordering (prefix
// before message) and write counts (no output on the success path).
// [FlakyWriter] fails a fixed number of leading writes to exercise the
// styled-to-plain prefix fallback.
//
// Require helpers call t.Fatalf on failure rather than returning
// errors, and accept a minimal t interface so they stay decoupled
// from *testing.T.
package testutil

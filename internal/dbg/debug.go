// Copyright 2026 The gctrace Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build gcdebug

// Package dbg includes operation-logging helpers for the two collectors.
//
// It is compiled in only under the gcdebug build tag (go test -tags gcdebug
// ./...); see nodebug.go for the no-op implementation used otherwise. This
// repo has exactly one goroutine running the mutator/collector at any time
// (spec.md §5), so unlike code that logs across many goroutines, log lines
// need no goroutine-id tag to stay readable.
package dbg

import (
	"fmt"
	"os"
)

// Enabled is true when this package was built with the gcdebug tag.
const Enabled = true

// Logger is the minimal sink WithTesting needs: *testing.T and *testing.B
// both implement it already, so this package never imports "testing"
// itself — that would otherwise link the testing package into every
// production binary that imports dbg (e.g. cmd/gcbench).
type Logger interface {
	Log(args ...any)
}

var sink Logger

// WithTesting redirects Log output to t.Log for the duration of a test,
// returning a function that restores the previous sink.
func WithTesting(t Logger) func() {
	prev := sink
	sink = t
	return func() { sink = prev }
}

// Log prints an operation trace line. context, if non-empty, is a
// printf-style (format, args...) pair describing the caller's identity,
// printed ahead of operation.
func Log(context []any, operation, format string, args ...any) {
	buf := make([]byte, 0, 64)
	line := fmt.Sprintf("%s", operation)
	if len(context) >= 1 {
		line = fmt.Sprintf(context[0].(string), context[1:]...) + " " + line
	}
	line += ": " + fmt.Sprintf(format, args...)
	buf = append(buf, line...)

	if sink != nil {
		sink.Log(string(buf))
		return
	}
	fmt.Fprintln(os.Stderr, string(buf))
}

// Assert panics if cond is false, but only in a gcdebug build.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("gc: internal assertion failed: "+format, args...))
	}
}

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

//go:build !gcdebug

package dbg

// Enabled is false outside a gcdebug build; all calls below are no-ops that
// the compiler should fold away entirely.
const Enabled = false

// Logger is the minimal sink WithTesting needs; see debug.go.
type Logger interface {
	Log(args ...any)
}

// WithTesting is a no-op outside a gcdebug build.
func WithTesting(Logger) func() { return func() {} }

// Log is a no-op outside a gcdebug build.
func Log(context []any, operation, format string, args ...any) {}

// Assert is a no-op outside a gcdebug build.
func Assert(cond bool, format string, args ...any) {}

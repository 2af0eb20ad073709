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

// gcbench drives the collector comparison described in spec.md §6: it
// shells out to `go test -bench` against ./internal/benchcases, then
// renders the results as a pretty-printed table and a gcbench.csv file.
// Each run gets a fresh UUID, printed in the header of the table output;
// gcbench.csv itself does not carry it.
//
// This is the teacher pack's "script that runs go test -bench and prints
// a report" pattern (internal/prettybench, internal/tools/bench),
// consolidated into the one entry point this repo keeps.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/uuid"

	"gctrace.dev/gc/internal/prettybench"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "gcbench:", err)
		os.Exit(1)
	}
}

func run() error {
	runID := uuid.New()

	argv0, ok := os.LookupEnv("GO_CMD")
	if !ok {
		argv0 = "go"
	}

	stdout := new(strings.Builder)

	args := []string{"test", "./internal/benchcases", "-run", "^$", "-bench", ".", "-benchmem"}
	args = append(args, os.Args[1:]...)

	cmd := exec.Command(argv0, args...)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = io.MultiWriter(os.Stdout, stdout)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exit, ok := err.(*exec.ExitError); ok { //nolint:errorlint
			os.Exit(exit.ExitCode())
		}
		return err
	}

	fmt.Printf("\nrun %s: generating report...\n\n", runID)

	report := prettybench.Parse(stdout.String())
	fmt.Print(report.Table())

	out, err := os.Create("gcbench.csv")
	if err != nil {
		return err
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.WriteAll(report.CSV()); err != nil {
		return err
	}
	return w.Error()
}

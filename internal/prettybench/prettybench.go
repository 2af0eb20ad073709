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

// Package prettybench parses the output of `go test -bench` into a report
// that can be rendered as a human-readable, SI-prefixed table or as CSV
// rows, for cmd/gcbench.
//
// This consolidates what were two near-duplicate command-line scripts in
// the teacher pack (internal/prettybench and internal/tools/bench) into
// one importable package; cmd/gcbench is the only remaining entry point
// that shells out to `go test`.
package prettybench

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

var siPrefixes = []struct {
	prefix string
	mult   float64
}{
	{"E", 1e18},
	{"P", 1e15},
	{"T", 1e12},
	{"G", 1e9},
	{"M", 1e6},
	{"k", 1e3},
	{" ", 1e0},
	{"m", 1e-3},
	{"μ", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
}

func common(a, b string) int {
	var i int
	for ; i < min(len(a), len(b)) && a[i] == b[i]; i++ {
	}
	return i
}

type cell struct {
	pretty string
	exact  float64
}

// Report is a parsed set of `go test -bench` results, organized by
// benchmark name and measured property (time, throughput, memory,
// allocations).
type Report struct {
	names       []string // Raw benchmark names, in output order.
	prettyNames []string // Names with redundant path prefixes elided.
	props       []string // Measured properties, in first-seen order.
	units       map[string]string
	values      map[cellKey]cell
}

type cellKey struct {
	prop string
	row  int
}

// Parse extracts every "Benchmark..." line from the output of
// `go test -bench -benchmem`, normalizing units (ns -> s, MB/s -> B/s) and
// picking the largest SI prefix smaller than each value.
func Parse(output string) *Report {
	r := &Report{
		units:  map[string]string{},
		values: map[cellKey]cell{},
	}
	order := map[string]int{}

	var row int
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "Benchmark") {
			continue
		}
		fields := strings.Split(line, "\t")
		fields = slices.Delete(fields, 1, 2) // Delete the trial count.

		var name, pretty string
		for j := range fields {
			fields[j] = strings.TrimSpace(fields[j])
			if fields[j] == "" {
				continue
			}

			switch {
			case j == 0:
				name = fields[j][:strings.LastIndex(fields[j], "-")] // Trim trailing -GOMAXPROCS.
				if idx := strings.Index(fields[j], "/"); idx >= 0 {
					name = "." + name[idx:]
				} else {
					name = "." + name
				}
				name = strings.ReplaceAll(name, ".yaml", "")

				pretty = name
				if len(r.names) > 0 {
					prev := r.names[len(r.names)-1]
					k := common(prev, pretty)
					k = strings.LastIndexByte(pretty[:k], '/')
					if k > 0 {
						bytes := []byte(pretty)
						for i, b := range bytes[1:k] {
							if b != '/' {
								bytes[i+1] = '\''
							}
						}
						pretty = string(bytes)
					}
				}

			case fields[j][0] <= 0 || fields[j][0] >= 9:
				num, unit, ok := strings.Cut(fields[j], " ")
				if !ok {
					continue
				}
				v, err := strconv.ParseFloat(num, 64)
				if err != nil {
					continue
				}

				unit = strings.TrimSuffix(unit, "/op")
				prop := unit
				switch unit {
				case "ns":
					prop, unit = "time", "s"
					v *= 1e-9
				case "MB/s":
					prop, unit = "throughput", "B/s"
					v *= 1e6
				case "B":
					prop = "memory"
				case "allocs":
					prop = "allocations"
				default:
					if idx := strings.LastIndex(unit, "/"); idx > 0 {
						unit = unit[:idx]
					}
				}
				r.units[prop] = unit

				exact := v
				display := unit
				if v != 0 {
					for _, p := range siPrefixes {
						if p.mult <= v {
							v /= p.mult
							display = p.prefix + unit
							break
						}
					}
				} else {
					display = " " + unit
				}

				if _, seen := order[prop]; !seen {
					order[prop] = len(order)
					r.props = append(r.props, prop)
				}
				r.values[cellKey{prop, row}] = cell{fmt.Sprintf("%.03f %v", v, display), exact}
			}
		}
		r.names = append(r.names, name)
		r.prettyNames = append(r.prettyNames, pretty)
		row++
	}

	slices.SortStableFunc(r.props, func(a, b string) int {
		return cmp.Compare(order[a], order[b])
	})
	return r
}

// CSV renders the report as a header row followed by one row per
// benchmark, with exact (not SI-scaled) values.
func (r *Report) CSV() [][]string {
	header := append([]string{"benchmark"}, r.props...)
	rows := [][]string{header}
	for i, name := range r.names {
		row := []string{name}
		for _, prop := range r.props {
			row = append(row, strconv.FormatFloat(r.values[cellKey{prop, i}].exact, 'f', -1, 64))
		}
		rows = append(rows, row)
	}
	return rows
}

// Table renders the report as a human-readable, column-aligned table with
// SI-prefixed units, suitable for pasting into a commit message.
func (r *Report) Table() string {
	header := append([]string{"benchmark"}, r.props...)
	table := [][]string{header}
	for i, name := range r.prettyNames {
		row := []string{name}
		for _, prop := range r.props {
			v := r.values[cellKey{prop, i}]
			if v.pretty == "" {
				v.pretty = "n/a  " + r.units[prop]
			}
			row = append(row, v.pretty)
		}
		table = append(table, row)
	}

	widths := make([]int, len(table[0]))
	for _, fields := range table {
		for i, field := range fields {
			widths[i] = max(widths[i], utf8.RuneCountInString(field))
		}
	}
	for i := range widths {
		widths[i]++
		widths[i] &^= 1
	}

	var out strings.Builder
	for _, fields := range table {
		for i, field := range fields {
			if i == 0 {
				fmt.Fprintf(&out, "%s", field)
				fmt.Fprintf(&out, "%*s", widths[i]-utf8.RuneCountInString(field), "")
			} else {
				fmt.Fprintf(&out, " | %+*s", widths[i], field)
			}
		}
		out.WriteByte('\n')
	}
	return out.String()
}

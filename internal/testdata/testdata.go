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

// Package testdata embeds the YAML scenario fixtures used by the
// round-trip property tests (spec.md §8, S5), the way the teacher pack's
// own internal/testdata embeds its corpus and decodes it with yaml.v3.
package testdata

import (
	"embed"

	"gopkg.in/yaml.v3"
)

//go:embed scenarios/*.yaml
var scenarios embed.FS

// Scenario is one heap-size/garbage-ratio combination to exercise the
// round-trip sum invariant against.
type Scenario struct {
	Name     string  `yaml:"name"`
	HeapSize int     `yaml:"heap_size"`
	Ratio    float64 `yaml:"ratio"`
}

// Roundtrip loads the round-trip scenario corpus.
func Roundtrip() ([]Scenario, error) {
	raw, err := scenarios.ReadFile("scenarios/roundtrip.yaml")
	if err != nil {
		return nil, err
	}
	var out []Scenario
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

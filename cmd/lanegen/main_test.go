// Copyright 2026 go-vec4 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConformanceCasesShape(t *testing.T) {
	cases := conformanceCases()
	if len(cases) != 16 {
		t.Fatalf("conformanceCases() returned %d rows, want 16", len(cases))
	}

	seen := map[uint32]bool{}
	for _, c := range cases {
		if seen[c.bits] {
			t.Errorf("duplicate bitmask %#x", c.bits)
		}
		seen[c.bits] = true

		for i, lane := range c.array {
			if lane != 0 && lane != 0xFFFFFFFF {
				t.Errorf("row %q lane %d = %#x, not canonical", c.name, i, lane)
			}
		}
		if c.any != (c.bits != 0) {
			t.Errorf("row %q any = %v, bits = %#x", c.name, c.any, c.bits)
		}
		if c.all != (c.bits == 0xF) {
			t.Errorf("row %q all = %v, bits = %#x", c.name, c.all, c.bits)
		}
	}
}

func TestConformanceCasesRows(t *testing.T) {
	cases := conformanceCases()

	want := laneCase{
		name:  "TrueFalseTrueFalse",
		x:     true,
		z:     true,
		array: [4]uint32{0xFFFFFFFF, 0, 0xFFFFFFFF, 0},
		bits:  0x5,
		any:   true,
		str:   "[true, false, true, false]",
		goStr: "vec4.Mask(0xffffffff, 0x0, 0xffffffff, 0x0)",
	}
	if diff := cmp.Diff(want, cases[5], cmp.AllowUnexported(laneCase{})); diff != "" {
		t.Errorf("row 5 mismatch (-want +got):\n%s", diff)
	}
}

func TestRunWritesFormattedFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "z_conformance_test.go")
	if err := run(output); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	src := string(data)

	if !strings.HasPrefix(src, "// Code generated by lanegen. DO NOT EDIT.") {
		t.Errorf("missing generated-code header")
	}
	if !strings.Contains(src, "package vec4") {
		t.Errorf("output is not in package vec4")
	}
	if !strings.Contains(src, "func TestMaskConformance(t *testing.T)") {
		t.Errorf("output has no conformance test function")
	}
	if got := strings.Count(src, "vec4.Mask(0x"); got != 16 {
		t.Errorf("output has %d GoString rows, want 16", got)
	}

	if _, err := parser.ParseFile(token.NewFileSet(), output, data, 0); err != nil {
		t.Errorf("output does not parse: %v", err)
	}
}

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

// lanegen emits the mask conformance table for package vec4.
//
// The table enumerates all 16 lane combinations with the expected canonical
// array, bitmask, reductions, and formatting for each. The two storage
// backends can never be compiled into the same binary, so each backend is
// instead tested against this shared reference; a backend that reproduces
// the table bit-for-bit is observationally identical to the other one.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// laneCase is one row of the conformance table: four constructor inputs and
// every observation the mask surface must produce for them.
type laneCase struct {
	name       string
	x, y, z, w bool
	array      [4]uint32
	bits       uint32
	any, all   bool
	str        string
	goStr      string
}

// conformanceCases builds all 16 rows. Lane i of row n is bit i of n, so
// the table covers every mask value exactly once.
func conformanceCases() []laneCase {
	caser := cases.Title(language.English)
	out := make([]laneCase, 0, 16)
	for n := 0; n < 16; n++ {
		lanes := [4]bool{n&1 != 0, n&2 != 0, n&4 != 0, n&8 != 0}

		var c laneCase
		c.x, c.y, c.z, c.w = lanes[0], lanes[1], lanes[2], lanes[3]

		words := make([]string, 4)
		hexWords := make([]string, 4)
		for i, b := range lanes {
			if b {
				c.array[i] = 0xFFFFFFFF
				c.bits |= 1 << i
			}
			c.name += caser.String(strconv.FormatBool(b))
			words[i] = strconv.FormatBool(b)
			hexWords[i] = fmt.Sprintf("%#x", c.array[i])
		}
		c.any = c.bits != 0
		c.all = c.bits == 0xF
		c.str = "[" + strings.Join(words, ", ") + "]"
		c.goStr = "vec4.Mask(" + strings.Join(hexWords, ", ") + ")"
		out = append(out, c)
	}
	return out
}

func emit(buf *bytes.Buffer, cases []laneCase) {
	fmt.Fprintf(buf, "// Code generated by lanegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package vec4\n\n")
	fmt.Fprintf(buf, "import (\n\t\"fmt\"\n\t\"testing\"\n)\n\n")

	fmt.Fprintf(buf, "// conformanceCases lists every mask value with the observations both\n")
	fmt.Fprintf(buf, "// backends must reproduce bit-for-bit.\n")
	fmt.Fprintf(buf, "var conformanceCases = []struct {\n")
	fmt.Fprintf(buf, "\tname       string\n")
	fmt.Fprintf(buf, "\tx, y, z, w bool\n")
	fmt.Fprintf(buf, "\tarray      [4]uint32\n")
	fmt.Fprintf(buf, "\tbits       uint32\n")
	fmt.Fprintf(buf, "\tany, all   bool\n")
	fmt.Fprintf(buf, "\tstr        string\n")
	fmt.Fprintf(buf, "\tgoStr      string\n")
	fmt.Fprintf(buf, "}{\n")
	for _, c := range cases {
		fmt.Fprintf(buf, "\t{%q, %v, %v, %v, %v, [4]uint32{%#x, %#x, %#x, %#x}, %#x, %v, %v, %q, %q},\n",
			c.name, c.x, c.y, c.z, c.w,
			c.array[0], c.array[1], c.array[2], c.array[3],
			c.bits, c.any, c.all, c.str, c.goStr)
	}
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "func TestMaskConformance(t *testing.T) {\n")
	fmt.Fprintf(buf, "\tfor _, tc := range conformanceCases {\n")
	fmt.Fprintf(buf, "\t\tt.Run(tc.name, func(t *testing.T) {\n")
	fmt.Fprintf(buf, "\t\t\tm := NewMask(tc.x, tc.y, tc.z, tc.w)\n")
	fmt.Fprintf(buf, "\t\t\tif got := m.Array(); got != tc.array {\n")
	fmt.Fprintf(buf, "\t\t\t\tt.Errorf(\"Array() = %%#v, want %%#v\", got, tc.array)\n")
	fmt.Fprintf(buf, "\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\tif got := m.Bitmask(); got != tc.bits {\n")
	fmt.Fprintf(buf, "\t\t\t\tt.Errorf(\"Bitmask() = %%#x, want %%#x\", got, tc.bits)\n")
	fmt.Fprintf(buf, "\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\tif got := m.Any(); got != tc.any {\n")
	fmt.Fprintf(buf, "\t\t\t\tt.Errorf(\"Any() = %%v, want %%v\", got, tc.any)\n")
	fmt.Fprintf(buf, "\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\tif got := m.All(); got != tc.all {\n")
	fmt.Fprintf(buf, "\t\t\t\tt.Errorf(\"All() = %%v, want %%v\", got, tc.all)\n")
	fmt.Fprintf(buf, "\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\tif got := m.String(); got != tc.str {\n")
	fmt.Fprintf(buf, "\t\t\t\tt.Errorf(\"String() = %%q, want %%q\", got, tc.str)\n")
	fmt.Fprintf(buf, "\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t\tif got := fmt.Sprintf(\"%%#v\", m); got != tc.goStr {\n")
	fmt.Fprintf(buf, "\t\t\t\tt.Errorf(\"GoString() = %%q, want %%q\", got, tc.goStr)\n")
	fmt.Fprintf(buf, "\t\t\t}\n")
	fmt.Fprintf(buf, "\t\t})\n")
	fmt.Fprintf(buf, "\t}\n")
	fmt.Fprintf(buf, "}\n")
}

func run(output string) error {
	var buf bytes.Buffer
	emit(&buf, conformanceCases())

	// Format and write
	formatted, err := imports.Process(output, buf.Bytes(), nil)
	if err != nil {
		return fmt.Errorf("format %s: %w", output, err)
	}
	if err := os.WriteFile(output, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	fmt.Printf("Generated: %s\n", output)
	return nil
}

func main() {
	output := flag.String("output", "z_conformance_test.go", "path of the generated conformance test file")
	flag.Parse()

	if err := run(*output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

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

//go:build !amd64 || !goexperiment.simd || nosimd

package vec4

import "testing"

func TestRawScalarBackend(t *testing.T) {
	if got := Backend(); got != "scalar" {
		t.Fatalf("Backend() = %q, want \"scalar\"", got)
	}

	// On the scalar backend the raw representation is the canonical array
	// itself.
	for _, m := range allMasks() {
		if got, want := m.Raw(), m.Array(); got != want {
			t.Errorf("Raw() = %#v, want %#v", got, want)
		}
	}
}

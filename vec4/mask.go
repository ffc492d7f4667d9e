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

package vec4

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

//go:generate go run ../cmd/lanegen -output z_conformance_test.go

// Backend reports which storage backend this build uses: "simd" or "scalar".
// The simd backend requires GOEXPERIMENT=simd on amd64 and is disabled by the
// nosimd build tag.
func Backend() string {
	return backendName
}

// Everything below is defined on the canonical Array form, so equality,
// ordering, hashing, and formatting cannot diverge between backends.

// Equal reports whether m and other have identical lanes.
func (m Mask) Equal(other Mask) bool {
	return m.Array() == other.Array()
}

// Compare orders masks lexicographically by lane words.
// It returns -1 if m sorts before other, +1 if after, and 0 if equal.
func (m Mask) Compare(other Mask) int {
	a, b := m.Array(), other.Array()
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Hash64 returns a 64-bit hash of the mask. Equal masks hash equally on
// both backends.
func (m Mask) Hash64() uint64 {
	a := m.Array()
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:], a[0])
	binary.LittleEndian.PutUint32(buf[4:], a[1])
	binary.LittleEndian.PutUint32(buf[8:], a[2])
	binary.LittleEndian.PutUint32(buf[12:], a[3])
	return xxhash.Sum64(buf[:])
}

// String renders the mask as four booleans, such as
// "[true, false, true, false]". A lane reads as true when its word is
// nonzero.
func (m Mask) String() string {
	a := m.Array()
	return fmt.Sprintf("[%v, %v, %v, %v]", a[0] != 0, a[1] != 0, a[2] != 0, a[3] != 0)
}

// GoString renders the raw lane words in hex, such as
// "vec4.Mask(0xffffffff, 0x0, 0xffffffff, 0x0)". It backs the %#v verb.
func (m Mask) GoString() string {
	a := m.Array()
	return fmt.Sprintf("vec4.Mask(%#x, %#x, %#x, %#x)", a[0], a[1], a[2], a[3])
}

// Select returns a vector with the lanes of ifTrue where m is true and the
// lanes of ifFalse elsewhere.
func (m Mask) Select(ifTrue, ifFalse Vec) Vec {
	return Select(m, ifTrue, ifFalse)
}

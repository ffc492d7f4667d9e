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

const backendName = "scalar"

// Mask is a boolean mask for the four lanes of a Vec.
//
// Masks are created by comparison methods on Vec or by NewMask. Each lane
// holds 0xFFFFFFFF for true or 0x00000000 for false. The zero Mask is
// all-false.
type Mask struct {
	x, y, z, w uint32
}

const laneTrue = 0xFFFFFFFF

func laneWord(b bool) uint32 {
	if b {
		return laneTrue
	}
	return 0
}

// NewMask returns a mask with the given truth value in each lane.
func NewMask(x, y, z, w bool) Mask {
	return Mask{laneWord(x), laneWord(y), laneWord(z), laneWord(w)}
}

// And returns the lane-wise AND of m and other.
func (m Mask) And(other Mask) Mask {
	return Mask{m.x & other.x, m.y & other.y, m.z & other.z, m.w & other.w}
}

// Or returns the lane-wise OR of m and other.
func (m Mask) Or(other Mask) Mask {
	return Mask{m.x | other.x, m.y | other.y, m.z | other.z, m.w | other.w}
}

// Not returns the lane-wise complement of m.
func (m Mask) Not() Mask {
	return Mask{^m.x, ^m.y, ^m.z, ^m.w}
}

// Any reports whether any lane is true.
// In other words: x || y || z || w.
func (m Mask) Any() bool {
	return m.x|m.y|m.z|m.w != 0
}

// All reports whether every lane is true.
// In other words: x && y && z && w.
func (m Mask) All() bool {
	return m.x&m.y&m.z&m.w == laneTrue
}

// Bitmask packs the four lanes into the low four bits of a uint32.
// A true lane yields a 1 bit; lane x goes into the lowest bit, lane y into
// the second, and so on. The upper 28 bits are always zero.
func (m Mask) Bitmask() uint32 {
	return m.x>>31 | m.y>>31<<1 | m.z>>31<<2 | m.w>>31<<3
}

// Array returns the four lane words as a [4]uint32.
// Both backends return identical arrays for identical mask values, so this
// is the canonical form for comparing, ordering, and hashing masks.
func (m Mask) Array() [4]uint32 {
	return [4]uint32{m.x, m.y, m.z, m.w}
}

// Raw returns the backend representation of the mask. On the scalar backend
// this is the same [4]uint32 that Array returns.
func (m Mask) Raw() [4]uint32 {
	return m.Array()
}

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
	"fmt"
	"math"
)

// One returns a vector with all lanes set to 1.
func One() Vec {
	return Splat(1)
}

// Scale multiplies every lane by s.
func (v Vec) Scale(s float32) Vec {
	return v.Mul(Splat(s))
}

// Clamp limits every lane to the range [lo, hi] lane-wise.
func (v Vec) Clamp(lo, hi Vec) Vec {
	return v.Max(lo).Min(hi)
}

// Lerp linearly interpolates between v and other by t. The result is v when
// t is 0 and other when t is 1.
func (v Vec) Lerp(other Vec, t float32) Vec {
	return v.Add(other.Sub(v).Scale(t))
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vec) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vec) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to length 1, or the zero vector when v has
// length zero.
func (v Vec) Normalize() Vec {
	length := v.Length()
	if length == 0 {
		return Zero()
	}
	return v.Scale(1 / length)
}

// String renders the lanes as numbers, such as "[1, 2.5, 3, 4]".
func (v Vec) String() string {
	a := v.Array()
	return fmt.Sprintf("[%v, %v, %v, %v]", a[0], a[1], a[2], a[3])
}

// GoString renders the raw lane bit patterns in hex, such as
// "vec4.Vec(0x3f800000, 0x40000000, 0x40400000, 0x40800000)". It backs the
// %#v verb and makes lane bits visible when values print identically.
func (v Vec) GoString() string {
	a := v.Array()
	return fmt.Sprintf("vec4.Vec(%#x, %#x, %#x, %#x)",
		math.Float32bits(a[0]), math.Float32bits(a[1]), math.Float32bits(a[2]), math.Float32bits(a[3]))
}

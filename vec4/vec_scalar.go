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

import "math"

// Vec is a vector of four float32 lanes. The zero Vec has all lanes zero.
type Vec struct {
	x, y, z, w float32
}

// New returns a vector with the given lanes.
func New(x, y, z, w float32) Vec {
	return Vec{x, y, z, w}
}

// Splat returns a vector with all four lanes set to v.
func Splat(v float32) Vec {
	return Vec{v, v, v, v}
}

// Zero returns the zero vector.
func Zero() Vec {
	return Vec{}
}

// FromArray returns a vector with lanes taken from a.
func FromArray(a [4]float32) Vec {
	return Vec{a[0], a[1], a[2], a[3]}
}

// FromSlice returns a vector with lanes taken from the first four elements
// of s. It panics if len(s) < 4.
func FromSlice(s []float32) Vec {
	_ = s[3]
	return Vec{s[0], s[1], s[2], s[3]}
}

// Array returns the four lanes as a [4]float32.
func (v Vec) Array() [4]float32 {
	return [4]float32{v.x, v.y, v.z, v.w}
}

// StoreSlice stores the four lanes into the first four elements of s.
// It panics if len(s) < 4.
func (v Vec) StoreSlice(s []float32) {
	a := v.Array()
	copy(s[:4], a[:])
}

// X returns lane 0.
func (v Vec) X() float32 { return v.x }

// Y returns lane 1.
func (v Vec) Y() float32 { return v.y }

// Z returns lane 2.
func (v Vec) Z() float32 { return v.z }

// W returns lane 3.
func (v Vec) W() float32 { return v.w }

// Add performs element-wise addition.
func (v Vec) Add(other Vec) Vec {
	return Vec{v.x + other.x, v.y + other.y, v.z + other.z, v.w + other.w}
}

// Sub performs element-wise subtraction.
func (v Vec) Sub(other Vec) Vec {
	return Vec{v.x - other.x, v.y - other.y, v.z - other.z, v.w - other.w}
}

// Mul performs element-wise multiplication.
func (v Vec) Mul(other Vec) Vec {
	return Vec{v.x * other.x, v.y * other.y, v.z * other.z, v.w * other.w}
}

// Div performs element-wise division.
func (v Vec) Div(other Vec) Vec {
	return Vec{v.x / other.x, v.y / other.y, v.z / other.z, v.w / other.w}
}

// minLane and maxLane follow the MINPS/MAXPS rule: the second operand wins
// on ties and unordered lanes. The simd backend reduces with the same
// helpers, so horizontal results agree bit-for-bit across backends.
func minLane(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxLane(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Min performs element-wise minimum. When a lane compares unordered the
// lane from other wins, matching the hardware MINPS rule.
func (v Vec) Min(other Vec) Vec {
	return Vec{minLane(v.x, other.x), minLane(v.y, other.y), minLane(v.z, other.z), minLane(v.w, other.w)}
}

// Max performs element-wise maximum. When a lane compares unordered the
// lane from other wins, matching the hardware MAXPS rule.
func (v Vec) Max(other Vec) Vec {
	return Vec{maxLane(v.x, other.x), maxLane(v.y, other.y), maxLane(v.z, other.z), maxLane(v.w, other.w)}
}

func sqrtLane(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

// Sqrt performs element-wise square root.
func (v Vec) Sqrt() Vec {
	return Vec{sqrtLane(v.x), sqrtLane(v.y), sqrtLane(v.z), sqrtLane(v.w)}
}

func absLane(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
}

// Abs performs element-wise absolute value by clearing the sign bit.
func (v Vec) Abs() Vec {
	return Vec{absLane(v.x), absLane(v.y), absLane(v.z), absLane(v.w)}
}

func negLane(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) ^ (1 << 31))
}

// Neg performs element-wise negation by flipping the sign bit.
func (v Vec) Neg() Vec {
	return Vec{negLane(v.x), negLane(v.y), negLane(v.z), negLane(v.w)}
}

// MulAdd returns v*a + b element-wise. Each lane may round twice, or once
// when the compiler fuses the multiply and add, so this is the one Vec
// operation whose lane bits can differ between backends.
func (v Vec) MulAdd(a, b Vec) Vec {
	return Vec{v.x*a.x + b.x, v.y*a.y + b.y, v.z*a.z + b.z, v.w*a.w + b.w}
}

// Dot returns the dot product of v and other.
func (v Vec) Dot(other Vec) float32 {
	return v.x*other.x + v.y*other.y + v.z*other.z + v.w*other.w
}

// MinElement returns the smallest lane.
func (v Vec) MinElement() float32 {
	return minLane(minLane(v.x, v.y), minLane(v.z, v.w))
}

// MaxElement returns the largest lane.
func (v Vec) MaxElement() float32 {
	return maxLane(maxLane(v.x, v.y), maxLane(v.z, v.w))
}

// Equal returns a mask where v == other.
func (v Vec) Equal(other Vec) Mask {
	return Mask{laneWord(v.x == other.x), laneWord(v.y == other.y), laneWord(v.z == other.z), laneWord(v.w == other.w)}
}

// NotEqual returns a mask where v != other. An unordered lane compares
// not-equal, so NotEqual is always the complement of Equal.
func (v Vec) NotEqual(other Vec) Mask {
	return Mask{laneWord(v.x != other.x), laneWord(v.y != other.y), laneWord(v.z != other.z), laneWord(v.w != other.w)}
}

// Less returns a mask where v < other.
func (v Vec) Less(other Vec) Mask {
	return Mask{laneWord(v.x < other.x), laneWord(v.y < other.y), laneWord(v.z < other.z), laneWord(v.w < other.w)}
}

// LessEqual returns a mask where v <= other.
func (v Vec) LessEqual(other Vec) Mask {
	return Mask{laneWord(v.x <= other.x), laneWord(v.y <= other.y), laneWord(v.z <= other.z), laneWord(v.w <= other.w)}
}

// Greater returns a mask where v > other.
func (v Vec) Greater(other Vec) Mask {
	return Mask{laneWord(v.x > other.x), laneWord(v.y > other.y), laneWord(v.z > other.z), laneWord(v.w > other.w)}
}

// GreaterEqual returns a mask where v >= other.
func (v Vec) GreaterEqual(other Vec) Mask {
	return Mask{laneWord(v.x >= other.x), laneWord(v.y >= other.y), laneWord(v.z >= other.z), laneWord(v.w >= other.w)}
}

// Select returns a vector with the lanes of ifTrue where m is true and the
// lanes of ifFalse elsewhere.
func Select(m Mask, ifTrue, ifFalse Vec) Vec {
	var out Vec
	if m.x != 0 {
		out.x = ifTrue.x
	} else {
		out.x = ifFalse.x
	}
	if m.y != 0 {
		out.y = ifTrue.y
	} else {
		out.y = ifFalse.y
	}
	if m.z != 0 {
		out.z = ifTrue.z
	} else {
		out.z = ifFalse.z
	}
	if m.w != 0 {
		out.w = ifTrue.w
	} else {
		out.w = ifFalse.w
	}
	return out
}

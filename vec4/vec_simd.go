//go:build amd64 && goexperiment.simd && !nosimd

package vec4

import "simd/archsimd"

// Vec is a vector of four float32 lanes held in a single 128-bit register.
// The zero Vec has all lanes zero.
type Vec struct {
	v archsimd.Float32x4
}

// New returns a vector with the given lanes.
func New(x, y, z, w float32) Vec {
	lanes := [4]float32{x, y, z, w}
	return Vec{archsimd.LoadFloat32x4Slice(lanes[:])}
}

// Splat returns a vector with all four lanes set to v.
func Splat(v float32) Vec {
	return Vec{archsimd.BroadcastFloat32x4(v)}
}

// Zero returns the zero vector.
func Zero() Vec {
	return Vec{archsimd.ZeroFloat32x4()}
}

// FromArray returns a vector with lanes taken from a.
func FromArray(a [4]float32) Vec {
	return Vec{archsimd.LoadFloat32x4Slice(a[:])}
}

// FromSlice returns a vector with lanes taken from the first four elements
// of s. It panics if len(s) < 4.
func FromSlice(s []float32) Vec {
	return Vec{archsimd.LoadFloat32x4Slice(s[:4])}
}

// Array returns the four lanes as a [4]float32.
func (v Vec) Array() [4]float32 {
	var a [4]float32
	v.v.StoreSlice(a[:])
	return a
}

// StoreSlice stores the four lanes into the first four elements of s.
// It panics if len(s) < 4.
func (v Vec) StoreSlice(s []float32) {
	v.v.StoreSlice(s[:4])
}

// X returns lane 0.
func (v Vec) X() float32 { return v.v.GetElem(0) }

// Y returns lane 1.
func (v Vec) Y() float32 { return v.v.GetElem(1) }

// Z returns lane 2.
func (v Vec) Z() float32 { return v.v.GetElem(2) }

// W returns lane 3.
func (v Vec) W() float32 { return v.v.GetElem(3) }

// Add performs element-wise addition.
func (v Vec) Add(other Vec) Vec {
	return Vec{v.v.Add(other.v)}
}

// Sub performs element-wise subtraction.
func (v Vec) Sub(other Vec) Vec {
	return Vec{v.v.Sub(other.v)}
}

// Mul performs element-wise multiplication.
func (v Vec) Mul(other Vec) Vec {
	return Vec{v.v.Mul(other.v)}
}

// Div performs element-wise division.
func (v Vec) Div(other Vec) Vec {
	return Vec{v.v.Div(other.v)}
}

// Min performs element-wise minimum. When a lane compares unordered the
// lane from other wins, matching the hardware MINPS rule.
func (v Vec) Min(other Vec) Vec {
	return Vec{v.v.Min(other.v)}
}

// Max performs element-wise maximum. When a lane compares unordered the
// lane from other wins, matching the hardware MAXPS rule.
func (v Vec) Max(other Vec) Vec {
	return Vec{v.v.Max(other.v)}
}

// Sqrt performs element-wise square root.
func (v Vec) Sqrt() Vec {
	return Vec{v.v.Sqrt()}
}

// Abs performs element-wise absolute value by clearing the sign bit.
// archsimd has no Abs on float types, so cast to int and mask.
func (v Vec) Abs() Vec {
	notSign := archsimd.BroadcastInt32x4(0x7FFFFFFF)
	return Vec{v.v.AsInt32x4().And(notSign).AsFloat32x4()}
}

// Neg performs element-wise negation by flipping the sign bit.
func (v Vec) Neg() Vec {
	signBits := archsimd.BroadcastInt32x4(int32(-0x80000000))
	return Vec{v.v.AsInt32x4().Xor(signBits).AsFloat32x4()}
}

// MulAdd returns v*a + b element-wise, rounded once per lane by the
// hardware fused multiply-add. The scalar backend may round twice, so this
// is the one Vec operation whose lane bits can differ between backends.
func (v Vec) MulAdd(a, b Vec) Vec {
	return Vec{v.v.MulAdd(a.v, b.v)}
}

// Dot returns the dot product of v and other.
func (v Vec) Dot(other Vec) float32 {
	p := v.v.Mul(other.v)
	return ((p.GetElem(0) + p.GetElem(1)) + p.GetElem(2)) + p.GetElem(3)
}

// minLane and maxLane follow the MINPS/MAXPS rule: the second operand wins
// on ties and unordered lanes. The scalar backend reduces with the same
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

// MinElement returns the smallest lane.
func (v Vec) MinElement() float32 {
	m01 := minLane(v.v.GetElem(0), v.v.GetElem(1))
	m23 := minLane(v.v.GetElem(2), v.v.GetElem(3))
	return minLane(m01, m23)
}

// MaxElement returns the largest lane.
func (v Vec) MaxElement() float32 {
	m01 := maxLane(v.v.GetElem(0), v.v.GetElem(1))
	m23 := maxLane(v.v.GetElem(2), v.v.GetElem(3))
	return maxLane(m01, m23)
}

// maskFrom materializes a comparison result as lane words, -1 for true and
// 0 for false.
func maskFrom(c archsimd.Mask32x4) Mask {
	ones := archsimd.BroadcastInt32x4(-1)
	zero := archsimd.BroadcastInt32x4(0)
	return Mask{ones.Merge(zero, c)}
}

// Equal returns a mask where v == other.
func (v Vec) Equal(other Vec) Mask {
	return maskFrom(v.v.Equal(other.v))
}

// NotEqual returns a mask where v != other. An unordered lane compares
// not-equal, so NotEqual is always the complement of Equal.
func (v Vec) NotEqual(other Vec) Mask {
	return v.Equal(other).Not()
}

// Less returns a mask where v < other.
func (v Vec) Less(other Vec) Mask {
	return maskFrom(v.v.Less(other.v))
}

// LessEqual returns a mask where v <= other.
func (v Vec) LessEqual(other Vec) Mask {
	return maskFrom(v.v.LessEqual(other.v))
}

// Greater returns a mask where v > other.
func (v Vec) Greater(other Vec) Mask {
	return maskFrom(v.v.Greater(other.v))
}

// GreaterEqual returns a mask where v >= other.
func (v Vec) GreaterEqual(other Vec) Mask {
	return maskFrom(v.v.GreaterEqual(other.v))
}

// Select returns a vector with the lanes of ifTrue where m is true and the
// lanes of ifFalse elsewhere.
func Select(m Mask, ifTrue, ifFalse Vec) Vec {
	zero := archsimd.BroadcastInt32x4(0)
	return Vec{ifTrue.v.Merge(ifFalse.v, m.m.Less(zero))}
}

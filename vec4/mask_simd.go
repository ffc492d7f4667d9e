//go:build amd64 && goexperiment.simd && !nosimd

package vec4

import "simd/archsimd"

const backendName = "simd"

// Mask is a boolean mask for the four lanes of a Vec.
//
// Masks are created by comparison methods on Vec or by NewMask. The mask
// lives in a single 128-bit register holding 0xFFFFFFFF for a true lane and
// 0x00000000 for a false lane, the same convention comparison instructions
// use. The zero Mask is all-false.
type Mask struct {
	m archsimd.Int32x4
}

// NewMask returns a mask with the given truth value in each lane.
func NewMask(x, y, z, w bool) Mask {
	var lanes [4]int32
	for i, b := range [4]bool{x, y, z, w} {
		if b {
			lanes[i] = -1
		}
	}
	return Mask{archsimd.LoadInt32x4Slice(lanes[:])}
}

// And returns the lane-wise AND of m and other.
func (m Mask) And(other Mask) Mask {
	return Mask{m.m.And(other.m)}
}

// Or returns the lane-wise OR of m and other.
func (m Mask) Or(other Mask) Mask {
	return Mask{m.m.Or(other.m)}
}

// Not returns the lane-wise complement of m.
func (m Mask) Not() Mask {
	// XOR with all 1s
	allOnes := archsimd.BroadcastInt32x4(-1)
	return Mask{m.m.Xor(allOnes)}
}

// Any reports whether any lane is true.
// In other words: x || y || z || w.
func (m Mask) Any() bool {
	return m.Bitmask() != 0
}

// All reports whether every lane is true.
// In other words: x && y && z && w.
func (m Mask) All() bool {
	return m.Bitmask() == 0xF
}

// Bitmask packs the four lanes into the low four bits of a uint32.
// A true lane yields a 1 bit; lane x goes into the lowest bit, lane y into
// the second, and so on. The upper 28 bits are always zero.
func (m Mask) Bitmask() uint32 {
	zero := archsimd.BroadcastInt32x4(0)
	return uint32(m.m.Less(zero).ToBits())
}

// Array returns the four lane words as a [4]uint32.
// Both backends return identical arrays for identical mask values, so this
// is the canonical form for comparing, ordering, and hashing masks.
func (m Mask) Array() [4]uint32 {
	var lanes [4]int32
	m.m.StoreSlice(lanes[:])
	return [4]uint32{uint32(lanes[0]), uint32(lanes[1]), uint32(lanes[2]), uint32(lanes[3])}
}

// Raw returns the backend representation of the mask: the 128-bit register
// with four 32-bit lanes.
func (m Mask) Raw() archsimd.Int32x4 {
	return m.m
}

// Package vec4 provides a 4-lane float32 vector and its boolean lane mask.
// The mask carries per-lane comparison results and drives per-lane selection
// between two vectors.
//
// # Types
//
// The package centers on two fixed-width value types:
//   - Vec - four float32 lanes with element-wise arithmetic and comparisons
//   - Mask - four boolean lanes, one per Vec lane
//
// Comparisons produce masks, masks combine with And/Or/Not, and Select blends
// two vectors lane by lane:
//
//	a := vec4.New(1, 2, 3, 4)
//	b := vec4.New(10, 20, 30, 40)
//	m := a.Less(b).And(a.Greater(vec4.Splat(1.5)))
//	c := vec4.Select(m, a, b)
//
// # Backends
//
// Each type has two storage backends selected at build time:
//   - SIMD: a single 128-bit register (archsimd.Float32x4 / archsimd.Int32x4),
//     requires GOEXPERIMENT=simd on amd64
//   - scalar: four discrete fields, used everywhere else
//
// The nosimd build tag forces the scalar backend on any target. Both backends
// produce bit-identical results for every Mask operation, including the
// canonical [4]uint32 view, the 4-bit Bitmask, hashing, and formatting. Vec
// operations are bit-identical as well, with one exception: MulAdd may round
// once (fused) or twice per lane depending on the backend and hardware. Mask
// lanes are always 0x00000000 or 0xFFFFFFFF; every operation in this package
// preserves that.
//
// # Lane Order
//
// Lanes are numbered 0 through 3 and conventionally named x, y, z, w.
// Bitmask packs lane i into bit i, so lane 0 is the least significant bit.
package vec4

//go:build amd64 && goexperiment.simd && !nosimd

package vec4

import "testing"

func TestRawSIMDBackend(t *testing.T) {
	if got := Backend(); got != "simd" {
		t.Fatalf("Backend() = %q, want \"simd\"", got)
	}

	// The raw register must carry the same lane words as the canonical
	// array, and wrapping it back must reproduce the mask.
	for _, m := range allMasks() {
		var lanes [4]int32
		m.Raw().StoreSlice(lanes[:])
		a := m.Array()
		for i, lane := range lanes {
			if uint32(lane) != a[i] {
				t.Errorf("Raw() lane %d = %#x, want %#x", i, uint32(lane), a[i])
			}
		}
		if got := (Mask{m.Raw()}); !got.Equal(m) {
			t.Errorf("Mask{Raw()} = %v, want %v", got, m)
		}
	}
}

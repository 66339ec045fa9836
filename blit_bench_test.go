package blit

import "testing"

// BenchmarkBlit measures the per-element cost of the engine across
// transforms on a 256x256 copy.
func BenchmarkBlit(b *testing.B) {
	src, _ := NewGeneric(make([]uint32, 256*256), 256, 256)
	dst, _ := NewGeneric(make([]uint32, 512*512), 512, 512)

	benchmarks := []struct {
		name string
		tr   Transform
	}{
		{"None", None},
		{"FlipHorizontal", FlipHorizontal},
		{"Rotate90", Rotate90},
		{"Rotate180", Rotate180},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			size := bm.tr.Size(Sz(256, 256))
			for i := 0; i < b.N; i++ {
				Blit[uint32](dst, Pt(0, 0), src, Pt(0, 0), size, bm.tr)
			}
		})
	}
}

// BenchmarkBlitThroughView compares a direct blit against one through a
// composed pair of views, to show the delegation overhead.
func BenchmarkBlitThroughView(b *testing.B) {
	src, _ := NewGeneric(make([]uint32, 128*128), 128, 128)
	dst, _ := NewGeneric(make([]uint32, 256*256), 256, 256)

	b.Run("Direct", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Blit[uint32](dst, Pt(16, 16), src, Pt(0, 0), Sz(128, 128), None)
		}
	})

	b.Run("Viewed", func(b *testing.B) {
		outer, _ := OffsetMut[uint32](dst, Pt(8, 8))
		inner, _ := SubMut[uint32](outer, Pt(8, 8), Sz(128, 128))
		for i := 0; i < b.N; i++ {
			Blit[uint32](inner, Pt(0, 0), src, Pt(0, 0), Sz(128, 128), None)
		}
	})
}

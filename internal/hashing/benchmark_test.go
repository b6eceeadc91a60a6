package hashing_test

import (
	"testing"

	"github.com/lgbarn/variantkit-go/internal/hashing"
	"github.com/lgbarn/variantkit-go/internal/testutil"
)

var benchPositions = map[string][2]string{
	"ChessStart": {"chess", ""},
	"Kiwipete":   {"chess", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	"Shogi":      {"shogi", ""},
	"Grand":      {"grand", ""},
}

func BenchmarkKey(b *testing.B) {
	for name, bp := range benchPositions {
		b.Run(name, func(b *testing.B) {
			pos := testutil.MustPosition(b, bp[0], bp[1])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				hashing.Key(pos)
			}
		})
	}
}

func BenchmarkWeakHash(b *testing.B) {
	placement := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R"
	for i := 0; i < b.N; i++ {
		hashing.WeakHash(placement)
	}
}

func BenchmarkDuplicateDetector_CheckAndAdd(b *testing.B) {
	d := hashing.NewDuplicateDetector(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.CheckAndAdd(hashing.NewSignature(uint64(i%1024), "x"))
	}
}

func BenchmarkThreadSafeDuplicateDetector_Parallel(b *testing.B) {
	d := hashing.NewThreadSafeDuplicateDetector(0)
	b.RunParallel(func(pb *testing.PB) {
		i := uint64(0)
		for pb.Next() {
			d.CheckAndAdd(hashing.NewSignature(i%1024, "x"))
			i++
		}
	})
}

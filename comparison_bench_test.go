package folly

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
)

// Comparative benchmarks: BitIterator range scan vs Roaring Bitmap.
// Run with: go test -bench=Comparison -benchmem .
//
// Roaring amortizes sparsity through compressed containers and wins once a
// bitmap is long-lived; the flat block scan wins on plain []uint64 state
// that already exists, with zero allocations and no container upkeep.

const comparisonBits = 1 << 18 // 256Ki bits, one set bit every 4096

func sparseBlocks() []uint64 {
	blocks := make([]uint64, comparisonBits/64)
	for i := 0; i < comparisonBits; i += 4096 {
		blocks[i/64] |= 1 << uint(i%64)
	}
	return blocks
}

func sparseRoaring() *roaring.Bitmap {
	rb := roaring.New()
	for i := uint32(0); i < comparisonBits; i += 4096 {
		rb.Add(i)
	}
	return rb
}

func BenchmarkComparison_FirstSet_BitIterator(b *testing.B) {
	blocks := sparseBlocks()
	begin := MakeBitIterator(blocks, 1, 0) // skip the bit at index 0
	end := BitRangeEnd(blocks)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		it := FindFirstSetInRange(begin, end)
		if it.Equal(end) {
			b.Fatal("set bit not found")
		}
	}
}

func BenchmarkComparison_FirstSet_Roaring(b *testing.B) {
	rb := sparseRoaring()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		it := rb.Iterator()
		it.AdvanceIfNeeded(64)
		if !it.HasNext() {
			b.Fatal("set bit not found")
		}
		_ = it.Next()
	}
}

func BenchmarkComparison_IterateAll_BitIterator(b *testing.B) {
	blocks := sparseBlocks()
	begin := MakeBitIterator(blocks, 0, 0)
	end := BitRangeEnd(blocks)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n := 0
		ForEachSetBit(begin, end, func(int) bool {
			n++
			return true
		})
		if n != comparisonBits/4096 {
			b.Fatalf("visited %d bits", n)
		}
	}
}

func BenchmarkComparison_IterateAll_Roaring(b *testing.B) {
	rb := sparseRoaring()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		n := 0
		rb.Iterate(func(uint32) bool {
			n++
			return true
		})
		if n != comparisonBits/4096 {
			b.Fatalf("visited %d bits", n)
		}
	}
}

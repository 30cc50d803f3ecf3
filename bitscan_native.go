//go:build !purego

package folly

import "math/bits"

// Per-width scan kernels. math/bits compiles these down to the native
// bit-scan instructions (TZCNT/BSF, LZCNT/BSR on x86-64, RBIT+CLZ on arm64)
// at the narrowest width that holds the operand.

func ffs8(x uint8) uint {
	if x == 0 {
		return 0
	}
	return uint(bits.TrailingZeros8(x)) + 1
}

func ffs16(x uint16) uint {
	if x == 0 {
		return 0
	}
	return uint(bits.TrailingZeros16(x)) + 1
}

func ffs32(x uint32) uint {
	if x == 0 {
		return 0
	}
	return uint(bits.TrailingZeros32(x)) + 1
}

func ffs64(x uint64) uint {
	if x == 0 {
		return 0
	}
	return uint(bits.TrailingZeros64(x)) + 1
}

// bits.Len already yields 0 for a zero operand, which is exactly the
// 1-based contract.

func fls8(x uint8) uint   { return uint(bits.Len8(x)) }
func fls16(x uint16) uint { return uint(bits.Len16(x)) }
func fls32(x uint32) uint { return uint(bits.Len32(x)) }
func fls64(x uint64) uint { return uint(bits.Len64(x)) }

func pop8(x uint8) uint   { return uint(bits.OnesCount8(x)) }
func pop16(x uint16) uint { return uint(bits.OnesCount16(x)) }
func pop32(x uint32) uint { return uint(bits.OnesCount32(x)) }
func pop64(x uint64) uint { return uint(bits.OnesCount64(x)) }

package folly

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// widthOf reports the width of T in bits. The size is a per-instantiation
// constant, so the callers' width switches fold away at compile time.
func widthOf[T constraints.Integer]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// FindFirstSet returns the 1-based index of the least significant set bit in
// x, or 0 when x == 0. For x != 0 the result r satisfies (x>>(r-1))&1 == 1
// with all lower bits zero.
//
// Signed inputs are scanned through the unsigned bit pattern of the same
// width; the value's sign never changes the result, only its bits do.
func FindFirstSet[T constraints.Integer](x T) uint {
	switch widthOf[T]() {
	case 8:
		return ffs8(uint8(x))
	case 16:
		return ffs16(uint16(x))
	case 32:
		return ffs32(uint32(x))
	default:
		return ffs64(uint64(x))
	}
}

// FindLastSet returns the 1-based index of the most significant set bit in
// x, or 0 when x == 0. For x != 0, FindLastSet(x) == 1 + floor(log2(x))
// over the unsigned bit pattern of x.
func FindLastSet[T constraints.Integer](x T) uint {
	switch widthOf[T]() {
	case 8:
		return fls8(uint8(x))
	case 16:
		return fls16(uint16(x))
	case 32:
		return fls32(uint32(x))
	default:
		return fls64(uint64(x))
	}
}

// PopCount returns the number of set bits in x.
func PopCount[T constraints.Integer](x T) uint {
	switch widthOf[T]() {
	case 8:
		return pop8(uint8(x))
	case 16:
		return pop16(uint16(x))
	case 32:
		return pop32(uint32(x))
	default:
		return pop64(uint64(x))
	}
}

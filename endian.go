package folly

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ByteOrder identifies a byte ordering for multi-byte integers.
type ByteOrder uint8

const (
	// LittleEndian stores the least significant byte first.
	LittleEndian ByteOrder = iota
	// BigEndian stores the most significant byte first.
	BigEndian
)

// String returns the string representation of a ByteOrder.
func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unknown"
	}
}

// NativeOrder is declared in endian_little.go and endian_big.go, selected by
// GOARCH build tags. Architectures on neither list fail to compile.

// Swap returns x with its byte order reversed: big-endian becomes
// little-endian and vice versa. Identity for 8-bit values. The sign of x is
// irrelevant; only the byte pattern moves.
func Swap[T constraints.Integer](x T) T {
	switch widthOf[T]() {
	case 8:
		return x
	case 16:
		return T(bits.ReverseBytes16(uint16(x)))
	case 32:
		return T(bits.ReverseBytes32(uint32(x)))
	default:
		return T(bits.ReverseBytes64(uint64(x)))
	}
}

// Big converts x between native and big-endian representation. On a
// little-endian host this is Swap; on a big-endian host it is the identity.
// Big is its own inverse: Big(Big(x)) == x.
func Big[T constraints.Integer](x T) T {
	if NativeOrder == BigEndian {
		return x
	}
	return Swap(x)
}

// Little converts x between native and little-endian representation, the
// complement of Big. Little is its own inverse: Little(Little(x)) == x.
func Little[T constraints.Integer](x T) T {
	if NativeOrder == LittleEndian {
		return x
	}
	return Swap(x)
}

// Fixed-width variants for callers that must name a width explicitly rather
// than pick one up through type inference. Signed values go through the
// generic forms.

func Swap8(x uint8) uint8    { return x }
func Swap16(x uint16) uint16 { return bits.ReverseBytes16(x) }
func Swap32(x uint32) uint32 { return bits.ReverseBytes32(x) }
func Swap64(x uint64) uint64 { return bits.ReverseBytes64(x) }

func Big8(x uint8) uint8    { return x }
func Big16(x uint16) uint16 { return Big(x) }
func Big32(x uint32) uint32 { return Big(x) }
func Big64(x uint64) uint64 { return Big(x) }

func Little8(x uint8) uint8    { return x }
func Little16(x uint16) uint16 { return Little(x) }
func Little32(x uint32) uint32 { return Little(x) }
func Little64(x uint64) uint64 { return Little(x) }

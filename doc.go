// Package folly provides low-level bit-manipulation primitives: bit scans,
// power-of-two rounding, endianness conversion, unaligned typed memory
// access, and a bit-granularity iterator over slices of unsigned blocks.
//
// # Scalar primitives
//
//	FindFirstSet(x)   1-based index of the least significant set bit,
//	                  0 when x == 0
//	FindLastSet(x)    1-based index of the most significant set bit,
//	                  0 when x == 0; for x != 0 equals 1 + floor(log2(x))
//	PopCount(x)       number of set bits
//	NextPowTwo(v)     smallest power of two >= v
//
// All scalar primitives are generic over every fixed-width signed and
// unsigned integer type. Signed values are scanned through their
// two's-complement bit pattern, so only bit positions matter, never sign.
//
// # Endianness
//
//	Swap(x)     reverse byte order (big <-> little)
//	Big(x)      convert between native and big-endian
//	Little(x)   convert between native and little-endian
//
// NativeOrder identifies the host byte order at build time. Each conversion
// is its own inverse, so Big(Big(x)) == x and Little(Little(x)) == x.
// Fixed-width variants (Swap16, Big32, Little64, ...) exist for callers that
// must name a width explicitly.
//
// # Unaligned access
//
// LoadUnaligned and StoreUnaligned read and write a typed value at an
// arbitrary address through a byte-wise copy, so they cannot trap on
// architectures that fault on misaligned typed loads.
//
// # Bit iteration
//
// BitIterator addresses individual bits inside a []B block slice, walking
// bits LSb to MSb within each block. FindFirstSetInRange scans a bit range
// for the first 1 bit, skipping whole zero blocks with one scalar scan each.
//
// Build with -tags purego to force the portable bit-scan kernels, and with
// -tags bitsdebug to enable bit-position invariant checks.
package folly

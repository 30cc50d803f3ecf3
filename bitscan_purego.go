//go:build purego

package folly

// Portable scan kernels: iterative shift-and-count, no instruction-set
// assumptions. Slow, but correct everywhere.

func ffs8(x uint8) uint   { return ffs64(uint64(x)) }
func ffs16(x uint16) uint { return ffs64(uint64(x)) }
func ffs32(x uint32) uint { return ffs64(uint64(x)) }

func ffs64(x uint64) uint {
	if x == 0 {
		return 0
	}
	r := uint(1)
	for x&1 == 0 {
		x >>= 1
		r++
	}
	return r
}

func fls8(x uint8) uint   { return fls64(uint64(x)) }
func fls16(x uint16) uint { return fls64(uint64(x)) }
func fls32(x uint32) uint { return fls64(uint64(x)) }

func fls64(x uint64) uint {
	r := uint(0)
	for ; x != 0; x >>= 1 {
		r++
	}
	return r
}

func pop8(x uint8) uint   { return pop64(uint64(x)) }
func pop16(x uint16) uint { return pop64(uint64(x)) }
func pop32(x uint32) uint { return pop64(uint64(x)) }

func pop64(x uint64) uint {
	r := uint(0)
	for ; x != 0; x &= x - 1 {
		r++
	}
	return r
}

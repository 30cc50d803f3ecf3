package folly

import "golang.org/x/exp/constraints"

// ReadBit reports the value of bit offset in block. Offset 0 is the least
// significant bit.
func ReadBit[B constraints.Unsigned](block B, offset uint) bool {
	return block>>offset&1 != 0
}

// WriteBit sets or clears bit offset in *block. The write is a non-atomic
// read-modify-write of the whole block, so concurrent writers to the same
// block race even at different offsets.
func WriteBit[B constraints.Unsigned](block *B, offset uint, value bool) {
	if value {
		*block |= B(1) << offset
	} else {
		*block &^= B(1) << offset
	}
}

// BitIterator addresses one bit inside a slice of unsigned blocks, walking
// bits LSb to MSb within each block and blocks in slice order. It holds a
// position into the slice, not a copy: SetBit writes through to the caller's
// backing array, and the slice must outlive every iterator derived from it.
//
// For any dereferenceable iterator the bit offset is strictly below
// BitsPerBlock; the iterator at (len(blocks), 0) is the canonical end
// sentinel.
type BitIterator[B constraints.Unsigned] struct {
	blocks []B
	block  int
	offset uint
}

// MakeBitIterator returns an iterator addressing bit offset of
// blocks[block]. offset must be below the block width.
func MakeBitIterator[B constraints.Unsigned](blocks []B, block int, offset uint) BitIterator[B] {
	assertInvariant(offset < widthOf[B]())
	return BitIterator[B]{blocks: blocks, block: block, offset: offset}
}

// BitRangeEnd returns the end sentinel for blocks, one past its last bit.
func BitRangeEnd[B constraints.Unsigned](blocks []B) BitIterator[B] {
	return BitIterator[B]{blocks: blocks, block: len(blocks)}
}

// BitsPerBlock returns the number of bits in one block of the underlying
// slice.
func (it BitIterator[B]) BitsPerBlock() uint { return widthOf[B]() }

// BitOffset returns the bit offset within the current block.
func (it BitIterator[B]) BitOffset() uint { return it.offset }

// Bit reads the addressed bit.
func (it BitIterator[B]) Bit() bool {
	return ReadBit(it.blocks[it.block], it.offset)
}

// SetBit writes the addressed bit through a read-modify-write on its block.
func (it BitIterator[B]) SetBit(value bool) {
	WriteBit(&it.blocks[it.block], it.offset, value)
}

// Next moves to the following bit, stepping to offset 0 of the next block
// when the current block is exhausted.
func (it *BitIterator[B]) Next() {
	if it.offset++; it.offset == it.BitsPerBlock() {
		it.AdvanceToNextBlock()
	}
}

// Prev moves to the preceding bit, stepping to the top bit of the previous
// block from offset 0.
func (it *BitIterator[B]) Prev() {
	if it.offset == 0 {
		it.offset = it.BitsPerBlock() - 1
		it.block--
		return
	}
	it.offset--
}

// AdvanceToNextBlock jumps to offset 0 of the next block, skipping whatever
// remains of the current one.
func (it *BitIterator[B]) AdvanceToNextBlock() {
	it.offset = 0
	it.block++
}

// advanceInBlock moves forward n bits without leaving the current block.
func (it *BitIterator[B]) advanceInBlock(n uint) {
	it.offset += n
	assertInvariant(it.offset < it.BitsPerBlock())
}

// Advance moves the iterator n bits forward, or backward for negative n. n
// is decomposed into whole blocks and a remaining offset; any overflow of
// the offset carries into one extra block step.
func (it *BitIterator[B]) Advance(n int) {
	bpb := int(it.BitsPerBlock())
	blocks := n / bpb
	off := int(it.offset) + n%bpb
	if off >= bpb {
		off -= bpb
		blocks++
	} else if off < 0 {
		off += bpb
		blocks--
	}
	it.block += blocks
	it.offset = uint(off)
}

// Index returns the absolute bit index of the iterator within its block
// slice: block*BitsPerBlock + offset.
func (it BitIterator[B]) Index() int {
	return it.block*int(it.BitsPerBlock()) + int(it.offset)
}

// Equal reports whether both iterators address the same bit position. Only
// iterators over the same block slice compare meaningfully.
func (it BitIterator[B]) Equal(other BitIterator[B]) bool {
	return it.block == other.block && it.offset == other.offset
}

// Distance returns the number of bits from it to other, negative when other
// precedes it.
func (it BitIterator[B]) Distance(other BitIterator[B]) int {
	return (other.block-it.block)*int(it.BitsPerBlock()) + int(other.offset) - int(it.offset)
}

// FindFirstSetInRange returns an iterator at the first 1 bit in
// [begin, end), or end when every bit in the range is 0.
//
// A block with no set bits costs one scalar FindFirstSet instead of one
// probe per bit; the result is always identical to a bit-by-bit scan of the
// same range.
func FindFirstSetInRange[B constraints.Unsigned](begin, end BitIterator[B]) BitIterator[B] {
	for begin.block != end.block {
		v := begin.blocks[begin.block]
		// mask out the bits below begin.offset
		v &^= B(1)<<begin.offset - 1
		if first := FindFirstSet(v); first != 0 {
			begin.advanceInBlock(first - 1 - begin.offset)
			return begin
		}
		begin.AdvanceToNextBlock()
	}

	// begin now shares end's block; end.offset == 0 means nothing remains.
	if end.offset != 0 {
		v := begin.blocks[begin.block]
		v &^= B(1)<<begin.offset - 1
		// mask out the bits at and above end.offset
		v &= B(1)<<end.offset - 1
		if first := FindFirstSet(v); first != 0 {
			begin.advanceInBlock(first - 1 - begin.offset)
			return begin
		}
	}

	return end
}

// ForEachSetBit calls fn for every 1 bit in [begin, end) in ascending order,
// passing the absolute bit index within the block slice. Iteration stops
// early when fn returns false.
func ForEachSetBit[B constraints.Unsigned](begin, end BitIterator[B], fn func(index int) bool) {
	for it := FindFirstSetInRange(begin, end); !it.Equal(end); it = FindFirstSetInRange(it, end) {
		if !fn(it.Index()) {
			return
		}
		it.Next()
	}
}

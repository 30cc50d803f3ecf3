package folly

import "unsafe"

// LoadUnaligned reads a value of type T at p without requiring p to satisfy
// T's natural alignment. The access is a byte-wise copy, so it cannot trap
// on architectures that fault on misaligned typed loads, and the compiler
// cannot assume anything about the alignment of p.
//
// T must be a plain-old-data type with no pointers, and p must address at
// least unsafe.Sizeof-of-T readable bytes. Neither precondition is checked.
func LoadUnaligned[T any](p unsafe.Pointer) T {
	var v T
	size := unsafe.Sizeof(v)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), size), unsafe.Slice((*byte)(p), size))
	return v
}

// StoreUnaligned writes v at p without requiring p to satisfy T's natural
// alignment. Same preconditions as LoadUnaligned, with p writable.
func StoreUnaligned[T any](p unsafe.Pointer, v T) {
	size := unsafe.Sizeof(v)
	copy(unsafe.Slice((*byte)(p), size), unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
}

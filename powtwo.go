package folly

import "golang.org/x/exp/constraints"

// NextPowTwo returns the smallest power of two >= v. NextPowTwo(0) == 1 by
// definition. The result is undefined when v exceeds the largest power of
// two representable in T; callers must keep inputs below that bound.
func NextPowTwo[T constraints.Unsigned](v T) T {
	if v == 0 {
		return 1
	}
	return T(1) << FindLastSet(v-1)
}

// PrevPowTwo returns the largest power of two <= v. v must be nonzero.
func PrevPowTwo[T constraints.Unsigned](v T) T {
	return T(1) << (FindLastSet(v) - 1)
}

// IsPowTwo reports whether v is a power of two. Zero is not one.
func IsPowTwo[T constraints.Unsigned](v T) bool {
	return v != 0 && v&(v-1) == 0
}

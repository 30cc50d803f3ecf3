//go:build bitsdebug

package folly

// assertInvariant panics when a bit position invariant is violated. Enabled
// by the bitsdebug build tag.
func assertInvariant(ok bool) {
	if !ok {
		panic("folly: bit offset out of range")
	}
}

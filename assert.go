//go:build !bitsdebug

package folly

// assertInvariant is compiled out of release builds; violating a bit
// position invariant there is undefined behavior.
func assertInvariant(bool) {}

//go:build arm64 && !purego

package folly

func init() {
	// RBIT+CLZ are baseline ARMv8 instructions.
	hasFastBitScan = true
}

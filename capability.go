package folly

// hasFastBitScan is set by platform-specific init functions.
var hasFastBitScan bool

// HasFastBitScan reports whether the scan kernels resolve to dedicated
// hardware bit-scan instructions on this CPU (TZCNT/LZCNT class on x86-64,
// RBIT+CLZ on arm64). The kernels are correct either way; this only tells
// callers which path they are on.
func HasFastBitScan() bool { return hasFastBitScan }

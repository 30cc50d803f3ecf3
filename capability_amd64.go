//go:build amd64 && !purego

package folly

import "golang.org/x/sys/cpu"

func init() {
	// BMI1 brings TZCNT/LZCNT; without it the kernels fall back to BSF/BSR,
	// which have an undefined-output quirk for zero operands that math/bits
	// papers over with a branch.
	hasFastBitScan = cpu.X86.HasBMI1
}

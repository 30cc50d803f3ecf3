//go:build mips || mips64 || ppc64 || s390x

package folly

// NativeOrder is the byte order of the host, fixed at build time.
const NativeOrder = BigEndian

//go:build 386 || amd64 || arm || arm64 || loong64 || mipsle || mips64le || ppc64le || riscv64 || wasm

package folly

// NativeOrder is the byte order of the host, fixed at build time.
const NativeOrder = LittleEndian

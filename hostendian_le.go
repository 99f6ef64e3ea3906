//go:build amd64 || 386 || arm64 || arm || riscv64 || mips64le || mipsle || ppc64le || wasm

package sbits

import "unsafe"

// On little-endian architectures, page header numeric fields are accessed
// with direct pointer casts (zero overhead). The on-disk layout is
// host-endian by design (spec.md §6: "layout is host-endian; format is not
// cross-host portable"), so this is not an optimization trick grafted onto
// a portable format — it IS the format.

//go:nosplit
func putUint32Native(b []byte, v uint32) {
	*(*uint32)(unsafe.Pointer(&b[0])) = v
}

//go:nosplit
func putUint16Native(b []byte, v uint16) {
	*(*uint16)(unsafe.Pointer(&b[0])) = v
}

//go:nosplit
func getUint32Native(b []byte) uint32 {
	return *(*uint32)(unsafe.Pointer(&b[0]))
}

//go:nosplit
func getUint16Native(b []byte) uint16 {
	return *(*uint16)(unsafe.Pointer(&b[0]))
}

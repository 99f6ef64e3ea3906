//go:build s390x || mips || mips64 || ppc64

package sbits

import "encoding/binary"

// On big-endian architectures, page header fields are read and written
// with encoding/binary in big-endian order, which is these hosts' native
// order; only little-endian hosts get the zero-overhead pointer cast in
// hostendian_le.go.
func putUint32Native(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
func putUint16Native(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }
func getUint32Native(b []byte) uint32    { return binary.BigEndian.Uint32(b) }
func getUint16Native(b []byte) uint16    { return binary.BigEndian.Uint16(b) }

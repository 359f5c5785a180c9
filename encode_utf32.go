package charconv

import "encoding/binary"

// encodeUTF32 writes one 32-bit code unit. The caller guarantees at least 4
// bytes of capacity at dst[0:].
func encodeUTF32(dst []byte, scalar Scalar) (written int, kind ErrorKind) {
	binary.LittleEndian.PutUint32(dst, uint32(scalar))
	return 1, NoError
}

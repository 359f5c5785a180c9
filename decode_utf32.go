package charconv

import "encoding/binary"

// decodeUTF32 consumes one 32-bit UTF-32 code unit, rejecting values beyond
// 0x10FFFF (TooLarge) or within the surrogate range (SurrogateInScalar).
//
// UTF-32 is nominally host byte order; charconv fixes it to little-endian
// so results are deterministic and portable across hosts.
func decodeUTF32(src []byte, cursor int) (advance int, scalar Scalar, kind ErrorKind) {
	value := binary.LittleEndian.Uint32(src[cursor:])
	if value > maxScalar {
		return 1, 0, TooLarge
	}
	if isSurrogate(value) {
		return 1, 0, SurrogateInScalar
	}
	return 1, Scalar(value), NoError
}

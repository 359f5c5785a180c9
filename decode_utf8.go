package charconv

// decodeUTF8 consumes the next Unicode scalar from a UTF-8 byte stream
// starting at src[cursor]. It classifies the leading byte's length,
// verifies the required continuation bytes are present and well-formed,
// assembles the code point, and rejects overlong encodings, surrogate
// values, and values beyond 0x10FFFF.
//
// This mirrors the state machine in the original C++ reference
// (scalar_1.hpp's UTF-8 validate/transcode path): Start -> Need_k
// transitions collapse here into a length-classified loop over
// continuation bytes, since Go's control flow already carries the "state"
// as the loop counter plus an accumulator.
func decodeUTF8(src []byte, cursor int) (advance int, scalar Scalar, kind ErrorKind) {
	b0 := src[cursor]
	length := leadingByteLength(b0)

	switch length {
	case 0:
		return 1, 0, HeaderBits
	case 1:
		return 1, Scalar(b0), NoError
	}

	if cursor+length > len(src) {
		return len(src) - cursor, 0, TooShort
	}

	var value uint32
	var minScalar uint32
	switch length {
	case 2:
		value = uint32(b0 & 0x1F)
		minScalar = 0x80
	case 3:
		value = uint32(b0 & 0x0F)
		minScalar = 0x800
	case 4:
		value = uint32(b0 & 0x07)
		minScalar = 0x10000
	}

	for i := 1; i < length; i++ {
		cb := src[cursor+i]
		if !isUTF8Continuation(cb) {
			return i + 1, 0, TooShort
		}
		value = (value << 6) | uint32(cb&0x3F)
	}

	if value < minScalar {
		return length, 0, OverlongSequence
	}
	if isSurrogate(value) {
		return length, 0, SurrogateInScalar
	}
	if value > maxScalar {
		return length, 0, TooLarge
	}

	return length, Scalar(value), NoError
}

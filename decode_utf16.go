package charconv

import "encoding/binary"

// decodeUTF16 consumes the next Unicode scalar from a UTF-16 byte stream
// (2 bytes per code unit) at src[cursor], honoring the endianness implied
// by enc (UTF16LE or UTF16BE). A high surrogate must be followed by a low
// surrogate; a lone low surrogate, or a high surrogate at end of input or
// not followed by a low surrogate, is SurrogateMismatch.
func decodeUTF16(enc Encoding, src []byte, cursor int) (advance int, scalar Scalar, kind ErrorKind) {
	order := byteOrder(enc)
	unit := order.Uint16(src[cursor:])

	if unit < surrogateMin || unit > surrogateMax {
		return 1, Scalar(unit), NoError
	}
	if unit > 0xDBFF {
		// Lone low surrogate: [0xDC00, 0xDFFF] with no preceding high.
		return 1, 0, SurrogateMismatch
	}
	// High surrogate [0xD800, 0xDBFF]: require a following low surrogate.
	if cursor+4 > len(src) {
		return 1, 0, SurrogateMismatch
	}
	low := order.Uint16(src[cursor+2:])
	if low < 0xDC00 || low > surrogateMax {
		return 2, 0, SurrogateMismatch
	}
	value := 0x10000 + (uint32(unit)-surrogateMin)<<10 + (uint32(low) - 0xDC00)
	return 2, Scalar(value), NoError
}

func byteOrder(enc Encoding) binary.ByteOrder {
	if enc == UTF16BE {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

package charconv

// encodeUTF16 writes one 16-bit unit if scalar < 0x10000, else a surrogate
// pair via the standard (scalar - 0x10000) split, in the byte order implied
// by enc. Returns the number of destination code units written (1, or 2 for
// a surrogate pair) -- the scan loop multiplies this by dstEnc's code unit
// width to accumulate ConvertResult.OutputWritten's byte count. The caller
// guarantees capacity at dst[0:] for what is written (2 bytes, or 4 for a
// surrogate pair).
func encodeUTF16(enc Encoding, dst []byte, scalar Scalar) (written int, kind ErrorKind) {
	order := byteOrder(enc)
	v := uint32(scalar)
	if v < 0x10000 {
		order.PutUint16(dst, uint16(v))
		return 1, NoError
	}
	v -= 0x10000
	high := uint16(surrogateMin + (v >> 10))
	low := uint16(0xDC00 + (v & 0x3FF))
	order.PutUint16(dst, high)
	order.PutUint16(dst[2:], low)
	return 2, NoError
}

// utf16Width returns the number of destination code units encodeUTF16 would
// write for v (1, or 2 for a surrogate pair).
func utf16Width(v uint32) int {
	if v < 0x10000 {
		return 1
	}
	return 2
}

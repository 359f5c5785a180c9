package charconv

// LengthFor predicts the exact number of destination bytes a validating
// conversion from srcEnc to dstEnc would write for src, without writing any
// output. It traverses src exactly once.
//
// Contract on ill-formed input: LengthFor always walks the entire input,
// even past an invalid element. A source element that fails to decode
// contributes exactly one replacement-equivalent destination element rather
// than stopping the walk. [Convert], by contrast, stops at the first
// invalid element. The two stay consistent in the one place they interact:
// LengthFor(src) is always an upper bound for whatever prefix Convert
// actually manages to write, so a destination buffer sized by LengthFor
// never overflows.
//
// For all well-formed input, LengthFor(srcEnc, dstEnc, src) ==
// Convert(srcEnc, dstEnc, src, dst).OutputWritten (in bytes).
func LengthFor(srcEnc, dstEnc Encoding, src []byte) int {
	if len(src) == 0 {
		return 0
	}

	// An all-ASCII input has byte-for-byte-identical length to the input
	// when either side is LATIN-1/UTF-8 (both 1 byte/unit), and a pure
	// width multiple otherwise; detected below per block without a
	// separate full scan.
	decode := decoderFor(srcEnc)
	widthOf := destWidthFunc(dstEnc)
	srcWidth := srcEnc.CodeUnitBytes()
	dstWidth := dstEnc.CodeUnitBytes()

	units := 0 // destination code units accumulated
	cursor := 0
	bb := blockBytes(srcEnc)

	for cursor+bb <= len(src) {
		if pureASCIIBlock(srcEnc, src[cursor:]) {
			units += Block * widthOf(0x41) // any ASCII value widens identically
			cursor += bb
			continue
		}
		for i := 0; i < Block && cursor < len(src); i++ {
			advance, scalar, kind := decode(src, cursor)
			if kind != NoError {
				units++ // one replacement-equivalent element; keep walking
			} else {
				units += widthOf(uint32(scalar))
			}
			cursor += advance * srcWidth
		}
	}

	for cursor < len(src) {
		advance, scalar, kind := decode(src, cursor)
		if kind != NoError {
			units++
		} else {
			units += widthOf(uint32(scalar))
		}
		cursor += advance * srcWidth
	}

	return units * dstWidth
}

// destWidthFunc returns a function computing, for a given scalar value, the
// number of destination code units encoding it into dstEnc would take.
func destWidthFunc(dstEnc Encoding) func(uint32) int {
	switch dstEnc {
	case Latin1:
		return func(uint32) int { return 1 }
	case UTF8:
		return utf8Width
	case UTF16LE, UTF16BE:
		return utf16Width
	case UTF32:
		return func(uint32) int { return 1 }
	default:
		return func(uint32) int { return 0 }
	}
}

// decoderFor returns the scalar decoder for srcEnc.
func decoderFor(srcEnc Encoding) func([]byte, int) (int, Scalar, ErrorKind) {
	switch srcEnc {
	case Latin1:
		return decodeLatin1
	case UTF8:
		return decodeUTF8
	case UTF16LE, UTF16BE:
		enc := srcEnc
		return func(src []byte, cursor int) (int, Scalar, ErrorKind) {
			return decodeUTF16(enc, src, cursor)
		}
	case UTF32:
		return decodeUTF32
	default:
		return func([]byte, int) (int, Scalar, ErrorKind) { return 1, 0, HeaderBits }
	}
}

// encoderFor returns the scalar encoder for dstEnc.
func encoderFor(dstEnc Encoding) func([]byte, Scalar) (int, ErrorKind) {
	switch dstEnc {
	case Latin1:
		return encodeLatin1
	case UTF8:
		return encodeUTF8
	case UTF16LE, UTF16BE:
		enc := dstEnc
		return func(dst []byte, scalar Scalar) (int, ErrorKind) {
			return encodeUTF16(enc, dst, scalar)
		}
	case UTF32:
		return encodeUTF32
	default:
		return func([]byte, Scalar) (int, ErrorKind) { return 0, HeaderBits }
	}
}

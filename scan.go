package charconv

// scanValidating drives the full validating conversion: it peeks a Block of
// source elements at a time, takes the ASCII fast path when the whole block
// is below 0x80, and otherwise falls back to per-element decode+encode.
// Invariants: srcCursor and dstCursor only ever advance; on error,
// InputConsumed is the byte offset of the first invalid element and every
// byte written before it is left in place.
func scanValidating(srcEnc, dstEnc Encoding, src, dst []byte) ConvertResult {
	srcWidth := srcEnc.CodeUnitBytes()
	dstWidth := dstEnc.CodeUnitBytes()
	decode := decoderFor(srcEnc)
	encode := encoderFor(dstEnc)

	srcCursor, dstCursor := 0, 0
	bb := blockBytes(srcEnc)

	for srcCursor+bb <= len(src) {
		if pureASCIIBlock(srcEnc, src[srcCursor:]) {
			writeASCIIBlock(srcEnc, dstEnc, src[srcCursor:srcCursor+bb], dst[dstCursor:])
			srcCursor += bb
			dstCursor += Block * dstWidth
			continue
		}
		for i := 0; i < Block && srcCursor < len(src); i++ {
			advance, scalar, kind := decode(src, srcCursor)
			if kind != NoError {
				return ConvertResult{Kind: kind, InputConsumed: srcCursor, OutputWritten: dstCursor}
			}
			written, ekind := encode(dst[dstCursor:], scalar)
			if ekind != NoError {
				return ConvertResult{Kind: ekind, InputConsumed: srcCursor, OutputWritten: dstCursor}
			}
			srcCursor += advance * srcWidth
			dstCursor += written * dstWidth
		}
	}

	for srcCursor < len(src) {
		advance, scalar, kind := decode(src, srcCursor)
		if kind != NoError {
			return ConvertResult{Kind: kind, InputConsumed: srcCursor, OutputWritten: dstCursor}
		}
		written, ekind := encode(dst[dstCursor:], scalar)
		if ekind != NoError {
			return ConvertResult{Kind: ekind, InputConsumed: srcCursor, OutputWritten: dstCursor}
		}
		srcCursor += advance * srcWidth
		dstCursor += written * dstWidth
	}

	return ConvertResult{Kind: NoError, InputConsumed: len(src), OutputWritten: dstCursor}
}

// scanPureAscii assumes src is entirely ASCII and degrades every element to
// a direct widen/narrow write, eliding all validation. Behavior is
// undefined if src is not in fact ASCII -- callers asserting this mode make
// that promise.
func scanPureAscii(srcEnc, dstEnc Encoding, src, dst []byte) ConvertResult {
	srcWidth := srcEnc.CodeUnitBytes()
	dstWidth := dstEnc.CodeUnitBytes()
	elements := len(src) / srcWidth

	srcCursor, dstCursor := 0, 0
	for elements > 0 {
		n := elements
		if n > Block {
			n = Block
		}
		writeASCIIBlock(srcEnc, dstEnc, src[srcCursor:srcCursor+n*srcWidth], dst[dstCursor:])
		srcCursor += n * srcWidth
		dstCursor += n * dstWidth
		elements -= n
	}

	return ConvertResult{Kind: NoError, InputConsumed: len(src), OutputWritten: dstCursor}
}

// scanCorrect assumes src is already well-formed for srcEnc and writes the
// conversion without checking decode/encode error kinds, trading
// validation for a branch-free loop. Behavior is undefined if src is not
// in fact well-formed.
func scanCorrect(srcEnc, dstEnc Encoding, src, dst []byte) int {
	srcWidth := srcEnc.CodeUnitBytes()
	dstWidth := dstEnc.CodeUnitBytes()
	decode := decoderFor(srcEnc)
	encode := encoderFor(dstEnc)

	srcCursor, dstCursor := 0, 0
	for srcCursor < len(src) {
		advance, scalar, _ := decode(src, srcCursor)
		written, _ := encode(dst[dstCursor:], scalar)
		srcCursor += advance * srcWidth
		dstCursor += written * dstWidth
	}
	return dstCursor
}

// writeASCIIBlock widens/narrows len(src)/srcWidth ASCII elements from src
// directly into dst, with no decode/encode call and no validation: every
// source element is read as a raw low-byte value (0-127) and written at the
// destination's natural width. len(src) is a multiple of srcEnc's code unit
// width.
func writeASCIIBlock(srcEnc, dstEnc Encoding, src, dst []byte) {
	srcWidth := srcEnc.CodeUnitBytes()
	dstWidth := dstEnc.CodeUnitBytes()
	n := len(src) / srcWidth

	for i := 0; i < n; i++ {
		v := asciiElement(srcEnc, src[i*srcWidth:])
		writeElement(dstEnc, dst[i*dstWidth:], v)
	}
}

// asciiElement reads the i-th source element's raw ASCII value (the caller
// guarantees it is < 0x80) from a window already positioned at that element.
func asciiElement(enc Encoding, src []byte) byte {
	switch enc {
	case Latin1, UTF8:
		return src[0]
	case UTF16LE:
		return src[0]
	case UTF16BE:
		return src[1]
	case UTF32:
		return src[0]
	default:
		return 0
	}
}

// writeElement writes ASCII value v at dst, at dstEnc's natural code unit
// width.
func writeElement(enc Encoding, dst []byte, v byte) {
	switch enc {
	case Latin1, UTF8:
		dst[0] = v
	case UTF16LE:
		dst[0], dst[1] = v, 0
	case UTF16BE:
		dst[0], dst[1] = 0, v
	case UTF32:
		dst[0], dst[1], dst[2], dst[3] = v, 0, 0, 0
	}
}

package charconv

// Validate checks that src is well-formed for enc, without converting it.
// On success, Kind is NoError and InputConsumed == len(src). On failure,
// InputConsumed is the byte offset of the first invalid element.
func Validate(enc Encoding, src []byte) ConvertResult {
	decode := decoderFor(enc)
	width := enc.CodeUnitBytes()
	bb := blockBytes(enc)

	cursor := 0
	for cursor+bb <= len(src) {
		if pureASCIIBlock(enc, src[cursor:]) {
			cursor += bb
			continue
		}
		for i := 0; i < Block && cursor < len(src); i++ {
			advance, _, kind := decode(src, cursor)
			if kind != NoError {
				return ConvertResult{Kind: kind, InputConsumed: cursor}
			}
			cursor += advance * width
		}
	}
	for cursor < len(src) {
		advance, _, kind := decode(src, cursor)
		if kind != NoError {
			return ConvertResult{Kind: kind, InputConsumed: cursor}
		}
		cursor += advance * width
	}
	return ConvertResult{Kind: NoError, InputConsumed: len(src)}
}

// Convert validates and converts src from srcEnc to dstEnc, writing into
// dst. dst must have capacity >= LengthFor(srcEnc, dstEnc, src); the
// library performs no bounds checking on output writes. On failure, dst
// holds exactly ConvertResult.OutputWritten valid bytes.
func Convert(srcEnc, dstEnc Encoding, src, dst []byte) ConvertResult {
	return scanValidating(srcEnc, dstEnc, src, dst)
}

// ConvertPure converts src from srcEnc to dstEnc assuming src is entirely
// ASCII, eliding validation. Behavior is undefined if that assumption does
// not hold.
func ConvertPure(srcEnc, dstEnc Encoding, src, dst []byte) ConvertResult {
	return scanPureAscii(srcEnc, dstEnc, src, dst)
}

// ConvertCorrect converts src from srcEnc to dstEnc assuming src is already
// well-formed, eliding all validation. Returns only the number of
// destination bytes written; behavior is undefined if src is not in fact
// well-formed.
func ConvertCorrect(srcEnc, dstEnc Encoding, src, dst []byte) (outputWritten int) {
	return scanCorrect(srcEnc, dstEnc, src, dst)
}

// Flip byte-swaps a UTF-16 buffer from one endianness to the other with no
// validation at all: it simply swaps each pair of bytes. len(dst) must be
// >= len(src); len(src) should be even.
func Flip(src, dst []byte) {
	n := len(src) / 2
	for i := 0; i < n; i++ {
		dst[i*2], dst[i*2+1] = src[i*2+1], src[i*2]
	}
}

// ConvertUTF16LEToUTF16BE validates src as UTF-16LE and writes its
// big-endian byte-swap to dst, stopping at the first surrogate mismatch.
func ConvertUTF16LEToUTF16BE(src, dst []byte) ConvertResult {
	return convertUTF16Swap(UTF16LE, src, dst)
}

// ConvertUTF16BEToUTF16LE validates src as UTF-16BE and writes its
// little-endian byte-swap to dst, stopping at the first surrogate mismatch.
func ConvertUTF16BEToUTF16LE(src, dst []byte) ConvertResult {
	return convertUTF16Swap(UTF16BE, src, dst)
}

// convertUTF16Swap validates srcEnc's surrogate pairing while byte-swapping
// into the other UTF-16 endianness. Unlike Flip, this stops at the first
// SurrogateMismatch rather than swapping blindly.
func convertUTF16Swap(srcEnc Encoding, src, dst []byte) ConvertResult {
	decode := decoderFor(srcEnc)
	cursor := 0
	for cursor < len(src) {
		advance, _, kind := decode(src, cursor)
		if kind != NoError {
			return ConvertResult{Kind: kind, InputConsumed: cursor, OutputWritten: cursor}
		}
		n := advance * 2
		for i := 0; i < n; i += 2 {
			dst[cursor+i], dst[cursor+i+1] = src[cursor+i+1], src[cursor+i]
		}
		cursor += n
	}
	return ConvertResult{Kind: NoError, InputConsumed: len(src), OutputWritten: len(src)}
}

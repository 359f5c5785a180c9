package charconv

// ToUTF8, ToUTF16LE, ToUTF16BE, ToUTF32 and ToLatin1 are the buffered
// convenience layer: each sizes a destination via [LengthFor] and fills it
// via [Convert], composing the two instead of baking allocator choice into
// the core. If src is invalid, the returned slice holds the successfully
// converted prefix and its length equals result.OutputWritten.

func convertBuffered(srcEnc, dstEnc Encoding, src []byte) ([]byte, ConvertResult) {
	n := LengthFor(srcEnc, dstEnc, src)
	dst := make([]byte, n)
	result := Convert(srcEnc, dstEnc, src, dst)
	return dst[:result.OutputWritten], result
}

// ToUTF8 converts src (encoded as srcEnc) to a freshly allocated UTF-8
// buffer.
func ToUTF8(srcEnc Encoding, src []byte) ([]byte, ConvertResult) {
	return convertBuffered(srcEnc, UTF8, src)
}

// ToUTF16LE converts src (encoded as srcEnc) to a freshly allocated
// UTF-16LE buffer.
func ToUTF16LE(srcEnc Encoding, src []byte) ([]byte, ConvertResult) {
	return convertBuffered(srcEnc, UTF16LE, src)
}

// ToUTF16BE converts src (encoded as srcEnc) to a freshly allocated
// UTF-16BE buffer.
func ToUTF16BE(srcEnc Encoding, src []byte) ([]byte, ConvertResult) {
	return convertBuffered(srcEnc, UTF16BE, src)
}

// ToUTF32 converts src (encoded as srcEnc) to a freshly allocated UTF-32
// buffer.
func ToUTF32(srcEnc Encoding, src []byte) ([]byte, ConvertResult) {
	return convertBuffered(srcEnc, UTF32, src)
}

// ToLatin1 converts src (encoded as srcEnc) to a freshly allocated LATIN-1
// buffer.
func ToLatin1(srcEnc Encoding, src []byte) ([]byte, ConvertResult) {
	return convertBuffered(srcEnc, Latin1, src)
}

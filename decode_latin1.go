package charconv

// decodeLatin1 consumes one LATIN-1 code point. It never fails: every byte
// value 0x00-0xFF is a valid scalar.
func decodeLatin1(src []byte, cursor int) (advance int, scalar Scalar, kind ErrorKind) {
	return 1, Scalar(src[cursor]), NoError
}

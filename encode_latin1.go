package charconv

// encodeLatin1 writes one byte if scalar fits in [0, 0xFF], else fails with
// TooLarge. The caller guarantees at least one byte of capacity at dst[0].
func encodeLatin1(dst []byte, scalar Scalar) (written int, kind ErrorKind) {
	if scalar > 0xFF {
		return 0, TooLarge
	}
	dst[0] = byte(scalar)
	return 1, NoError
}

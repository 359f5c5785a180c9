package charconv

// RewindAndValidate locates the nearest UTF-8 leading byte at or before mid
// in src and returns that leading byte's index. It only walks backward over
// continuation bytes; it does not decode or validate the sequence that
// starts at the returned index. Used to pinpoint a precise error after a
// block-level rejection left the cursor mid-sequence. If mid is out of range
// or src is empty, mid is returned unchanged.
func RewindAndValidate(src []byte, mid int) int {
	if mid <= 0 || mid >= len(src) {
		return mid
	}
	i := mid
	for i > 0 && !isUTF8Leading(src[i]) {
		i--
	}
	return i
}

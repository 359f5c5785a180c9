package charconv

import "testing"

// TestLengthAgreesWithConvert checks that for well-formed input, LengthFor
// always equals what Convert actually writes.
func TestLengthAgreesWithConvert(t *testing.T) {
	inputs := [][]byte{
		[]byte("Hello, world!"),
		{0xE4, 0xBD, 0xA0, 0xE5, 0xA5, 0xBD}, // 你好, UTF-8
		{0xF0, 0x9F, 0x98, 0x80},             // U+1F600, UTF-8
	}
	pairs := []struct{ src, dst Encoding }{
		{UTF8, UTF16LE}, {UTF8, UTF16BE}, {UTF8, UTF32}, {UTF8, UTF8},
	}
	for _, in := range inputs {
		for _, p := range pairs {
			n := LengthFor(p.src, p.dst, in)
			dst := make([]byte, n)
			result := Convert(p.src, p.dst, in, dst)
			if !result.Ok() {
				t.Fatalf("%v->%v unexpected error: %v", p.src, p.dst, result.Err())
			}
			if result.OutputWritten != n {
				t.Fatalf("%v->%v: LengthFor=%d OutputWritten=%d", p.src, p.dst, n, result.OutputWritten)
			}
		}
	}
}

// TestLengthASCIIInvariant is invariant #4: for pure-ASCII input, output
// size equals input length scaled by the destination/source width ratio.
func TestLengthASCIIInvariant(t *testing.T) {
	src := []byte("the quick brown fox")
	cases := []struct {
		dst  Encoding
		want int
	}{
		{UTF8, len(src)},
		{Latin1, len(src)},
		{UTF16LE, len(src) * 2},
		{UTF16BE, len(src) * 2},
		{UTF32, len(src) * 4},
	}
	for _, c := range cases {
		if got := LengthFor(UTF8, c.dst, src); got != c.want {
			t.Fatalf("LengthFor(UTF8, %v) = %d, want %d", c.dst, got, c.want)
		}
	}
}

// TestLengthWalksFullBufferOnError documents the chosen ill-formed-input
// contract: LengthFor keeps walking past an invalid element instead of
// stopping, unlike Convert.
func TestLengthWalksFullBufferOnError(t *testing.T) {
	// Invalid UTF-8 (lone continuation byte) followed by two valid ASCII bytes.
	src := []byte{0x80, 'a', 'b'}
	n := LengthFor(UTF8, UTF32, src)
	// 1 replacement-equivalent element for the bad byte + 2 ASCII elements = 3 units * 4 bytes.
	if n != 12 {
		t.Fatalf("LengthFor = %d, want 12", n)
	}

	dst := make([]byte, n)
	result := Convert(UTF8, UTF32, src, dst)
	if result.Kind != HeaderBits {
		t.Fatalf("kind = %v, want HeaderBits", result.Kind)
	}
	if result.OutputWritten != 0 {
		t.Fatalf("output_written = %d, want 0", result.OutputWritten)
	}
	// LengthFor's estimate must never be smaller than what Convert actually
	// writes, so a buffer sized by it never overflows.
	if n < result.OutputWritten {
		t.Fatalf("LengthFor underestimated: %d < %d", n, result.OutputWritten)
	}
}

func TestUTF32ToUTF8LengthCapsOverlongValues(t *testing.T) {
	// A UTF-32 unit carrying an out-of-range value must not silently
	// undercount; utf8Width caps its contribution at 4 bytes.
	src := []byte{0x00, 0x00, 0x11, 0x00} // 0x00110000, > 0x10FFFF
	n := LengthFor(UTF32, UTF8, src)
	if n != 4 {
		t.Fatalf("LengthFor = %d, want 4 (capped)", n)
	}
}

package charconv

import "testing"

func TestToUTF8FromLatin1(t *testing.T) {
	out, result := ToUTF8(Latin1, []byte{0xC4, 0xE9})
	if !result.Ok() {
		t.Fatalf("unexpected error: %v", result.Err())
	}
	if string(out) != "Äé" {
		t.Fatalf("got %q, want %q", out, "Äé")
	}
}

func TestToUTF16LEPrefixOnInvalidInput(t *testing.T) {
	// "ab" followed by a lone continuation byte.
	src := []byte{'a', 'b', 0x80}
	out, result := ToUTF16LE(UTF8, src)
	if result.Ok() {
		t.Fatalf("expected an error")
	}
	if len(out) != result.OutputWritten {
		t.Fatalf("len(out) = %d, want result.OutputWritten = %d", len(out), result.OutputWritten)
	}
	want := []byte{'a', 0, 'b', 0}
	for i, b := range want {
		if out[i] != b {
			t.Fatalf("out[%d] = %#x, want %#x", i, out[i], b)
		}
	}
}

func TestRoundTripIdempotenceThroughIntermediates(t *testing.T) {
	// Round-tripping well-formed input through any intermediate encoding
	// via ConvertCorrect must be lossless.
	src := []byte("idempotent héllo 你好 world")
	intermediates := []Encoding{UTF16LE, UTF16BE, UTF32, Latin1}

	for _, mid := range intermediates {
		if mid == Latin1 {
			continue // not every scalar in src fits LATIN-1; skip as a destination here
		}
		midBuf := make([]byte, LengthFor(UTF8, mid, src))
		n1 := ConvertCorrect(UTF8, mid, src, midBuf)
		midBuf = midBuf[:n1]

		back := make([]byte, LengthFor(mid, UTF8, midBuf))
		n2 := ConvertCorrect(mid, UTF8, midBuf, back)
		back = back[:n2]

		if string(back) != string(src) {
			t.Fatalf("round trip via %v: got %q, want %q", mid, back, src)
		}
	}
}

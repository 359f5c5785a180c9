// Package charconv validates and converts strings between character
// encodings: LATIN-1, UTF-8, UTF-16 (little- and big-endian) and UTF-32.
//
// # Overview
//
// For every ordered source -> destination encoding pair, charconv offers
// three execution modes:
//
//   - Validating: decode and check every source element, reporting the
//     first malformed one.
//   - PureAscii: the caller asserts the source is entirely ASCII; decoding
//     degrades to a byte-widen/narrow copy.
//   - Correct: the caller asserts the source is already well-formed for its
//     encoding; all validation is elided.
//
// A length-prediction query ([LengthFor]) lets a caller size a destination
// buffer in one pass, without materializing the result.
//
// # When to use charconv
//
//   - Converting text between LATIN-1/UTF-8/UTF-16/UTF-32 without pulling in
//     locale, normalization, or BOM-sniffing machinery.
//   - Validating untrusted byte streams claimed to be one of these
//     encodings, with a precise error kind and byte offset on failure.
//   - Pre-sizing a destination buffer before a single allocation.
//
// # When NOT to use charconv
//
//   - BOM detection/emission, Unicode normalization (NFC/NFD), case folding,
//     or grapheme segmentation -- none of these are in scope.
//   - Streaming/incremental conversion of a source too large to hold in
//     memory at once -- see the xtextadapter package for a
//     transform.Transformer-based adapter if that shape is required by a
//     caller's existing pipeline.
//
// # Basic usage
//
//	src := []byte("Hello, 世界")
//	n := charconv.LengthFor(charconv.UTF8, charconv.UTF16LE, src)
//	dst := make([]byte, n)
//	result := charconv.Convert(charconv.UTF8, charconv.UTF16LE, src, dst)
//	if err := result.Err(); err != nil {
//		// result.OutputWritten holds the valid prefix already converted, in bytes.
//	}
//
// # Performance characteristics
//
// The validating scan loop processes source elements in blocks of 8 (see
// [Block]); a block that is entirely ASCII takes a fast widen/narrow path,
// and a block holding any non-ASCII element is decoded element by element. No
// operation allocates on its hot path; the only allocating entry points are
// the buffered convenience functions in buffer.go (ToUTF8, ToUTF16LE, ...).
package charconv

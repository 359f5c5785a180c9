// Package xtextadapter bridges charconv's encodings onto the
// golang.org/x/text/encoding and golang.org/x/text/transform interfaces, so
// charconv can be used anywhere the x/text ecosystem expects an
// encoding.Encoding: transform.Reader, transform.Writer, HTML/XML charset
// detection, and the various packages built on top of them.
//
// charconv's core package stays dependency-free by design; this adapter is
// the seam where that scalar core meets the wider x/text stack. It is
// deliberately a thin, allocating wrapper: each Transform call converts its
// whole input with charconv.LengthFor and charconv.Convert into a scratch
// buffer and copies the result into dst, rather than re-implementing charconv's
// block scanner in a streaming-incremental form. That trade keeps the
// adapter small and easy to audit, at the cost of re-doing work on partial
// reads from a transform.Reader.
package xtextadapter

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/axiomhq/charconv"
)

// Charset returns an x/text Encoding whose Decoder converts enc-encoded
// bytes to UTF-8 and whose Encoder converts UTF-8 to enc-encoded bytes,
// matching the x/text convention (see golang.org/x/text/encoding.Encoding).
func Charset(enc charconv.Encoding) encoding.Encoding {
	return &charset{enc: enc}
}

type charset struct{ enc charconv.Encoding }

func (c *charset) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &toUTF8{src: c.enc}}
}

func (c *charset) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &fromUTF8{dst: c.enc}}
}

// toUTF8 implements transform.Transformer, converting c.src-encoded bytes
// to UTF-8.
type toUTF8 struct{ src charconv.Encoding }

func (t *toUTF8) Reset() {}

func (t *toUTF8) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return convertWhole(t.src, charconv.UTF8, dst, src, atEOF)
}

// fromUTF8 implements transform.Transformer, converting UTF-8 bytes to
// d.dst-encoded bytes.
type fromUTF8 struct{ dst charconv.Encoding }

func (f *fromUTF8) Reset() {}

func (f *fromUTF8) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return convertWhole(charconv.UTF8, f.dst, dst, src, atEOF)
}

// trailingMargin bounds how close to the end of src a decode error has to be
// before convertWhole treats it as "might just be a truncated code unit"
// rather than a genuine encoding error. 4 bytes covers the longest code unit
// among the encodings charconv supports (a UTF-8 sequence or a UTF-32 unit).
const trailingMargin = 4

// convertWhole runs srcEnc->dstEnc over the whole of src and copies the
// result into dst. If src's tail might be an incomplete code unit (and the
// caller hasn't signaled atEOF), it backs off and asks for more source
// bytes instead of reporting a spurious error. If dst is too small to hold
// the full conversion, it reports transform.ErrShortDst and consumes
// nothing, so the caller can retry with a larger buffer.
func convertWhole(srcEnc, dstEnc charconv.Encoding, dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(src) == 0 {
		return 0, 0, nil
	}

	n := charconv.LengthFor(srcEnc, dstEnc, src)
	scratch := make([]byte, n)
	result := charconv.Convert(srcEnc, dstEnc, src, scratch)

	if !result.Ok() && !atEOF && len(src)-result.InputConsumed <= trailingMargin {
		return 0, 0, transform.ErrShortSrc
	}

	consumed := len(src)
	written := result.OutputWritten
	if !result.Ok() {
		consumed = result.InputConsumed
	}

	if written > len(dst) {
		return 0, 0, transform.ErrShortDst
	}
	copy(dst, scratch[:written])

	if !result.Ok() {
		return written, consumed, result.Err()
	}
	return written, consumed, nil
}

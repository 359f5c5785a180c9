package main

import (
	"testing"

	"github.com/axiomhq/charconv"
)

func TestParseEncoding(t *testing.T) {
	cases := map[string]charconv.Encoding{
		"latin1":  charconv.Latin1,
		"UTF8":    charconv.UTF8,
		"utf16le": charconv.UTF16LE,
		"utf16be": charconv.UTF16BE,
		"utf32":   charconv.UTF32,
	}
	for in, want := range cases {
		got, err := parseEncoding(in)
		if err != nil {
			t.Fatalf("parseEncoding(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("parseEncoding(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := parseEncoding("ebcdic"); err == nil {
		t.Fatalf("expected an error for an unknown encoding")
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]charconv.Mode{
		"validating": charconv.Validating,
		"pureascii":  charconv.PureAscii,
		"correct":    charconv.Correct,
	}
	for in, want := range cases {
		got, err := parseMode(in)
		if err != nil {
			t.Fatalf("parseMode(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("parseMode(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := parseMode("bogus"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

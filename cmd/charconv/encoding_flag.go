package main

import (
	"fmt"
	"strings"

	"github.com/axiomhq/charconv"
)

func parseEncoding(s string) (charconv.Encoding, error) {
	switch strings.ToLower(s) {
	case "latin1":
		return charconv.Latin1, nil
	case "utf8":
		return charconv.UTF8, nil
	case "utf16le":
		return charconv.UTF16LE, nil
	case "utf16be":
		return charconv.UTF16BE, nil
	case "utf32":
		return charconv.UTF32, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q: must be one of latin1|utf8|utf16le|utf16be|utf32", s)
	}
}

func parseMode(s string) (charconv.Mode, error) {
	switch strings.ToLower(s) {
	case "validating":
		return charconv.Validating, nil
	case "pureascii":
		return charconv.PureAscii, nil
	case "correct":
		return charconv.Correct, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: must be one of validating|pureascii|correct", s)
	}
}

package charconv

import (
	"errors"
	"testing"
)

func TestConvertResultErr(t *testing.T) {
	ok := ConvertResult{Kind: NoError, InputConsumed: 5, OutputWritten: 5}
	if err := ok.Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	bad := ConvertResult{Kind: TooShort, InputConsumed: 3}
	err := bad.Err()
	if err == nil {
		t.Fatalf("expected non-nil error")
	}
	var convErr *ConvertError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *ConvertError, got %T", err)
	}
	if convErr.Kind != TooShort || convErr.Offset != 3 {
		t.Fatalf("got %+v", convErr)
	}
}

func TestErrorKindString(t *testing.T) {
	kinds := []ErrorKind{
		NoError, SurrogateMismatch, OverlongSequence, TooLarge,
		TooShort, HeaderBits, SurrogateInScalar,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		s := k.String()
		if s == "" || s == "unknown error" {
			t.Fatalf("ErrorKind(%d).String() = %q", k, s)
		}
		if seen[s] {
			t.Fatalf("duplicate String() for distinct kinds: %q", s)
		}
		seen[s] = true
	}
}

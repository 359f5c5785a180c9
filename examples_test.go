package charconv_test

import (
	"fmt"

	"github.com/axiomhq/charconv"
)

func Example() {
	src := []byte("hi")
	n := charconv.LengthFor(charconv.UTF8, charconv.UTF16LE, src)
	dst := make([]byte, n)
	result := charconv.Convert(charconv.UTF8, charconv.UTF16LE, src, dst)
	fmt.Println(result.Ok(), dst)
	// Output:
	// true [104 0 105 0]
}

func ExampleToUTF8() {
	latin1 := []byte{0xC4, 0xE9} // "Äé"
	utf8, result := charconv.ToUTF8(charconv.Latin1, latin1)
	fmt.Println(result.Ok(), string(utf8))
	// Output:
	// true Äé
}

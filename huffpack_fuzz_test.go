package huffpack

import (
	"errors"
	"testing"
	"unicode/utf8"
)

// Fuzz the full compress/decompress pipeline.
func FuzzRoundTrip(f *testing.F) {
	f.Add("hello")
	f.Add("")
	f.Add("a")
	f.Add("aaaa")
	f.Add("hello世界")
	f.Add("tab\there")
	f.Add("null\x00byte")
	f.Add("abcdefghijklmnopqrstuvwxyz")
	f.Add("\uFFFF edge of the symbol range")

	f.Fuzz(func(t *testing.T, input string) {
		containerBytes, err := Compress(input, "fuzz.txt")
		if err != nil {
			// The only legitimate compile-side failures are symbols the
			// tree codec cannot carry.
			if !errors.Is(err, ErrUnsupportedSymbol) {
				t.Fatalf("unexpected compress error: %v", err)
			}
			if utf8.ValidString(input) && maxRune(input) <= maxSymbol {
				t.Fatalf("supported input rejected: %q", input)
			}
			return
		}

		res, err := Decompress(containerBytes)
		if err != nil {
			t.Fatalf("decompress failed for %q: %v", input, err)
		}
		if res.Text != input {
			t.Errorf("round trip: expected %q, got %q", input, res.Text)
		}
		if !res.Verified {
			t.Errorf("round trip of %q not verified (digest=%v count=%v)",
				input, res.DigestOK, res.CountOK)
		}
	})
}

// Fuzz the container parser with arbitrary bytes: it must fail cleanly or
// parse, never panic, and a successful parse must keep decode errors typed.
func FuzzParseContainer(f *testing.F) {
	seed, err := Compress("seed corpus text", "seed.txt")
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x01, 'a', 0, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		res, err := Decompress(data)
		if err != nil {
			if !errors.Is(err, ErrCorruptContainer) && !errors.Is(err, ErrCorruptTree) && !errors.Is(err, ErrTruncatedStream) {
				t.Fatalf("untyped decompress error: %v", err)
			}
			return
		}
		// Whatever decoded must re-verify against its own content.
		redone, err := Compress(res.Text, res.Filename)
		if err != nil {
			// Filenames longer than 255 bytes cannot round-trip through
			// Compress, and decoded text is BMP-only by construction.
			if !errors.Is(err, ErrFilenameTooLong) {
				t.Fatalf("re-compress failed: %v", err)
			}
			return
		}
		back, err := Decompress(redone)
		if err != nil || back.Text != res.Text {
			t.Fatalf("re-compressed text did not round trip: %v", err)
		}
	})
}

func maxRune(s string) rune {
	var max rune
	for _, r := range s {
		if r > max {
			max = r
		}
	}
	return max
}

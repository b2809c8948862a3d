package leptjson

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// For compact text with no insignificant whitespace and required
// escapes only, stringify∘parse is the identity on the text itself.
func TestCanonicalFormRoundTrips(t *testing.T) {
	texts := []string{
		"null",
		"true",
		"false",
		"0",
		"123",
		"-123",
		"3.25",
		"1e+30",
		"9.9999999999999995e-08",
		`""`,
		`"abc"`,
		`"a/b"`,
		`"line\nbreak"`,
		"[]",
		"{}",
		"[1,2,3]",
		`{"a":1,"b":2}`,
		`{"n":null,"a":[1,2,3]}`,
		`[null,false,true,123,"abc"]`,
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			v, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", text, err)
			}
			out, err := Stringify(v)
			if err != nil {
				t.Fatalf("Stringify unexpected error: %v", err)
			}
			if out != text {
				t.Fatalf("round trip: Parse(%q) -> Stringify = %q, want %q", text, out, text)
			}
		})
	}
}

// Parsing the serialization of a parsed value reproduces the same
// structural tree, modulo object-key insertion order and
// number-reformatting.
func TestPurityRoundTrip(t *testing.T) {
	texts := []string{
		` { "n" : null, "a" : [ 1, 2, 3 ] } `,
		`[ null , false , true, 123, "abc"]`,
		`{"a":1,"a":2}`,
		`"Hello\u0000World"`,
		`"𝄞"`,
		"1e-10000",
		"4.9406564584124654e-324",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			first, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", text, err)
			}
			serialized, err := Stringify(first)
			if err != nil {
				t.Fatalf("Stringify unexpected error: %v", err)
			}
			second, err := Parse(serialized)
			if err != nil {
				t.Fatalf("Parse(Stringify(Parse(%q))) unexpected error: %v", text, err)
			}
			if diff := cmp.Diff(first, second); diff != "" {
				t.Fatalf("purity violated for %q (-first +second):\n%s", text, diff)
			}
		})
	}
}

func TestStringifyTotalityOverParsedValues(t *testing.T) {
	texts := []string{
		"null", "true", "false", "0", "-17", "3.14", "1e100",
		`"a string with \"quotes\" and \\slashes\\"`,
		"[1,[2,[3,[4]]]]",
		`{"a":{"b":{"c":1}}}`,
	}
	for _, text := range texts {
		v, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", text, err)
		}
		if _, err := Stringify(v); err != nil {
			t.Fatalf("Stringify(Parse(%q)) unexpected error: %v", text, err)
		}
	}
}

// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scan_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/goplain/scan"
)

func TestSpace0(t *testing.T) {
	for _, test := range []struct {
		Input string
		Rest  string
	}{
		{Input: "  \tx", Rest: "x"},
		{Input: "x y", Rest: "x y"},
		{Input: "", Rest: ""},
		// Line endings are not horizontal whitespace
		{Input: "\nx", Rest: "\nx"},
	} {
		rest := scan.Space0([]byte(test.Input))
		if string(rest) != test.Rest {
			t.Fatalf(
				"did not get expected remainder for %q, got: %q, wanted: %q",
				test.Input,
				rest,
				test.Rest,
			)
		}
	}
}

func TestTag(t *testing.T) {
	rest, err := scan.Tag([]byte("true!"), "true")
	if err != nil {
		t.Fatalf("failed to match tag: %s", err)
	}
	if string(rest) != "!" {
		t.Fatalf("did not get expected remainder, got: %q, wanted: %q", rest, "!")
	}
	for _, input := range []string{"tru", "", "True", "xtrue"} {
		_, err := scan.Tag([]byte(input), "true")
		var scanErr *scan.Error
		if !errors.As(err, &scanErr) {
			t.Fatalf("did not get expected error for %q, got: %v", input, err)
		}
		if scanErr.Kind != scan.ErrorKindTag {
			t.Fatalf(
				"did not get expected error kind for %q, got: %s",
				input,
				scanErr.Kind,
			)
		}
	}
}

func TestLineEnding(t *testing.T) {
	for _, test := range []struct {
		Input string
		Rest  string
	}{
		{Input: "\nx", Rest: "x"},
		{Input: "\r\nx", Rest: "x"},
	} {
		rest, err := scan.LineEnding([]byte(test.Input))
		if err != nil {
			t.Fatalf("failed to match line ending in %q: %s", test.Input, err)
		}
		if string(rest) != test.Rest {
			t.Fatalf(
				"did not get expected remainder, got: %q, wanted: %q",
				rest,
				test.Rest,
			)
		}
	}
	for _, input := range []string{"", "x", "\rx"} {
		_, err := scan.LineEnding([]byte(input))
		var scanErr *scan.Error
		if !errors.As(err, &scanErr) {
			t.Fatalf("did not get expected error for %q, got: %v", input, err)
		}
		if scanErr.Kind != scan.ErrorKindCRLF {
			t.Fatalf(
				"did not get expected error kind for %q, got: %s",
				input,
				scanErr.Kind,
			)
		}
	}
}

func TestDigits(t *testing.T) {
	digits, rest, err := scan.Digits([]byte("0123x45"))
	if err != nil {
		t.Fatalf("failed to scan digits: %s", err)
	}
	if string(digits) != "0123" || string(rest) != "x45" {
		t.Fatalf(
			"did not get expected result, got: %q + %q, wanted: %q + %q",
			digits,
			rest,
			"0123",
			"x45",
		)
	}
	_, _, err = scan.Digits([]byte("x"))
	var scanErr *scan.Error
	if !errors.As(err, &scanErr) {
		t.Fatalf("did not get expected error, got: %v", err)
	}
	if scanErr.Kind != scan.ErrorKindDigit {
		t.Fatalf("did not get expected error kind, got: %s", scanErr.Kind)
	}
}

type floatTestDefinition struct {
	Input  string
	Lexeme string
	Rest   string
	Fail   bool
}

var floatTests = []floatTestDefinition{
	{Input: "123", Lexeme: "123"},
	{Input: "-1.5", Lexeme: "-1.5"},
	{Input: "+.25x", Lexeme: "+.25", Rest: "x"},
	{Input: "1.", Lexeme: "1."},
	{Input: "6e8", Lexeme: "6e8"},
	{Input: "3.14e-2", Lexeme: "3.14e-2"},
	{Input: "2E+10y", Lexeme: "2E+10", Rest: "y"},
	// Exponent marker without digits stays unconsumed
	{Input: "1.2e", Lexeme: "1.2", Rest: "e"},
	{Input: "1e+", Lexeme: "1", Rest: "e+"},
	{Input: "inf", Lexeme: "inf"},
	{Input: "-Infinity!", Lexeme: "-Infinity", Rest: "!"},
	{Input: "NaN", Lexeme: "NaN"},
	{Input: "", Fail: true},
	{Input: ".", Fail: true},
	{Input: "-x", Fail: true},
	{Input: "e8", Fail: true},
}

func TestFloat(t *testing.T) {
	for _, test := range floatTests {
		lexeme, rest, err := scan.Float([]byte(test.Input))
		if test.Fail {
			var scanErr *scan.Error
			if !errors.As(err, &scanErr) {
				t.Fatalf(
					"did not get expected error for %q, got: %v",
					test.Input,
					err,
				)
			}
			if scanErr.Kind != scan.ErrorKindFloat {
				t.Fatalf(
					"did not get expected error kind for %q, got: %s",
					test.Input,
					scanErr.Kind,
				)
			}
			continue
		}
		if err != nil {
			t.Fatalf("failed to scan float from %q: %s", test.Input, err)
		}
		if string(lexeme) != test.Lexeme || string(rest) != test.Rest {
			t.Fatalf(
				"did not get expected result for %q, got: %q + %q, wanted: %q + %q",
				test.Input,
				lexeme,
				rest,
				test.Lexeme,
				test.Rest,
			)
		}
	}
}

func TestRune(t *testing.T) {
	r, size, err := scan.Rune([]byte("é!"))
	if err != nil {
		t.Fatalf("failed to scan rune: %s", err)
	}
	if r != 'é' || size != 2 {
		t.Fatalf("did not get expected rune, got: %q (%d bytes)", r, size)
	}
	_, _, err = scan.Rune([]byte{})
	var scanErr *scan.Error
	if !errors.As(err, &scanErr) || scanErr.Kind != scan.ErrorKindEOF {
		t.Fatalf("did not get expected EOF error, got: %v", err)
	}
	_, _, err = scan.Rune([]byte{0xff})
	if !errors.As(err, &scanErr) || scanErr.Kind != scan.ErrorKindChar {
		t.Fatalf("did not get expected Char error, got: %v", err)
	}
}

func TestErrorOffset(t *testing.T) {
	full := []byte("12345")
	err := scan.NewError(full[3:], scan.ErrorKindDigit)
	if offset := err.Offset(full); offset != 3 {
		t.Fatalf("did not get expected offset, got: %d, wanted: 3", offset)
	}
	if offset := err.Offset(full[4:]); offset != -1 {
		t.Fatalf("did not get expected offset, got: %d, wanted: -1", offset)
	}
}

func TestErrorString(t *testing.T) {
	err := scan.NewError([]byte("abc"), scan.ErrorKindDigit)
	if err.Error() != `scan: Digit near "abc"` {
		t.Fatalf("did not get expected error string, got: %q", err.Error())
	}
	err = scan.NewError(nil, scan.ErrorKindEOF)
	if err.Error() != "scan: EOF at end of input" {
		t.Fatalf("did not get expected error string, got: %q", err.Error())
	}
}

func TestFatal(t *testing.T) {
	inner := scan.NewError([]byte("x"), scan.ErrorKindTag)
	err := scan.Fatal(inner)
	var fatal *scan.FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("did not get expected fatal error, got: %v", err)
	}
	var scanErr *scan.Error
	if !errors.As(err, &scanErr) || scanErr.Kind != scan.ErrorKindTag {
		t.Fatalf("inner error not reachable, got: %v", err)
	}
	if scan.Fatal(nil) != nil {
		t.Fatal("wrapping nil must return nil")
	}
}

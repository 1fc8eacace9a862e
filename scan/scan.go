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

// Package scan provides the low-level tokenizers that the plain package
// builds its typed decoders on: literal matching, digit runs, float lexemes,
// line endings and single characters. Scanners never mutate their input;
// they consume a prefix and return the remaining suffix as a view of the
// same backing storage.
package scan

import (
	"unicode/utf8"
)

// Space0 consumes zero or more horizontal whitespace characters (space and
// tab) and returns the remaining input
func Space0(data []byte) []byte {
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == '\t') {
		i++
	}
	return data[i:]
}

// Tag matches the given literal at the head of the input and returns the
// remaining input. A mismatch (including insufficient input) is a Tag error
func Tag(data []byte, tag string) ([]byte, error) {
	if len(data) >= len(tag) && string(data[:len(tag)]) == tag {
		return data[len(tag):], nil
	}
	return nil, NewError(data, ErrorKindTag)
}

// LineEnding matches "\n" or "\r\n" and returns the remaining input
func LineEnding(data []byte) ([]byte, error) {
	if len(data) > 0 && data[0] == '\n' {
		return data[1:], nil
	}
	if len(data) >= 2 && data[0] == '\r' && data[1] == '\n' {
		return data[2:], nil
	}
	return nil, NewError(data, ErrorKindCRLF)
}

// Digits consumes the longest run of ASCII digits at the head of the input.
// An empty run is a Digit error
func Digits(data []byte) (digits []byte, rest []byte, err error) {
	i := 0
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		i++
	}
	if i == 0 {
		return nil, nil, NewError(data, ErrorKindDigit)
	}
	return data[:i], data[i:], nil
}

// Rune decodes a single UTF-8 character from the head of the input and
// returns it along with its encoded size. Empty input is an EOF error and an
// invalid encoding is a Char error
func Rune(data []byte) (rune, int, error) {
	if len(data) == 0 {
		return 0, 0, NewError(data, ErrorKindEOF)
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		return 0, 0, NewError(data, ErrorKindChar)
	}
	return r, size, nil
}

// Float consumes the longest syntactically valid floating-point lexeme at
// the head of the input: an optional sign, then either a special form (inf,
// infinity or nan, matched case-insensitively) or digits with an optional
// fraction and an optional exponent. An exponent marker is only consumed
// when followed by at least one digit. An empty lexeme is a Float error
func Float(data []byte) (lexeme []byte, rest []byte, err error) {
	i := 0
	if i < len(data) && (data[i] == '+' || data[i] == '-') {
		i++
	}
	if n := floatSpecial(data[i:]); n > 0 {
		return data[:i+n], data[i+n:], nil
	}
	intDigits := 0
	for i < len(data) && data[i] >= '0' && data[i] <= '9' {
		i++
		intDigits++
	}
	fracDigits := 0
	if i < len(data) && data[i] == '.' {
		i++
		for i < len(data) && data[i] >= '0' && data[i] <= '9' {
			i++
			fracDigits++
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return nil, nil, NewError(data, ErrorKindFloat)
	}
	if i < len(data) && (data[i] == 'e' || data[i] == 'E') {
		j := i + 1
		if j < len(data) && (data[j] == '+' || data[j] == '-') {
			j++
		}
		k := j
		for k < len(data) && data[k] >= '0' && data[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return data[:i], data[i:], nil
}

// floatSpecial returns the length of a special float form (inf, infinity or
// nan) at the head of the input, or 0 if none matches. Longer forms win
func floatSpecial(data []byte) int {
	for _, form := range []string{"infinity", "inf", "nan"} {
		if len(data) < len(form) {
			continue
		}
		match := true
		for i := 0; i < len(form); i++ {
			c := data[i]
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c != form[i] {
				match = false
				break
			}
		}
		if match {
			return len(form)
		}
	}
	return 0
}

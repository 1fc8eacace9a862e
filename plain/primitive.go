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

package plain

import (
	"errors"
	"strconv"

	"github.com/blinklabs-io/goplain/scan"
)

// decodeBool matches exactly the literal tokens "true" and "false"
func decodeBool(data []byte) (bool, []byte, error) {
	if rest, err := scan.Tag(data, "true"); err == nil {
		return true, rest, nil
	}
	rest, err := scan.Tag(data, "false")
	if err != nil {
		return false, nil, err
	}
	return false, rest, nil
}

// decodeByte consumes one raw byte from the head of the input. This is NOT a
// parsed number, but the raw byte value
func decodeByte(data []byte) (byte, []byte, error) {
	if len(data) == 0 {
		return 0, nil, scan.NewError(data, scan.ErrorKindEOF)
	}
	return data[0], data[1:], nil
}

// decodeUint decodes the longest run of digits as an unsigned integer of the
// given bit width. Overflow is detected, not wrapped, and reports a Digit
// error positioned at the start of the numeral
func decodeUint(data []byte, bits int) (uint64, []byte, error) {
	digits, rest, err := scan.Digits(data)
	if err != nil {
		return 0, nil, err
	}
	val, err := strconv.ParseUint(string(digits), 10, bits)
	if err != nil {
		return 0, nil, scan.NewError(data, scan.ErrorKindDigit)
	}
	return val, rest, nil
}

// decodeInt decodes an optional sign followed by the longest run of digits
// as a signed integer of the given bit width
func decodeInt(data []byte, bits int) (int64, []byte, error) {
	body := data
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	digits, rest, err := scan.Digits(body)
	if err != nil {
		// Report the error at the start of the numeral, sign included
		return 0, nil, scan.NewError(data, scan.ErrorKindDigit)
	}
	lexeme := data[:len(data)-len(body)+len(digits)]
	val, err := strconv.ParseInt(string(lexeme), 10, bits)
	if err != nil {
		return 0, nil, scan.NewError(data, scan.ErrorKindDigit)
	}
	return val, rest, nil
}

// decodeFloat decodes the longest valid floating-point lexeme as a float of
// the given bit width. Out-of-range values overflow to an infinity rather
// than failing; only a lexeme that cannot be interpreted at all is a Float
// error
func decodeFloat(data []byte, bits int) (float64, []byte, error) {
	lexeme, rest, err := scan.Float(data)
	if err != nil {
		return 0, nil, err
	}
	val, err := strconv.ParseFloat(string(lexeme), bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, nil, scan.NewError(data, scan.ErrorKindFloat)
	}
	return val, rest, nil
}

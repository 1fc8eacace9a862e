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
	"fmt"
	"reflect"

	"github.com/blinklabs-io/goplain/scan"
)

// Unmarshaler is implemented by types that supply their own decoding rule.
// UnmarshalPlain decodes a value from the head of data and returns the
// number of bytes consumed. Implementations must not retain data and must be
// deterministic: the same input always yields the same outcome
type Unmarshaler interface {
	UnmarshalPlain(data []byte) (int, error)
}

// Releaser is implemented by types whose decoded values hold resources that
// must be released when an enclosing decode is abandoned partway through.
// The fixed-size array decoder calls ReleaseDecoded on every fully decoded
// element of an abandoned array, and the unbounded container decoders call
// it on accumulated elements and entries when a fatal error aborts the
// sequence. The hook is never called on the element that failed, since it
// was never completely decoded. Releasing walks nested containers and
// pointers, so a Releaser element is found at any depth; a value that
// implements Releaser is responsible for anything it contains
type Releaser interface {
	ReleaseDecoded()
}

// Decode decodes a value from the head of data into dest, which must be a
// non-nil pointer. It returns the number of bytes consumed; the unconsumed
// remainder is data[n:]. Decode never mutates data
func Decode(data []byte, dest any) (int, error) {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return 0, errors.New("destination must be a non-nil pointer")
	}
	rest, err := decodeValue(data, v.Elem())
	if err != nil {
		return 0, err
	}
	return len(data) - len(rest), nil
}

// DecodeComplete decodes a value from data into dest and requires that the
// entire input was consumed. Leftover input after a successful decode is
// reported as an EOF error positioned at the start of the remainder.
//
// DecodeComplete panics if the decode reports ErrIncomplete: that signal is
// reserved for streaming input, which this package does not support, so
// reaching it here is a programming error rather than a decode failure
func DecodeComplete(data []byte, dest any) error {
	n, err := Decode(data, dest)
	if err != nil {
		if errors.Is(err, scan.ErrIncomplete) {
			panic(
				"plain: decoder signaled incomplete input on a fully buffered decode",
			)
		}
		return err
	}
	if n < len(data) {
		return scan.NewError(data[n:], scan.ErrorKindEOF)
	}
	return nil
}

// decodeValue decodes a single value from the head of data into v and
// returns the remaining input. v must be addressable
func decodeValue(data []byte, v reflect.Value) ([]byte, error) {
	// A custom decoding rule always wins over the built-in dispatch
	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(Unmarshaler); ok {
			n, err := u.UnmarshalPlain(data)
			if err != nil {
				return nil, err
			}
			if n < 0 || n > len(data) {
				// Misbehaving decode rule, not a decode failure
				return nil, scan.Fatal(fmt.Errorf(
					"plain: invalid consumed count %d from %T",
					n,
					u,
				))
			}
			return data[n:], nil
		}
	}
	switch v.Kind() {
	case reflect.Bool:
		val, rest, err := decodeBool(data)
		if err != nil {
			return nil, err
		}
		v.SetBool(val)
		return rest, nil
	case reflect.Uint8:
		// A raw byte, not a parsed number
		val, rest, err := decodeByte(data)
		if err != nil {
			return nil, err
		}
		v.SetUint(uint64(val))
		return rest, nil
	case reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		val, rest, err := decodeUint(data, v.Type().Bits())
		if err != nil {
			return nil, err
		}
		v.SetUint(val)
		return rest, nil
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Int:
		val, rest, err := decodeInt(data, v.Type().Bits())
		if err != nil {
			return nil, err
		}
		v.SetInt(val)
		return rest, nil
	case reflect.Float32, reflect.Float64:
		val, rest, err := decodeFloat(data, v.Type().Bits())
		if err != nil {
			return nil, err
		}
		v.SetFloat(val)
		return rest, nil
	case reflect.Pointer:
		return decodePointer(data, v)
	case reflect.Slice:
		return decodeSlice(data, v)
	case reflect.Map:
		return decodeMap(data, v)
	case reflect.Array:
		return decodeArray(data, v)
	default:
		// Fatal so that containers over an undecodable element type surface
		// this instead of decoding as empty
		return nil, scan.Fatal(
			fmt.Errorf("plain: unsupported type: %s", v.Type()),
		)
	}
}

// abortive returns true for errors that must abort an enclosing repetition
// rather than terminate it: fatal errors and the streaming signal
func abortive(err error) bool {
	var fatal *scan.FatalError
	return errors.As(err, &fatal) || errors.Is(err, scan.ErrIncomplete)
}

// Decoder provides sequential decoding over a buffer with position
// tracking. It is useful inside UnmarshalPlain implementations that decode
// several constituent values in a row
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a Decoder over the given buffer
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Decode decodes the next value into dest and advances the position.
// It returns the number of bytes consumed
func (d *Decoder) Decode(dest any) (int, error) {
	n, err := Decode(d.data[d.pos:], dest)
	if err != nil {
		return 0, err
	}
	d.pos += n
	return n, nil
}

// Expect consumes the given literal at the current position
func (d *Decoder) Expect(tag string) error {
	rest, err := scan.Tag(d.data[d.pos:], tag)
	if err != nil {
		return err
	}
	d.pos = len(d.data) - len(rest)
	return nil
}

// SkipSpace consumes any horizontal whitespace at the current position
func (d *Decoder) SkipSpace() {
	rest := scan.Space0(d.data[d.pos:])
	d.pos = len(d.data) - len(rest)
}

// SkipLineEnding consumes a line ending at the current position
func (d *Decoder) SkipLineEnding() error {
	rest, err := scan.LineEnding(d.data[d.pos:])
	if err != nil {
		return err
	}
	d.pos = len(d.data) - len(rest)
	return nil
}

// Position returns the current byte position in the buffer
func (d *Decoder) Position() int {
	return d.pos
}

// Remaining returns the unconsumed portion of the buffer
func (d *Decoder) Remaining() []byte {
	return d.data[d.pos:]
}

// EOF returns true if the decoder has consumed the entire buffer
func (d *Decoder) EOF() bool {
	return d.pos >= len(d.data)
}

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

// Package plain decodes plain-text input into typed Go values.
//
// This package dispatches on the destination type, so writing one decode
// rule for a custom type makes every container built from it decodable for
// free. Built-in rules cover the numeric types, booleans, single bytes and
// characters, pointers, slices, maps, sets and fixed-size arrays.
//
// # Key Operations
//
//   - Decode: decode a value from the head of the input, reporting how many
//     bytes were consumed
//   - DecodeComplete: decode a value and require that the entire input was
//     consumed
//   - Decoder: sequential decoding over a buffer with position tracking
//
// # Wire Conventions
//
// Integers are the longest run of decimal digits (with an optional sign for
// signed types); out-of-range numerals are an error, never wrapped. Booleans
// are the literal tokens "true" and "false". Lists (slices), sets and maps
// are line-delimited; map entries separate key and value with "=" optionally
// surrounded by horizontal whitespace. Fixed-size arrays are comma-delimited
// with optional horizontal whitespace around the comma:
//
//	var list []uint32
//	err := plain.DecodeComplete([]byte("1\n2\n3"), &list)
//
//	var pair [2]int
//	err = plain.DecodeComplete([]byte("-4, 5"), &pair)
//
// # Custom Types
//
// A type supplies its own decoding rule by implementing Unmarshaler:
//
//	type Version struct {
//	    Major, Minor uint32
//	}
//
//	func (v *Version) UnmarshalPlain(data []byte) (int, error) {
//	    d := plain.NewDecoder(data)
//	    if _, err := d.Decode(&v.Major); err != nil {
//	        return 0, err
//	    }
//	    if err := d.Expect("."); err != nil {
//	        return 0, err
//	    }
//	    if _, err := d.Decode(&v.Minor); err != nil {
//	        return 0, err
//	    }
//	    return d.Position(), nil
//	}
//
// A map with struct{} values decodes as a set: line-delimited keys with no
// "=". Duplicate set or map keys resolve last-write-wins in decode order.
//
// # Errors
//
// Decode failures are *Error values carrying the unconsumed remainder at the
// failure point and a kind from the scan package taxonomy. Wrapping an error
// in FatalError makes it abort enclosing list/set/map decoding instead of
// terminating the sequence. ErrIncomplete is reserved for streaming input,
// which this package does not support; DecodeComplete panics if it sees it.
package plain

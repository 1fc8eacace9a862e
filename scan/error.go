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

package scan

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which scanner rejected the input
type ErrorKind uint8

const (
	// ErrorKindEOF means the input ended where more was required, or input
	// was left over after a complete decode
	ErrorKindEOF ErrorKind = iota
	// ErrorKindDigit means an invalid or out-of-range integer lexeme
	ErrorKindDigit
	// ErrorKindFloat means an invalid floating-point lexeme
	ErrorKindFloat
	// ErrorKindChar means the head of input is not a valid single character
	ErrorKindChar
	// ErrorKindTag means a literal token did not match
	ErrorKindTag
	// ErrorKindCRLF means a line ending was expected but not found
	ErrorKindCRLF
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindEOF:
		return "EOF"
	case ErrorKindDigit:
		return "Digit"
	case ErrorKindFloat:
		return "Float"
	case ErrorKindChar:
		return "Char"
	case ErrorKindTag:
		return "Tag"
	case ErrorKindCRLF:
		return "CRLF"
	}
	return fmt.Sprintf("Unknown(%d)", uint8(k))
}

// Error is a scan failure. Input is the unconsumed remainder at the point of
// failure, which usually aliases the original input's backing storage. Use
// Offset to recover a byte position relative to the original input.
type Error struct {
	Input []byte
	Kind  ErrorKind
}

// NewError builds an Error for the given remaining input and kind
func NewError(input []byte, kind ErrorKind) *Error {
	return &Error{
		Input: input,
		Kind:  kind,
	}
}

func (e *Error) Error() string {
	if len(e.Input) == 0 {
		return fmt.Sprintf("scan: %s at end of input", e.Kind)
	}
	preview := e.Input
	if len(preview) > 16 {
		preview = preview[:16]
	}
	return fmt.Sprintf("scan: %s near %q", e.Kind, preview)
}

// Offset returns the byte offset of the failure within full, assuming that
// the error's remaining input is a suffix view of full. It returns -1 if the
// remainder is longer than full
func (e *Error) Offset(full []byte) int {
	if len(e.Input) > len(full) {
		return -1
	}
	return len(full) - len(e.Input)
}

// FatalError marks a decode error as unrecoverable. An unbounded repetition
// normally treats an element failure as the end of the sequence; a fatal
// error aborts the enclosing decode instead and propagates unchanged.
type FatalError struct {
	Err error
}

// Fatal wraps err as a FatalError. It returns nil if err is nil
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("unrecoverable: %s", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// ErrIncomplete signals that a decoder needs more input than was provided.
// The scanners in this package never return it; it exists for callers with
// streaming-oriented custom decode rules. Complete-consumption decoding
// treats it as misuse (see plain.DecodeComplete)
var ErrIncomplete = errors.New("scan: incomplete input")

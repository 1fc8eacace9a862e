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
	"github.com/blinklabs-io/goplain/scan"
)

// Create aliases for the scan error types for convenience, so that most
// callers only need to import this package
type (
	Error      = scan.Error
	ErrorKind  = scan.ErrorKind
	FatalError = scan.FatalError
)

const (
	ErrorKindEOF   = scan.ErrorKindEOF
	ErrorKindDigit = scan.ErrorKindDigit
	ErrorKindFloat = scan.ErrorKindFloat
	ErrorKindChar  = scan.ErrorKindChar
	ErrorKindTag   = scan.ErrorKindTag
	ErrorKindCRLF  = scan.ErrorKindCRLF
)

// ErrIncomplete is the streaming "need more input" signal. No decoder in
// this package produces it
var ErrIncomplete = scan.ErrIncomplete

// Fatal wraps err so that it aborts enclosing list/set/map decoding rather
// than terminating the sequence
var Fatal = scan.Fatal

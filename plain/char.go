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

// Char decodes one logical UTF-8 character, consuming however many bytes it
// is encoded in. We use a defined type because reflection can't tell a rune
// from any other int32, which the built-in dispatch decodes as a number
type Char rune

func (c *Char) UnmarshalPlain(data []byte) (int, error) {
	r, size, err := scan.Rune(data)
	if err != nil {
		return 0, err
	}
	*c = Char(r)
	return size, nil
}

func (c Char) String() string {
	return string(rune(c))
}

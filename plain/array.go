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
	"reflect"

	"github.com/blinklabs-io/goplain/scan"
)

// decodeArray decodes exactly N comma-delimited elements into a fixed-size
// array, where N comes from the array type, not the input. The first element
// has no leading separator; each subsequent element is preceded by a comma
// with optional horizontal whitespace on either side.
//
// Unlike the unbounded containers, a failing separator or element decode
// mid-array aborts the whole array: elements already decoded get their
// ReleaseDecoded hook invoked (when implemented) and the original error
// propagates unchanged. The element that failed is never released, since it
// was never completely decoded.
//
// Elements are decoded into a temporary array that is only committed to the
// destination on full success, so the destination is either fully
// initialized or untouched
func decodeArray(data []byte, v reflect.Value) ([]byte, error) {
	n := v.Len()
	if n == 0 {
		// An empty aggregate consumes nothing
		return data, nil
	}
	tmp := reflect.New(v.Type()).Elem()
	rest, err := decodeValue(data, tmp.Index(0))
	if err != nil {
		// No slots filled yet, nothing to release
		return nil, err
	}
	filled := 1
	for i := 1; i < n; i++ {
		after := scan.Space0(rest)
		after, err = scan.Tag(after, ",")
		if err != nil {
			releaseElements(tmp, filled)
			return nil, err
		}
		after = scan.Space0(after)
		after, err = decodeValue(after, tmp.Index(i))
		if err != nil {
			releaseElements(tmp, filled)
			return nil, err
		}
		rest = after
		filled = i + 1
	}
	v.Set(tmp)
	return rest, nil
}

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

// decodePointer decodes the pointed-to type and wraps it. Wrapping
// contributes no failure modes of its own
func decodePointer(data []byte, v reflect.Value) ([]byte, error) {
	elem := reflect.New(v.Type().Elem())
	rest, err := decodeValue(data, elem.Elem())
	if err != nil {
		return nil, err
	}
	v.Set(elem)
	return rest, nil
}

// decodeSlice decodes a line-delimited sequence of zero or more elements.
// A failing element or separator ends the sequence; input is left positioned
// before the separator of the failed entry. Fatal errors abort instead
func decodeSlice(data []byte, v reflect.Value) ([]byte, error) {
	out := reflect.MakeSlice(v.Type(), 0, 0)
	elemType := v.Type().Elem()
	rest := data
	for {
		attempt := rest
		if out.Len() > 0 {
			var err error
			attempt, err = scan.LineEnding(attempt)
			if err != nil {
				break
			}
		}
		elem := reflect.New(elemType).Elem()
		after, err := decodeValue(attempt, elem)
		if err != nil {
			if abortive(err) {
				// The accumulated elements are abandoned along with the
				// sequence; run their teardown obligations. The element
				// that failed was never completed
				releaseValue(out)
				return nil, err
			}
			break
		}
		out = reflect.Append(out, elem)
		rest = after
	}
	v.Set(out)
	return rest, nil
}

// decodeMap decodes a line-delimited sequence of zero or more "key = value"
// entries, with optional horizontal whitespace around the "=". A map whose
// value type is struct{} decodes as a set instead: bare line-delimited keys
// with no "=". Duplicate keys resolve last-write-wins in decode order
func decodeMap(data []byte, v reflect.Value) ([]byte, error) {
	mapType := v.Type()
	out := reflect.MakeMap(mapType)
	isSet := mapType.Elem().Kind() == reflect.Struct &&
		mapType.Elem().NumField() == 0
	rest := data
	count := 0
	for {
		attempt := rest
		if count > 0 {
			var err error
			attempt, err = scan.LineEnding(attempt)
			if err != nil {
				break
			}
		}
		key := reflect.New(mapType.Key()).Elem()
		after, err := decodeValue(attempt, key)
		if err != nil {
			if abortive(err) {
				releaseValue(out)
				return nil, err
			}
			break
		}
		val := reflect.New(mapType.Elem()).Elem()
		if !isSet {
			after = scan.Space0(after)
			after, err = scan.Tag(after, "=")
			if err != nil {
				// The key was completely decoded but its entry is being
				// abandoned, so it still gets torn down
				releaseValue(key)
				break
			}
			after = scan.Space0(after)
			after, err = decodeValue(after, val)
			if err != nil {
				releaseValue(key)
				if abortive(err) {
					releaseValue(out)
					return nil, err
				}
				break
			}
		}
		out.SetMapIndex(key, val)
		rest = after
		count++
	}
	v.Set(out)
	return rest, nil
}

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
)

// releaseValue runs the teardown obligations for a completely decoded value
// that is being abandoned. A value implementing Releaser gets its hook
// called and is responsible for anything it contains; otherwise the walk
// descends into pointed-to values and container elements so that nested
// Releaser elements are not missed
func releaseValue(v reflect.Value) {
	if v.CanAddr() {
		if r, ok := v.Addr().Interface().(Releaser); ok {
			r.ReleaseDecoded()
			return
		}
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		if r, ok := v.Interface().(Releaser); ok {
			r.ReleaseDecoded()
			return
		}
		releaseValue(v.Elem())
	case reflect.Array, reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			releaseValue(v.Index(i))
		}
	case reflect.Map:
		for iter := v.MapRange(); iter.Next(); {
			releaseCopy(iter.Key())
			releaseCopy(iter.Value())
		}
	}
}

// releaseCopy releases a value that reflection only exposes unaddressably,
// such as a map entry, through an addressable copy
func releaseCopy(v reflect.Value) {
	tmp := reflect.New(v.Type()).Elem()
	tmp.Set(v)
	releaseValue(tmp)
}

// releaseElements runs the teardown obligations for the first filled
// elements of arr, in decode order
func releaseElements(arr reflect.Value, filled int) {
	for i := 0; i < filled; i++ {
		releaseValue(arr.Index(i))
	}
}

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
	"sync"
)

// Cell is a synchronized holder for a decoded value, for values shared
// between goroutines after decoding. The decode path performs exactly one
// write through the cell and never mutates it again; readers use Load.
// The zero Cell holds the zero value of T and is ready to use
type Cell[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewCell creates a Cell holding the given value
func NewCell[T any](value T) *Cell[T] {
	return &Cell[T]{value: value}
}

func (c *Cell[T]) UnmarshalPlain(data []byte) (int, error) {
	var tmp T
	n, err := Decode(data, &tmp)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	c.value = tmp
	c.mu.Unlock()
	return n, nil
}

// Load returns the held value
func (c *Cell[T]) Load() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package iter

// Iterator visits a sequence of items one at a time.  Backends consume the
// operations of a circuit this way, without the circuit being flattened first.
type Iterator[T any] interface {
	// HasNext checks whether any items remain.
	HasNext() bool
	// Next returns the next item and advances.  This panics when no items
	// remain.
	Next() T
	// Remaining returns the number of items not yet visited.
	Remaining() int
}

// Chain returns an iterator over the concatenation of the given slices.  The
// slices are not copied, so must not be modified whilst iterating.
func Chain[T any](segments ...[]T) Iterator[T] {
	return &chain[T]{segments, 0}
}

// Collect drains the items remaining in an iterator into a new slice.
func Collect[T any](it Iterator[T]) []T {
	items := make([]T, 0, it.Remaining())
	//
	for it.HasNext() {
		items = append(items, it.Next())
	}
	//
	return items
}

// All adapts an iterator for use in a range loop, draining it as it goes.
func All[T any](it Iterator[T]) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

type chain[T any] struct {
	segments [][]T
	// Position within the first segment.
	index int
}

func (c *chain[T]) HasNext() bool {
	c.advance()
	return len(c.segments) > 0
}

func (c *chain[T]) Next() T {
	c.advance()
	//
	if len(c.segments) == 0 {
		panic("iterator exhausted")
	}
	//
	item := c.segments[0][c.index]
	c.index++
	//
	return item
}

func (c *chain[T]) Remaining() int {
	n := -c.index
	for _, segment := range c.segments {
		n += len(segment)
	}
	//
	return max(n, 0)
}

// Drops exhausted segments from the front.
func (c *chain[T]) advance() {
	for len(c.segments) > 0 && c.index >= len(c.segments[0]) {
		c.segments = c.segments[1:]
		c.index = 0
	}
}

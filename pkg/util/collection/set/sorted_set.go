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
package set

import (
	"cmp"
	"slices"
)

// SortedSet holds distinct values in ascending order.  Qubit masks and sets of
// involved qubits are represented this way, hence a set serialises as a plain
// (sorted) array.
type SortedSet[T cmp.Ordered] []T

// FromArray constructs a sorted set from items which may be unordered and
// contain duplicates.  No items gives the nil set.
func FromArray[T cmp.Ordered](items ...T) SortedSet[T] {
	if len(items) == 0 {
		return nil
	}
	//
	data := slices.Clone(items)
	slices.Sort(data)
	//
	return slices.Compact(data)
}

// Contains checks whether a given element is in this set.
func (p SortedSet[T]) Contains(element T) bool {
	_, found := slices.BinarySearch(p, element)
	return found
}

// Insert an element into this set, if not already present.
func (p *SortedSet[T]) Insert(element T) {
	if i, found := slices.BinarySearch(*p, element); !found {
		*p = slices.Insert(*p, i, element)
	}
}

// Union returns the set of elements in either this set or the other.  Neither
// set is modified.
func (p SortedSet[T]) Union(other SortedSet[T]) SortedSet[T] {
	var (
		result = make(SortedSet[T], 0, len(p)+len(other))
		i, j   int
	)
	//
	for i < len(p) && j < len(other) {
		switch c := cmp.Compare(p[i], other[j]); {
		case c < 0:
			result = append(result, p[i])
			i++
		case c > 0:
			result = append(result, other[j])
			j++
		default:
			result = append(result, p[i])
			i, j = i+1, j+1
		}
	}
	//
	result = append(result, p[i:]...)
	result = append(result, other[j:]...)
	//
	if len(result) == 0 {
		return nil
	}
	//
	return result
}

// Equals checks whether two sets hold the same elements, where nil and empty
// sets are equal.
func (p SortedSet[T]) Equals(other SortedSet[T]) bool {
	return slices.Equal(p, other)
}

// Max returns the largest element, or false for an empty set.
func (p SortedSet[T]) Max() (T, bool) {
	if len(p) == 0 {
		var empty T
		return empty, false
	}
	//
	return p[len(p)-1], true
}

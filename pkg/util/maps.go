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
package util

import (
	"cmp"
	"slices"
)

// ShallowCloneMap makes a shallow copy of a map, always returning a non-nil
// map.
func ShallowCloneMap[K comparable, V any](orig map[K]V) map[K]V {
	m := make(map[K]V, len(orig))
	for k, v := range orig {
		m[k] = v
	}
	//
	return m
}

// SortedKeys returns the keys of a map in ascending order.  This is used
// wherever iteration order would otherwise leak into results (e.g. the order
// in which floating point sums are accumulated).
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	//
	slices.Sort(keys)
	//
	return keys
}

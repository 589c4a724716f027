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

// NilIfEmpty returns nil for an empty slice, and the slice itself otherwise.
// Decoders produce nil for empty sequences, hence values which are compared
// after a round trip should hold nil rather than an empty slice.
func NilIfEmpty[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	//
	return items
}

// CloneSlice makes a shallow copy of a slice, preserving nil.
func CloneSlice[T any](items []T) []T {
	if items == nil {
		return nil
	}
	//
	nitems := make([]T, len(items))
	copy(nitems, items)
	//
	return nitems
}

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
	"bytes"
	"encoding/gob"
	"encoding/json"
)

// Option holds either a single value or nothing.  Optional parts of an
// operation (e.g. the circuit of a CheatedPauliZProduct which is not given)
// are held this way, rather than as pointers, so that they serialise
// symmetrically.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an option holding a given value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None constructs the empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// HasValue checks whether this option holds a value.
func (o Option[T]) HasValue() bool {
	return o.some
}

// IsEmpty checks whether this option holds nothing.
func (o Option[T]) IsEmpty() bool {
	return !o.some
}

// Unwrap returns the value held, and panics for the empty option.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("cannot unwrap an empty option")
	}
	//
	return o.value
}

// MapOption transforms the value held (if any) with a function which may fail.
func MapOption[S any, T any](o Option[S], fn func(S) (T, error)) (Option[T], error) {
	if o.some {
		value, err := fn(o.value)
		if err != nil {
			return None[T](), err
		}
		//
		return Some(value), nil
	}
	//
	return None[T](), nil
}

// GobEncode writes a presence flag, followed by the value when present.
func (o Option[T]) GobEncode() ([]byte, error) {
	var (
		buffer  bytes.Buffer
		encoder = gob.NewEncoder(&buffer)
	)
	//
	err := encoder.Encode(o.some)
	if err == nil && o.some {
		err = encoder.Encode(&o.value)
	}
	//
	return buffer.Bytes(), err
}

// GobDecode reads an option written by GobEncode.
func (o *Option[T]) GobDecode(data []byte) error {
	decoder := gob.NewDecoder(bytes.NewReader(data))
	//
	*o = None[T]()
	//
	if err := decoder.Decode(&o.some); err != nil || !o.some {
		return err
	}
	//
	return decoder.Decode(&o.value)
}

// MarshalJSON writes the empty option as null, and otherwise the value held.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if o.some {
		return json.Marshal(&o.value)
	}
	//
	return []byte("null"), nil
}

// UnmarshalJSON reads null as the empty option.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	*o = None[T]()
	//
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	//
	if err := json.Unmarshal(data, &o.value); err != nil {
		return err
	}
	//
	o.some = true
	//
	return nil
}

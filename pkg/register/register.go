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
package register

import (
	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util"
)

// Register holds the output of repeated circuit executions under a single
// name, with one row per shot.  Every row of a well-formed register has the
// same length.
type Register[T any] [][]T

// BitRegister holds the measured bits of each shot.
type BitRegister = Register[bool]

// FloatRegister holds real values per shot (e.g. occupation probabilities or
// Pauli product expectation values).
type FloatRegister = Register[float64]

// ComplexRegister holds complex values per shot (e.g. state vectors or
// flattened density matrices).
type ComplexRegister = Register[complex128]

// Shots returns the number of rows in this register.
func (r Register[T]) Shots() int {
	return len(r)
}

// Width returns the common length of every row of this register, or an error
// if the rows differ in length.  An empty register has width zero.
func (r Register[T]) Width(name string) (int, error) {
	if len(r) == 0 {
		return 0, nil
	}
	//
	width := len(r[0])
	//
	for i, row := range r {
		if len(row) != width {
			return 0, &roqoqo.RowLengthError{Name: name, Row: uint(i), Expected: uint(width), Found: uint(len(row))}
		}
	}
	//
	return width, nil
}

// Clone returns a deep copy of this register.
func (r Register[T]) Clone() Register[T] {
	if r == nil {
		return nil
	}
	//
	nr := make(Register[T], len(r))
	for i, row := range r {
		nr[i] = util.CloneSlice(row)
	}
	//
	return nr
}

// Registers bundles the named output registers of one or more circuit runs.
type Registers struct {
	Bits      map[string]BitRegister
	Floats    map[string]FloatRegister
	Complexes map[string]ComplexRegister
}

// NewRegisters constructs an empty set of registers.
func NewRegisters() Registers {
	return Registers{
		make(map[string]BitRegister),
		make(map[string]FloatRegister),
		make(map[string]ComplexRegister),
	}
}

// IsEmpty determines whether there are no registers at all.
func (r Registers) IsEmpty() bool {
	return len(r.Bits) == 0 && len(r.Floats) == 0 && len(r.Complexes) == 0
}

// Append adds the shots of another set of registers to this one.  Rows of
// equally named registers are concatenated, with those of this set first.
func (r *Registers) Append(other Registers) {
	r.Bits = appendAll(r.Bits, other.Bits)
	r.Floats = appendAll(r.Floats, other.Floats)
	r.Complexes = appendAll(r.Complexes, other.Complexes)
}

// Validate checks that every row of each register has the same length.
func (r *Registers) Validate() error {
	if err := validateAll(r.Bits); err != nil {
		return err
	} else if err := validateAll(r.Floats); err != nil {
		return err
	}
	//
	return validateAll(r.Complexes)
}

// Clone returns a deep copy of these registers.
func (r *Registers) Clone() Registers {
	return Registers{cloneAll(r.Bits), cloneAll(r.Floats), cloneAll(r.Complexes)}
}

func appendAll[T any](lhs map[string]Register[T], rhs map[string]Register[T]) map[string]Register[T] {
	if lhs == nil {
		lhs = make(map[string]Register[T])
	}
	//
	for name, reg := range rhs {
		lhs[name] = append(lhs[name], reg.Clone()...)
	}
	//
	return lhs
}

func validateAll[T any](regs map[string]Register[T]) error {
	for _, name := range util.SortedKeys(regs) {
		if _, err := regs[name].Width(name); err != nil {
			return err
		}
	}
	//
	return nil
}

func cloneAll[T any](regs map[string]Register[T]) map[string]Register[T] {
	nregs := make(map[string]Register[T], len(regs))
	//
	for name, reg := range regs {
		nregs[name] = reg.Clone()
	}
	//
	return nregs
}

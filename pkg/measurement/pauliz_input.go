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
package measurement

import (
	"maps"

	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/set"
	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// PauliZProductInput describes how expectation values are reconstructed from
// bit registers.  Each Pauli product is a set of qubits (i.e. a mask) measured
// into a named bit register, whose value for a single shot is the parity of
// the masked bits (+1 for even, -1 for odd).  An empty mask denotes the
// identity, whose value is always +1.
type PauliZProductInput struct {
	// Qubit mask of each Pauli product index, grouped by bit register.
	PauliProductQubitMasks map[string]map[uint]set.SortedSet[uint] `json:"pauli_product_qubit_masks"`
	// Number of qubits measured.
	NumberQubits uint `json:"number_qubits"`
	// Number of Pauli product indices allocated so far.
	NumberPauliProducts uint `json:"number_pauli_products"`
	// Expectation values by name.
	MeasuredExpVals map[string]PauliProductsToExpVal `json:"measured_exp_vals"`
	// Whether every bit register has a "_flipped" partner, measured with
	// inverted readout.
	UseFlippedMeasurement bool `json:"use_flipped_measurement"`
}

// NewPauliZProductInput constructs an input with no Pauli products and no
// expectation values.
func NewPauliZProductInput(numberQubits uint, useFlippedMeasurement bool) *PauliZProductInput {
	return &PauliZProductInput{
		PauliProductQubitMasks: make(map[string]map[uint]set.SortedSet[uint]),
		NumberQubits:           numberQubits,
		MeasuredExpVals:        make(map[string]PauliProductsToExpVal),
		UseFlippedMeasurement:  useFlippedMeasurement,
	}
}

// AddPauliZProduct registers the Pauli product given by a set of qubits
// measured into a given bit register, returning its index.  Registering the
// same set of qubits (in any order) for the same register again returns the
// existing index.
func (p *PauliZProductInput) AddPauliZProduct(readout string, qubits []uint) (uint, error) {
	for _, q := range qubits {
		if q >= p.NumberQubits {
			return 0, &roqoqo.PauliProductExceedsQubitsError{Qubit: q, NumberQubits: p.NumberQubits}
		}
	}
	//
	mask := set.FromArray(qubits...)
	masks, ok := p.PauliProductQubitMasks[readout]
	//
	if !ok {
		masks = make(map[uint]set.SortedSet[uint])
		p.PauliProductQubitMasks[readout] = masks
	}
	// Check whether already registered
	for _, index := range util.SortedKeys(masks) {
		if masks[index].Equals(mask) {
			return index, nil
		}
	}
	//
	index := p.NumberPauliProducts
	masks[index] = mask
	p.NumberPauliProducts++
	//
	return index, nil
}

// AddLinearExpVal registers an expectation value which is a weighted sum of
// Pauli products.  Every index must refer to a registered Pauli product.
func (p *PauliZProductInput) AddLinearExpVal(name string, coefficients map[uint]float64) error {
	return addExpVal(p.MeasuredExpVals, p.NumberPauliProducts, name, Linear(coefficients))
}

// AddSymbolicExpVal registers an expectation value given by an expression over
// the variables pauli_product_0, pauli_product_1, etc.  The expression is
// only parsed when evaluated.
func (p *PauliZProductInput) AddSymbolicExpVal(name string, expr string) error {
	return addExpVal(p.MeasuredExpVals, p.NumberPauliProducts, name, Symbolic(expr))
}

// MinimumSupportedVersion of this input, which has not changed since the
// first version.
func (p *PauliZProductInput) MinimumSupportedVersion() version.Version {
	return version.Base
}

// Clone returns a deep copy of this input.
func (p *PauliZProductInput) Clone() *PauliZProductInput {
	masks := make(map[string]map[uint]set.SortedSet[uint], len(p.PauliProductQubitMasks))
	//
	for name, m := range p.PauliProductQubitMasks {
		nm := make(map[uint]set.SortedSet[uint], len(m))
		for index, mask := range m {
			nm[index] = util.CloneSlice(mask)
		}
		//
		masks[name] = nm
	}
	//
	return &PauliZProductInput{masks, p.NumberQubits, p.NumberPauliProducts, maps.Clone(nonNil(p.MeasuredExpVals)),
		p.UseFlippedMeasurement}
}

// normalise replaces nil maps (e.g. following decoding) with empty ones.
func (p *PauliZProductInput) normalise() {
	if p.PauliProductQubitMasks == nil {
		p.PauliProductQubitMasks = make(map[string]map[uint]set.SortedSet[uint])
	}
	//
	for name, masks := range p.PauliProductQubitMasks {
		if masks == nil {
			p.PauliProductQubitMasks[name] = make(map[uint]set.SortedSet[uint])
		}
		//
		for index, mask := range masks {
			masks[index] = util.NilIfEmpty(mask)
		}
	}
	//
	p.MeasuredExpVals = nonNil(p.MeasuredExpVals)
}

// Registers an expectation value, checking its name is unused and that it
// refers only to registered Pauli products.
func addExpVal(expVals map[string]PauliProductsToExpVal, numberPauliProducts uint, name string,
	expVal PauliProductsToExpVal) error {
	if _, ok := expVals[name]; ok {
		return &roqoqo.ExpValUsedTwiceError{Name: name}
	} else if err := expVal.check(numberPauliProducts); err != nil {
		return err
	}
	//
	expVals[name] = expVal
	//
	return nil
}

func nonNil[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return make(map[K]V)
	}
	//
	return m
}

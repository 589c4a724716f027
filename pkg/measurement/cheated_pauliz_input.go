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

	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// CheatedPauliZProductInput describes how expectation values are computed
// from Pauli product values which a simulator writes directly into float
// registers, one register per Pauli product.
type CheatedPauliZProductInput struct {
	// Expectation values by name.
	MeasuredExpVals map[string]PauliProductsToExpVal `json:"measured_exp_vals"`
	// Pauli product index of each float register.
	PauliProductKeys map[string]uint `json:"pauli_product_keys"`
}

// NewCheatedPauliZProductInput constructs an input with no Pauli products and
// no expectation values.
func NewCheatedPauliZProductInput() *CheatedPauliZProductInput {
	return &CheatedPauliZProductInput{
		MeasuredExpVals:  make(map[string]PauliProductsToExpVal),
		PauliProductKeys: make(map[string]uint),
	}
}

// AddPauliProduct registers the Pauli product read from a given float
// register, returning its index.  Registering the same register again returns
// the existing index.
func (p *CheatedPauliZProductInput) AddPauliProduct(readout string) uint {
	if index, ok := p.PauliProductKeys[readout]; ok {
		return index
	}
	//
	index := uint(len(p.PauliProductKeys))
	p.PauliProductKeys[readout] = index
	//
	return index
}

// NumberPauliProducts returns the number of registered Pauli products.
func (p *CheatedPauliZProductInput) NumberPauliProducts() uint {
	return uint(len(p.PauliProductKeys))
}

// AddLinearExpVal registers an expectation value which is a weighted sum of
// Pauli products.  Every index must refer to a registered Pauli product.
func (p *CheatedPauliZProductInput) AddLinearExpVal(name string, coefficients map[uint]float64) error {
	return addExpVal(p.MeasuredExpVals, p.NumberPauliProducts(), name, Linear(coefficients))
}

// AddSymbolicExpVal registers an expectation value given by an expression over
// the variables pauli_product_0, pauli_product_1, etc.
func (p *CheatedPauliZProductInput) AddSymbolicExpVal(name string, expr string) error {
	return addExpVal(p.MeasuredExpVals, p.NumberPauliProducts(), name, Symbolic(expr))
}

// MinimumSupportedVersion of this input, which has not changed since the
// first version.
func (p *CheatedPauliZProductInput) MinimumSupportedVersion() version.Version {
	return version.Base
}

// Clone returns a deep copy of this input.
func (p *CheatedPauliZProductInput) Clone() *CheatedPauliZProductInput {
	return &CheatedPauliZProductInput{maps.Clone(nonNil(p.MeasuredExpVals)), maps.Clone(nonNil(p.PauliProductKeys))}
}

func (p *CheatedPauliZProductInput) normalise() {
	p.MeasuredExpVals = nonNil(p.MeasuredExpVals)
	p.PauliProductKeys = nonNil(p.PauliProductKeys)
}

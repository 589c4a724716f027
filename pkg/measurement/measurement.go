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
	"github.com/roqoqo/roqoqo-go/pkg/calculator"
	"github.com/roqoqo/roqoqo-go/pkg/circuit"
	"github.com/roqoqo/roqoqo-go/pkg/register"
	"github.com/roqoqo/roqoqo-go/pkg/util"
	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// Measurement bundles the circuits to run on a backend with the information
// needed to turn the resulting registers into expectation values.
type Measurement interface {
	version.Versioned
	// RunCircuits returns the circuits to run, each prefixed by the constant
	// circuit (if any).
	RunCircuits() []circuit.Circuit
	// Evaluate the registers produced by running every circuit, using the
	// default evaluator.
	Evaluate(regs register.Registers) (util.Option[map[string]float64], error)
	// SubstituteParameters returns a copy of this measurement where every
	// symbolic parameter of every circuit is replaced by its value.
	SubstituteParameters(calc *calculator.Calculator) (Measurement, error)
}

// defaultEvaluator is used by the Evaluate method of every measurement.  It
// is never modified after initialisation.
var defaultEvaluator = DefaultEvaluator()

// CircuitSet holds the circuits of every kind of measurement.
type CircuitSet struct {
	// Circuit prepended to every other circuit.
	ConstantCircuit util.Option[circuit.Circuit] `json:"constant_circuit"`
	// Circuits run in order, each contributing shots to the registers.
	Circuits []circuit.Circuit `json:"circuits"`
}

func newCircuitSet(constant util.Option[circuit.Circuit], cs []circuit.Circuit) CircuitSet {
	ncs := make([]circuit.Circuit, len(cs))
	for i := range cs {
		ncs[i] = cs[i].Clone()
	}
	//
	return CircuitSet{constant, util.NilIfEmpty(ncs)}
}

// RunCircuits returns the circuits to run, each prefixed by the constant
// circuit (if any).
func (p *CircuitSet) RunCircuits() []circuit.Circuit {
	runs := make([]circuit.Circuit, len(p.Circuits))
	//
	for i := range p.Circuits {
		if p.ConstantCircuit.HasValue() {
			constant := p.ConstantCircuit.Unwrap()
			runs[i] = constant.Concat(p.Circuits[i])
		} else {
			runs[i] = p.Circuits[i].Clone()
		}
	}
	//
	return runs
}

func (p *CircuitSet) minimumSupportedVersion() version.Version {
	v := version.Minimum(version.Base, circuitRefs(p.Circuits)...)
	//
	if p.ConstantCircuit.HasValue() {
		constant := p.ConstantCircuit.Unwrap()
		v = version.Max(v, constant.MinimumSupportedVersion())
	}
	//
	return v
}

func (p *CircuitSet) substitute(calc *calculator.Calculator) (CircuitSet, error) {
	var ncs CircuitSet
	//
	constant, err := util.MapOption(p.ConstantCircuit, func(c circuit.Circuit) (circuit.Circuit, error) {
		return c.SubstituteParameters(calc)
	})
	if err != nil {
		return ncs, err
	}
	//
	ncs.ConstantCircuit = constant
	//
	for i := range p.Circuits {
		c, err := p.Circuits[i].SubstituteParameters(calc)
		if err != nil {
			return ncs, err
		}
		//
		ncs.Circuits = append(ncs.Circuits, c)
	}
	//
	return ncs, nil
}

func circuitRefs(cs []circuit.Circuit) []*circuit.Circuit {
	refs := make([]*circuit.Circuit, len(cs))
	for i := range cs {
		refs[i] = &cs[i]
	}
	//
	return refs
}

// ============================================================================
// PauliZProduct
// ============================================================================

// PauliZProduct is a measurement whose expectation values are reconstructed
// from bit registers, i.e. from measuring qubits in the Z basis.
type PauliZProduct struct {
	CircuitSet
	Input PauliZProductInput `json:"input"`
}

// NewPauliZProduct constructs a measurement from its circuits and input.  The
// circuits and input are copied.
func NewPauliZProduct(constant util.Option[circuit.Circuit], cs []circuit.Circuit,
	input *PauliZProductInput) *PauliZProduct {
	return &PauliZProduct{newCircuitSet(constant, cs), *input.Clone()}
}

// MinimumSupportedVersion of this measurement, which depends on its circuits.
func (p *PauliZProduct) MinimumSupportedVersion() version.Version {
	return version.Max(p.minimumSupportedVersion(), p.Input.MinimumSupportedVersion())
}

// Evaluate the bit registers produced by running every circuit.
func (p *PauliZProduct) Evaluate(regs register.Registers) (util.Option[map[string]float64], error) {
	return defaultEvaluator.Evaluate(p, regs)
}

// SubstituteParameters in every circuit.
func (p *PauliZProduct) SubstituteParameters(calc *calculator.Calculator) (Measurement, error) {
	cs, err := p.substitute(calc)
	if err != nil {
		return nil, err
	}
	//
	return &PauliZProduct{cs, *p.Input.Clone()}, nil
}

// ============================================================================
// CheatedPauliZProduct
// ============================================================================

// CheatedPauliZProduct is a measurement whose Pauli product values are read
// directly from float registers written by a simulator.
type CheatedPauliZProduct struct {
	CircuitSet
	Input CheatedPauliZProductInput `json:"input"`
}

// NewCheatedPauliZProduct constructs a measurement from its circuits and
// input.  The circuits and input are copied.
func NewCheatedPauliZProduct(constant util.Option[circuit.Circuit], cs []circuit.Circuit,
	input *CheatedPauliZProductInput) *CheatedPauliZProduct {
	return &CheatedPauliZProduct{newCircuitSet(constant, cs), *input.Clone()}
}

// MinimumSupportedVersion of this measurement, which depends on its circuits.
func (p *CheatedPauliZProduct) MinimumSupportedVersion() version.Version {
	return version.Max(p.minimumSupportedVersion(), p.Input.MinimumSupportedVersion())
}

// Evaluate the float registers produced by running every circuit.
func (p *CheatedPauliZProduct) Evaluate(regs register.Registers) (util.Option[map[string]float64], error) {
	return defaultEvaluator.Evaluate(p, regs)
}

// SubstituteParameters in every circuit.
func (p *CheatedPauliZProduct) SubstituteParameters(calc *calculator.Calculator) (Measurement, error) {
	cs, err := p.substitute(calc)
	if err != nil {
		return nil, err
	}
	//
	return &CheatedPauliZProduct{cs, *p.Input.Clone()}, nil
}

// ============================================================================
// Cheated
// ============================================================================

// Cheated is a measurement whose expectation values are computed from state
// vectors or density matrices written by a simulator.
type Cheated struct {
	CircuitSet
	Input CheatedInput `json:"input"`
}

// NewCheated constructs a measurement from its circuits and input.  The
// circuits and input are copied.
func NewCheated(constant util.Option[circuit.Circuit], cs []circuit.Circuit, input *CheatedInput) *Cheated {
	return &Cheated{newCircuitSet(constant, cs), *input.Clone()}
}

// MinimumSupportedVersion of this measurement, which depends on its circuits.
func (p *Cheated) MinimumSupportedVersion() version.Version {
	return version.Max(p.minimumSupportedVersion(), p.Input.MinimumSupportedVersion())
}

// Evaluate the complex registers produced by running every circuit.
func (p *Cheated) Evaluate(regs register.Registers) (util.Option[map[string]float64], error) {
	return defaultEvaluator.Evaluate(p, regs)
}

// SubstituteParameters in every circuit.
func (p *Cheated) SubstituteParameters(calc *calculator.Calculator) (Measurement, error) {
	cs, err := p.substitute(calc)
	if err != nil {
		return nil, err
	}
	//
	return &Cheated{cs, *p.Input.Clone()}, nil
}

// ============================================================================
// ClassicalRegister
// ============================================================================

// ClassicalRegister is a measurement which only collects registers, without
// any post-processing.  Evaluating it never gives a result.
type ClassicalRegister struct {
	CircuitSet
}

// NewClassicalRegister constructs a measurement from its circuits, which are
// copied.
func NewClassicalRegister(constant util.Option[circuit.Circuit], cs []circuit.Circuit) *ClassicalRegister {
	return &ClassicalRegister{newCircuitSet(constant, cs)}
}

// MinimumSupportedVersion of this measurement, which depends on its circuits.
func (p *ClassicalRegister) MinimumSupportedVersion() version.Version {
	return p.minimumSupportedVersion()
}

// Evaluate always returns no result.
func (p *ClassicalRegister) Evaluate(regs register.Registers) (util.Option[map[string]float64], error) {
	return defaultEvaluator.Evaluate(p, regs)
}

// SubstituteParameters in every circuit.
func (p *ClassicalRegister) SubstituteParameters(calc *calculator.Calculator) (Measurement, error) {
	cs, err := p.substitute(calc)
	if err != nil {
		return nil, err
	}
	//
	return &ClassicalRegister{cs}, nil
}

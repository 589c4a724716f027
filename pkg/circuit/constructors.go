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
package circuit

import (
	"maps"

	"github.com/roqoqo/roqoqo-go/pkg/calculator"
	"github.com/roqoqo/roqoqo-go/pkg/util"
)

// NewGate constructs a gate (or any other operation carrying only qubits and
// parameters) with the given name, checking it against the catalogue.
func NewGate(name string, qubits []uint, params ...calculator.Float) (Operation, error) {
	op := Operation{Name: name, Qubits: util.CloneSlice(qubits), Params: util.NilIfEmpty(params)}
	//
	return op, op.Validate()
}

// MustGate is NewGate, except that it panics if the gate is invalid.
func MustGate(name string, qubits []uint, params ...calculator.Float) Operation {
	op, err := NewGate(name, qubits, params...)
	if err != nil {
		panic(err)
	}
	//
	return op
}

// MeasureQubit measures a qubit into the given index of a bit register.
func MeasureQubit(qubit uint, readout string, index uint) Operation {
	return Operation{Name: "MeasureQubit", Qubits: []uint{qubit}, Readout: readout, Index: index}
}

// DefinitionBit declares a bit register of the given length.
func DefinitionBit(name string, length uint, isOutput bool) Operation {
	return Operation{Name: "DefinitionBit", Readout: name, Index: length, Flag: isOutput}
}

// DefinitionFloat declares a float register of the given length.
func DefinitionFloat(name string, length uint, isOutput bool) Operation {
	return Operation{Name: "DefinitionFloat", Readout: name, Index: length, Flag: isOutput}
}

// DefinitionComplex declares a complex register of the given length.
func DefinitionComplex(name string, length uint, isOutput bool) Operation {
	return Operation{Name: "DefinitionComplex", Readout: name, Index: length, Flag: isOutput}
}

// DefinitionUsize declares an unsigned integer register of the given length.
func DefinitionUsize(name string, length uint, isOutput bool) Operation {
	return Operation{Name: "DefinitionUsize", Readout: name, Index: length, Flag: isOutput}
}

// InputSymbolic provides a value for a symbolic parameter.
func InputSymbolic(name string, value float64) Operation {
	return Operation{Name: "InputSymbolic", Readout: name, Params: []calculator.Float{calculator.NewFloat(value)}}
}

// InputBit sets a single bit of a previously defined bit register.
func InputBit(name string, index uint, value bool) Operation {
	return Operation{Name: "InputBit", Readout: name, Index: index, Flag: value}
}

// PragmaSetNumberOfMeasurements sets the number of shots for a readout.
func PragmaSetNumberOfMeasurements(measurements uint, readout string) Operation {
	return Operation{Name: "PragmaSetNumberOfMeasurements", Readout: readout, Index: measurements}
}

// PragmaRepeatedMeasurement measures all qubits a number of times.
func PragmaRepeatedMeasurement(readout string, measurements uint) Operation {
	return Operation{Name: "PragmaRepeatedMeasurement", Readout: readout, Index: measurements}
}

// PragmaGetStateVector reads the state vector (after an optional circuit)
// into a complex register.
func PragmaGetStateVector(readout string, body *Circuit) Operation {
	return Operation{Name: "PragmaGetStateVector", Readout: readout, Body: cloneBody(body)}
}

// PragmaGetDensityMatrix reads the flattened density matrix (after an
// optional circuit) into a complex register.
func PragmaGetDensityMatrix(readout string, body *Circuit) Operation {
	return Operation{Name: "PragmaGetDensityMatrix", Readout: readout, Body: cloneBody(body)}
}

// PragmaGetOccupationProbability reads the occupation probabilities (after an
// optional circuit) into a float register.
func PragmaGetOccupationProbability(readout string, body *Circuit) Operation {
	return Operation{Name: "PragmaGetOccupationProbability", Readout: readout, Body: cloneBody(body)}
}

// PragmaGetPauliProduct reads the expectation value of a Pauli product (after
// a circuit) into a float register.
func PragmaGetPauliProduct(paulis map[uint]uint, readout string, body Circuit) Operation {
	var nmap map[uint]uint
	//
	if len(paulis) > 0 {
		nmap = maps.Clone(paulis)
	}
	//
	return Operation{Name: "PragmaGetPauliProduct", Readout: readout, Paulis: nmap, Body: cloneBody(&body)}
}

// PragmaLoop repeats a circuit a (possibly symbolic) number of times.
func PragmaLoop(repetitions calculator.Float, body Circuit) Operation {
	return Operation{Name: "PragmaLoop", Params: []calculator.Float{repetitions}, Body: cloneBody(&body)}
}

// PragmaGlobalPhase adds a global phase to the state.
func PragmaGlobalPhase(phase calculator.Float) Operation {
	return Operation{Name: "PragmaGlobalPhase", Params: []calculator.Float{phase}}
}

// Copies a nested circuit, where an empty circuit is stored as no circuit at
// all.
func cloneBody(body *Circuit) *Circuit {
	if body == nil || body.IsEmpty() {
		return nil
	}
	//
	nbody := body.Clone()
	//
	return &nbody
}

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
	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// Kind classifies operations by their structural shape.
type Kind uint8

const (
	// SingleQubitGate acts on exactly one qubit.
	SingleQubitGate Kind = iota
	// TwoQubitGate acts on exactly two qubits (e.g. control and target).
	TwoQubitGate
	// ThreeQubitGate acts on exactly three qubits.
	ThreeQubitGate
	// MultiQubitGate acts on any non-zero number of qubits.
	MultiQubitGate
	// Measurement writes into a classical readout register.
	Measurement
	// Pragma instructs the backend, rather than acting as a gate.
	Pragma
	// Definition declares a classical register (or an input value).
	Definition
)

func (k Kind) String() string {
	switch k {
	case SingleQubitGate:
		return "single-qubit gate"
	case TwoQubitGate:
		return "two-qubit gate"
	case ThreeQubitGate:
		return "three-qubit gate"
	case MultiQubitGate:
		return "multi-qubit gate"
	case Measurement:
		return "measurement"
	case Pragma:
		return "pragma"
	case Definition:
		return "definition"
	}
	//
	return "unknown"
}

// Scope determines which qubits an operation is considered to involve.
type Scope uint8

const (
	// ScopeQubits involves exactly the listed qubits.
	ScopeQubits Scope = iota
	// ScopeAll involves every qubit of the device (e.g. state readout).
	ScopeAll
	// ScopeNone involves no qubits at all (e.g. definitions).
	ScopeNone
	// ScopeBody involves those qubits involved by the nested circuit.
	ScopeBody
)

// ANY_QUBITS indicates that a shape accepts any non-zero number of qubits.
const ANY_QUBITS = -1

// Shape describes the fields that an operation of a given name carries.  Every
// known operation name has exactly one shape, stored in the catalogue.
type Shape struct {
	Kind Kind
	// Number of qubits expected (or ANY_QUBITS)
	Qubits int
	// Names of the (symbolic) float parameters, in order.
	Params []string
	// Whether a readout register name is required.
	Readout bool
	// Whether a nested circuit is permitted.
	Body bool
	// Which qubits are involved.
	Scope Scope
	// Format version in which this operation was introduced.
	Version version.Version
}

// Lookup returns the shape of the operation with the given name, if it exists.
func Lookup(name string) (Shape, bool) {
	shape, ok := catalogue[name]
	return shape, ok
}

// Names returns the number of known operation names.
func Names() int {
	return len(catalogue)
}

var (
	v1_0  = version.Base
	v1_1  = version.New(1, 1, 0)
	v1_2  = version.New(1, 2, 0)
	v1_3  = version.New(1, 3, 0)
	v1_4  = version.New(1, 4, 0)
	v1_7  = version.New(1, 7, 0)
	v1_8  = version.New(1, 8, 0)
	v1_14 = version.New(1, 14, 0)
	v1_15 = version.New(1, 15, 0)
)

func single(since version.Version, params ...string) Shape {
	return Shape{SingleQubitGate, 1, params, false, false, ScopeQubits, since}
}

func two(since version.Version, params ...string) Shape {
	return Shape{TwoQubitGate, 2, params, false, false, ScopeQubits, since}
}

func three(since version.Version, params ...string) Shape {
	return Shape{ThreeQubitGate, 3, params, false, false, ScopeQubits, since}
}

func multi(since version.Version, params ...string) Shape {
	return Shape{MultiQubitGate, ANY_QUBITS, params, false, false, ScopeQubits, since}
}

func definition(since version.Version, params ...string) Shape {
	return Shape{Definition, 0, params, true, false, ScopeNone, since}
}

var catalogue = map[string]Shape{
	// Single qubit gates
	"RotateX":                   single(v1_0, "theta"),
	"RotateY":                   single(v1_0, "theta"),
	"RotateZ":                   single(v1_0, "theta"),
	"RotateXY":                  single(v1_0, "theta", "phi"),
	"RotateAroundSphericalAxis": single(v1_0, "theta", "spherical_theta", "spherical_phi"),
	"PauliX":                    single(v1_0),
	"PauliY":                    single(v1_0),
	"PauliZ":                    single(v1_0),
	"SqrtPauliX":                single(v1_0),
	"InvSqrtPauliX":             single(v1_0),
	"Hadamard":                  single(v1_0),
	"SGate":                     single(v1_0),
	"TGate":                     single(v1_0),
	"PhaseShiftState0":          single(v1_0, "theta"),
	"PhaseShiftState1":          single(v1_0, "theta"),
	"SingleQubitGate":           single(v1_0, "alpha_r", "alpha_i", "beta_r", "beta_i", "global_phase"),
	"GPi":                       single(v1_4, "theta"),
	"GPi2":                      single(v1_4, "theta"),
	"Identity":                  single(v1_7),
	"InvSGate":                  single(v1_14),
	"InvTGate":                  single(v1_14),
	"SqrtPauliY":                single(v1_15),
	"InvSqrtPauliY":             single(v1_15),
	// Two qubit gates
	"CNOT":                        two(v1_0),
	"SWAP":                        two(v1_0),
	"FSwap":                       two(v1_0),
	"ISwap":                       two(v1_0),
	"SqrtISwap":                   two(v1_0),
	"InvSqrtISwap":                two(v1_0),
	"XY":                          two(v1_0, "theta"),
	"ControlledPhaseShift":        two(v1_0, "theta"),
	"ControlledPauliY":            two(v1_0),
	"ControlledPauliZ":            two(v1_0),
	"MolmerSorensenXX":            two(v1_0),
	"VariableMSXX":                two(v1_0, "theta"),
	"GivensRotation":              two(v1_0, "theta", "phi"),
	"GivensRotationLittleEndian":  two(v1_0, "theta", "phi"),
	"Qsim":                        two(v1_0, "x", "y", "z"),
	"Fsim":                        two(v1_0, "t", "u", "delta"),
	"SpinInteraction":             two(v1_0, "x", "y", "z"),
	"Bogoliubov":                  two(v1_0, "delta_real", "delta_imag"),
	"PMInteraction":               two(v1_0, "t"),
	"ComplexPMInteraction":        two(v1_0, "t_real", "t_imag"),
	"PhaseShiftedControlledZ":     two(v1_0, "phi"),
	"PhaseShiftedControlledPhase": two(v1_2, "theta", "phi"),
	"ControlledRotateX":           two(v1_3, "theta"),
	"ControlledRotateXY":          two(v1_3, "theta", "phi"),
	"EchoCrossResonance":          two(v1_8),
	// Three qubit gates
	"ControlledControlledPauliZ":     three(v1_3),
	"ControlledControlledPhaseShift": three(v1_3, "theta"),
	"Toffoli":                        three(v1_3),
	// Multi qubit gates
	"MultiQubitMS": multi(v1_0, "theta"),
	"MultiQubitZZ": multi(v1_0, "theta"),
	// Measurements
	"MeasureQubit":                   {Measurement, 1, nil, true, false, ScopeQubits, v1_0},
	"PragmaGetStateVector":           {Measurement, 0, nil, true, true, ScopeAll, v1_0},
	"PragmaGetDensityMatrix":         {Measurement, 0, nil, true, true, ScopeAll, v1_0},
	"PragmaGetOccupationProbability": {Measurement, 0, nil, true, true, ScopeAll, v1_0},
	"PragmaGetPauliProduct":          {Measurement, 0, nil, true, true, ScopeAll, v1_0},
	"PragmaRepeatedMeasurement":      {Measurement, 0, nil, true, false, ScopeAll, v1_0},
	// Pragmas
	"PragmaSetNumberOfMeasurements": {Pragma, 0, nil, true, false, ScopeNone, v1_0},
	"PragmaGlobalPhase":             {Pragma, 0, []string{"phase"}, false, false, ScopeNone, v1_0},
	"PragmaActiveReset":             {Pragma, 1, nil, false, false, ScopeQubits, v1_0},
	"PragmaSleep":                   {Pragma, ANY_QUBITS, []string{"sleep_time"}, false, false, ScopeQubits, v1_0},
	"PragmaStopParallelBlock":       {Pragma, ANY_QUBITS, []string{"execution_time"}, false, false, ScopeQubits, v1_0},
	"PragmaDamping":                 {Pragma, 1, []string{"gate_time", "rate"}, false, false, ScopeQubits, v1_0},
	"PragmaDepolarising":            {Pragma, 1, []string{"gate_time", "rate"}, false, false, ScopeQubits, v1_0},
	"PragmaDephasing":               {Pragma, 1, []string{"gate_time", "rate"}, false, false, ScopeQubits, v1_0},
	"PragmaLoop":                    {Pragma, 0, []string{"repetitions"}, false, true, ScopeBody, v1_1},
	// Definitions
	"DefinitionBit":     definition(v1_0),
	"DefinitionFloat":   definition(v1_0),
	"DefinitionComplex": definition(v1_0),
	"DefinitionUsize":   definition(v1_0),
	"InputSymbolic":     definition(v1_0, "input"),
	"InputBit":          definition(v1_8),
}

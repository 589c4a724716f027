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
	"fmt"
	"maps"
	"strings"

	"github.com/roqoqo/roqoqo-go/pkg/calculator"
	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/set"
	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// Operation is a single record within a circuit.  Every operation is
// identified by its name, whose shape (see Lookup) determines which of the
// remaining fields are meaningful.  Fields which are not meaningful for a
// given shape are left at their zero value.
type Operation struct {
	Name string `json:"name"`
	// Qubits acted upon.
	Qubits []uint `json:"qubits,omitempty"`
	// Parameters, in the order given by the shape.
	Params []calculator.Float `json:"params,omitempty"`
	// Name of the classical register read or written.
	Readout string `json:"readout,omitempty"`
	// Readout index (MeasureQubit, InputBit), register length (definitions)
	// or number of measurements (measurement pragmas).
	Index uint `json:"index,omitempty"`
	// Output flag (definitions) or bit value (InputBit).
	Flag bool `json:"flag,omitempty"`
	// Pauli operator per qubit (PragmaGetPauliProduct), where 0 is the
	// identity, 1 is X, 2 is Y and 3 is Z.
	Paulis map[uint]uint `json:"paulis,omitempty"`
	// Nested circuit (measurement pragmas and loops).
	Body *Circuit `json:"body,omitempty"`
}

// Shape returns the shape of this operation.  This panics for operations
// whose name is not catalogued, which cannot arise for operations that have
// been validated.
func (op *Operation) Shape() Shape {
	if shape, ok := catalogue[op.Name]; ok {
		return shape
	}
	//
	panic(fmt.Sprintf("unknown operation %s", op.Name))
}

// Kind returns the structural kind of this operation.
func (op *Operation) Kind() Kind {
	return op.Shape().Kind
}

// Validate checks this operation against its catalogued shape.
func (op *Operation) Validate() error {
	shape, ok := catalogue[op.Name]
	//
	switch {
	case !ok:
		return &roqoqo.UnknownOperationError{Name: op.Name}
	case shape.Qubits == ANY_QUBITS && len(op.Qubits) == 0:
		return &roqoqo.OperationArityError{Name: op.Name, What: "qubits", Expected: 1, Found: 0}
	case shape.Qubits != ANY_QUBITS && len(op.Qubits) != shape.Qubits:
		return &roqoqo.OperationArityError{Name: op.Name, What: "qubits", Expected: shape.Qubits,
			Found: len(op.Qubits)}
	case len(op.Params) != len(shape.Params):
		return &roqoqo.OperationArityError{Name: op.Name, What: "parameters", Expected: len(shape.Params),
			Found: len(op.Params)}
	case shape.Readout && op.Readout == "":
		return fmt.Errorf("operation %s requires a readout register", op.Name)
	case !shape.Body && op.Body != nil:
		return fmt.Errorf("operation %s cannot contain a circuit", op.Name)
	case len(op.Paulis) != 0 && op.Name != "PragmaGetPauliProduct":
		return fmt.Errorf("operation %s cannot carry pauli operators", op.Name)
	}
	// Qubits must be distinct
	if qubits := set.FromArray(op.Qubits...); len(qubits) != len(op.Qubits) {
		return fmt.Errorf("operation %s acts on repeated qubits %v", op.Name, op.Qubits)
	}
	//
	for q, p := range op.Paulis {
		if p > 3 {
			return fmt.Errorf("invalid pauli operator %d on qubit %d", p, q)
		}
	}
	//
	if op.Body != nil {
		return op.Body.Validate()
	}
	//
	return nil
}

// MinimumSupportedVersion returns the version in which this operation was
// introduced, or that required by its nested circuit if greater.
func (op *Operation) MinimumSupportedVersion() version.Version {
	v := op.Shape().Version
	//
	if op.Body != nil {
		return version.Max(v, op.Body.MinimumSupportedVersion())
	}
	//
	return v
}

// IsParametrized determines whether any parameter (including those of a
// nested circuit) is symbolic.
func (op *Operation) IsParametrized() bool {
	for _, p := range op.Params {
		if p.IsSymbolic() {
			return true
		}
	}
	//
	return op.Body != nil && op.Body.IsParametrized()
}

// InvolvedQubits returns the qubits this operation involves.  The flag
// returned is true when the operation involves every qubit of the device, in
// which case the set is empty.
func (op *Operation) InvolvedQubits() (set.SortedSet[uint], bool) {
	switch op.Shape().Scope {
	case ScopeAll:
		return nil, true
	case ScopeNone:
		return nil, false
	case ScopeBody:
		if op.Body == nil {
			return nil, false
		}
		//
		return op.Body.InvolvedQubits()
	}
	//
	return set.FromArray(op.Qubits...), false
}

// SubstituteParameters returns a copy of this operation where every symbolic
// parameter (including those of a nested circuit) is replaced by its value.
func (op *Operation) SubstituteParameters(calc *calculator.Calculator) (Operation, error) {
	var (
		nop = op.Clone()
		err error
	)
	//
	for i, p := range nop.Params {
		if nop.Params[i], err = calc.Substitute(p); err != nil {
			return nop, &roqoqo.CalculatorError{Expression: p.Symbol(), Err: err}
		}
	}
	//
	if nop.Body != nil {
		body, err := nop.Body.SubstituteParameters(calc)
		if err != nil {
			return nop, err
		}
		//
		nop.Body = &body
	}
	//
	return nop, nil
}

// RemapQubits returns a copy of this operation where each qubit is replaced by
// its image under the given mapping.  Qubits not in the mapping are unchanged.
// The mapping must have been checked with CheckMapping beforehand.
func (op *Operation) RemapQubits(mapping map[uint]uint) (Operation, error) {
	nop := op.Clone()
	//
	for i, q := range nop.Qubits {
		nop.Qubits[i] = remap(mapping, q)
	}
	//
	if nop.Paulis != nil {
		paulis := make(map[uint]uint, len(nop.Paulis))
		for q, p := range nop.Paulis {
			paulis[remap(mapping, q)] = p
		}
		//
		nop.Paulis = paulis
	}
	//
	if nop.Body != nil {
		body, err := nop.Body.RemapQubits(mapping)
		if err != nil {
			return nop, err
		}
		//
		nop.Body = &body
	}
	//
	return nop, nil
}

// Clone returns a deep copy of this operation.
func (op *Operation) Clone() Operation {
	nop := *op
	nop.Qubits = util.CloneSlice(op.Qubits)
	nop.Params = util.CloneSlice(op.Params)
	//
	if op.Paulis != nil {
		nop.Paulis = maps.Clone(op.Paulis)
	}
	//
	if op.Body != nil {
		body := op.Body.Clone()
		nop.Body = &body
	}
	//
	return nop
}

func (op *Operation) String() string {
	var builder strings.Builder
	//
	builder.WriteString(op.Name)
	builder.WriteString("(")
	//
	parts := make([]string, 0, len(op.Qubits)+len(op.Params)+1)
	//
	for _, q := range op.Qubits {
		parts = append(parts, fmt.Sprintf("q%d", q))
	}
	//
	for _, p := range op.Params {
		parts = append(parts, p.String())
	}
	//
	if op.Readout != "" {
		parts = append(parts, fmt.Sprintf("%s[%d]", op.Readout, op.Index))
	}
	//
	builder.WriteString(strings.Join(parts, ", "))
	builder.WriteString(")")
	//
	return builder.String()
}

// CheckMapping checks that a qubit mapping is a permutation of the qubits it
// mentions, i.e. that the set of qubits mapped from equals the set of qubits
// mapped onto.
func CheckMapping(mapping map[uint]uint) error {
	targets := make(map[uint]bool, len(mapping))
	//
	for _, from := range util.SortedKeys(mapping) {
		to := mapping[from]
		//
		if _, ok := mapping[to]; !ok || targets[to] {
			return &roqoqo.QubitMappingError{Qubit: to}
		}
		//
		targets[to] = true
	}
	//
	return nil
}

func remap(mapping map[uint]uint, qubit uint) uint {
	if q, ok := mapping[qubit]; ok {
		return q
	}
	//
	return qubit
}

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
	"encoding/json"
	"fmt"
	"math/bits"

	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util"
	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// SparseEntry is a single non-zero entry of an operator in coordinate form.
type SparseEntry struct {
	Row   uint
	Col   uint
	Value complex128
}

// CheatedOperator is an operator whose expectation value is computed from the
// state vectors (or density matrices) held in a complex register.
type CheatedOperator struct {
	Operator []SparseEntry
	Readout  string
}

// CheatedInput describes expectation values computed directly from state
// vectors or density matrices, which a simulator writes into complex
// registers.
type CheatedInput struct {
	// Operators by name.
	MeasuredOperators map[string]CheatedOperator `json:"measured_operators"`
	// Number of qubits, which determines the Hilbert space dimension.
	NumberQubits uint `json:"number_qubits"`
}

// NewCheatedInput constructs an input with no operators.
func NewCheatedInput(numberQubits uint) *CheatedInput {
	return &CheatedInput{make(map[string]CheatedOperator), numberQubits}
}

// AddOperatorExpVal registers an operator whose expectation value is computed
// from a given complex register.  Every entry of the operator must lie within
// the Hilbert space of the configured number of qubits.
func (p *CheatedInput) AddOperatorExpVal(name string, operator []SparseEntry, readout string) error {
	if _, ok := p.MeasuredOperators[name]; ok {
		return &roqoqo.ExpValUsedTwiceError{Name: name}
	}
	//
	for _, entry := range operator {
		if !withinDimension(entry.Row, p.NumberQubits) || !withinDimension(entry.Col, p.NumberQubits) {
			return &roqoqo.MismatchedOperatorDimensionError{Row: entry.Row, Column: entry.Col,
				NumberQubits: p.NumberQubits}
		}
	}
	//
	p.MeasuredOperators[name] = CheatedOperator{util.NilIfEmpty(util.CloneSlice(operator)), readout}
	//
	return nil
}

// MinimumSupportedVersion of this input, which has not changed since the
// first version.
func (p *CheatedInput) MinimumSupportedVersion() version.Version {
	return version.Base
}

// Clone returns a deep copy of this input.
func (p *CheatedInput) Clone() *CheatedInput {
	ops := make(map[string]CheatedOperator, len(p.MeasuredOperators))
	//
	for name, op := range p.MeasuredOperators {
		ops[name] = CheatedOperator{util.CloneSlice(op.Operator), op.Readout}
	}
	//
	return &CheatedInput{ops, p.NumberQubits}
}

func (p *CheatedInput) normalise() {
	p.MeasuredOperators = nonNil(p.MeasuredOperators)
	//
	for name, op := range p.MeasuredOperators {
		op.Operator = util.NilIfEmpty(op.Operator)
		p.MeasuredOperators[name] = op
	}
}

// withinDimension checks whether index < 2^n.
func withinDimension(index uint, n uint) bool {
	return uint(bits.Len(index)) <= n
}

// ============================================================================
// Encoding / Decoding
// ============================================================================

// MarshalJSON encodes an entry as a triple [row, col, [re, im]].
func (e SparseEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Row, e.Col, [2]float64{real(e.Value), imag(e.Value)}})
}

// UnmarshalJSON decodes an entry encoded by MarshalJSON.
func (e *SparseEntry) UnmarshalJSON(data []byte) error {
	var (
		raw   []json.RawMessage
		value [2]float64
	)
	//
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	} else if len(raw) != 3 {
		return fmt.Errorf("expected [row, col, [re, im]], found %s", string(data))
	} else if err := json.Unmarshal(raw[0], &e.Row); err != nil {
		return err
	} else if err := json.Unmarshal(raw[1], &e.Col); err != nil {
		return err
	} else if err := json.Unmarshal(raw[2], &value); err != nil {
		return err
	}
	//
	e.Value = complex(value[0], value[1])
	//
	return nil
}

// MarshalJSON encodes an operator as a pair [entries, readout].
func (o CheatedOperator) MarshalJSON() ([]byte, error) {
	entries := o.Operator
	if entries == nil {
		entries = []SparseEntry{}
	}
	//
	return json.Marshal([]any{entries, o.Readout})
}

// UnmarshalJSON decodes an operator encoded by MarshalJSON.
func (o *CheatedOperator) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	//
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	} else if len(raw) != 2 {
		return fmt.Errorf("expected [entries, readout], found %s", string(data))
	} else if err := json.Unmarshal(raw[0], &o.Operator); err != nil {
		return err
	} else if err := json.Unmarshal(raw[1], &o.Readout); err != nil {
		return err
	}
	//
	o.Operator = util.NilIfEmpty(o.Operator)
	//
	return nil
}

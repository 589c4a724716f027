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
	"bytes"
	"encoding/gob"
	"encoding/json"

	"github.com/roqoqo/roqoqo-go/pkg/calculator"
	"github.com/roqoqo/roqoqo-go/pkg/util"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/iter"
	"github.com/roqoqo/roqoqo-go/pkg/util/collection/set"
	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// Circuit is an ordered sequence of operations.  Definitions (i.e. classical
// register declarations and inputs) are kept apart from all other operations,
// and always come first when iterating a circuit.  The zero value is an empty
// circuit.
type Circuit struct {
	definitions []Operation
	operations  []Operation
}

// NewCircuit constructs a circuit from a sequence of operations.
func NewCircuit(ops ...Operation) (Circuit, error) {
	var c Circuit
	//
	return c, c.Add(ops...)
}

// MustCircuit is NewCircuit, except that it panics if an operation is invalid.
func MustCircuit(ops ...Operation) Circuit {
	c, err := NewCircuit(ops...)
	if err != nil {
		panic(err)
	}
	//
	return c
}

// Add appends operations to this circuit, after validating each of them.  On
// failure, no operation is added.
func (c *Circuit) Add(ops ...Operation) error {
	for i := range ops {
		if err := ops[i].Validate(); err != nil {
			return err
		}
	}
	//
	for _, op := range ops {
		if op.Kind() == Definition {
			c.definitions = append(c.definitions, op.Clone())
		} else {
			c.operations = append(c.operations, op.Clone())
		}
	}
	//
	return nil
}

// Len returns the number of operations (including definitions).
func (c *Circuit) Len() int {
	return len(c.definitions) + len(c.operations)
}

// IsEmpty determines whether this circuit has no operations.
func (c *Circuit) IsEmpty() bool {
	return c.Len() == 0
}

// Get returns the ith operation, in iteration order.
func (c *Circuit) Get(i int) Operation {
	if i < len(c.definitions) {
		return c.definitions[i]
	}
	//
	return c.operations[i-len(c.definitions)]
}

// Definitions returns a copy of the definitions of this circuit.
func (c *Circuit) Definitions() []Operation {
	return util.CloneSlice(c.definitions)
}

// Operations returns a copy of the non-definition operations of this circuit.
func (c *Circuit) Operations() []Operation {
	return util.CloneSlice(c.operations)
}

// Iter returns an iterator over all operations, definitions first.
func (c *Circuit) Iter() iter.Iterator[Operation] {
	return iter.Chain(c.Definitions(), c.Operations())
}

// Concat returns a new circuit consisting of this circuit followed by another.
// The definitions of both are placed before any other operation.
func (c *Circuit) Concat(other Circuit) Circuit {
	var nc Circuit
	//
	nc.definitions = util.NilIfEmpty(append(cloneOps(c.definitions), cloneOps(other.definitions)...))
	nc.operations = util.NilIfEmpty(append(cloneOps(c.operations), cloneOps(other.operations)...))
	//
	return nc
}

// Clone returns a deep copy of this circuit.
func (c *Circuit) Clone() Circuit {
	return Circuit{cloneOps(c.definitions), cloneOps(c.operations)}
}

// Validate checks every operation of this circuit.
func (c *Circuit) Validate() error {
	for _, ops := range [][]Operation{c.definitions, c.operations} {
		for i := range ops {
			if err := ops[i].Validate(); err != nil {
				return err
			}
		}
	}
	//
	return nil
}

// MinimumSupportedVersion returns the greatest version required by any
// operation in this circuit.
func (c *Circuit) MinimumSupportedVersion() version.Version {
	v := version.Base
	//
	for _, ops := range [][]Operation{c.definitions, c.operations} {
		for i := range ops {
			v = version.Max(v, ops[i].MinimumSupportedVersion())
		}
	}
	//
	return v
}

// IsParametrized determines whether any operation has a symbolic parameter.
func (c *Circuit) IsParametrized() bool {
	for i := range c.operations {
		if c.operations[i].IsParametrized() {
			return true
		}
	}
	// InputSymbolic always holds a concrete value, hence definitions need not
	// be checked.
	return false
}

// InvolvedQubits returns the qubits involved by any operation.  The flag
// returned is true when some operation involves every qubit.
func (c *Circuit) InvolvedQubits() (set.SortedSet[uint], bool) {
	var qubits set.SortedSet[uint]
	//
	for i := range c.operations {
		involved, all := c.operations[i].InvolvedQubits()
		if all {
			return nil, true
		}
		//
		qubits = qubits.Union(involved)
	}
	//
	return qubits, false
}

// SubstituteParameters returns a copy of this circuit where every symbolic
// parameter is replaced by its value.  Values given by InputSymbolic
// definitions are made available to the calculator beforehand, without
// affecting the calculator given.
func (c *Circuit) SubstituteParameters(calc *calculator.Calculator) (Circuit, error) {
	var (
		nc    = Circuit{definitions: cloneOps(c.definitions)}
		local = calc.Clone()
	)
	//
	for _, def := range c.definitions {
		if def.Name == "InputSymbolic" {
			value, _ := def.Params[0].Float()
			local.Set(def.Readout, value)
		}
	}
	//
	for i := range c.operations {
		op, err := c.operations[i].SubstituteParameters(local)
		if err != nil {
			return Circuit{}, err
		}
		//
		nc.operations = append(nc.operations, op)
	}
	//
	return nc, nil
}

// RemapQubits returns a copy of this circuit where qubits are permuted
// according to the given mapping.  Qubits not in the mapping are unchanged.
func (c *Circuit) RemapQubits(mapping map[uint]uint) (Circuit, error) {
	if err := CheckMapping(mapping); err != nil {
		return Circuit{}, err
	}
	//
	nc := Circuit{definitions: cloneOps(c.definitions)}
	//
	for i := range c.operations {
		op, err := c.operations[i].RemapQubits(mapping)
		if err != nil {
			return Circuit{}, err
		}
		//
		nc.operations = append(nc.operations, op)
	}
	//
	return nc, nil
}

func (c *Circuit) String() string {
	var buffer bytes.Buffer
	//
	for i := 0; i < c.Len(); i++ {
		op := c.Get(i)
		buffer.WriteString(op.String())
		buffer.WriteString("\n")
	}
	//
	return buffer.String()
}

func cloneOps(ops []Operation) []Operation {
	if len(ops) == 0 {
		return nil
	}
	//
	nops := make([]Operation, len(ops))
	for i := range ops {
		nops[i] = ops[i].Clone()
	}
	//
	return nops
}

// ============================================================================
// Encoding / Decoding
// ============================================================================

// circuitData is the serialised form of a circuit.  The version recorded is
// informational, and allows readers to see which version produced the data.
type circuitData struct {
	Definitions []Operation     `json:"definitions"`
	Operations  []Operation     `json:"operations"`
	Version     version.Version `json:"_roqoqo_version"`
}

func (c *Circuit) data() circuitData {
	return circuitData{c.definitions, c.operations, c.MinimumSupportedVersion()}
}

// Rebuilds a circuit from its serialised form, validating every operation and
// placing it according to its kind.
func (c *Circuit) fromData(data circuitData) error {
	var nc Circuit
	//
	if err := nc.Add(data.Definitions...); err != nil {
		return err
	} else if err := nc.Add(data.Operations...); err != nil {
		return err
	}
	//
	*c = nc
	//
	return nil
}

// GobEncode a circuit.  This allows it to be marshalled into a binary form.
func (c Circuit) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	if err := gob.NewEncoder(&buffer).Encode(c.data()); err != nil {
		return nil, err
	}
	//
	return buffer.Bytes(), nil
}

// GobDecode a previously encoded circuit, checking every operation.
func (c *Circuit) GobDecode(data []byte) error {
	var cdata circuitData
	//
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&cdata); err != nil {
		return err
	}
	//
	return c.fromData(cdata)
}

// MarshalJSON encodes a circuit as an object with definitions and operations.
func (c Circuit) MarshalJSON() ([]byte, error) {
	data := c.data()
	// Use empty arrays rather than null
	if data.Definitions == nil {
		data.Definitions = []Operation{}
	}
	//
	if data.Operations == nil {
		data.Operations = []Operation{}
	}
	//
	return json.Marshal(data)
}

// UnmarshalJSON decodes a circuit, checking every operation.
func (c *Circuit) UnmarshalJSON(data []byte) error {
	var cdata circuitData
	//
	if err := json.Unmarshal(data, &cdata); err != nil {
		return err
	}
	//
	return c.fromData(cdata)
}

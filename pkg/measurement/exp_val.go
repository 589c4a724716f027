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
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"maps"

	"github.com/roqoqo/roqoqo-go/pkg/calculator"
	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/util"
)

// PauliProductsToExpVal describes how an expectation value is computed from
// the values of the registered Pauli products.  It is either linear (a
// weighted sum of Pauli products) or symbolic (an expression over variables
// named pauli_product_0, pauli_product_1, etc).
type PauliProductsToExpVal struct {
	// Coefficient per Pauli product index (linear only).  Never nil for a
	// linear expectation value.
	linear map[uint]float64
	// Expression (symbolic only).
	symbolic string
	// Determines which of the above applies.
	isSymbolic bool
}

// Linear constructs a linear expectation value from a coefficient per Pauli
// product index.
func Linear(coefficients map[uint]float64) PauliProductsToExpVal {
	return PauliProductsToExpVal{util.ShallowCloneMap(coefficients), "", false}
}

// Symbolic constructs a symbolic expectation value from an expression.
func Symbolic(expr string) PauliProductsToExpVal {
	return PauliProductsToExpVal{nil, expr, true}
}

// IsSymbolic determines whether this is a symbolic expectation value.
func (e PauliProductsToExpVal) IsSymbolic() bool {
	return e.isSymbolic
}

// Linear returns a copy of the coefficients of a linear expectation value.
func (e PauliProductsToExpVal) Linear() (map[uint]float64, bool) {
	if e.isSymbolic {
		return nil, false
	}
	//
	return maps.Clone(e.linear), true
}

// Symbolic returns the expression of a symbolic expectation value.
func (e PauliProductsToExpVal) Symbolic() (string, bool) {
	return e.symbolic, e.isSymbolic
}

// check that every index of a linear expectation value refers to a registered
// Pauli product.
func (e PauliProductsToExpVal) check(numberPauliProducts uint) error {
	for _, index := range util.SortedKeys(e.linear) {
		if index >= numberPauliProducts {
			return &roqoqo.PauliProductIndexError{Index: index, NumberPauliProducts: numberPauliProducts}
		}
	}
	//
	return nil
}

// evaluate this expectation value given the value of every Pauli product.  A
// calculator is only constructed when a symbolic expression is encountered,
// and is shared between all symbolic values of one evaluation.
func (e PauliProductsToExpVal) evaluate(products []float64, calc func() *calculator.Calculator) (float64, error) {
	if e.isSymbolic {
		value, err := calc().Evaluate(e.symbolic)
		if err != nil {
			return 0, &roqoqo.CalculatorError{Expression: e.symbolic, Err: err}
		}
		//
		return value, nil
	}
	//
	if err := e.check(uint(len(products))); err != nil {
		return 0, err
	}
	//
	value := 0.0
	//
	for _, index := range util.SortedKeys(e.linear) {
		value += products[index] * e.linear[index]
	}
	//
	return value, nil
}

// pauliProductVariable returns the name under which the value of a Pauli
// product is made available to symbolic expressions.
func pauliProductVariable(index int) string {
	return fmt.Sprintf("pauli_product_%d", index)
}

// ============================================================================
// Encoding / Decoding
// ============================================================================

type expValData struct {
	Linear     map[uint]float64
	Symbolic   string
	IsSymbolic bool
}

// GobEncode an expectation value.
func (e PauliProductsToExpVal) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	if err := gob.NewEncoder(&buffer).Encode(expValData{e.linear, e.symbolic, e.isSymbolic}); err != nil {
		return nil, err
	}
	//
	return buffer.Bytes(), nil
}

// GobDecode a previously encoded expectation value.
func (e *PauliProductsToExpVal) GobDecode(data []byte) error {
	var ev expValData
	//
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&ev); err != nil {
		return err
	}
	//
	if ev.IsSymbolic {
		*e = Symbolic(ev.Symbolic)
	} else {
		*e = Linear(ev.Linear)
	}
	//
	return nil
}

// MarshalJSON encodes an expectation value as either {"Linear": {...}} or
// {"Symbolic": "..."}.
func (e PauliProductsToExpVal) MarshalJSON() ([]byte, error) {
	if e.isSymbolic {
		return json.Marshal(map[string]string{"Symbolic": e.symbolic})
	}
	//
	return json.Marshal(map[string]map[uint]float64{"Linear": e.linear})
}

// UnmarshalJSON decodes an expectation value encoded by MarshalJSON.
func (e *PauliProductsToExpVal) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	//
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	} else if len(tagged) != 1 {
		return fmt.Errorf("expected exactly one of Linear or Symbolic, found %s", string(data))
	}
	//
	if raw, ok := tagged["Symbolic"]; ok {
		var expr string
		if err := json.Unmarshal(raw, &expr); err != nil {
			return err
		}
		//
		*e = Symbolic(expr)
	} else if raw, ok := tagged["Linear"]; ok {
		var coefficients map[uint]float64
		if err := json.Unmarshal(raw, &coefficients); err != nil {
			return err
		}
		//
		*e = Linear(coefficients)
	} else {
		return fmt.Errorf("expected Linear or Symbolic, found %s", string(data))
	}
	//
	return nil
}

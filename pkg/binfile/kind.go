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
package binfile

import (
	"fmt"

	"github.com/roqoqo/roqoqo-go/pkg/circuit"
	"github.com/roqoqo/roqoqo-go/pkg/measurement"
	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// Kind identifies the type of value held in an encoded file.  Decoders use it
// to allocate the right value before decoding the payload.
type Kind uint16

const (
	// CIRCUIT identifies a circuit.
	CIRCUIT Kind = iota + 1
	// PAULI_Z_PRODUCT identifies a Pauli Z product measurement.
	PAULI_Z_PRODUCT
	// CHEATED_PAULI_Z_PRODUCT identifies a cheated Pauli Z product measurement.
	CHEATED_PAULI_Z_PRODUCT
	// CHEATED identifies a cheated measurement.
	CHEATED
	// CLASSICAL_REGISTER identifies a classical register measurement.
	CLASSICAL_REGISTER
	// PAULI_Z_PRODUCT_INPUT identifies a Pauli Z product input.
	PAULI_Z_PRODUCT_INPUT
	// CHEATED_PAULI_Z_PRODUCT_INPUT identifies a cheated Pauli Z product input.
	CHEATED_PAULI_Z_PRODUCT_INPUT
	// CHEATED_INPUT identifies a cheated input.
	CHEATED_INPUT
)

var kindNames = map[Kind]string{
	CIRCUIT:                       "Circuit",
	PAULI_Z_PRODUCT:               "PauliZProduct",
	CHEATED_PAULI_Z_PRODUCT:       "CheatedPauliZProduct",
	CHEATED:                       "Cheated",
	CLASSICAL_REGISTER:            "ClassicalRegister",
	PAULI_Z_PRODUCT_INPUT:         "PauliZProductInput",
	CHEATED_PAULI_Z_PRODUCT_INPUT: "CheatedPauliZProductInput",
	CHEATED_INPUT:                 "CheatedInput",
}

// KindOf determines the kind of a value which can be encoded.
func KindOf(value version.Versioned) (Kind, error) {
	switch value.(type) {
	case *circuit.Circuit:
		return CIRCUIT, nil
	case *measurement.PauliZProduct:
		return PAULI_Z_PRODUCT, nil
	case *measurement.CheatedPauliZProduct:
		return CHEATED_PAULI_Z_PRODUCT, nil
	case *measurement.Cheated:
		return CHEATED, nil
	case *measurement.ClassicalRegister:
		return CLASSICAL_REGISTER, nil
	case *measurement.PauliZProductInput:
		return PAULI_Z_PRODUCT_INPUT, nil
	case *measurement.CheatedPauliZProductInput:
		return CHEATED_PAULI_Z_PRODUCT_INPUT, nil
	case *measurement.CheatedInput:
		return CHEATED_INPUT, nil
	default:
		return 0, fmt.Errorf("cannot encode value of type %T", value)
	}
}

// ParseKind returns the kind with a given name, as written into JSON files.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	//
	return 0, false
}

// IsValid checks whether this is a known kind.
func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	//
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// Allocates an empty value of this kind, into which a payload is decoded.
func (k Kind) empty() version.Versioned {
	switch k {
	case CIRCUIT:
		return &circuit.Circuit{}
	case PAULI_Z_PRODUCT:
		return &measurement.PauliZProduct{}
	case CHEATED_PAULI_Z_PRODUCT:
		return &measurement.CheatedPauliZProduct{}
	case CHEATED:
		return &measurement.Cheated{}
	case CLASSICAL_REGISTER:
		return &measurement.ClassicalRegister{}
	case PAULI_Z_PRODUCT_INPUT:
		return &measurement.PauliZProductInput{}
	case CHEATED_PAULI_Z_PRODUCT_INPUT:
		return &measurement.CheatedPauliZProductInput{}
	case CHEATED_INPUT:
		return &measurement.CheatedInput{}
	default:
		panic(fmt.Sprintf("unknown kind %d", uint16(k)))
	}
}

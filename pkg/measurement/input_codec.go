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
)

// Inputs are decoded via method-free copies of their types, then normalised
// such that decoding an encoded input gives an equal input.
type (
	pauliZProductInputData        PauliZProductInput
	cheatedPauliZProductInputData CheatedPauliZProductInput
	cheatedInputData              CheatedInput
)

// GobEncode a Pauli Z product input.
func (p PauliZProductInput) GobEncode() ([]byte, error) {
	return gobEncode(pauliZProductInputData(p))
}

// GobDecode a previously encoded Pauli Z product input.
func (p *PauliZProductInput) GobDecode(data []byte) error {
	return gobDecode(data, (*pauliZProductInputData)(p), p.normalise)
}

// UnmarshalJSON decodes a Pauli Z product input.
func (p *PauliZProductInput) UnmarshalJSON(data []byte) error {
	return jsonDecode(data, (*pauliZProductInputData)(p), p.normalise)
}

// GobEncode a cheated Pauli Z product input.
func (p CheatedPauliZProductInput) GobEncode() ([]byte, error) {
	return gobEncode(cheatedPauliZProductInputData(p))
}

// GobDecode a previously encoded cheated Pauli Z product input.
func (p *CheatedPauliZProductInput) GobDecode(data []byte) error {
	return gobDecode(data, (*cheatedPauliZProductInputData)(p), p.normalise)
}

// UnmarshalJSON decodes a cheated Pauli Z product input.
func (p *CheatedPauliZProductInput) UnmarshalJSON(data []byte) error {
	return jsonDecode(data, (*cheatedPauliZProductInputData)(p), p.normalise)
}

// GobEncode a cheated input.
func (p CheatedInput) GobEncode() ([]byte, error) {
	return gobEncode(cheatedInputData(p))
}

// GobDecode a previously encoded cheated input.
func (p *CheatedInput) GobDecode(data []byte) error {
	return gobDecode(data, (*cheatedInputData)(p), p.normalise)
}

// UnmarshalJSON decodes a cheated input.
func (p *CheatedInput) UnmarshalJSON(data []byte) error {
	return jsonDecode(data, (*cheatedInputData)(p), p.normalise)
}

// Measurements holding an input are normalised after decoding, since gob
// omits an input whose fields are all empty.
type (
	pauliZProductData        PauliZProduct
	cheatedPauliZProductData CheatedPauliZProduct
	cheatedData              Cheated
)

// GobEncode a Pauli Z product measurement.
func (p PauliZProduct) GobEncode() ([]byte, error) {
	return gobEncode(pauliZProductData(p))
}

// GobDecode a previously encoded Pauli Z product measurement.
func (p *PauliZProduct) GobDecode(data []byte) error {
	return gobDecode(data, (*pauliZProductData)(p), p.Input.normalise)
}

// GobEncode a cheated Pauli Z product measurement.
func (p CheatedPauliZProduct) GobEncode() ([]byte, error) {
	return gobEncode(cheatedPauliZProductData(p))
}

// GobDecode a previously encoded cheated Pauli Z product measurement.
func (p *CheatedPauliZProduct) GobDecode(data []byte) error {
	return gobDecode(data, (*cheatedPauliZProductData)(p), p.Input.normalise)
}

// GobEncode a cheated measurement.
func (p Cheated) GobEncode() ([]byte, error) {
	return gobEncode(cheatedData(p))
}

// GobDecode a previously encoded cheated measurement.
func (p *Cheated) GobDecode(data []byte) error {
	return gobDecode(data, (*cheatedData)(p), p.Input.normalise)
}

func gobEncode(value any) ([]byte, error) {
	var buffer bytes.Buffer
	//
	if err := gob.NewEncoder(&buffer).Encode(value); err != nil {
		return nil, err
	}
	//
	return buffer.Bytes(), nil
}

func gobDecode(data []byte, target any, normalise func()) error {
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(target); err != nil {
		return err
	}
	//
	normalise()
	//
	return nil
}

func jsonDecode(data []byte, target any, normalise func()) error {
	if err := json.Unmarshal(data, target); err != nil {
		return err
	}
	//
	normalise()
	//
	return nil
}

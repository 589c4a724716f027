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
package register

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// registersData is the JSON form of a set of registers, where each complex
// number is written as a pair [re, im].
type registersData struct {
	Bits      map[string][][]bool       `json:"bits"`
	Floats    map[string][][]float64    `json:"floats"`
	Complexes map[string][][][2]float64 `json:"complexes"`
}

// MarshalJSON encodes registers as an object with one field per register type.
func (r Registers) MarshalJSON() ([]byte, error) {
	data := registersData{
		make(map[string][][]bool, len(r.Bits)),
		make(map[string][][]float64, len(r.Floats)),
		make(map[string][][][2]float64, len(r.Complexes)),
	}
	//
	for name, reg := range r.Bits {
		data.Bits[name] = nonNilRows(reg)
	}
	//
	for name, reg := range r.Floats {
		data.Floats[name] = nonNilRows(reg)
	}
	//
	for name, reg := range r.Complexes {
		rows := make([][][2]float64, len(reg))
		//
		for i, row := range reg {
			rows[i] = make([][2]float64, len(row))
			for j, c := range row {
				rows[i][j] = [2]float64{real(c), imag(c)}
			}
		}
		//
		data.Complexes[name] = rows
	}
	//
	return json.Marshal(data)
}

// UnmarshalJSON decodes registers previously encoded with MarshalJSON.
// Missing register types are treated as empty.
func (r *Registers) UnmarshalJSON(bytes []byte) error {
	var data registersData
	//
	if err := json.Unmarshal(bytes, &data); err != nil {
		return err
	}
	//
	*r = fromData(data)
	//
	return nil
}

// FromBytes parses registers expressed in JSON notation.  For example,
// {"bits": {"ro": [[true, false]]}} holds one shot of a two-bit register "ro".
// Output recorded as a triple [bits, floats, complexes] (i.e. as backends
// return it) is also accepted.
func FromBytes(bytes []byte) (Registers, error) {
	var regs Registers
	// Attempt to unmarshall
	if err := json.Unmarshal(bytes, &regs); err != nil {
		// Failed, so try and fall back on the triple format.
		return FromBytesTriple(bytes)
	}
	//
	if err := regs.Validate(); err != nil {
		return Registers{}, err
	}
	//
	return regs, nil
}

// FromBytesTriple parses registers expressed as a JSON triple of bit, float
// and complex registers.  For example, [{"ro": [[true]]}, {}, {}].
func FromBytesTriple(bytes []byte) (Registers, error) {
	var (
		triple []json.RawMessage
		data   registersData
	)
	//
	if err := json.Unmarshal(bytes, &triple); err != nil {
		return Registers{}, errors.Wrap(err, "malformed registers")
	} else if len(triple) != 3 {
		return Registers{}, errors.Errorf("malformed registers (expected 3 components, found %d)", len(triple))
	}
	//
	if err := json.Unmarshal(triple[0], &data.Bits); err != nil {
		return Registers{}, errors.Wrap(err, "malformed bit registers")
	} else if err := json.Unmarshal(triple[1], &data.Floats); err != nil {
		return Registers{}, errors.Wrap(err, "malformed float registers")
	} else if err := json.Unmarshal(triple[2], &data.Complexes); err != nil {
		return Registers{}, errors.Wrap(err, "malformed complex registers")
	}
	//
	regs := fromData(data)
	//
	if err := regs.Validate(); err != nil {
		return Registers{}, err
	}
	//
	return regs, nil
}

// ToBytes writes registers in JSON notation, as accepted by FromBytes.
func ToBytes(regs Registers) ([]byte, error) {
	bytes, err := json.Marshal(regs)
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode registers")
	}
	//
	return bytes, nil
}

func fromData(data registersData) Registers {
	regs := NewRegisters()
	//
	for name, rows := range data.Bits {
		regs.Bits[name] = nilIfEmpty(rows)
	}
	//
	for name, rows := range data.Floats {
		regs.Floats[name] = nilIfEmpty(rows)
	}
	//
	for name, rows := range data.Complexes {
		reg := make(ComplexRegister, len(rows))
		//
		for i, row := range rows {
			reg[i] = make([]complex128, len(row))
			for j, c := range row {
				reg[i][j] = complex(c[0], c[1])
			}
		}
		//
		regs.Complexes[name] = nilIfEmpty(reg)
	}
	//
	return regs
}

// Rows are encoded as arrays, even when empty.
func nonNilRows[T any](reg Register[T]) [][]T {
	rows := make([][]T, len(reg))
	//
	for i, row := range reg {
		if row == nil {
			row = []T{}
		}
		//
		rows[i] = row
	}
	//
	return rows
}

func nilIfEmpty[T any](rows [][]T) Register[T] {
	if len(rows) == 0 {
		return nil
	}
	//
	return rows
}

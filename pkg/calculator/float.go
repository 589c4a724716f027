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
package calculator

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float is a numeric value which is either concrete, or symbolic.  A symbolic
// value holds an expression (e.g. "theta / 2") which is only evaluated once
// values for its variables are known.  Floats are immutable and comparable.
type Float struct {
	value float64
	// Expression for symbolic values, or empty for concrete values.
	symbol string
}

// NewFloat constructs a concrete float.
func NewFloat(value float64) Float {
	return Float{value, ""}
}

// NewSymbol constructs a symbolic float from an expression.  An empty
// expression gives the concrete value zero.
func NewSymbol(expr string) Float {
	return Float{0, expr}
}

// IsFloat determines whether this is a concrete value.
func (f Float) IsFloat() bool {
	return f.symbol == ""
}

// IsSymbolic determines whether this is a symbolic value.
func (f Float) IsSymbolic() bool {
	return f.symbol != ""
}

// Float returns the concrete value, or an error for symbolic values.
func (f Float) Float() (float64, error) {
	if f.IsSymbolic() {
		return 0, &NotConvertibleError{f.symbol}
	}
	//
	return f.value, nil
}

// Symbol returns the expression held by a symbolic value, or the formatted
// value of a concrete one.
func (f Float) Symbol() string {
	if f.IsSymbolic() {
		return f.symbol
	}
	//
	return formatFloat(f.value)
}

// Variables returns the variables used by this value.  A symbolic value whose
// expression cannot be parsed reports an error.
func (f Float) Variables() ([]string, error) {
	if f.IsFloat() {
		return nil, nil
	}
	//
	term, err := Parse(f.symbol)
	if err != nil {
		return nil, err
	}
	//
	return term.Variables(nil), nil
}

func (f Float) String() string {
	return f.Symbol()
}

// Add two values together.
func (f Float) Add(other Float) Float {
	switch {
	case f.IsFloat() && other.IsFloat():
		return NewFloat(f.value + other.value)
	case f.isConstant(0):
		return other
	case other.isConstant(0):
		return f
	}
	//
	return f.combine("+", other)
}

// Sub subtracts a value from this value.
func (f Float) Sub(other Float) Float {
	switch {
	case f.IsFloat() && other.IsFloat():
		return NewFloat(f.value - other.value)
	case other.isConstant(0):
		return f
	}
	//
	return f.combine("-", other)
}

// Mul multiplies two values together.
func (f Float) Mul(other Float) Float {
	switch {
	case f.IsFloat() && other.IsFloat():
		return NewFloat(f.value * other.value)
	case f.isConstant(1):
		return other
	case other.isConstant(1):
		return f
	}
	//
	return f.combine("*", other)
}

// Div divides this value by another.  Division of a concrete value by a
// concrete zero is an error, whilst division involving symbolic values is only
// checked on evaluation.
func (f Float) Div(other Float) (Float, error) {
	switch {
	case other.isConstant(0):
		return f, &DivisionByZeroError{}
	case f.IsFloat() && other.IsFloat():
		return NewFloat(f.value / other.value), nil
	case other.isConstant(1):
		return f, nil
	}
	//
	return f.combine("/", other), nil
}

// Neg negates this value.
func (f Float) Neg() Float {
	if f.IsFloat() {
		return NewFloat(-f.value)
	}
	//
	return NewSymbol(fmt.Sprintf("(-%s)", operand(f.symbol)))
}

func (f Float) isConstant(value float64) bool {
	return f.IsFloat() && f.value == value
}

func (f Float) combine(op string, other Float) Float {
	return NewSymbol(fmt.Sprintf("(%s %s %s)", operand(f.Symbol()), op, operand(other.Symbol())))
}

// Wraps an expression in braces unless it is atomic (i.e. a name or a plain
// number), such that it can be safely embedded in a larger expression.
func operand(expr string) string {
	atomic := len(expr) > 0 && expr[0] != '-'
	//
	for _, c := range expr {
		if !(c == '_' || c == '.' || c == '+' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')) {
			atomic = false
			break
		}
	}
	// Exponents (e.g. 1e+10) are the only place a sign can appear
	if atomic && strings.ContainsRune(expr, '+') {
		_, err := strconv.ParseFloat(expr, 64)
		atomic = err == nil
	}
	//
	if atomic {
		return expr
	}
	//
	return fmt.Sprintf("(%s)", expr)
}

// Formats a concrete value such that it can be embedded in an expression and
// parsed back without loss.
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// ============================================================================
// Encoding / Decoding
// ============================================================================

const (
	concreteTag = byte(0)
	symbolicTag = byte(1)
)

// GobEncode a float as a tag byte, followed either by the IEEE bits of a
// concrete value or the expression of a symbolic value.
func (f Float) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	//
	if f.IsFloat() {
		buffer.WriteByte(concreteTag)
		_ = binary.Write(&buffer, binary.BigEndian, math.Float64bits(f.value))
	} else {
		buffer.WriteByte(symbolicTag)
		buffer.WriteString(f.symbol)
	}
	//
	return buffer.Bytes(), nil
}

// GobDecode a previously encoded float.
func (f *Float) GobDecode(data []byte) error {
	switch {
	case len(data) == 9 && data[0] == concreteTag:
		*f = NewFloat(math.Float64frombits(binary.BigEndian.Uint64(data[1:])))
	case len(data) > 1 && data[0] == symbolicTag:
		*f = NewSymbol(string(data[1:]))
	default:
		return errors.New("malformed float encoding")
	}
	//
	return nil
}

// MarshalJSON encodes a concrete value as a JSON number, and a symbolic value
// as a JSON string.
func (f Float) MarshalJSON() ([]byte, error) {
	if f.IsFloat() {
		return json.Marshal(f.value)
	}
	//
	return json.Marshal(f.symbol)
}

// UnmarshalJSON decodes either a JSON number or a JSON string.
func (f *Float) UnmarshalJSON(data []byte) error {
	var (
		value  float64
		symbol string
	)
	//
	if err := json.Unmarshal(data, &value); err == nil {
		*f = NewFloat(value)
		return nil
	} else if err := json.Unmarshal(data, &symbol); err != nil {
		return fmt.Errorf("expected number or string, found %s", string(data))
	}
	//
	*f = NewSymbol(symbol)
	//
	return nil
}

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
	"fmt"

	"github.com/roqoqo/roqoqo-go/pkg/util/source"
)

// ParseError signals that an expression is syntactically malformed.
type ParseError struct {
	Err *source.SyntaxError
}

func (e *ParseError) Error() string {
	span := e.Err.Span()
	return fmt.Sprintf("%s at %d:%d", e.Err.Message(), span.Start(), span.End())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// VariableNotSetError signals that an expression references a variable for
// which the calculator has no value.
type VariableNotSetError struct {
	Name string
}

func (e *VariableNotSetError) Error() string {
	return fmt.Sprintf("variable %s not set", e.Name)
}

// DivisionByZeroError signals a division by zero.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// NotConvertibleError signals an attempt to read a symbolic value as a float.
type NotConvertibleError struct {
	Symbol string
}

func (e *NotConvertibleError) Error() string {
	return fmt.Sprintf("symbolic value %s cannot be converted to float", e.Symbol)
}

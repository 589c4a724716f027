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

// Package roqoqo holds the error taxonomy shared by the circuit, measurement
// and serialisation packages.  Errors are plain structs so that callers can
// discriminate them with errors.As and read their fields.
package roqoqo

import (
	"fmt"

	"github.com/roqoqo/roqoqo-go/pkg/version"
)

// ============================================================================
// Configuration errors
// ============================================================================

// PauliProductExceedsQubitsError signals that a Pauli product references a
// qubit which does not exist.
type PauliProductExceedsQubitsError struct {
	// Qubit referenced by the Pauli product.
	Qubit uint
	// Number of qubits available.
	NumberQubits uint
}

func (e *PauliProductExceedsQubitsError) Error() string {
	return fmt.Sprintf("Pauli product involves qubit %d but number qubits is lower %d", e.Qubit, e.NumberQubits)
}

// PauliProductIndexError signals that an expectation value references a Pauli
// product index which was never registered.
type PauliProductIndexError struct {
	Index               uint
	NumberPauliProducts uint
}

func (e *PauliProductIndexError) Error() string {
	return fmt.Sprintf("Pauli product index %d exceeds number of registered Pauli products %d", e.Index,
		e.NumberPauliProducts)
}

// ExpValUsedTwiceError signals that an expectation value name was registered
// more than once.
type ExpValUsedTwiceError struct {
	Name string
}

func (e *ExpValUsedTwiceError) Error() string {
	return fmt.Sprintf("name %s of expectation value already taken", e.Name)
}

// MismatchedOperatorDimensionError signals that a sparse operator entry lies
// outside the Hilbert space of the configured number of qubits.
type MismatchedOperatorDimensionError struct {
	Row          uint
	Column       uint
	NumberQubits uint
}

func (e *MismatchedOperatorDimensionError) Error() string {
	return fmt.Sprintf("index (%d, %d) of operator exceeds Hilbert space dimension of %d qubits", e.Row, e.Column,
		e.NumberQubits)
}

// ============================================================================
// Evaluation errors
// ============================================================================

// MissingRegisterError signals that a register required for evaluation was
// never populated.
type MissingRegisterError struct {
	Name string
}

func (e *MissingRegisterError) Error() string {
	return fmt.Sprintf("register %s not found", e.Name)
}

// EmptyRegisterError signals that a register exists, but holds no shots.
type EmptyRegisterError struct {
	Name string
}

func (e *EmptyRegisterError) Error() string {
	return fmt.Sprintf("register %s contains no shots", e.Name)
}

// MismatchedRegisterDimensionError signals that the length of a shot in a
// register does not match what the configured number of qubits implies.
type MismatchedRegisterDimensionError struct {
	// Name of the offending register
	Name string
	// Length of the offending shot
	Dim uint
	// Number of qubits configured
	NumberQubits uint
}

func (e *MismatchedRegisterDimensionError) Error() string {
	return fmt.Sprintf("dimension of register %s (%d) does not match number of qubits %d", e.Name, e.Dim,
		e.NumberQubits)
}

// RowLengthError signals that the shots of a single register have differing
// lengths.
type RowLengthError struct {
	Name     string
	Row      uint
	Expected uint
	Found    uint
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("shot %d of register %s has length %d (expected %d)", e.Row, e.Name, e.Found, e.Expected)
}

// ShotCountMismatchError signals that registers contributing to the same
// evaluation hold differing numbers of shots.
type ShotCountMismatchError struct {
	Name     string
	Expected uint
	Found    uint
}

func (e *ShotCountMismatchError) Error() string {
	return fmt.Sprintf("register %s holds %d shots (expected %d)", e.Name, e.Found, e.Expected)
}

// ImaginaryResidueError signals that an expectation value has a non-negligible
// imaginary part, which indicates a non-Hermitian operator or an invalid state.
type ImaginaryResidueError struct {
	Name      string
	Residue   float64
	Tolerance float64
}

func (e *ImaginaryResidueError) Error() string {
	return fmt.Sprintf("expectation value %s has imaginary part %g exceeding tolerance %g", e.Name, e.Residue,
		e.Tolerance)
}

// CalculatorError wraps a failure of the expression evaluator.
type CalculatorError struct {
	// Expression being evaluated
	Expression string
	// Underlying error
	Err error
}

func (e *CalculatorError) Error() string {
	return fmt.Sprintf("error evaluating \"%s\": %s", e.Expression, e.Err.Error())
}

func (e *CalculatorError) Unwrap() error {
	return e.Err
}

// ============================================================================
// Circuit errors
// ============================================================================

// UnknownOperationError signals an operation name missing from the catalogue.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %s", e.Name)
}

// OperationArityError signals that an operation was constructed with the wrong
// number of qubits or parameters.
type OperationArityError struct {
	Name     string
	What     string
	Expected int
	Found    int
}

func (e *OperationArityError) Error() string {
	return fmt.Sprintf("operation %s expects %d %s (found %d)", e.Name, e.Expected, e.What, e.Found)
}

// QubitMappingError signals that a qubit remapping is not a permutation of the
// qubits it touches.
type QubitMappingError struct {
	Qubit uint
}

func (e *QubitMappingError) Error() string {
	return fmt.Sprintf("qubit remapping does not map onto qubit %d bijectively", e.Qubit)
}

// ============================================================================
// Serialisation errors
// ============================================================================

// SerializationError signals that bytes could not be decoded (or encoded).
// This indicates corrupt or foreign data, as opposed to a version problem.
type SerializationError struct {
	Msg string
	Err error
	// Set when the failure arose whilst encoding.
	Encoding bool
}

func (e *SerializationError) Error() string {
	prefix := "cannot deserialize"
	if e.Encoding {
		prefix = "cannot serialize"
	}
	//
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", prefix, e.Msg, e.Err.Error())
	}
	//
	return fmt.Sprintf("%s: %s", prefix, e.Msg)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// VersionMismatchError signals that data requires a newer library than the
// one attempting to decode it.
type VersionMismatchError struct {
	// Version of the library decoding the data
	Library version.Version
	// Minimum version required by the data
	Required version.Version
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("data requires version %s but library supports %s; upgrade the library", e.Required,
		e.Library)
}

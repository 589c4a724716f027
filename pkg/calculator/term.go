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
	"math"
	"strconv"
	"strings"
)

// Environment provides the values of variables during evaluation.
type Environment func(name string) (float64, bool)

// Term represents a parsed arithmetic expression.  Terms are immutable once
// constructed, hence they can be cached and shared between goroutines.
type Term interface {
	// Eval evaluates this term in a given environment.
	Eval(env Environment) (float64, error)
	// Variables appends the names of all variables used in this term.
	Variables(names []string) []string
	// String returns a fully parenthesised representation of this term.
	String() string
}

// Number is a constant value.
type Number struct {
	Value float64
}

// Eval returns the constant itself.
func (t *Number) Eval(env Environment) (float64, error) {
	return t.Value, nil
}

// Variables has nothing to add for a constant.
func (t *Number) Variables(names []string) []string {
	return names
}

func (t *Number) String() string {
	return strconv.FormatFloat(t.Value, 'g', -1, 64)
}

// Variable is a named value supplied by the environment.
type Variable struct {
	Name string
}

// Eval looks up the variable in the environment.
func (t *Variable) Eval(env Environment) (float64, error) {
	if v, ok := env(t.Name); ok {
		return v, nil
	}
	//
	return 0, &VariableNotSetError{t.Name}
}

// Variables adds this variable's name.
func (t *Variable) Variables(names []string) []string {
	return append(names, t.Name)
}

func (t *Variable) String() string {
	return t.Name
}

// Negate is arithmetic negation.
type Negate struct {
	Arg Term
}

// Eval negates its argument.
func (t *Negate) Eval(env Environment) (float64, error) {
	v, err := t.Arg.Eval(env)
	return -v, err
}

// Variables of the argument.
func (t *Negate) Variables(names []string) []string {
	return t.Arg.Variables(names)
}

func (t *Negate) String() string {
	return fmt.Sprintf("(-%s)", t.Arg.String())
}

// BinOp is a binary arithmetic operation, identified by its token kind (ADD,
// SUB, MUL, DIV or POW).
type BinOp struct {
	Op  uint
	Lhs Term
	Rhs Term
}

// Eval evaluates both sides, then applies the operator.
func (t *BinOp) Eval(env Environment) (float64, error) {
	lhs, err := t.Lhs.Eval(env)
	if err != nil {
		return 0, err
	}
	//
	rhs, err := t.Rhs.Eval(env)
	if err != nil {
		return 0, err
	}
	//
	switch t.Op {
	case ADD:
		return lhs + rhs, nil
	case SUB:
		return lhs - rhs, nil
	case MUL:
		return lhs * rhs, nil
	case DIV:
		if rhs == 0 {
			return 0, &DivisionByZeroError{}
		}
		//
		return lhs / rhs, nil
	case POW:
		return math.Pow(lhs, rhs), nil
	}
	//
	panic("unreachable")
}

// Variables of both sides.
func (t *BinOp) Variables(names []string) []string {
	return t.Rhs.Variables(t.Lhs.Variables(names))
}

func (t *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", t.Lhs.String(), operators[t.Op], t.Rhs.String())
}

// Call is the application of a builtin function.
type Call struct {
	Name string
	Args []Term
	fn   function
}

// Eval evaluates all arguments, then applies the function.
func (t *Call) Eval(env Environment) (float64, error) {
	var (
		args = make([]float64, len(t.Args))
		err  error
	)
	//
	for i, arg := range t.Args {
		if args[i], err = arg.Eval(env); err != nil {
			return 0, err
		}
	}
	//
	return t.fn.apply(args), nil
}

// Variables of all arguments.
func (t *Call) Variables(names []string) []string {
	for _, arg := range t.Args {
		names = arg.Variables(names)
	}
	//
	return names
}

func (t *Call) String() string {
	args := make([]string, len(t.Args))
	for i, arg := range t.Args {
		args[i] = arg.String()
	}
	//
	return fmt.Sprintf("%s(%s)", t.Name, strings.Join(args, ", "))
}

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
	"maps"
	"strings"

	"github.com/roqoqo/roqoqo-go/pkg/util"
)

// ExpressionParser turns expression text into a term.  Both Cache and
// ParserFunc(Parse) satisfy it.
type ExpressionParser interface {
	Parse(expr string) (Term, error)
}

// ParserFunc adapts a plain function into an ExpressionParser.
type ParserFunc func(expr string) (Term, error)

// Parse calls the underlying function.
func (fn ParserFunc) Parse(expr string) (Term, error) {
	return fn(expr)
}

// Calculator evaluates arithmetic expressions over a set of named variables.
// A calculator is not safe for concurrent modification, though any number of
// goroutines may evaluate against a calculator which is no longer modified.
type Calculator struct {
	variables map[string]float64
	parser    ExpressionParser
}

// NewCalculator constructs a calculator with no variables set, using a private
// cache of the default size.
func NewCalculator() *Calculator {
	return &Calculator{make(map[string]float64), NewCache(DefaultCacheSize)}
}

// NewCalculatorWithCache constructs a calculator with no variables set, which
// uses a given (possibly shared) cache of parsed expressions.
func NewCalculatorWithCache(cache *Cache) *Calculator {
	return &Calculator{make(map[string]float64), cache}
}

// NewCalculatorWithParser constructs a calculator with no variables set, which
// uses a given parser for expressions.
func NewCalculatorWithParser(parser ExpressionParser) *Calculator {
	return &Calculator{make(map[string]float64), parser}
}

// Clone returns a copy of this calculator with its own variable bindings,
// sharing the parser of this calculator.
func (c *Calculator) Clone() *Calculator {
	return &Calculator{maps.Clone(c.variables), c.parser}
}

// Set assigns a value to a variable, overwriting any previous value.
func (c *Calculator) Set(name string, value float64) {
	c.variables[name] = value
}

// Get returns the value of a variable, if it is set.
func (c *Calculator) Get(name string) (float64, bool) {
	value, ok := c.variables[name]
	return value, ok
}

// Variables returns the names of all variables set, in ascending order.
func (c *Calculator) Variables() []string {
	return util.SortedKeys(c.variables)
}

// Evaluate parses and evaluates an expression.  Failures are reported as a
// ParseError, VariableNotSetError or DivisionByZeroError.  An empty (or blank)
// expression is a parse error.
func (c *Calculator) Evaluate(expr string) (float64, error) {
	term, err := c.parser.Parse(strings.TrimSpace(expr))
	if err != nil {
		return 0, err
	}
	//
	return term.Eval(c.lookup)
}

// EvaluateFloat returns the value of a concrete float, or evaluates the
// expression of a symbolic one.
func (c *Calculator) EvaluateFloat(f Float) (float64, error) {
	if f.IsFloat() {
		return f.value, nil
	}
	//
	return c.Evaluate(f.symbol)
}

// Substitute replaces a symbolic float with its concrete value, where every
// variable it uses must be set.  Concrete floats are returned unchanged.
func (c *Calculator) Substitute(f Float) (Float, error) {
	if f.IsFloat() {
		return f, nil
	}
	//
	value, err := c.Evaluate(f.symbol)
	if err != nil {
		return f, err
	}
	//
	return NewFloat(value), nil
}

func (c *Calculator) lookup(name string) (float64, bool) {
	value, ok := c.variables[name]
	return value, ok
}
